package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/staff-registry/internal/auth"
	"github.com/clinicore/staff-registry/internal/bootstrap"
	"github.com/clinicore/staff-registry/internal/catalog"
	"github.com/clinicore/staff-registry/internal/personnel"
	"github.com/clinicore/staff-registry/pkg/config"
	"github.com/clinicore/staff-registry/pkg/database"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/monitoring"
)

const serviceName = "staff-service"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.Info("Starting Staff Registry service")

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.CreateSchema(schemaCtx); err != nil {
		cancelSchema()
		log.WithError(err).Error("Failed to create database schema")
		os.Exit(1)
	}
	cancelSchema()

	// Initialize monitoring
	metrics := monitoring.NewMetricsCollector(serviceName)
	healthManager := monitoring.NewHealthManager(serviceName)
	healthManager.RegisterDatabase("postgres", db)

	// Initialize repositories
	roleRepo := catalog.NewRoleRepository(db, log)
	contractRepo := catalog.NewContractRepository(db, log)
	areaRepo := catalog.NewAreaRepository(db, log)
	specialtyRepo := catalog.NewSpecialtyRepository(db, log)
	staffRepo := personnel.NewStaffRepository(db, log)
	adminRepo := personnel.NewAdminRepository(db, log)
	patientRepo := personnel.NewPatientRepository(db, log)
	identityIndex := personnel.NewIdentityIndex(db)

	// Initialize services
	catalogService := catalog.NewService(roleRepo, contractRepo, areaRepo, specialtyRepo, log)

	validator := personnel.NewValidator(identityIndex, roleRepo, contractRepo, specialtyRepo)
	passwordManager := personnel.NewPasswordManager()
	issuer := auth.NewIssuer(&cfg.JWT)
	personnelService := personnel.NewService(
		validator,
		staffRepo,
		adminRepo,
		patientRepo,
		roleRepo,
		passwordManager,
		issuer,
		metrics,
		log,
	)

	// Seed roles and the bootstrap admin
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	seeder := bootstrap.NewSeeder(catalogService, personnelService, log)
	if err := seeder.Run(seedCtx, &cfg.Bootstrap); err != nil {
		cancelSeed()
		log.WithError(err).Error("Failed to seed database")
		os.Exit(1)
	}
	cancelSeed()

	// Initialize the authorization guard
	directory := personnel.NewRoleDirectory(adminRepo, staffRepo)
	guard := auth.NewGuard(issuer, directory, log)

	// Setup Gin router
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(requestTimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	router.Use(requestMetrics(metrics))

	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, "+auth.TokenHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register API routes
	api := router.Group("/api/clinical")
	catalog.NewHandler(catalogService, log).RegisterRoutes(api, guard)
	personnel.NewHandler(personnelService, log).RegisterRoutes(api, guard)

	// Setup HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("address", server.Addr).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start HTTP server")
			os.Exit(1)
		}
	}()

	// Start the monitoring side listener
	var monitoringServer *http.Server
	if cfg.Monitoring.Enabled {
		monitoringServer = &http.Server{
			Addr: fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Monitoring.Port),
			Handler: monitoring.NewRouter(
				cfg.Monitoring.HealthPath,
				cfg.Monitoring.MetricsPath,
				healthManager,
				metrics,
			),
		}

		go func() {
			log.WithField("address", monitoringServer.Addr).Info("Starting monitoring server")
			if err := monitoringServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("Failed to start monitoring server")
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Staff Registry service...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		os.Exit(1)
	}

	if monitoringServer != nil {
		if err := monitoringServer.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Monitoring server forced to shutdown")
		}
	}

	log.Info("Staff Registry service stopped")
}

// requestLogger emits one structured log line per completed request
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.HTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
		)
	}
}

// requestTimeout bounds every handler by a per-request deadline
func requestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requestMetrics records request counts and latency per route
func requestMetrics(metrics *monitoring.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			fmt.Sprintf("%d", c.Writer.Status()),
			time.Since(start),
		)
	}
}
