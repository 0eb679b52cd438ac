package bootstrap

import (
	"context"
	"fmt"

	"github.com/clinicore/staff-registry/pkg/config"
	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/logger"
)

// Seeder prepares a fresh database for use: the well-known roles must exist
// before any personnel record can reference them, and the bootstrap admin
// must exist before the role-gated API is reachable at all.
type Seeder struct {
	catalog   interfaces.CatalogService
	personnel interfaces.PersonnelService
	logger    *logger.Logger
}

// NewSeeder creates a seeder
func NewSeeder(catalog interfaces.CatalogService, personnel interfaces.PersonnelService, log *logger.Logger) *Seeder {
	return &Seeder{
		catalog:   catalog,
		personnel: personnel,
		logger:    log,
	}
}

// Run seeds roles, then the bootstrap admin. Idempotent: a seeded database
// passes through unchanged.
func (s *Seeder) Run(ctx context.Context, cfg *config.BootstrapConfig) error {
	if err := s.catalog.EnsureRoles(ctx); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	if err := s.personnel.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}

	s.logger.Info("Bootstrap seeding completed")
	return nil
}
