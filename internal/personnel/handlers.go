package personnel

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/staff-registry/internal/auth"
	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// Handler exposes the personnel endpoints: sign-in per collection, doctor
// and nurse CRUD behind the admin gate, and patient CRUD open to any
// authenticated staff role.
type Handler struct {
	service interfaces.PersonnelService
	logger  *logger.Logger
}

// NewHandler creates a personnel HTTP handler
func NewHandler(service interfaces.PersonnelService, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes mounts the personnel routes on the API group
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, guard *auth.Guard) {
	adminOnly := guard.Require(auth.RequireRole(types.RoleAdmin))
	anyStaff := guard.Require(auth.RequireAnyOf(types.RoleAdmin, types.RoleDoctor, types.RoleNurse))

	personal := api.Group("/personal")

	admins := personal.Group("/admin")
	admins.POST("/signin", h.signIn(types.KindAdmin))

	doctors := personal.Group("/doctors")
	doctors.POST("/signin", h.signIn(types.KindDoctor))
	doctors.POST("", adminOnly, h.createStaff(types.KindDoctor))
	doctors.GET("", adminOnly, h.listStaff(types.KindDoctor))
	doctors.GET("/:id", adminOnly, h.getStaff(types.KindDoctor))
	doctors.PUT("/:id", adminOnly, h.updateStaff(types.KindDoctor))
	doctors.DELETE("/:id", adminOnly, h.deleteStaff(types.KindDoctor))

	nurses := personal.Group("/nurses")
	nurses.POST("/signin", h.signIn(types.KindNurse))
	nurses.POST("", adminOnly, h.createStaff(types.KindNurse))
	nurses.GET("", adminOnly, h.listStaff(types.KindNurse))
	nurses.GET("/:id", adminOnly, h.getStaff(types.KindNurse))
	nurses.PUT("/:id", adminOnly, h.updateStaff(types.KindNurse))
	nurses.DELETE("/:id", adminOnly, h.deleteStaff(types.KindNurse))

	patients := api.Group("/patients", anyStaff)
	patients.POST("", h.createPatient)
	patients.GET("", h.listPatients)
	patients.GET("/:id", h.getPatient)
	patients.PUT("/:id", h.updatePatient)
	patients.DELETE("/:id", h.deletePatient)
}

func (h *Handler) signIn(kind types.StaffKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials types.Credentials
		if err := c.ShouldBindJSON(&credentials); err != nil {
			h.badPayload(c)
			return
		}

		token, err := h.service.SignIn(c.Request.Context(), kind, &credentials)
		if err != nil {
			h.handleError(c, err)
			return
		}

		respond(c, http.StatusOK, "Signed in successfully", "token", token.Value)
	}
}

func (h *Handler) createStaff(kind types.StaffKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StaffCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badPayload(c)
			return
		}

		staff, err := h.service.CreateStaff(c.Request.Context(), kind, &req)
		if err != nil {
			h.handleError(c, err)
			return
		}

		respond(c, http.StatusCreated,
			fmt.Sprintf("The %s was created successfully", kind), string(kind), staff)
	}
}

func (h *Handler) listStaff(kind types.StaffKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.service.ListStaff(c.Request.Context(), kind)
		if err != nil {
			h.handleError(c, err)
			return
		}

		if records == nil {
			records = []*types.ClinicalStaff{}
		}
		respond(c, http.StatusOK,
			fmt.Sprintf("The %ss were retrieved successfully", kind), string(kind)+"s", records)
	}
}

func (h *Handler) getStaff(kind types.StaffKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := h.service.GetStaff(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			h.handleError(c, err)
			return
		}

		respond(c, http.StatusOK,
			fmt.Sprintf("The %s was retrieved successfully", kind), string(kind), staff)
	}
}

func (h *Handler) updateStaff(kind types.StaffKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd types.StaffUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			h.badPayload(c)
			return
		}

		staff, err := h.service.UpdateStaff(c.Request.Context(), kind, c.Param("id"), &upd)
		if err != nil {
			h.handleError(c, err)
			return
		}

		respond(c, http.StatusOK,
			fmt.Sprintf("The %s was updated successfully", kind), string(kind), staff)
	}
}

func (h *Handler) deleteStaff(kind types.StaffKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.service.DeleteStaff(c.Request.Context(), kind, c.Param("id")); err != nil {
			h.handleError(c, err)
			return
		}

		respond(c, http.StatusOK,
			fmt.Sprintf("The %s was deleted successfully", kind), "", nil)
	}
}

func (h *Handler) createPatient(c *gin.Context) {
	var req types.PatientCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badPayload(c)
		return
	}

	patient, err := h.service.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusCreated, "The patient was created successfully", "patient", patient)
}

func (h *Handler) listPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if patients == nil {
		patients = []*types.Patient{}
	}
	respond(c, http.StatusOK, "The patients were retrieved successfully", "patients", patients)
}

func (h *Handler) getPatient(c *gin.Context) {
	patient, err := h.service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The patient was retrieved successfully", "patient", patient)
}

func (h *Handler) updatePatient(c *gin.Context) {
	var upd types.PatientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.badPayload(c)
		return
	}

	patient, err := h.service.UpdatePatient(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The patient was updated successfully", "patient", patient)
}

func (h *Handler) deletePatient(c *gin.Context) {
	if err := h.service.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The patient was deleted successfully", "", nil)
}

func (h *Handler) badPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    http.StatusBadRequest,
		"message": "The request payload is malformed",
	})
}

// handleError maps a service error to the API envelope. Internal failures
// keep their detail in the server log and respond with a generic message.
func (h *Handler) handleError(c *gin.Context, err error) {
	status := types.HTTPStatus(err)

	message := "Internal server error"
	var regErr *types.RegistryError
	if errors.As(err, &regErr) && status < http.StatusInternalServerError {
		message = regErr.Message
	} else {
		h.logger.WithError(err).Error("Request failed")
	}

	c.JSON(status, gin.H{"code": status, "message": message})
}

func respond(c *gin.Context, status int, message, key string, payload interface{}) {
	body := gin.H{"code": status, "message": message}
	if key != "" {
		body[key] = payload
	}
	c.JSON(status, body)
}
