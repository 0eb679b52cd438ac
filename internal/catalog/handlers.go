package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/staff-registry/internal/auth"
	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// Handler exposes the reference collection endpoints, all behind the admin
// gate.
type Handler struct {
	service interfaces.CatalogService
	logger  *logger.Logger
}

// NewHandler creates a catalog HTTP handler
func NewHandler(service interfaces.CatalogService, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes mounts the catalog routes on the API group
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, guard *auth.Guard) {
	adminOnly := guard.Require(auth.RequireRole(types.RoleAdmin))

	roles := api.Group("/roles", adminOnly)
	roles.POST("", h.createRole)
	roles.GET("", h.listRoles)
	roles.GET("/:id", h.getRole)
	roles.DELETE("/:id", h.deleteRole)

	contracts := api.Group("/contracts", adminOnly)
	contracts.POST("", h.createContract)
	contracts.GET("", h.listContracts)
	contracts.GET("/:id", h.getContract)
	contracts.PUT("/:id", h.updateContract)
	contracts.DELETE("/:id", h.deleteContract)

	areas := api.Group("/areas", adminOnly)
	areas.POST("", h.createArea)
	areas.GET("", h.listAreas)
	areas.GET("/:id", h.getArea)
	areas.PUT("/:id", h.updateArea)
	areas.DELETE("/:id", h.deleteArea)

	specialties := api.Group("/areas/specialties", adminOnly)
	specialties.POST("", h.createSpecialty)
	specialties.GET("", h.listSpecialties)
	specialties.GET("/:id", h.getSpecialty)
	specialties.PUT("/:id", h.updateSpecialty)
	specialties.DELETE("/:id", h.deleteSpecialty)
}

func (h *Handler) createRole(c *gin.Context) {
	var req types.RoleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badPayload(c)
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusCreated, "The role was created successfully", "role", role)
}

func (h *Handler) listRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if roles == nil {
		roles = []*types.Role{}
	}
	respond(c, http.StatusOK, "The roles were retrieved successfully", "roles", roles)
}

func (h *Handler) getRole(c *gin.Context) {
	role, err := h.service.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The role was retrieved successfully", "role", role)
}

func (h *Handler) deleteRole(c *gin.Context) {
	if err := h.service.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The role was deleted successfully", "", nil)
}

func (h *Handler) createContract(c *gin.Context) {
	var req types.ContractCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badPayload(c)
		return
	}

	contract, err := h.service.CreateContract(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusCreated, "The contract was created successfully", "contract", contract)
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.service.ListContracts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if contracts == nil {
		contracts = []*types.Contract{}
	}
	respond(c, http.StatusOK, "The contracts were retrieved successfully", "contracts", contracts)
}

func (h *Handler) getContract(c *gin.Context) {
	contract, err := h.service.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The contract was retrieved successfully", "contract", contract)
}

func (h *Handler) updateContract(c *gin.Context) {
	var upd types.ContractUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.badPayload(c)
		return
	}

	contract, err := h.service.UpdateContract(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The contract was updated successfully", "contract", contract)
}

func (h *Handler) deleteContract(c *gin.Context) {
	if err := h.service.DeleteContract(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The contract was deleted successfully", "", nil)
}

func (h *Handler) createArea(c *gin.Context) {
	var req types.AreaCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badPayload(c)
		return
	}

	area, err := h.service.CreateArea(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusCreated, "The area was created successfully", "area", area)
}

func (h *Handler) listAreas(c *gin.Context) {
	areas, err := h.service.ListAreas(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if areas == nil {
		areas = []*types.Area{}
	}
	respond(c, http.StatusOK, "The areas were retrieved successfully", "areas", areas)
}

func (h *Handler) getArea(c *gin.Context) {
	area, err := h.service.GetArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The area was retrieved successfully", "area", area)
}

func (h *Handler) updateArea(c *gin.Context) {
	var upd types.AreaUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.badPayload(c)
		return
	}

	area, err := h.service.UpdateArea(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The area was updated successfully", "area", area)
}

func (h *Handler) deleteArea(c *gin.Context) {
	if err := h.service.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The area was deleted successfully", "", nil)
}

func (h *Handler) createSpecialty(c *gin.Context) {
	var req types.SpecialtyCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badPayload(c)
		return
	}

	specialty, err := h.service.CreateSpecialty(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusCreated, "The specialty was created successfully", "specialty", specialty)
}

func (h *Handler) listSpecialties(c *gin.Context) {
	specialties, err := h.service.ListSpecialties(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if specialties == nil {
		specialties = []*types.Specialty{}
	}
	respond(c, http.StatusOK, "The specialties were retrieved successfully", "specialties", specialties)
}

func (h *Handler) getSpecialty(c *gin.Context) {
	specialty, err := h.service.GetSpecialty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The specialty was retrieved successfully", "specialty", specialty)
}

func (h *Handler) updateSpecialty(c *gin.Context) {
	var upd types.SpecialtyUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.badPayload(c)
		return
	}

	specialty, err := h.service.UpdateSpecialty(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The specialty was updated successfully", "specialty", specialty)
}

func (h *Handler) deleteSpecialty(c *gin.Context) {
	if err := h.service.DeleteSpecialty(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "The specialty was deleted successfully", "", nil)
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
