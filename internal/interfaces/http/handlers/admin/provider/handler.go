// Package provider serves the admin endpoints that manage upstream API providers.
package provider

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/application/provider/usecases"
	domain "github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
	"github.com/smmpanel/panel/internal/shared/utils"
)

// Handler handles /api/admin/providers.
type Handler struct {
	listUC    listProvidersUseCase
	createUC  createProviderUseCase
	updateUC  updateProviderUseCase
	deleteUC  deleteProviderUseCase
	restoreUC restoreProviderUseCase
	logger    logger.Interface
}

// NewHandler creates a provider handler over the five lifecycle use cases.
func NewHandler(
	listUC listProvidersUseCase,
	createUC createProviderUseCase,
	updateUC updateProviderUseCase,
	deleteUC deleteProviderUseCase,
	restoreUC restoreProviderUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:    listUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		restoreUC: restoreUC,
		logger:    logger,
	}
}

// CreateProviderRequest is the body of POST /api/admin/providers.
type CreateProviderRequest struct {
	Name       string            `json:"name" validate:"required,max=255"`
	APIKey     string            `json:"apiKey" validate:"required,max=255"`
	APIURL     string            `json:"apiUrl" validate:"omitempty,max=500"`
	HTTPMethod string            `json:"httpMethod" validate:"omitempty,httpmethod"`
	APIConfig  *dto.APIConfigDTO `json:"apiConfig"`
}

// UpdateProviderRequest is a partial update; absent fields are left as stored.
type UpdateProviderRequest struct {
	ID         uint              `json:"id" validate:"required,gt=0"`
	Status     *string           `json:"status" validate:"omitempty,oneof=active inactive"`
	Name       *string           `json:"name" validate:"omitempty,max=255"`
	APIKey     *string           `json:"apiKey" validate:"omitempty,max=255"`
	APIURL     *string           `json:"apiUrl" validate:"omitempty,max=500"`
	HTTPMethod *string           `json:"httpMethod" validate:"omitempty,httpmethod"`
	APIConfig  *dto.APIConfigDTO `json:"apiConfig"`
}

// List handles GET /api/admin/providers?filter=
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProvidersQuery{
		Filter: c.Query("filter"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /api/admin/providers
func (h *Handler) Create(c *gin.Context) {
	var req CreateProviderRequest
	if !h.bind(c, &req, "create provider") {
		return
	}

	cmd := usecases.CreateProviderCommand{
		Name:       req.Name,
		APIKey:     req.APIKey,
		APIURL:     req.APIURL,
		HTTPMethod: req.HTTPMethod,
	}
	if req.APIConfig != nil {
		cmd.APIConfig = req.APIConfig.ToDomain()
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"provider": result}, "Provider created successfully")
}

// Update handles PUT /api/admin/providers, including activation and deactivation.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProviderRequest
	if !h.bind(c, &req, "update provider") {
		return
	}

	cmd := usecases.UpdateProviderCommand{
		ID:         req.ID,
		Status:     req.Status,
		Name:       req.Name,
		APIKey:     req.APIKey,
		APIURL:     req.APIURL,
		HTTPMethod: req.HTTPMethod,
	}
	if req.APIConfig != nil {
		cfg := req.APIConfig.ToDomain()
		cmd.APIConfig = &cfg
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Provider updated successfully", gin.H{"provider": result})
}

// Restore handles PATCH /api/admin/providers?id=&action=restore
func (h *Handler) Restore(c *gin.Context) {
	id, err := parseProviderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if action := c.Query("action"); action != "restore" {
		utils.ErrorResponseWithError(c, errors.NewValidationError(fmt.Sprintf("unsupported action %q", action)))
		return
	}

	result, err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreProviderCommand{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := fmt.Sprintf("Provider restored with %d services", result.ServicesRestored)
	utils.SuccessResponse(c, http.StatusOK, msg, nil)
}

// Delete handles DELETE /api/admin/providers?id=&type=trash|permanent
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseProviderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	mode, err := domain.ParseDeleteMode(c.Query("type"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteProviderCommand{ID: id, Mode: mode})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, deleteMessage(result), nil)
}

// bind decodes the JSON body and validates it; on failure the response is already written.
func (h *Handler) bind(c *gin.Context, req interface{}, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid request body for "+op, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}

func parseProviderID(c *gin.Context) (uint, error) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		return 0, errors.NewValidationError("Provider ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid provider ID")
	}
	return uint(id), nil
}

func deleteMessage(r *dto.DeleteProviderResult) string {
	removed := len(r.Categories.Removed) + len(r.ServiceTypes.Removed)
	if r.Mode == domain.DeleteModeTrash.String() {
		return fmt.Sprintf("Provider moved to trash with %d services; %d empty categories and service types trashed",
			r.ServicesAffected, removed)
	}
	return fmt.Sprintf("Provider permanently deleted with %d services; %d empty categories and service types removed",
		r.ServicesAffected, removed)
}
