// File: internal/user/handler.go
package user

import (
	"errors"

	"farway_backend/internal/common"
	"farway_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for user directory operations. All of
// them require an authenticated caller.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := router.Group("/users", authMW)
	{
		userGroup.GET("/me", h.getMe)
		userGroup.PUT("/me", h.updateMe)
		userGroup.POST("/me/photo", h.uploadPhoto)
		userGroup.GET("", h.listByRole)
		userGroup.GET("/:uid", h.getByUID)
	}
}

func (h *Handler) getMe(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User identifier missing."))
		return
	}
	profile, err := h.service.GetProfile(c.Request.Context(), uid)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Profile retrieved successfully.", ToProfileResponse(profile))
}

func (h *Handler) updateMe(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User identifier missing."))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Profile edit: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), uid, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Profile updated successfully.", ToProfileResponse(profile))
}

func (h *Handler) uploadPhoto(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User identifier missing."))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("An 'image' file field is required."))
		return
	}

	profile, err := h.service.UploadProfileImage(c.Request.Context(), uid, fileHeader)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Profile image updated successfully.", ToProfileResponse(profile))
}

func (h *Handler) listByRole(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'role' query parameter is required."))
		return
	}
	profiles, err := h.service.ListByRole(c.Request.Context(), role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, ToProfileResponse(&profiles[i]))
	}
	common.RespondOK(c, "Profiles retrieved successfully.", responses)
}

func (h *Handler) getByUID(c *gin.Context) {
	uid := c.Param("uid")
	profile, err := h.service.GetProfile(c.Request.Context(), uid)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Profile retrieved successfully.", ToProfileResponse(profile))
}
