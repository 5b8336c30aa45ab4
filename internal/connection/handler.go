// File: internal/connection/handler.go
package connection

import (
	"context"
	"errors"

	"farway_backend/internal/common"
	"farway_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for connection operations.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new connection handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("ConnectionHandler")}
}

// RegisterRoutes sets up the routes for connection operations. All routes
// require authentication; the pending/accept/reject surface is additionally
// restricted to guide and host accounts.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	connections := router.Group("/connections")
	connections.Use(authMW)
	{
		connections.POST("", h.sendRequest)
		connections.POST("/:id/cancel", h.cancelRequest)

		receiverOnly := connections.Group("")
		receiverOnly.Use(middleware.RoleAuthMiddleware(common.RoleGuide, common.RoleHost))
		{
			receiverOnly.GET("/pending", h.listPending)
			receiverOnly.POST("/:id/accept", h.acceptRequest)
			receiverOnly.POST("/:id/reject", h.rejectRequest)
		}
	}

	trips := router.Group("/trips")
	trips.Use(authMW)
	{
		trips.GET("", h.listTrips)
	}

	tours := router.Group("/tours")
	tours.Use(authMW, middleware.RoleAuthMiddleware(common.RoleGuide, common.RoleHost))
	{
		tours.GET("", h.listTours)
	}
}

func (h *Handler) sendRequest(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(validationErrs)))
		} else {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload: "+err.Error()))
		}
		return
	}

	record, err := h.service.Send(c.Request.Context(), uid, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Connection request sent successfully.", record)
}

func (h *Handler) listPending(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	pending, err := h.service.PendingFor(c.Request.Context(), uid)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Pending connection requests retrieved successfully.", pending)
}

func (h *Handler) acceptRequest(c *gin.Context) {
	h.updateStatus(c, h.service.Accept, "Connection request accepted successfully.")
}

func (h *Handler) rejectRequest(c *gin.Context) {
	h.updateStatus(c, h.service.Reject, "Connection request rejected successfully.")
}

func (h *Handler) cancelRequest(c *gin.Context) {
	h.updateStatus(c, h.service.Cancel, "Connection request canceled successfully.")
}

func (h *Handler) listTrips(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	trips, err := h.service.Trips(c.Request.Context(), uid)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Trips retrieved successfully.", trips)
}

func (h *Handler) listTours(c *gin.Context) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	tours, err := h.service.Tours(c.Request.Context(), uid)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Tours retrieved successfully.", tours)
}

type statusTransition func(ctx context.Context, viewerUID, requestID string) error

func (h *Handler) updateStatus(c *gin.Context, transition statusTransition, successMessage string) {
	uid := middleware.GetUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User ID not found in token."))
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Connection request ID is required."))
		return
	}

	if err := transition(c.Request.Context(), uid, requestID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, successMessage, nil)
}
