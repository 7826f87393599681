package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/interfaces/http/middleware"
	"fudys.backend/internal/interfaces/http/response"
	"fudys.backend/internal/usecases"
)

// SubscriptionHandler handles subscription endpoints
type SubscriptionHandler struct {
	subUsecase *usecases.SubscriptionUsecase
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subUsecase *usecases.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subUsecase: subUsecase}
}

// Activate opens a paid period for a store
// POST /api/subscriptions (super_admin)
func (h *SubscriptionHandler) Activate(c *gin.Context) {
	var input entities.ActivateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sub, err := h.subUsecase.Activate(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

// Status returns a store's current subscription summary
// GET /api/subscriptions/restaurant/:restaurantId
func (h *SubscriptionHandler) Status(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	info, err := h.subUsecase.Status(c.Request.Context(), actor, restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}
