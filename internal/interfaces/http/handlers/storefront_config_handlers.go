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

// OpeningHourHandler handles schedule endpoints
type OpeningHourHandler struct {
	hourUsecase *usecases.OpeningHourUsecase
}

// NewOpeningHourHandler creates a new opening hour handler
func NewOpeningHourHandler(hourUsecase *usecases.OpeningHourUsecase) *OpeningHourHandler {
	return &OpeningHourHandler{hourUsecase: hourUsecase}
}

// List returns a store's schedule
// GET /api/opening-hours/:restaurantId
func (h *OpeningHourHandler) List(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	hours, err := h.hourUsecase.List(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, hours)
}

// Replace swaps a store's whole schedule
// PUT /api/opening-hours/:restaurantId
func (h *OpeningHourHandler) Replace(c *gin.Context) {
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

	var input entities.ReconcileOpeningHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	hours, err := h.hourUsecase.Replace(c.Request.Context(), actor, restaurantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, hours)
}

// PaymentMethodHandler handles payment method endpoints
type PaymentMethodHandler struct {
	methodUsecase *usecases.PaymentMethodUsecase
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(methodUsecase *usecases.PaymentMethodUsecase) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodUsecase: methodUsecase}
}

// List returns a store's payment methods
// GET /api/payment-methods/:restaurantId
func (h *PaymentMethodHandler) List(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	methods, err := h.methodUsecase.List(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, methods)
}

// Replace swaps a store's payment method set
// PUT /api/payment-methods/:restaurantId
func (h *PaymentMethodHandler) Replace(c *gin.Context) {
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

	var input entities.ReconcilePaymentMethodsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	methods, err := h.methodUsecase.Replace(c.Request.Context(), actor, restaurantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, methods)
}

// DeliveryOptionHandler handles delivery option endpoints
type DeliveryOptionHandler struct {
	optionUsecase *usecases.DeliveryOptionUsecase
}

// NewDeliveryOptionHandler creates a new delivery option handler
func NewDeliveryOptionHandler(optionUsecase *usecases.DeliveryOptionUsecase) *DeliveryOptionHandler {
	return &DeliveryOptionHandler{optionUsecase: optionUsecase}
}

// List returns a store's delivery options
// GET /api/delivery-options/:restaurantId
func (h *DeliveryOptionHandler) List(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	options, err := h.optionUsecase.List(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, options)
}

// Reconcile upserts a store's delivery options
// PUT /api/delivery-options/:restaurantId
func (h *DeliveryOptionHandler) Reconcile(c *gin.Context) {
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

	var input entities.ReconcileDeliveryOptionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	options, err := h.optionUsecase.Reconcile(c.Request.Context(), actor, restaurantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, options)
}
