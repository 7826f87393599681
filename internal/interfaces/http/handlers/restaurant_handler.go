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

// RestaurantHandler handles store registration and storefront endpoints
type RestaurantHandler struct {
	restaurantUsecase *usecases.RestaurantUsecase
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantUsecase *usecases.RestaurantUsecase) *RestaurantHandler {
	return &RestaurantHandler{restaurantUsecase: restaurantUsecase}
}

// Create registers a store for the caller
// POST /api/restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.CreateRestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	restaurant, err := h.restaurantUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, restaurant)
}

// List lists every store
// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, restaurants)
}

// GetStorefront renders the public store page
// GET /api/restaurants/url/:customUrl
func (h *RestaurantHandler) GetStorefront(c *gin.Context) {
	storefront, err := h.restaurantUsecase.GetStorefront(c.Request.Context(), c.Param("customUrl"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, storefront)
}

// GetConfig returns the owner dashboard view
// GET /api/restaurants/:id/config
func (h *RestaurantHandler) GetConfig(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	config, err := h.restaurantUsecase.GetConfig(c.Request.Context(), actor, restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, config)
}

// UpdateConfig applies a partial store-config update
// PUT /api/restaurants/:id/config
func (h *RestaurantHandler) UpdateConfig(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	var input entities.RestaurantConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	restaurant, err := h.restaurantUsecase.UpdateConfig(c.Request.Context(), actor, restaurantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, restaurant)
}
