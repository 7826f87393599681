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

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// ListByRestaurant returns a store's catalog
// GET /api/products/restaurant/:restaurantId
func (h *ProductHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid restaurant id"))
		return
	}

	products, err := h.productUsecase.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// Create adds a product
// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// Update edits a product
// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Update(c.Request.Context(), actor, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Delete removes a product
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.productUsecase.Delete(c.Request.Context(), actor, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "product deleted"})
}

// Reorder applies new display ranks to a store's catalog
// PUT /api/products/restaurant/:restaurantId/reorder
func (h *ProductHandler) Reorder(c *gin.Context) {
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

	var input entities.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	products, err := h.productUsecase.Reorder(c.Request.Context(), actor, restaurantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}
