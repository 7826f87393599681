package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/interfaces/http/middleware"
	"fudys.backend/internal/interfaces/http/response"
	"fudys.backend/internal/usecases"
)

// SaleHandler handles order recording and sales report endpoints
type SaleHandler struct {
	saleUsecase *usecases.SaleUsecase
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleUsecase *usecases.SaleUsecase) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase}
}

// Record stores an order
// POST /api/sales
func (h *SaleHandler) Record(c *gin.Context) {
	var input entities.RecordSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	// An authenticated buyer is attached automatically.
	if input.UserID == "" {
		if userID, ok := middleware.GetUserID(c); ok {
			input.UserID = userID.String()
		}
	}

	sale, err := h.saleUsecase.Record(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sale)
}

// ListByRestaurant returns a store's orders
// GET /api/sales/restaurant/:restaurantId
func (h *SaleHandler) ListByRestaurant(c *gin.Context) {
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

	sales, err := h.saleUsecase.ListByRestaurant(c.Request.Context(), actor, restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sales)
}

// Stats returns one store's sales report
// GET /api/sales/restaurant/:restaurantId/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *SaleHandler) Stats(c *gin.Context) {
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

	from, to, err := statsWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.saleUsecase.Stats(c.Request.Context(), actor, restaurantID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GlobalStats returns the platform-wide report
// GET /api/sales/stats (super_admin)
func (h *SaleHandler) GlobalStats(c *gin.Context) {
	from, to, err := statsWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.saleUsecase.GlobalStats(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// statsWindow reads the from/to query params, defaulting to the last 30
// days. to is exclusive and moved one day past the given date so the
// whole day counts.
func statsWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domainerrors.BadRequest("invalid from date, use YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domainerrors.BadRequest("invalid to date, use YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, domainerrors.BadRequest("to must be after from")
	}
	return from, to, nil
}
