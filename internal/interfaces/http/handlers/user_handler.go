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

// UserHandler handles profile and account administration endpoints
type UserHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(accountUsecase *usecases.AccountUsecase) *UserHandler {
	return &UserHandler{accountUsecase: accountUsecase}
}

// GetProfile returns the caller's account
// GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	user, err := h.accountUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateProfile edits the caller's account
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.accountUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteAccount removes the caller's account and everything owned by it.
// The current password travels in the body and is re-verified first.
// DELETE /api/users/me
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "password is required")
		return
	}

	if err := h.accountUsecase.DeleteAccount(c.Request.Context(), userID, input.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "account deleted"})
}

// GetMyRestaurant returns the store owned by the caller
// GET /api/users/me/restaurant
func (h *UserHandler) GetMyRestaurant(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	restaurant, err := h.accountUsecase.GetMyRestaurant(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, restaurant)
}

// ListUsers lists every account
// GET /api/users (super_admin)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.accountUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

type changeRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// ChangeRole sets another user's role
// PUT /api/users/:id/role (super_admin)
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input changeRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.accountUsecase.ChangeRole(c.Request.Context(), userID, input.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// AdminDeleteUser removes any account with its cascade
// DELETE /api/users/:id (super_admin)
func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.accountUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "account deleted"})
}
