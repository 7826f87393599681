package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "fudys.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status;
// bare sentinels map onto the usual codes and anything unrecognized is a
// 500 with the detail kept out of the body.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrConflict),
		errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrResetTokenInvalid),
		errors.Is(err, domainerrors.ErrResetTokenUsed),
		errors.Is(err, domainerrors.ErrResetTokenExpired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest is the shorthand for binding failures
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
