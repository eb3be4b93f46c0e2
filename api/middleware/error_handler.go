// api/middleware/error_handler.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/foxonlabs/foxon-backend/internal/auth"
	"github.com/foxonlabs/foxon-backend/internal/core"
	"github.com/foxonlabs/foxon-backend/internal/genai"
	"github.com/foxonlabs/foxon-backend/internal/logger"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

var (
	customLog = logger.NewLogger()
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Every error body has the flat {"error": message} shape.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Only the last attached error drives the response.
		err := c.Errors.Last().Err
		customLog.Warnf("[ErrorHandler] Detected error: %v | Type: %T", err, err)

		var statusCode int
		var userMessage string

		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			statusCode = http.StatusUnauthorized
			userMessage = err.Error()
		case errors.Is(err, auth.ErrTokenMalformed) ||
			errors.Is(err, auth.ErrTokenInvalid) ||
			errors.Is(err, auth.ErrTokenClaimsInvalid) ||
			errors.Is(err, auth.ErrUnexpectedSigningMethod):
			statusCode = http.StatusUnauthorized
			userMessage = "sessão inválida"
		case errors.Is(err, core.ErrModelInvalid) ||
			errors.Is(err, core.ErrClientInvalid) ||
			errors.Is(err, core.ErrSubmissionInvalid):
			statusCode = http.StatusBadRequest
			userMessage = err.Error()
		case errors.Is(err, storage.ErrModelNotFound) ||
			errors.Is(err, storage.ErrClientNotFound):
			statusCode = http.StatusNotFound
			userMessage = err.Error()
		case genai.IsGenerationError(err):
			statusCode = http.StatusBadGateway
			userMessage = err.Error()
		default:
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				statusCode = http.StatusBadRequest
				userMessage = "Validation failed. Please check your input."
				for _, fe := range validationErrs {
					customLog.Warnf("Validation Error: Field %s failed on %s", fe.Field(), fe.Tag())
				}
				break
			}
			// Persistence failures and anything unexpected surface as the
			// flat 500 of the original facade.
			statusCode = http.StatusInternalServerError
			userMessage = err.Error()
		}

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(statusCode, gin.H{"error": userMessage})
		} else {
			customLog.Warnf("[ErrorHandler] Warning: Response already written before handling error.")
		}
	}
}
