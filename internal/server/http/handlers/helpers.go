package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
	"github.com/polkiloo/gpsolutions/internal/server/http/middleware"
)

// CurrentSessionID extracts the browser session identifier from context.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDContextKey)
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// writeError maps domain errors onto HTTP responses.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *domainErrors.ValidationError
	var limited payment.TooManyRequestsError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusUnprocessableEntity, verr.Message)
	case errors.Is(err, domainErrors.ErrInvalidWordCount), errors.Is(err, domainErrors.ErrInvalidUrgency):
		respondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "Already exists")
	case errors.Is(err, domainErrors.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, "Cart is empty")
	case errors.As(err, &limited):
		c.Header("Retry-After", strconv.Itoa(int(limited.RetryAfter/time.Second)))
		respondError(c, http.StatusServiceUnavailable, "Payment provider busy, try again later")
	case errors.Is(err, domainErrors.ErrPaymentFailed):
		respondError(c, http.StatusBadGateway, "Payment provider error")
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
