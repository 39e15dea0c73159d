package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/digital-parsley/backend/internal/middleware"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/pageza/digital-parsley/backend/internal/service"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(middleware.RequestIDKey),
		}).Error("Request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

func statusFor(err error) (int, string) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error()
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, scraper.ErrInvalidURL):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, scraper.ErrFetch):
		return http.StatusBadGateway, scraper.ErrFetch.Error()
	case errors.Is(err, service.ErrStorageDisabled):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// currentUser returns the caller's Firebase id set by the auth middleware
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
	}
	return userID, ok
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid recipe id"})
		return 0, false
	}
	return id, true
}
