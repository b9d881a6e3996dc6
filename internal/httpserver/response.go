package httpserver

import (
	"errors"
	"net/http"

	"orderahead/internal/domain"
	cartsvc "orderahead/internal/service/cart"
	"github.com/gin-gonic/gin"
)

// serviceResponse is the envelope every endpoint renders.
type serviceResponse struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	ResponseObject interface{} `json:"responseObject"`
	StatusCode     int         `json:"statusCode"`
}

func respondOK(c *gin.Context, status int, message string, obj interface{}) {
	c.JSON(status, serviceResponse{
		Success:        true,
		Message:        message,
		ResponseObject: obj,
		StatusCode:     status,
	})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, serviceResponse{
		Success:        false,
		Message:        message,
		ResponseObject: nil,
		StatusCode:     status,
	})
}

// respondError maps domain and validation failures onto stable statuses:
// not-found 404, rejected input 400, everything else (store failures,
// exhausted reconciliation retries) 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *cartsvc.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondFail(c, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &vErr):
		respondFail(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrConflict):
		respondFail(c, http.StatusInternalServerError, "could not apply update, please retry")
	default:
		respondFail(c, http.StatusInternalServerError, "an unexpected error occurred")
	}
}
