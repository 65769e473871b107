package controllers

import (
	"errors"
	"net/http"

	"ShopOrder/services"
	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
)

// fail attaches err to the context with the status its kind maps to.
func fail(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrMissingSignature):
		status, message = http.StatusUnauthorized, services.ErrMissingSignature.Error()
	case errors.Is(err, services.ErrInvalidSignature):
		status, message = http.StatusUnauthorized, services.ErrInvalidSignature.Error()
	}
	_ = c.Error(utils.WrapError(status, message, err))
	c.Abort()
}

func badRequest(c *gin.Context, message string, err error) {
	_ = c.Error(utils.WrapError(http.StatusBadRequest, message, err))
	c.Abort()
}
