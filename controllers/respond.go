package controllers

import (
	"errors"

	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicate), errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
