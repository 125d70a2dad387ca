package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/serializer"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/service"
	"github.com/gin-gonic/gin"
)

// writeError maps a service error onto a status code and the error envelope.
func writeError(c *gin.Context, err error) {
	var gw *service.GatewayError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(err.Error(), nil))
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
	case errors.As(err, &gw):
		if gw.FallbackTried {
			c.JSON(http.StatusInternalServerError, serializer.UpstreamErr(http.StatusInternalServerError, "analysis failed", gw.Detail))
			return
		}
		c.JSON(http.StatusBadGateway, serializer.UpstreamErr(http.StatusBadGateway, "analysis provider failed", gw.Detail))
	case errors.Is(err, service.ErrStore):
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, serializer.InternalErr(err))
	}
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+name, err))
		return 0, false
	}
	return uint(id), true
}

// orEmpty keeps list responses as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
