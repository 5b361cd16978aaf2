// Package controllers wires HTTP handlers to the service layer. Entity ids
// travel as query parameters on reads and deletes, JSON bodies carry
// everything else.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusreg/studentregistration/internal/app/models/dto"
)

// parseIDQuery reads a non-negative integer id from the named query
// parameter. On failure it writes a 400 response and returns ok=false.
func parseIDQuery(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithField(name).WithDetails(name + " must be a non-negative number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
