package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusreg/studentregistration/internal/app/models/dto"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
)

// HandleAPIError translates domain errors into transport responses.
// Every controller funnels service errors through here so the mapping
// from error kind to status code lives in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	// Validation failures carry a field list
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(verr.Violations)))
		return
	}

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEnrollmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").
				WithField("email")))
	case errors.Is(err, apperrors.ErrDuplicateEnrollment):
		c.JSON(http.StatusConflict, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student is already enrolled in this course")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
