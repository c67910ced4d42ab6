package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legalassist_backend/internal/services/dto"
	"legalassist_backend/internal/validator"
	"legalassist_backend/pkg/apperrors"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body into dst and validates it.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if fieldErrs := h.validator.Struct(dst); fieldErrs != nil {
		apperrors.HandleError(c, apperrors.ValidationError(fieldErrs))
		return false
	}
	return true
}

// BindAndValidateQuery binds query parameters into dst and validates it.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	if fieldErrs := h.validator.Struct(dst); fieldErrs != nil {
		apperrors.HandleError(c, apperrors.ValidationError(fieldErrs))
		return false
	}
	return true
}

// CurrentUserID returns the authenticated user's id. The auth middleware
// guarantees it is present on protected routes.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authenticated"))
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authenticated"))
		return uuid.Nil, false
	}
	return id, true
}

// ParseUUIDParam parses a path parameter as a uuid.
func (h *BaseHandler) ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// HandleServiceError maps a service error to an HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// OK writes a 200 with the payload under "data".
func (h *BaseHandler) OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// Created writes a 201 with the payload under "data".
func (h *BaseHandler) Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": payload})
}

// List writes a 200 with items and pagination metadata.
func (h *BaseHandler) List(c *gin.Context, items interface{}, page dto.Pagination, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": dto.ListMeta{Page: page.Page, PerPage: page.PerPage, Total: total},
	})
}
