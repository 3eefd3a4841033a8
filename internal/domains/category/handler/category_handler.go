package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recipes-backend/internal/domains/category"
	"recipes-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// Create - POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cat)
}

// GetAll - GET /v1/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// GetByID - GET /v1/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cat)
}

// Update - PUT /v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req category.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "category updated"})
}

// Delete - DELETE /v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "category deleted"})
}

func renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body", vErrs)
		return
	}

	switch status := category.GetHTTPStatusCode(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
