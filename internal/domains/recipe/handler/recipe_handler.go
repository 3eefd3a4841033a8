package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recipes-backend/internal/domains/recipe/model"
	"recipes-backend/internal/domains/recipe/service"
	"recipes-backend/internal/shared/response"
)

type RecipeHandler struct {
	service service.RecipeService
}

func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

// Create - POST /v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req model.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// GetAll - GET /v1/recipes
func (h *RecipeHandler) GetAll(c *gin.Context) {
	recipes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, recipes)
}

// GetByID - GET /v1/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	recipe, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, recipe)
}

// GetByCategory - GET /v1/recipes/category/:categoryId
func (h *RecipeHandler) GetByCategory(c *gin.Context) {
	categoryID, err := parseID(c.Param("categoryId"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	recipes, err := h.service.GetByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, recipes)
}

// Update - PUT /v1/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	var req model.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "recipe updated"})
}

// Delete - DELETE /v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "recipe deleted"})
}

// renderError maps domain errors onto the response envelope. Server-side
// failures are reported without internal detail.
func (h *RecipeHandler) renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body", vErrs)
		return
	}

	status := model.GetHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		response.InternalServerError(c, "internal server error")
		return
	}

	response.NotFound(c, err.Error())
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
