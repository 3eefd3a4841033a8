package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipes-backend/internal/domains/ingredient"
	"recipes-backend/internal/shared/response"
	"recipes-backend/pkg/logger"
)

type IngredientHandler struct {
	service ingredient.Service
}

func NewIngredientHandler(svc ingredient.Service) *IngredientHandler {
	return &IngredientHandler{service: svc}
}

// GetAll - GET /v1/ingredients
func (h *IngredientHandler) GetAll(c *gin.Context) {
	ingredients, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("list ingredients failed", err)
		response.InternalServerError(c, "failed to list ingredients")
		return
	}

	response.Success(c, http.StatusOK, ingredients)
}
