package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recipes-backend/internal/domains/tag"
	"recipes-backend/internal/shared/response"
)

type TagHandler struct {
	service tag.TagService
}

func NewTagHandler(svc tag.TagService) *TagHandler {
	return &TagHandler{service: svc}
}

// Create - POST /v1/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req tag.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

// GetAll - GET /v1/tags
func (h *TagHandler) GetAll(c *gin.Context) {
	tags, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tags)
}

// GetByID - GET /v1/tags/:id
func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// Update - PUT /v1/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	var req tag.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "tag updated"})
}

// Delete - DELETE /v1/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "tag deleted"})
}

func renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body", vErrs)
		return
	}

	switch status := tag.GetHTTPStatusCode(err); status {
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
