package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipes-backend/internal/domains/image"
	"recipes-backend/internal/shared/response"
	"recipes-backend/pkg/logger"
)

type ImageHandler struct {
	service image.Service
}

func NewImageHandler(svc image.Service) *ImageHandler {
	return &ImageHandler{service: svc}
}

// Upload - POST /v1/images (multipart, field "image")
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "failed to read image file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, image.ErrUnsupportedType) || errors.Is(err, image.ErrTooLarge) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("image upload failed", err)
		response.InternalServerError(c, "failed to upload image")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
