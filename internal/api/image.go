package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishare/backend/internal/service"
)

// maxImageSize caps recipe image uploads at 5 MB.
const maxImageSize = 5 << 20

// ImageHandler uploads recipe images to object storage. Only mounted
// when an S3 bucket is configured.
type ImageHandler struct {
	images *service.ImageService
	logger *zap.SugaredLogger
}

func NewImageHandler(images *service.ImageService, logger *zap.SugaredLogger) *ImageHandler {
	return &ImageHandler{images: images, logger: logger}
}

// Upload accepts a multipart "image" file and returns its public URL for
// use as a recipe's image field.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 5MB limit"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !service.SupportedImageType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), data, contentType)
	if err != nil {
		h.logger.Errorw("image upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
