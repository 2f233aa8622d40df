package api

import (
	"net/http" // HTTP status codes

	"milkstore/internal/upload" // Image upload service

	"github.com/gin-gonic/gin" // Gin web framework
)

// UploadImageHandler accepts a multipart image and returns its blob-store URL
func UploadImageHandler(uploader *upload.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image") // Get the uploaded file
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image was uploaded."})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image was uploaded."})
			return
		}
		defer file.Close()
		imageUrl, err := uploader.UploadImage(c.Request.Context(), file, fileHeader.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading the image."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"imageUrl": imageUrl})
	}
}
