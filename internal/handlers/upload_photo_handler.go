package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 10 MB is plenty for a compressed journal photo
const maxPhotoBytes = 10 << 20

// UploadPhoto stores a photo attachment and returns its public URL. The
// client puts the URL on the entry it creates next
func (h *EntryHandler) UploadPhoto(c *gin.Context) {
	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo exceeds maximum size"})
		return
	}

	entryID := c.PostForm("entryId")
	if entryID == "" {
		entryID = uuid.New().String()
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logError(c, err, "Failed to open uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		h.logError(c, err, "Failed to read uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		return
	}

	url, err := h.photos.Upload(data, userUID, entryID)
	if err != nil {
		h.logError(c, err, "Failed to store photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "entryId": entryID})
}
