package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadImage is the handler for POST /api/admin/upload/image
// Accepts one multipart file, caps its size, restricts extensions to the
// image allowlist, and writes it under the uploads directory with a
// collision-resistant name.
func (h *Handlers) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if file.Size > h.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds the %d byte limit", h.MaxUploadBytes),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed: " + ext})
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		h.Log.Error("upload dir creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	// Timestamp plus a short random suffix; extension preserved.
	filename := fmt.Sprintf("%d-%s%s", h.now().UnixNano(), uuid.New().String()[:8], ext)
	savePath := filepath.Join(h.UploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		h.Log.Error("upload save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	h.Log.Info("image uploaded", zap.String("filename", filename), zap.Int64("bytes", file.Size))
	c.JSON(http.StatusOK, gin.H{
		"url":      "/uploads/" + filename,
		"filename": filename,
	})
}

// ServeUpload is the handler for GET /uploads/:filename
// The resolved path must stay inside the uploads directory; anything
// that escapes after cleaning is rejected outright.
func (h *Handlers) ServeUpload(c *gin.Context) {
	root, err := filepath.Abs(h.UploadDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve upload directory"})
		return
	}

	requested := filepath.Join(root, c.Param("filename"))
	if !strings.HasPrefix(requested, root+string(os.PathSeparator)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	info, err := os.Stat(requested)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	// http.ServeFile derives the content type from the extension.
	c.File(requested)
}
