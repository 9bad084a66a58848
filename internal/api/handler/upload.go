package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Upload handles POST /api/upload: a single multipart file saved to
// local disk, answered with the URL the client should reference it by.
// The rest of the system treats that URL as opaque.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	name := uniqueName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.Cfg.UploadDir, name)); err != nil {
		log.Error().Err(err).Msg("upload save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":          "/uploads/" + name,
		"filename":     name,
		"originalName": file.Filename,
	})
}

// saveAll stores a batch of grievance attachments and returns their URLs.
func (h *Handler) saveAll(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		name := uniqueName(f.Filename)
		if err := c.SaveUploadedFile(f, filepath.Join(h.Cfg.UploadDir, name)); err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/"+name)
	}
	return urls, nil
}

// uniqueName prefixes the original name with a timestamp so concurrent
// uploads of the same file never collide.
func uniqueName(original string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(original))
}
