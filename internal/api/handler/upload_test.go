package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samwad/backend/internal/config"
)

func TestUpload_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{Cfg: &config.Config{UploadDir: t.TempDir()}}
	r := gin.New()
	r.POST("/api/upload", h.Upload)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "report.pdf")
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "report.pdf", resp["originalName"])
	assert.Equal(t, "/uploads/"+resp["filename"], resp["url"])

	data, err := os.ReadFile(filepath.Join(h.Cfg.UploadDir, resp["filename"]))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))
}

func TestUpload_NoFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{Cfg: &config.Config{UploadDir: t.TempDir()}}
	r := gin.New()
	r.POST("/api/upload", h.Upload)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUniqueName_KeepsBaseName(t *testing.T) {
	a := uniqueName("../../etc/passwd")
	assert.False(t, strings.Contains(a, "/"), "path components stripped")
	assert.True(t, strings.HasSuffix(a, "-passwd"))

	assert.NotEqual(t, uniqueName("x.txt"), uniqueName("x.txt"))
}
