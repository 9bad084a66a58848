package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"samwad/backend/internal/config"
	"samwad/backend/internal/models"
)

// SubmitGrievance handles POST /api/grievance: the asynchronous intake
// used when no live call is possible. The record is written durably
// first; only then is the hub told, so the official's refreshed list
// always contains the new entry.
func (h *Handler) SubmitGrievance(c *gin.Context) {
	lang := c.DefaultPostForm("lang", "en")

	name := c.PostForm("name")
	mobile := c.PostForm("mobile")
	message := c.PostForm("message")
	if name == "" || mobile == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": h.Localizer.GetString(lang, "grievance_missing_fields"),
		})
		return
	}

	var fileURLs []string
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["files"]
		if len(files) > config.MaxGrievanceFiles {
			files = files[:config.MaxGrievanceFiles]
		}
		fileURLs, err = h.saveAll(c, files)
		if err != nil {
			log.Error().Err(err).Msg("grievance attachment save failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": h.Localizer.GetString(lang, "grievance_failed"),
			})
			return
		}
	}

	grievance := models.Grievance{
		CitizenName:   name,
		CitizenMobile: mobile,
		Email:         c.PostForm("email"),
		District:      c.DefaultPostForm("district", config.DefaultDistrict),
		Block:         c.DefaultPostForm("block", config.DefaultLocation),
		Village:       c.DefaultPostForm("village", config.DefaultLocation),
		Message:       message,
		FileURLs:      pq.StringArray(fileURLs),
		Timestamp:     time.Now(),
	}
	if len(fileURLs) > 0 {
		grievance.FileURL = fileURLs[0]
	}

	if err := h.Storage.SaveGrievance(&grievance); err != nil {
		log.Error().Err(err).Str("mobile", mobile).Msg("grievance persistence failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": h.Localizer.GetString(lang, "grievance_failed"),
		})
		return
	}

	log.Info().Str("grievance_id", grievance.ID).Str("mobile", mobile).
		Int("files", len(fileURLs)).Msg("grievance submitted")

	select {
	case h.Hub.GrievanceCh <- grievance:
	default:
		log.Warn().Msg("hub grievance channel full, refresh skipped")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.Localizer.GetString(lang, "grievance_submitted"),
	})
}
