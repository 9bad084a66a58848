package handler

import (
	"samwad/backend/internal/config"
	"samwad/backend/internal/hub"
	"samwad/backend/internal/localization"
	"samwad/backend/internal/storage"
)

// Handler bundles the HTTP surface's dependencies.
type Handler struct {
	Hub       *hub.Hub
	Storage   storage.Storage
	Cfg       *config.Config
	Localizer *localization.Localizer
}

func NewHandler(h *hub.Hub, s storage.Storage, cfg *config.Config, l *localization.Localizer) *Handler {
	return &Handler{Hub: h, Storage: s, Cfg: cfg, Localizer: l}
}
