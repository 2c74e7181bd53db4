package handler

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"gorm.io/gorm"

	"restaurant_manager/config"
)

// Handler carries the shared dependencies for every HTTP handler. Cld is
// nil when no upload credentials are configured.
type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
	Cld *cloudinary.Cloudinary
}

func New(db *gorm.DB, cfg *config.Config, cld *cloudinary.Cloudinary) *Handler {
	return &Handler{DB: db, Cfg: cfg, Cld: cld}
}
