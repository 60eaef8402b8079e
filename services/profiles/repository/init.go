package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/souqin/souqin/internal/pkg/models"
)

type MirrorRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMirrorRepo creates a new directory mirror repository instance
func NewMirrorRepo(cfg *models.Config, db *sqlx.DB) *MirrorRepo {
	return &MirrorRepo{
		cfg: cfg,
		db:  db,
	}
}
