package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/souqin/souqin/internal/pkg/database"
	"github.com/souqin/souqin/internal/pkg/models"
)

type ProfileRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProfileRepo creates a new profile repository instance
func NewProfileRepo(cfg *models.Config, db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{
		cfg: cfg,
		db:  db,
	}
}

type SessionRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewSessionRepo creates a new verification session repository instance
func NewSessionRepo(cfg *models.Config, redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
