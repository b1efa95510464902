package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// LocationRepo implements location.LocationRepo on PostgreSQL and Redis
type LocationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *LocationRepo {
	return &LocationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
