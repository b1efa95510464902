package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// RiderRepo implements riders.RiderRepo
type RiderRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRiderRepository creates a new rider repository
func NewRiderRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RiderRepo {
	return &RiderRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
