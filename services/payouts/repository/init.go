package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// PayoutRepo implements payouts.PayoutRepo on PostgreSQL
type PayoutRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(cfg *models.Config, db *sqlx.DB) *PayoutRepo {
	return &PayoutRepo{
		cfg: cfg,
		db:  db,
	}
}
