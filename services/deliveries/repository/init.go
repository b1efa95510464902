package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// DeliveryRepo implements deliveries.DeliveryRepo on PostgreSQL
type DeliveryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDeliveryRepository creates a new delivery repository
func NewDeliveryRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *DeliveryRepo {
	return &DeliveryRepo{
		cfg: cfg,
		db:  db,
	}
}
