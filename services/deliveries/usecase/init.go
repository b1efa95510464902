package usecase

import (
	"time"

	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/pkg/otp"
	"github.com/piresc/bikeparts/services/deliveries"
)

// DeliveryUC implements the delivery use case interface
type DeliveryUC struct {
	cfg          *models.Config
	deliveryRepo deliveries.DeliveryRepo
	deliveryGW   deliveries.DeliveryGW
	otp          *otp.Generator
	now          func() time.Time
}

// NewDeliveryUC creates a new delivery use case
func NewDeliveryUC(
	cfg *models.Config,
	deliveryRepo deliveries.DeliveryRepo,
	deliveryGW deliveries.DeliveryGW,
) *DeliveryUC {
	return &DeliveryUC{
		cfg:          cfg,
		deliveryRepo: deliveryRepo,
		deliveryGW:   deliveryGW,
		otp:          otp.NewGenerator(),
		now:          models.Now,
	}
}
