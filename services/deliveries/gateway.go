package deliveries

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bikeparts/services/deliveries DeliveryGW

// DeliveryGW defines the external collaborators of the delivery workflow
type DeliveryGW interface {
	// Object storage
	StoreProof(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
