package gateway

import (
	"context"
	"io"
)

// ObjectStore uploads objects and returns their public URL
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// DeliveryGW implements deliveries.DeliveryGW
type DeliveryGW struct {
	store ObjectStore
}

// NewDeliveryGW creates the delivery gateway
func NewDeliveryGW(store ObjectStore) *DeliveryGW {
	return &DeliveryGW{store: store}
}

// StoreProof uploads a proof-of-delivery image
func (g *DeliveryGW) StoreProof(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	return g.store.Put(ctx, key, contentType, body, size)
}
