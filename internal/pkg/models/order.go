package models

import (
	"time"

	"github.com/google/uuid"
)

// SalesOrderStatus is the state of a marketplace order
type SalesOrderStatus string

const (
	SalesOrderPending    SalesOrderStatus = "pending"
	SalesOrderConfirmed  SalesOrderStatus = "confirmed"
	SalesOrderProcessing SalesOrderStatus = "processing"
	SalesOrderDispatched SalesOrderStatus = "dispatched"
	SalesOrderDelivered  SalesOrderStatus = "delivered"
	SalesOrderCancelled  SalesOrderStatus = "cancelled"
)

// Dispatchable reports whether an order in status s may be handed to a rider
func (s SalesOrderStatus) Dispatchable() bool {
	return s == SalesOrderConfirmed || s == SalesOrderProcessing
}

// PaymentMethodCOD marks orders paid in cash at the door
const PaymentMethodCOD = "cod"

// SalesOrder is the subset of a marketplace order needed for dispatch
type SalesOrder struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	OrderNumber     string           `json:"orderNumber" db:"order_number"`
	Status          SalesOrderStatus `json:"status" db:"status"`
	PaymentMethod   string           `json:"paymentMethod" db:"payment_method"`
	TotalAmount     int64            `json:"totalAmount" db:"total_amount"`
	Items           TaskItems        `json:"items" db:"items"`
	ShippingAddress Address          `json:"shippingAddress" db:"shipping_address"`
	AssignedRiderID *uuid.UUID       `json:"assignedRider,omitempty" db:"assigned_rider_id"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// CODAmount is the cash the rider must collect for this order
func (o *SalesOrder) CODAmount() int64 {
	if o.PaymentMethod == PaymentMethodCOD {
		return o.TotalAmount
	}
	return 0
}

// AssignOrderRequest binds a sales order to a rider
type AssignOrderRequest struct {
	OrderID uuid.UUID `json:"orderId"`
	RiderID uuid.UUID `json:"riderId"`
}
