package models

import (
	"encoding/json"
	"time"
)

// WSMessage is the envelope of every socket frame in both directions
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the data of an error frame
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RiderOrderEvent is relayed from a rider socket to admins
type RiderOrderEvent struct {
	RiderID   string          `json:"riderId"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}
