package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Offer is spare transport capacity advertised by a carrier ("tolerance").
type Offer struct {
	ID                  int64
	CarrierID           int64
	CarrierName         string
	Origin              string
	Destination         string
	DepartureTime       time.Time
	ArrivalTime         time.Time
	ContainerType       string
	ContainerCount      int
	Price               decimal.Decimal
	IsEmptyRun          bool
	SpecialRequirements string
	Status              OfferStatus
	CreatedAt           time.Time
}

// DeliveryRequest is a carrier's posted need for transport.
type DeliveryRequest struct {
	ID                  int64
	CarrierID           int64
	CarrierName         string
	Origin              string
	Destination         string
	PickupTime          time.Time
	DeliveryTime        time.Time
	ContainerType       string
	ContainerCount      int
	Budget              decimal.Decimal
	CargoDetails        json.RawMessage
	SpecialRequirements string
	Status              RequestStatus
	CreatedAt           time.Time
}
