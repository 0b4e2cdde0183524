package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freight-matching-platform/internal/domain"
)

// wireTime accepts RFC 3339 and the zone-less "datetime-local" layouts, the
// latter read as UTC.
type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported time %q", s)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin carrier driver"`
	Phone    string `json:"phone"`

	CompanyName     string `json:"company_name" validate:"required_if=Role carrier"`
	BusinessLicense string `json:"business_license"`
	Address         string `json:"address"`

	CarrierID     int64  `json:"carrier_id" validate:"required_if=Role driver"`
	LicenseNumber string `json:"license_number" validate:"required_if=Role driver"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
}

type offerRequest struct {
	Origin              string          `json:"origin" validate:"required"`
	Destination         string          `json:"destination" validate:"required"`
	DepartureTime       wireTime        `json:"departure_time" validate:"required"`
	ArrivalTime         wireTime        `json:"arrival_time" validate:"required"`
	ContainerType       string          `json:"container_type" validate:"required"`
	ContainerCount      int             `json:"container_count" validate:"gte=0"`
	Price               decimal.Decimal `json:"price"`
	IsEmptyRun          bool            `json:"is_empty_run"`
	SpecialRequirements string          `json:"special_requirements"`
}

type deliveryRequestRequest struct {
	Origin              string          `json:"origin" validate:"required"`
	Destination         string          `json:"destination" validate:"required"`
	PickupTime          wireTime        `json:"pickup_time" validate:"required"`
	DeliveryTime        wireTime        `json:"delivery_time" validate:"required"`
	ContainerType       string          `json:"container_type" validate:"required"`
	ContainerCount      int             `json:"container_count" validate:"gte=0"`
	Budget              decimal.Decimal `json:"budget"`
	CargoDetails        json.RawMessage `json:"cargo_details"`
	SpecialRequirements string          `json:"special_requirements"`
}

// transitionRequest is the optional body of accept, start and complete, and
// the required body of reject. ExpectedStatus turns the call into a
// compare-and-swap on the status the caller last saw.
type transitionRequest struct {
	Reason         string              `json:"reason"`
	ExpectedStatus *domain.MatchStatus `json:"expected_status,omitempty"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	MatchID   *int64   `json:"match_id,omitempty" validate:"omitempty,gt=0"`
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
}

type carrierRequest struct {
	CompanyName     string `json:"company_name" validate:"required"`
	BusinessLicense string `json:"business_license"`
	ContactPerson   string `json:"contact_person"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email" validate:"omitempty,email"`
}

type driverRequest struct {
	CarrierID     int64  `json:"carrier_id" validate:"required,gt=0"`
	Name          string `json:"name" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	Status        string `json:"status" validate:"omitempty,oneof=available busy offline"`
}

type vehicleRequest struct {
	CarrierID     int64  `json:"carrier_id" validate:"required,gt=0"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=available busy maintenance"`
	Description   string `json:"description"`
}

type userDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	RoleBadge string    `json:"role_badge"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CarrierID int64     `json:"carrier_id,omitempty"`
	DriverID  int64     `json:"driver_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type offerDTO struct {
	ID                  int64           `json:"id"`
	CarrierID           int64           `json:"carrier_id"`
	CarrierName         string          `json:"carrier_name,omitempty"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	DepartureTime       time.Time       `json:"departure_time"`
	ArrivalTime         time.Time       `json:"arrival_time"`
	ContainerType       string          `json:"container_type"`
	ContainerCount      int             `json:"container_count"`
	Price               decimal.Decimal `json:"price"`
	Currency            string          `json:"currency"`
	IsEmptyRun          bool            `json:"is_empty_run"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
	Status              string          `json:"status"`
	StatusLabel         string          `json:"status_label"`
	StatusBadge         string          `json:"status_badge"`
	CreatedAt           time.Time       `json:"created_at"`
}

type deliveryRequestDTO struct {
	ID                  int64           `json:"id"`
	CarrierID           int64           `json:"carrier_id"`
	CarrierName         string          `json:"carrier_name,omitempty"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	PickupTime          time.Time       `json:"pickup_time"`
	DeliveryTime        time.Time       `json:"delivery_time"`
	ContainerType       string          `json:"container_type"`
	ContainerCount      int             `json:"container_count"`
	Budget              decimal.Decimal `json:"budget"`
	Currency            string          `json:"currency"`
	CargoDetails        json.RawMessage `json:"cargo_details,omitempty"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
	Status              string          `json:"status"`
	StatusLabel         string          `json:"status_label"`
	StatusBadge         string          `json:"status_badge"`
	CreatedAt           time.Time       `json:"created_at"`
}

type matchDriverDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

type matchDTO struct {
	ID              int64              `json:"id"`
	Status          string             `json:"status"`
	StatusLabel     string             `json:"status_label"`
	StatusBadge     string             `json:"status_badge"`
	Price           decimal.Decimal    `json:"price"`
	Currency        string             `json:"currency"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	Driver          *matchDriverDTO    `json:"driver"`
	Tolerance       offerDTO           `json:"tolerance"`
	DeliveryRequest deliveryRequestDTO `json:"delivery_request"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type matchEventDTO struct {
	ID          int64     `json:"id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Action      string    `json:"action"`
	ActorUserID *int64    `json:"actor_user_id"`
	Reason      string    `json:"reason,omitempty"`
	At          time.Time `json:"at"`
}

type carrierDTO struct {
	ID              int64     `json:"id"`
	UserID          *int64    `json:"user_id,omitempty"`
	CompanyName     string    `json:"company_name"`
	BusinessLicense string    `json:"business_license,omitempty"`
	ContactPerson   string    `json:"contact_person,omitempty"`
	Address         string    `json:"address,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type driverDTO struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id,omitempty"`
	CarrierID     int64     `json:"carrier_id"`
	CarrierName   string    `json:"carrier_name,omitempty"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	VehicleType   string    `json:"vehicle_type,omitempty"`
	VehicleNumber string    `json:"vehicle_number,omitempty"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	StatusBadge   string    `json:"status_badge"`
	Latitude      *float64  `json:"current_latitude,omitempty"`
	Longitude     *float64  `json:"current_longitude,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type vehicleDTO struct {
	ID            int64     `json:"id"`
	CarrierID     int64     `json:"carrier_id"`
	CarrierName   string    `json:"carrier_name,omitempty"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	StatusBadge   string    `json:"status_badge"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type locationDTO struct {
	MatchID   int64     `json:"match_id,omitempty"`
	DriverID  int64     `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type vocabularyEntryDTO struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Badge  string `json:"badge"`
}

type overviewDTO struct {
	TotalUsers       int `json:"total_users"`
	TotalCarriers    int `json:"total_carriers"`
	TotalDrivers     int `json:"total_drivers"`
	ActiveTolerances int `json:"active_tolerances"`
	PendingRequests  int `json:"pending_requests"`
	TotalMatches     int `json:"total_matches"`
	CompletedMatches int `json:"completed_matches"`
}

type monthlyDTO struct {
	Tolerances int `json:"tolerances"`
	Requests   int `json:"requests"`
	Matches    int `json:"matches"`
}

type statusBreakdownDTO struct {
	Tolerances       map[string]int `json:"tolerances"`
	DeliveryRequests map[string]int `json:"delivery_requests"`
	Matches          map[string]int `json:"matches"`
}

type carrierRankDTO struct {
	Name    string `json:"name"`
	Matches int    `json:"matches"`
}

type statisticsDTO struct {
	Overview        overviewDTO        `json:"overview"`
	Monthly         monthlyDTO         `json:"monthly"`
	StatusBreakdown statusBreakdownDTO `json:"status_breakdown"`
	TopCarriers     []carrierRankDTO   `json:"top_carriers"`
}

type sessionResponse struct {
	envelope
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userDTO   `json:"user"`
}

type userResponse struct {
	envelope
	User userDTO `json:"user"`
}

type usersResponse struct {
	envelope
	Users []userDTO `json:"users"`
}

type offerResponse struct {
	envelope
	Tolerance offerDTO `json:"tolerance"`
}

type offersResponse struct {
	envelope
	Tolerances []offerDTO `json:"tolerances"`
}

type deliveryRequestResponse struct {
	envelope
	DeliveryRequest deliveryRequestDTO `json:"delivery_request"`
}

type deliveryRequestsResponse struct {
	envelope
	DeliveryRequests []deliveryRequestDTO `json:"delivery_requests"`
}

type matchResponse struct {
	envelope
	Match matchDTO `json:"match"`
}

type matchesResponse struct {
	envelope
	Matches []matchDTO `json:"matches"`
}

type capabilitiesResponse struct {
	envelope
	MatchID int64    `json:"match_id"`
	Status  string   `json:"status"`
	Actions []string `json:"actions"`
}

type matchEventsResponse struct {
	envelope
	MatchID int64           `json:"match_id"`
	Events  []matchEventDTO `json:"events"`
}

type autoMatchResponse struct {
	envelope
	MatchesCreated int `json:"matches_created"`
	Proposed       int `json:"proposed"`
}

type carrierResponse struct {
	envelope
	Carrier carrierDTO `json:"carrier"`
}

type carriersResponse struct {
	envelope
	Carriers []carrierDTO `json:"carriers"`
}

type driverResponse struct {
	envelope
	Driver driverDTO `json:"driver"`
}

type driversResponse struct {
	envelope
	Drivers []driverDTO `json:"drivers"`
}

type vehicleResponse struct {
	envelope
	Vehicle vehicleDTO `json:"vehicle"`
}

type vehiclesResponse struct {
	envelope
	Vehicles []vehicleDTO `json:"vehicles"`
}

type statisticsResponse struct {
	envelope
	Statistics statisticsDTO `json:"statistics"`
}

type locationResponse struct {
	envelope
	Location locationDTO `json:"location"`
}

type pathResponse struct {
	envelope
	MatchID int64         `json:"match_id"`
	Path    []locationDTO `json:"path"`
}

type adminDashboardResponse struct {
	envelope
	Role             string `json:"role"`
	TotalUsers       int    `json:"total_users"`
	ActiveTolerances int    `json:"active_tolerances"`
	PendingRequests  int    `json:"pending_requests"`
	CompletedMatches int    `json:"completed_matches"`
}

type carrierDashboardResponse struct {
	envelope
	Role         string `json:"role"`
	MyTolerances int    `json:"my_tolerances"`
	MyRequests   int    `json:"my_requests"`
	MyMatches    int    `json:"my_matches"`
}

type driverDashboardResponse struct {
	envelope
	Role               string `json:"role"`
	AssignedMatches    int    `json:"assigned_matches"`
	CompletedMatches   int    `json:"completed_matches"`
	CurrentStatus      string `json:"current_status"`
	CurrentStatusLabel string `json:"current_status_label"`
	CurrentStatusBadge string `json:"current_status_badge"`
}

type vocabularyResponse struct {
	envelope
	Locale   string                          `json:"locale"`
	Statuses map[string][]vocabularyEntryDTO `json:"statuses"`
	Roles    []vocabularyEntryDTO            `json:"roles"`
}
