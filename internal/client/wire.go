package client

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"freight-matching-platform/internal/domain"
)

type userWire struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CarrierID int64     `json:"carrier_id"`
	DriverID  int64     `json:"driver_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (w userWire) domain() domain.User {
	return domain.User{
		ID:        w.ID,
		Username:  w.Username,
		Email:     w.Email,
		FullName:  w.FullName,
		Role:      domain.Role(w.Role),
		Phone:     w.Phone,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
	}
}

type offerWire struct {
	ID                  int64           `json:"id"`
	CarrierID           int64           `json:"carrier_id"`
	CarrierName         string          `json:"carrier_name"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	DepartureTime       time.Time       `json:"departure_time"`
	ArrivalTime         time.Time       `json:"arrival_time"`
	ContainerType       string          `json:"container_type"`
	ContainerCount      int             `json:"container_count"`
	Price               decimal.Decimal `json:"price"`
	IsEmptyRun          bool            `json:"is_empty_run"`
	SpecialRequirements string          `json:"special_requirements"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}

func (w offerWire) domain() domain.Offer {
	return domain.Offer{
		ID:                  w.ID,
		CarrierID:           w.CarrierID,
		CarrierName:         w.CarrierName,
		Origin:              w.Origin,
		Destination:         w.Destination,
		DepartureTime:       w.DepartureTime,
		ArrivalTime:         w.ArrivalTime,
		ContainerType:       w.ContainerType,
		ContainerCount:      w.ContainerCount,
		Price:               w.Price,
		IsEmptyRun:          w.IsEmptyRun,
		SpecialRequirements: w.SpecialRequirements,
		Status:              domain.OfferStatus(w.Status),
		CreatedAt:           w.CreatedAt,
	}
}

type requestWire struct {
	ID                  int64           `json:"id"`
	CarrierID           int64           `json:"carrier_id"`
	CarrierName         string          `json:"carrier_name"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	PickupTime          time.Time       `json:"pickup_time"`
	DeliveryTime        time.Time       `json:"delivery_time"`
	ContainerType       string          `json:"container_type"`
	ContainerCount      int             `json:"container_count"`
	Budget              decimal.Decimal `json:"budget"`
	CargoDetails        json.RawMessage `json:"cargo_details"`
	SpecialRequirements string          `json:"special_requirements"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}

func (w requestWire) domain() domain.DeliveryRequest {
	return domain.DeliveryRequest{
		ID:                  w.ID,
		CarrierID:           w.CarrierID,
		CarrierName:         w.CarrierName,
		Origin:              w.Origin,
		Destination:         w.Destination,
		PickupTime:          w.PickupTime,
		DeliveryTime:        w.DeliveryTime,
		ContainerType:       w.ContainerType,
		ContainerCount:      w.ContainerCount,
		Budget:              w.Budget,
		CargoDetails:        w.CargoDetails,
		SpecialRequirements: w.SpecialRequirements,
		Status:              domain.RequestStatus(w.Status),
		CreatedAt:           w.CreatedAt,
	}
}

type matchWire struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	Price           decimal.Decimal `json:"price"`
	RejectionReason string          `json:"rejection_reason"`
	Driver          *struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		VehicleNumber string `json:"vehicle_number"`
	} `json:"driver"`
	Tolerance       offerWire   `json:"tolerance"`
	DeliveryRequest requestWire `json:"delivery_request"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (w matchWire) domain() domain.MatchView {
	v := domain.MatchView{
		Match: domain.Match{
			ID:              w.ID,
			OfferID:         w.Tolerance.ID,
			RequestID:       w.DeliveryRequest.ID,
			Status:          domain.MatchStatus(w.Status),
			Price:           w.Price,
			RejectionReason: w.RejectionReason,
			CreatedAt:       w.CreatedAt,
			UpdatedAt:       w.UpdatedAt,
		},
		OfferCarrierID:   w.Tolerance.CarrierID,
		RequestCarrierID: w.DeliveryRequest.CarrierID,
		Offer:            w.Tolerance.domain(),
		Request:          w.DeliveryRequest.domain(),
	}
	if w.Driver != nil {
		id := w.Driver.ID
		v.DriverID = &id
		v.DriverName = w.Driver.Name
		v.VehicleNumber = w.Driver.VehicleNumber
	}
	return v
}

type matchEventWire struct {
	ID          int64     `json:"id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Action      string    `json:"action"`
	ActorUserID *int64    `json:"actor_user_id"`
	Reason      string    `json:"reason"`
	At          time.Time `json:"at"`
}

func (w matchEventWire) domain(matchID int64) domain.MatchEvent {
	return domain.MatchEvent{
		ID:          w.ID,
		MatchID:     matchID,
		From:        domain.MatchStatus(w.From),
		To:          domain.MatchStatus(w.To),
		Action:      domain.MatchAction(w.Action),
		ActorUserID: w.ActorUserID,
		Reason:      w.Reason,
		At:          w.At,
	}
}

type carrierWire struct {
	ID              int64     `json:"id"`
	UserID          *int64    `json:"user_id"`
	CompanyName     string    `json:"company_name"`
	BusinessLicense string    `json:"business_license"`
	ContactPerson   string    `json:"contact_person"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func (w carrierWire) domain() domain.Carrier {
	return domain.Carrier{
		ID:              w.ID,
		UserID:          w.UserID,
		CompanyName:     w.CompanyName,
		BusinessLicense: w.BusinessLicense,
		ContactPerson:   w.ContactPerson,
		Address:         w.Address,
		Phone:           w.Phone,
		Email:           w.Email,
		IsActive:        w.IsActive,
		CreatedAt:       w.CreatedAt,
	}
}

type driverWire struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id"`
	CarrierID     int64     `json:"carrier_id"`
	CarrierName   string    `json:"carrier_name"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	VehicleType   string    `json:"vehicle_type"`
	VehicleNumber string    `json:"vehicle_number"`
	Status        string    `json:"status"`
	Latitude      *float64  `json:"current_latitude"`
	Longitude     *float64  `json:"current_longitude"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func (w driverWire) domain() domain.Driver {
	return domain.Driver{
		ID:            w.ID,
		UserID:        w.UserID,
		CarrierID:     w.CarrierID,
		CarrierName:   w.CarrierName,
		Name:          w.Name,
		LicenseNumber: w.LicenseNumber,
		VehicleType:   w.VehicleType,
		VehicleNumber: w.VehicleNumber,
		Status:        domain.DriverStatus(w.Status),
		Latitude:      w.Latitude,
		Longitude:     w.Longitude,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
	}
}

type vehicleWire struct {
	ID            int64     `json:"id"`
	CarrierID     int64     `json:"carrier_id"`
	CarrierName   string    `json:"carrier_name"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	Status        string    `json:"status"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func (w vehicleWire) domain() domain.Vehicle {
	return domain.Vehicle{
		ID:            w.ID,
		CarrierID:     w.CarrierID,
		CarrierName:   w.CarrierName,
		VehicleNumber: w.VehicleNumber,
		VehicleType:   w.VehicleType,
		Status:        domain.VehicleStatus(w.Status),
		Description:   w.Description,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
	}
}

type locationWire struct {
	MatchID   int64     `json:"match_id"`
	DriverID  int64     `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

func (w locationWire) domain() domain.LocationPoint {
	return domain.LocationPoint{
		MatchID:   w.MatchID,
		DriverID:  w.DriverID,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		Status:    w.Status,
		Notes:     w.Notes,
		Timestamp: w.Timestamp,
	}
}

type statisticsWire struct {
	Overview struct {
		TotalUsers       int `json:"total_users"`
		TotalCarriers    int `json:"total_carriers"`
		TotalDrivers     int `json:"total_drivers"`
		ActiveTolerances int `json:"active_tolerances"`
		PendingRequests  int `json:"pending_requests"`
		TotalMatches     int `json:"total_matches"`
		CompletedMatches int `json:"completed_matches"`
	} `json:"overview"`
	Monthly struct {
		Tolerances int `json:"tolerances"`
		Requests   int `json:"requests"`
		Matches    int `json:"matches"`
	} `json:"monthly"`
	StatusBreakdown struct {
		Tolerances       map[string]int `json:"tolerances"`
		DeliveryRequests map[string]int `json:"delivery_requests"`
		Matches          map[string]int `json:"matches"`
	} `json:"status_breakdown"`
	TopCarriers []struct {
		Name    string `json:"name"`
		Matches int    `json:"matches"`
	} `json:"top_carriers"`
}

func (w statisticsWire) domain() domain.Statistics {
	top := make([]domain.CarrierRank, 0, len(w.TopCarriers))
	for _, c := range w.TopCarriers {
		top = append(top, domain.CarrierRank{Name: c.Name, Matches: c.Matches})
	}
	o := w.Overview
	return domain.Statistics{
		Overview: domain.Overview{
			TotalUsers:       o.TotalUsers,
			TotalCarriers:    o.TotalCarriers,
			TotalDrivers:     o.TotalDrivers,
			ActiveTolerances: o.ActiveTolerances,
			PendingRequests:  o.PendingRequests,
			TotalMatches:     o.TotalMatches,
			CompletedMatches: o.CompletedMatches,
		},
		Monthly: domain.Monthly{
			Tolerances: w.Monthly.Tolerances,
			Requests:   w.Monthly.Requests,
			Matches:    w.Monthly.Matches,
		},
		OfferStatuses:   w.StatusBreakdown.Tolerances,
		RequestStatuses: w.StatusBreakdown.DeliveryRequests,
		MatchStatuses:   w.StatusBreakdown.Matches,
		TopCarriers:     top,
	}
}

// dashboardWire is the union of the flat per-role dashboard payloads.
type dashboardWire struct {
	Role             string `json:"role"`
	TotalUsers       int    `json:"total_users"`
	ActiveTolerances int    `json:"active_tolerances"`
	PendingRequests  int    `json:"pending_requests"`
	CompletedMatches int    `json:"completed_matches"`
	MyTolerances     int    `json:"my_tolerances"`
	MyRequests       int    `json:"my_requests"`
	MyMatches        int    `json:"my_matches"`
	AssignedMatches  int    `json:"assigned_matches"`
	CurrentStatus    string `json:"current_status"`
}

func (w dashboardWire) domain() domain.Dashboard {
	d := domain.Dashboard{Role: domain.Role(w.Role)}
	switch d.Role {
	case domain.RoleAdmin:
		d.Admin = &domain.AdminDashboard{
			TotalUsers:       w.TotalUsers,
			ActiveTolerances: w.ActiveTolerances,
			PendingRequests:  w.PendingRequests,
			CompletedMatches: w.CompletedMatches,
		}
	case domain.RoleCarrier:
		d.Carrier = &domain.CarrierDashboard{
			MyTolerances: w.MyTolerances,
			MyRequests:   w.MyRequests,
			MyMatches:    w.MyMatches,
		}
	case domain.RoleDriver:
		d.Driver = &domain.DriverDashboard{
			AssignedMatches:  w.AssignedMatches,
			CompletedMatches: w.CompletedMatches,
			CurrentStatus:    domain.MatchStatus(w.CurrentStatus),
		}
	}
	return d
}

type offerBody struct {
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	DepartureTime       time.Time       `json:"departure_time"`
	ArrivalTime         time.Time       `json:"arrival_time"`
	ContainerType       string          `json:"container_type"`
	ContainerCount      int             `json:"container_count"`
	Price               decimal.Decimal `json:"price"`
	IsEmptyRun          bool            `json:"is_empty_run"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
}

type requestBody struct {
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	PickupTime          time.Time       `json:"pickup_time"`
	DeliveryTime        time.Time       `json:"delivery_time"`
	ContainerType       string          `json:"container_type"`
	ContainerCount      int             `json:"container_count"`
	Budget              decimal.Decimal `json:"budget"`
	CargoDetails        json.RawMessage `json:"cargo_details,omitempty"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
}

type registrationBody struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
	Phone           string `json:"phone,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	BusinessLicense string `json:"business_license,omitempty"`
	Address         string `json:"address,omitempty"`
	CarrierID       int64  `json:"carrier_id,omitempty"`
	LicenseNumber   string `json:"license_number,omitempty"`
	VehicleType     string `json:"vehicle_type,omitempty"`
	VehicleNumber   string `json:"vehicle_number,omitempty"`
}

func newRegistrationBody(r domain.Registration) registrationBody {
	return registrationBody{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		FullName:        r.FullName,
		Role:            string(r.Role),
		Phone:           r.Phone,
		CompanyName:     r.CompanyName,
		BusinessLicense: r.BusinessLicense,
		Address:         r.Address,
		CarrierID:       r.CarrierID,
		LicenseNumber:   r.LicenseNumber,
		VehicleType:     r.VehicleType,
		VehicleNumber:   r.VehicleNumber,
	}
}
