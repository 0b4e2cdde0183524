package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

// Users lists every account. Admin only.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return nil, err
	}
	var out struct {
		Users []userWire `json:"users"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, u.domain())
	}
	return users, nil
}

// CreateUser creates an account of any role, admin included.
func (c *Client) CreateUser(ctx context.Context, r domain.Registration) (domain.User, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return domain.User{}, err
	}
	var out struct {
		User userWire `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/users", nil, newRegistrationBody(r), &out); err != nil {
		return domain.User{}, err
	}
	return out.User.domain(), nil
}

// AdminCarriers lists all carriers, inactive ones included.
func (c *Client) AdminCarriers(ctx context.Context) ([]domain.Carrier, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return nil, err
	}
	return c.carriers(ctx, "/api/admin/carriers")
}

// CreateCarrier registers a carrier company without a login.
func (c *Client) CreateCarrier(ctx context.Context, cr domain.Carrier) (domain.Carrier, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return domain.Carrier{}, err
	}
	body := struct {
		CompanyName     string `json:"company_name"`
		BusinessLicense string `json:"business_license,omitempty"`
		ContactPerson   string `json:"contact_person,omitempty"`
		Address         string `json:"address,omitempty"`
		Phone           string `json:"phone,omitempty"`
		Email           string `json:"email,omitempty"`
	}{cr.CompanyName, cr.BusinessLicense, cr.ContactPerson, cr.Address, cr.Phone, cr.Email}
	var out struct {
		Carrier carrierWire `json:"carrier"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/carriers", nil, body, &out); err != nil {
		return domain.Carrier{}, err
	}
	return out.Carrier.domain(), nil
}

// Drivers lists drivers, optionally of one carrier when carrierID > 0.
func (c *Client) Drivers(ctx context.Context, carrierID int64) ([]domain.Driver, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return nil, err
	}
	q := url.Values{}
	if carrierID > 0 {
		q.Set("carrier_id", strconv.FormatInt(carrierID, 10))
	}
	var out struct {
		Drivers []driverWire `json:"drivers"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/drivers", q, nil, &out); err != nil {
		return nil, err
	}
	drivers := make([]domain.Driver, 0, len(out.Drivers))
	for _, d := range out.Drivers {
		drivers = append(drivers, d.domain())
	}
	return drivers, nil
}

// CreateDriver adds a driver to a carrier.
func (c *Client) CreateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return domain.Driver{}, err
	}
	body := struct {
		CarrierID     int64  `json:"carrier_id"`
		Name          string `json:"name"`
		LicenseNumber string `json:"license_number"`
		VehicleType   string `json:"vehicle_type,omitempty"`
		VehicleNumber string `json:"vehicle_number,omitempty"`
		Status        string `json:"status,omitempty"`
	}{d.CarrierID, d.Name, d.LicenseNumber, d.VehicleType, d.VehicleNumber, string(d.Status)}
	var out struct {
		Driver driverWire `json:"driver"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/drivers", nil, body, &out); err != nil {
		return domain.Driver{}, err
	}
	return out.Driver.domain(), nil
}

// Vehicles lists every vehicle.
func (c *Client) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return nil, err
	}
	var out struct {
		Vehicles []vehicleWire `json:"vehicles"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/vehicles", nil, nil, &out); err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, 0, len(out.Vehicles))
	for _, v := range out.Vehicles {
		vehicles = append(vehicles, v.domain())
	}
	return vehicles, nil
}

// CreateVehicle adds a vehicle to a carrier's fleet.
func (c *Client) CreateVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return domain.Vehicle{}, err
	}
	body := struct {
		CarrierID     int64  `json:"carrier_id"`
		VehicleNumber string `json:"vehicle_number"`
		VehicleType   string `json:"vehicle_type"`
		Status        string `json:"status,omitempty"`
		Description   string `json:"description,omitempty"`
	}{v.CarrierID, v.VehicleNumber, v.VehicleType, string(v.Status), v.Description}
	var out struct {
		Vehicle vehicleWire `json:"vehicle"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/vehicles", nil, body, &out); err != nil {
		return domain.Vehicle{}, err
	}
	return out.Vehicle.domain(), nil
}

// Statistics returns the platform-wide report.
func (c *Client) Statistics(ctx context.Context) (domain.Statistics, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionViewStatistics); err != nil {
		return domain.Statistics{}, err
	}
	var out struct {
		Statistics statisticsWire `json:"statistics"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/statistics", nil, nil, &out); err != nil {
		return domain.Statistics{}, err
	}
	return out.Statistics.domain(), nil
}
