package handlers

import (
	"net/http"

	"golang.org/x/text/language"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/service/identity"
)

// DefaultCurrency is reported next to money when none is configured.
const DefaultCurrency = "KRW"

// Format holds wire formatting settings shared by every handler.
type Format struct {
	Currency string
}

func (f Format) presenter(r *http.Request) presenter {
	c := f.Currency
	if c == "" {
		c = DefaultCurrency
	}
	return presenter{currency: c, locale: localeFrom(r)}
}

// presenter renders domain values for one request's locale.
type presenter struct {
	currency string
	locale   language.Tag
}

func (r registerRequest) toModel() domain.Registration {
	return domain.Registration{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		FullName:        r.FullName,
		Role:            domain.Role(r.Role),
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

func (r offerRequest) toModel() domain.Offer {
	return domain.Offer{
		Origin:              r.Origin,
		Destination:         r.Destination,
		DepartureTime:       r.DepartureTime.Time,
		ArrivalTime:         r.ArrivalTime.Time,
		ContainerType:       r.ContainerType,
		ContainerCount:      r.ContainerCount,
		Price:               r.Price,
		IsEmptyRun:          r.IsEmptyRun,
		SpecialRequirements: r.SpecialRequirements,
	}
}

func (r deliveryRequestRequest) toModel() domain.DeliveryRequest {
	return domain.DeliveryRequest{
		Origin:              r.Origin,
		Destination:         r.Destination,
		PickupTime:          r.PickupTime.Time,
		DeliveryTime:        r.DeliveryTime.Time,
		ContainerType:       r.ContainerType,
		ContainerCount:      r.ContainerCount,
		Budget:              r.Budget,
		CargoDetails:        r.CargoDetails,
		SpecialRequirements: r.SpecialRequirements,
	}
}

func (r locationRequest) toModel() domain.LocationPoint {
	p := domain.LocationPoint{
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		Status:    r.Status,
		Notes:     r.Notes,
	}
	if r.MatchID != nil {
		p.MatchID = *r.MatchID
	}
	return p
}

func (r carrierRequest) toModel() domain.Carrier {
	return domain.Carrier{
		CompanyName:     r.CompanyName,
		BusinessLicense: r.BusinessLicense,
		ContactPerson:   r.ContactPerson,
		Address:         r.Address,
		Phone:           r.Phone,
		Email:           r.Email,
	}
}

func (r driverRequest) toModel() domain.Driver {
	return domain.Driver{
		CarrierID:     r.CarrierID,
		Name:          r.Name,
		LicenseNumber: r.LicenseNumber,
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
		Status:        domain.DriverStatus(r.Status),
	}
}

func (r vehicleRequest) toModel() domain.Vehicle {
	return domain.Vehicle{
		CarrierID:     r.CarrierID,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   r.VehicleType,
		Status:        domain.VehicleStatus(r.Status),
		Description:   r.Description,
	}
}

func (p presenter) user(u domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		RoleLabel: lifecycle.RoleLabelFor(u.Role, p.locale),
		RoleBadge: lifecycle.RoleBadgeClassFor(u.Role),
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (p presenter) session(s identity.Session) sessionResponse {
	u := p.user(s.User)
	u.CarrierID = s.CarrierID
	u.DriverID = s.DriverID
	return sessionResponse{
		envelope:  success("login successful"),
		Token:     s.Token.Value,
		ExpiresAt: s.Token.ExpiresAt,
		User:      u,
	}
}

func (p presenter) offer(o domain.Offer) offerDTO {
	return offerDTO{
		ID:                  o.ID,
		CarrierID:           o.CarrierID,
		CarrierName:         o.CarrierName,
		Origin:              o.Origin,
		Destination:         o.Destination,
		DepartureTime:       o.DepartureTime,
		ArrivalTime:         o.ArrivalTime,
		ContainerType:       o.ContainerType,
		ContainerCount:      o.ContainerCount,
		Price:               o.Price,
		Currency:            p.currency,
		IsEmptyRun:          o.IsEmptyRun,
		SpecialRequirements: o.SpecialRequirements,
		Status:              string(o.Status),
		StatusLabel:         lifecycle.LabelFor(o.Status, p.locale),
		StatusBadge:         lifecycle.BadgeClassFor(o.Status),
		CreatedAt:           o.CreatedAt,
	}
}

func (p presenter) offers(list []domain.Offer) []offerDTO {
	out := make([]offerDTO, 0, len(list))
	for _, o := range list {
		out = append(out, p.offer(o))
	}
	return out
}

func (p presenter) request(r domain.DeliveryRequest) deliveryRequestDTO {
	return deliveryRequestDTO{
		ID:                  r.ID,
		CarrierID:           r.CarrierID,
		CarrierName:         r.CarrierName,
		Origin:              r.Origin,
		Destination:         r.Destination,
		PickupTime:          r.PickupTime,
		DeliveryTime:        r.DeliveryTime,
		ContainerType:       r.ContainerType,
		ContainerCount:      r.ContainerCount,
		Budget:              r.Budget,
		Currency:            p.currency,
		CargoDetails:        r.CargoDetails,
		SpecialRequirements: r.SpecialRequirements,
		Status:              string(r.Status),
		StatusLabel:         lifecycle.LabelFor(r.Status, p.locale),
		StatusBadge:         lifecycle.BadgeClassFor(r.Status),
		CreatedAt:           r.CreatedAt,
	}
}

func (p presenter) requests(list []domain.DeliveryRequest) []deliveryRequestDTO {
	out := make([]deliveryRequestDTO, 0, len(list))
	for _, r := range list {
		out = append(out, p.request(r))
	}
	return out
}

func (p presenter) match(m domain.MatchView) matchDTO {
	dto := matchDTO{
		ID:              m.ID,
		Status:          string(m.Status),
		StatusLabel:     lifecycle.LabelFor(m.Status, p.locale),
		StatusBadge:     lifecycle.BadgeClassFor(m.Status),
		Price:           m.Price,
		Currency:        p.currency,
		RejectionReason: m.RejectionReason,
		Tolerance:       p.offer(m.Offer),
		DeliveryRequest: p.request(m.Request),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.DriverID != nil {
		dto.Driver = &matchDriverDTO{ID: *m.DriverID, Name: m.DriverName, VehicleNumber: m.VehicleNumber}
	}
	return dto
}

func (p presenter) matches(list []domain.MatchView) []matchDTO {
	out := make([]matchDTO, 0, len(list))
	for _, m := range list {
		out = append(out, p.match(m))
	}
	return out
}

func matchEvents(list []domain.MatchEvent) []matchEventDTO {
	out := make([]matchEventDTO, 0, len(list))
	for _, e := range list {
		out = append(out, matchEventDTO{
			ID:          e.ID,
			From:        string(e.From),
			To:          string(e.To),
			Action:      string(e.Action),
			ActorUserID: e.ActorUserID,
			Reason:      e.Reason,
			At:          e.At,
		})
	}
	return out
}

func carrier(c domain.Carrier) carrierDTO {
	return carrierDTO{
		ID:              c.ID,
		UserID:          c.UserID,
		CompanyName:     c.CompanyName,
		BusinessLicense: c.BusinessLicense,
		ContactPerson:   c.ContactPerson,
		Address:         c.Address,
		Phone:           c.Phone,
		Email:           c.Email,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

func carriers(list []domain.Carrier) []carrierDTO {
	out := make([]carrierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, carrier(c))
	}
	return out
}

func (p presenter) driver(d domain.Driver) driverDTO {
	return driverDTO{
		ID:            d.ID,
		UserID:        d.UserID,
		CarrierID:     d.CarrierID,
		CarrierName:   d.CarrierName,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		VehicleType:   d.VehicleType,
		VehicleNumber: d.VehicleNumber,
		Status:        string(d.Status),
		StatusLabel:   lifecycle.LabelFor(d.Status, p.locale),
		StatusBadge:   lifecycle.BadgeClassFor(d.Status),
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
	}
}

func (p presenter) vehicle(v domain.Vehicle) vehicleDTO {
	return vehicleDTO{
		ID:            v.ID,
		CarrierID:     v.CarrierID,
		CarrierName:   v.CarrierName,
		VehicleNumber: v.VehicleNumber,
		VehicleType:   v.VehicleType,
		Status:        string(v.Status),
		StatusLabel:   lifecycle.LabelFor(v.Status, p.locale),
		StatusBadge:   lifecycle.BadgeClassFor(v.Status),
		Description:   v.Description,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
	}
}

func location(p domain.LocationPoint) locationDTO {
	return locationDTO{
		MatchID:   p.MatchID,
		DriverID:  p.DriverID,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Status:    p.Status,
		Notes:     p.Notes,
		Timestamp: p.Timestamp,
	}
}

func statistics(s domain.Statistics) statisticsDTO {
	top := make([]carrierRankDTO, 0, len(s.TopCarriers))
	for _, c := range s.TopCarriers {
		top = append(top, carrierRankDTO{Name: c.Name, Matches: c.Matches})
	}
	return statisticsDTO{
		Overview: overviewDTO{
			TotalUsers:       s.Overview.TotalUsers,
			TotalCarriers:    s.Overview.TotalCarriers,
			TotalDrivers:     s.Overview.TotalDrivers,
			ActiveTolerances: s.Overview.ActiveTolerances,
			PendingRequests:  s.Overview.PendingRequests,
			TotalMatches:     s.Overview.TotalMatches,
			CompletedMatches: s.Overview.CompletedMatches,
		},
		Monthly: monthlyDTO{
			Tolerances: s.Monthly.Tolerances,
			Requests:   s.Monthly.Requests,
			Matches:    s.Monthly.Matches,
		},
		StatusBreakdown: statusBreakdownDTO{
			Tolerances:       nonNil(s.OfferStatuses),
			DeliveryRequests: nonNil(s.RequestStatuses),
			Matches:          nonNil(s.MatchStatuses),
		},
		TopCarriers: top,
	}
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

// dashboard flattens the role's summary into the envelope. ok is false when
// the summary for the role is missing.
func (p presenter) dashboard(d domain.Dashboard) (any, bool) {
	switch {
	case d.Role == domain.RoleAdmin && d.Admin != nil:
		return adminDashboardResponse{
			envelope:         success(""),
			Role:             string(d.Role),
			TotalUsers:       d.Admin.TotalUsers,
			ActiveTolerances: d.Admin.ActiveTolerances,
			PendingRequests:  d.Admin.PendingRequests,
			CompletedMatches: d.Admin.CompletedMatches,
		}, true
	case d.Role == domain.RoleCarrier && d.Carrier != nil:
		return carrierDashboardResponse{
			envelope:     success(""),
			Role:         string(d.Role),
			MyTolerances: d.Carrier.MyTolerances,
			MyRequests:   d.Carrier.MyRequests,
			MyMatches:    d.Carrier.MyMatches,
		}, true
	case d.Role == domain.RoleDriver && d.Driver != nil:
		return driverDashboardResponse{
			envelope:           success(""),
			Role:               string(d.Role),
			AssignedMatches:    d.Driver.AssignedMatches,
			CompletedMatches:   d.Driver.CompletedMatches,
			CurrentStatus:      string(d.Driver.CurrentStatus),
			CurrentStatusLabel: lifecycle.LabelFor(d.Driver.CurrentStatus, p.locale),
			CurrentStatusBadge: lifecycle.BadgeClassFor(d.Driver.CurrentStatus),
		}, true
	default:
		return nil, false
	}
}

func (p presenter) vocabulary() vocabularyResponse {
	statuses := make(map[string][]vocabularyEntryDTO, 3)
	for kind, entries := range lifecycle.Vocabulary(p.locale) {
		out := make([]vocabularyEntryDTO, 0, len(entries))
		for _, e := range entries {
			out = append(out, vocabularyEntryDTO{Status: e.Status, Label: e.Label, Badge: e.Badge})
		}
		statuses[string(kind)] = out
	}
	roles := make([]vocabularyEntryDTO, 0, 3)
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleCarrier, domain.RoleDriver} {
		roles = append(roles, vocabularyEntryDTO{
			Status: string(r),
			Label:  lifecycle.RoleLabelFor(r, p.locale),
			Badge:  lifecycle.RoleBadgeClassFor(r),
		})
	}
	return vocabularyResponse{
		envelope: success(""),
		Locale:   p.locale.String(),
		Statuses: statuses,
		Roles:    roles,
	}
}
