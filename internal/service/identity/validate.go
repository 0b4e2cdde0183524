package identity

import (
	"fmt"
	"strings"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

const minPasswordLen = 6

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperr.Invalid}, args...)...)
}

func normalize(r *domain.Registration) {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.BusinessLicense = strings.TrimSpace(r.BusinessLicense)
	r.Address = strings.TrimSpace(r.Address)
	r.LicenseNumber = strings.TrimSpace(r.LicenseNumber)
	r.VehicleType = strings.TrimSpace(r.VehicleType)
	r.VehicleNumber = strings.TrimSpace(r.VehicleNumber)
}

func validateRegistration(r domain.Registration) error {
	switch {
	case r.Username == "":
		return invalid("username is required")
	case len(r.Password) < minPasswordLen:
		return invalid("password must be at least %d characters", minPasswordLen)
	case !domain.ValidateEmail(r.Email):
		return invalid("email %q is not valid", r.Email)
	case r.FullName == "":
		return invalid("full name is required")
	case !r.Role.Valid():
		return invalid("unknown role %q", r.Role)
	case r.Phone != "" && !domain.ValidatePhone(r.Phone):
		return invalid("phone %q is not valid", r.Phone)
	}

	switch r.Role {
	case domain.RoleCarrier:
		if r.CompanyName == "" {
			return invalid("company name is required for carriers")
		}
	case domain.RoleDriver:
		if r.CarrierID <= 0 {
			return invalid("carrier is required for drivers")
		}
		if r.LicenseNumber == "" {
			return invalid("license number is required for drivers")
		}
	}
	return nil
}

func profiles(u domain.User, r domain.Registration) (*domain.Carrier, *domain.Driver) {
	switch r.Role {
	case domain.RoleCarrier:
		return &domain.Carrier{
			CompanyName:     r.CompanyName,
			BusinessLicense: r.BusinessLicense,
			ContactPerson:   u.FullName,
			Address:         r.Address,
			Phone:           u.Phone,
			Email:           u.Email,
			IsActive:        true,
		}, nil
	case domain.RoleDriver:
		return nil, &domain.Driver{
			CarrierID:     r.CarrierID,
			Name:          u.FullName,
			LicenseNumber: r.LicenseNumber,
			VehicleType:   r.VehicleType,
			VehicleNumber: r.VehicleNumber,
			Status:        domain.DriverAvailable,
			IsActive:      true,
		}
	default:
		return nil, nil
	}
}
