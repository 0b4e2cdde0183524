package domain

import (
	"regexp"
	"time"
)

// User is a platform account.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
}

// Carrier is a transport company owned by a carrier user.
type Carrier struct {
	ID              int64
	UserID          *int64
	CompanyName     string
	BusinessLicense string
	ContactPerson   string
	Address         string
	Phone           string
	Email           string
	IsActive        bool
	CreatedAt       time.Time
}

// Driver belongs to exactly one carrier.
type Driver struct {
	ID            int64
	UserID        *int64
	CarrierID     int64
	CarrierName   string
	Name          string
	LicenseNumber string
	VehicleType   string
	VehicleNumber string
	Status        DriverStatus
	Latitude      *float64
	Longitude     *float64
	IsActive      bool
	CreatedAt     time.Time
}

// Vehicle is a truck registered to a carrier.
type Vehicle struct {
	ID            int64
	CarrierID     int64
	CarrierName   string
	VehicleNumber string
	VehicleType   string
	Status        VehicleStatus
	Description   string
	IsActive      bool
	CreatedAt     time.Time
}

// Registration carries the fields accepted by sign-up, including the
// role-specific carrier and driver profile fields.
type Registration struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     Role
	Phone    string

	CompanyName     string
	BusinessLicense string
	Address         string

	CarrierID     int64
	LicenseNumber string
	VehicleType   string
	VehicleNumber string
}

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail validates the e-mail address format
func ValidateEmail(s string) bool {
	return reEmail.MatchString(s)
}

// rePhone accepts international and local phone formats with separators.
var rePhone = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
