package domain

import "time"

// Role enumerates the access levels a user can hold. A user has exactly
// one role, fixed at creation; registration always produces a Customer.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleStaff    Role = "Staff"
	RoleAdmin    Role = "Admin"
)

// IsStaffLevel reports whether the role grants staff-wide ticket access.
func (r Role) IsStaffLevel() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// NotificationPrefs captures per-user notification opt-ins.
type NotificationPrefs struct {
	EmailNotifications bool
	MarketingEmails    bool
}

// User is the domain model for anyone who signs in: customers who submit
// tickets and the staff/admins who work them.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Company      string
	Phone        string
	Role         Role
	Prefs        NotificationPrefs
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName joins first and last name.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
