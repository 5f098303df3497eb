package dto

import "github.com/helpdesk-pro/helpdesk-service/internal/domain"

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest payload for POST /api/users/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

// UpdateProfileRequest payload for PUT /api/users/profile.
type UpdateProfileRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	EmailNotifications bool   `json:"emailNotifications"`
	MarketingEmails    bool   `json:"marketingEmails"`
}

// UserResponse is the wire shape of a user.
type UserResponse struct {
	UserID             int64       `json:"userID"`
	Username           string      `json:"username"`
	Email              string      `json:"email"`
	FirstName          string      `json:"firstName"`
	LastName           string      `json:"lastName"`
	Role               domain.Role `json:"role"`
	Company            string      `json:"company,omitempty"`
	Phone              string      `json:"phone,omitempty"`
	EmailNotifications bool        `json:"emailNotifications"`
	MarketingEmails    bool        `json:"marketingEmails"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:             user.ID,
		Username:           user.Username,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Role:               user.Role,
		Company:            user.Company,
		Phone:              user.Phone,
		EmailNotifications: user.Prefs.EmailNotifications,
		MarketingEmails:    user.Prefs.MarketingEmails,
	}
}
