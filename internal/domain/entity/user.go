package entity

import "time"

const (
	RoleHomeowner = "HOMEOWNER"
	RoleProvider  = "PROVIDER"
	RoleAdmin     = "ADMIN"
)

// ServiceCategories is the fixed set of provider trades.
var ServiceCategories = []string{
	"Plumbing",
	"Electrical",
	"Painting",
	"Carpentry",
	"Cleaning",
	"Installation",
}

func IsServiceCategory(s string) bool {
	for _, c := range ServiceCategories {
		if c == s {
			return true
		}
	}
	return false
}

// User is a marketplace account. Provider fields are only meaningful when
// Role is PROVIDER.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Phone  string `json:"phone,omitempty"`

	Category    string  `json:"category,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	HourlyRate  int     `json:"hourly_rate,omitempty"`
	Bio         string  `json:"bio,omitempty"`
	Location    string  `json:"location,omitempty"`
	Verified    bool    `json:"verified"`
	ReviewCount int     `json:"reviews,omitempty"`
	Experience  string  `json:"experience,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}
