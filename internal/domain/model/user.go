package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type UserAddress struct {
	Street     string `gorm:"size:200" json:"street"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	PostalCode string `gorm:"size:20" json:"postalCode"`
	Country    string `gorm:"size:100" json:"country"`
}

type User struct {
	BaseModel
	Name         string      `gorm:"size:50;not null" json:"name"`
	Email        string      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Phone        string      `gorm:"size:30" json:"phone"`
	Role         Role        `gorm:"size:10;not null" json:"role"`
	IsVerified   bool        `gorm:"not null" json:"isVerified"`
	IsActive     bool        `gorm:"not null" json:"isActive"`
	Address      UserAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	LastLogin    *time.Time  `json:"lastLogin,omitempty"`
	CartItems    []CartItem  `gorm:"foreignKey:UserID" json:"cart,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
