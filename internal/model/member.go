package model

import (
	"slices"
	"strings"
)

// Member is the authoritative registration record.
// Registrations are created exactly once and never updated or deleted.
type Member struct {
	// Primary key (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	FullName string `gorm:"column:full_name;type:VARCHAR(150);not null"`
	Email    string `gorm:"column:email;type:VARCHAR(150);not null;uniqueIndex:idx_member_email"` // unique, normalized lowercase
	Phone    string `gorm:"column:phone;type:VARCHAR(20);not null"`
	Package  string `gorm:"column:package;type:VARCHAR(50);not null"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// Packages is the fixed set of membership tiers offered on the registration form.
var Packages = []string{"Bronze", "Silver", "Gold", "Platinum"}

// IsValidPackage reports whether pkg is one of the offered membership tiers.
func IsValidPackage(pkg string) bool {
	return slices.Contains(Packages, pkg)
}

// NewMember creates a new Member with submitted fields normalized:
// name and phone are trimmed, email is trimmed and lower-cased so that
// uniqueness is case-insensitive by construction.
func NewMember(fullName, email, phone, pkg string) *Member {
	return &Member{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Phone:    strings.TrimSpace(phone),
		Package:  pkg,
	}
}
