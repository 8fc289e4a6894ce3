package model

import (
	"time"
)

// Authorization levels
const (
	LevelAdmin = "admin"
	LevelUser  = "user"
)

// Capability names used by the access gate
const (
	CapAdd         = "add"
	CapEdit        = "edit"
	CapDelete      = "delete"
	CapViewReports = "view-reports"
)

// User is the Principal: an identity provisioned out-of-band and recognised by the gate.
// Users are never deleted in-band.
type User struct {
	Username       string    `gorm:"type:varchar(100);primaryKey" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	Department     string    `gorm:"type:varchar(255);index" json:"department"`
	Region         string    `gorm:"type:varchar(255);index" json:"region"`
	Contact        string    `gorm:"type:varchar(100)" json:"contact"`
	Level          string    `gorm:"type:varchar(20);not null;default:'user'" json:"level"` // admin, user
	CanAdd         bool      `gorm:"default:false" json:"canAdd"`
	CanEdit        bool      `gorm:"default:false" json:"canEdit"`
	CanDelete      bool      `gorm:"default:false" json:"canDelete"`
	CanViewReports bool      `gorm:"default:false" json:"canViewReports"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsAdmin reports whether the principal holds the admin level
func (u *User) IsAdmin() bool {
	return u.Level == LevelAdmin
}

// Has reports whether the principal holds a capability. Admins hold all of them.
func (u *User) Has(capability string) bool {
	if u.IsAdmin() {
		return true
	}
	switch capability {
	case CapAdd:
		return u.CanAdd
	case CapEdit:
		return u.CanEdit
	case CapDelete:
		return u.CanDelete
	case CapViewReports:
		return u.CanViewReports
	}
	return false
}

// Capabilities lists the capabilities the principal holds
func (u *User) Capabilities() []string {
	caps := make([]string, 0, 4)
	for _, c := range []string{CapAdd, CapEdit, CapDelete, CapViewReports} {
		if u.Has(c) {
			caps = append(caps, c)
		}
	}
	return caps
}
