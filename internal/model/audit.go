package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionUpload = "UPLOAD"
	ActionLogin  = "LOGIN"
)

// Audit holds the created/modified columns shared by every resource record
type Audit struct {
	CreatedBy  string     `gorm:"type:varchar(100)" json:"createdBy"`
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`
	ModifiedBy string     `gorm:"type:varchar(100)" json:"modifiedBy"`
	ModifiedAt *time.Time `json:"modifiedAt"`
}

// AuditLog tracks Who, What, and When for every mutation
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Actor     string    `gorm:"type:varchar(100);index" json:"actor"` // empty for system actions
	Action    string    `gorm:"type:varchar(20);not null;index" json:"action"`
	Entity    string    `gorm:"type:varchar(50);not null;index" json:"entity"`
	EntityID  string    `gorm:"type:varchar(100);index" json:"entityId"`
	Details   string    `gorm:"type:jsonb" json:"details"` // serialized JSON payload of the action
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// BeforeCreate assigns the id in Go so the table needs no database-side uuid function
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
