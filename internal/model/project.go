package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a programme or project tracked by the MIS
type Project struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectName  string          `gorm:"type:varchar(500);not null" json:"projectName"`
	Donor        string          `gorm:"type:varchar(255)" json:"donor"`
	Region       string          `gorm:"type:varchar(255);index" json:"region"`
	Department   string          `gorm:"type:varchar(255)" json:"department"`
	MainCategory string          `gorm:"type:varchar(255);not null;index" json:"mainCategory"`
	SubCategory  string          `gorm:"type:varchar(255);index" json:"subCategory"`
	Status       string          `gorm:"type:varchar(50);index" json:"status"`
	Description  string          `gorm:"type:text" json:"description"`
	Budget       decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"budget"`
	StartDate    *time.Time      `json:"startDate"`
	EndDate      *time.Time      `json:"endDate"`
	Audit
}
