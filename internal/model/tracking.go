package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// The tracking sheet is a four-level hierarchy: Output -> Activity -> SubActivity -> SubSubActivity.
// Each parent owns its children; the foreign key sits on the child table and
// deleting a parent cascades down the tree.

type TrackingOutput struct {
	OutputID    string             `gorm:"type:varchar(20);primaryKey" json:"outputId"`
	OutputName  string             `gorm:"type:varchar(500);not null" json:"outputName"`
	Description string             `gorm:"type:text" json:"description"`
	Activities  []TrackingActivity `gorm:"foreignKey:OutputID;references:OutputID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Audit
}

func (TrackingOutput) TableName() string { return "tracking_outputs" }

type TrackingActivity struct {
	ActivityID    string                `gorm:"type:varchar(20);primaryKey" json:"activityId"`
	OutputID      string                `gorm:"type:varchar(20);not null;index" json:"outputId"`
	ActivityName  string                `gorm:"type:varchar(500);not null" json:"activityName"`
	SubActivities []TrackingSubActivity `gorm:"foreignKey:ActivityID;references:ActivityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Audit
}

func (TrackingActivity) TableName() string { return "tracking_activities" }

type TrackingSubActivity struct {
	SubActivityID   string        `gorm:"type:varchar(20);primaryKey" json:"subActivityId"`
	ActivityID      string        `gorm:"type:varchar(20);not null;index" json:"activityId"`
	SubActivityName string        `gorm:"type:varchar(500);not null" json:"subActivityName"`
	Rows            []TrackingRow `gorm:"foreignKey:SubActivityID;references:SubActivityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Audit
}

func (TrackingSubActivity) TableName() string { return "tracking_sub_activities" }

// TrackingRow is a sub-sub-activity: the row users actually edit on the tracking sheet
type TrackingRow struct {
	SubSubActivityID string          `gorm:"type:varchar(20);primaryKey" json:"subSubActivityId"`
	SubActivityID    string          `gorm:"type:varchar(20);not null;index" json:"subActivityId"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	Indicator        string          `gorm:"type:varchar(500)" json:"indicator"`
	Unit             string          `gorm:"type:varchar(50)" json:"unit"`
	Target           int             `gorm:"default:0" json:"target"`
	Achieved         int             `gorm:"default:0" json:"achieved"`
	Budget           decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"budget"`
	Expenditure      decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"expenditure"`
	Province         string          `gorm:"type:varchar(100);index" json:"province"`
	District         string          `gorm:"type:varchar(100)" json:"district"`
	StartDate        *time.Time      `json:"startDate"`
	EndDate          *time.Time      `json:"endDate"`
	Status           string          `gorm:"type:varchar(50);index" json:"status"`
	Remarks          string          `gorm:"type:text" json:"remarks"`
	Audit
}

func (TrackingRow) TableName() string { return "tracking_sheet" }
