package repository

import (
	"mis/internal/model"

	"gorm.io/gorm"
)

// Tables holds one accessor per resource entity, all sharing the injected connection.
type Tables struct {
	Projects      *Table[model.Project]
	Outputs       *Table[model.TrackingOutput]
	Activities    *Table[model.TrackingActivity]
	SubActivities *Table[model.TrackingSubActivity]
	TrackingRows  *Table[model.TrackingRow]
	Documents     *Table[model.Document]
	Pictures      *Table[model.Picture]
	Reports       *Table[model.Report]
	Links         *Table[model.Link]
}

func NewTables(db *gorm.DB) *Tables {
	return &Tables{
		Projects:      NewTable[model.Project](db, ProjectSchema),
		Outputs:       NewTable[model.TrackingOutput](db, OutputSchema),
		Activities:    NewTable[model.TrackingActivity](db, ActivitySchema),
		SubActivities: NewTable[model.TrackingSubActivity](db, SubActivitySchema),
		TrackingRows:  NewTable[model.TrackingRow](db, TrackingRowSchema),
		Documents:     NewTable[model.Document](db, DocumentSchema),
		Pictures:      NewTable[model.Picture](db, PictureSchema),
		Reports:       NewTable[model.Report](db, ReportSchema),
		Links:         NewTable[model.Link](db, LinkSchema),
	}
}
