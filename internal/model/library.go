package model

import (
	"time"
)

// MediaFile describes an asset persisted outside the database.
// FilePath is relative to the upload root of its kind and uses forward slashes.
type MediaFile struct {
	FileName     string `gorm:"type:varchar(255)" json:"fileName"`
	OriginalName string `gorm:"type:varchar(255)" json:"originalName"`
	FilePath     string `gorm:"type:varchar(1024)" json:"filePath"`
	FileSizeKB   int    `gorm:"column:file_size_kb;default:0" json:"fileSizeKB"`
	ContentType  string `gorm:"type:varchar(128)" json:"contentType"`
}

// File returns the media part of a record
func (m MediaFile) File() MediaFile {
	return m
}

// Document is a library entry, either registered by metadata or uploaded
type Document struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"type:varchar(500);not null" json:"title"`
	MainCategory string     `gorm:"type:varchar(255);not null;index" json:"mainCategory"`
	SubCategory  string     `gorm:"type:varchar(255);index" json:"subCategory"`
	GroupName    string     `gorm:"type:varchar(255)" json:"groupName"`
	Description  string     `gorm:"type:text" json:"description"`
	DocumentDate *time.Time `json:"documentDate"`
	UploadedBy   string     `gorm:"type:varchar(100)" json:"uploadedBy"`
	MediaFile
	Audit
}

type Picture struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MainCategory string     `gorm:"type:varchar(255);not null;index" json:"mainCategory"`
	SubCategory  string     `gorm:"type:varchar(255);index" json:"subCategory"`
	GroupName    string     `gorm:"type:varchar(255);index" json:"groupName"`
	EventDate    *time.Time `gorm:"index" json:"eventDate"`
	UploadedBy   string     `gorm:"type:varchar(100)" json:"uploadedBy"`
	MediaFile
	Audit
}

type Report struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"type:varchar(500)" json:"title"`
	MainCategory string     `gorm:"type:varchar(255);not null;index" json:"mainCategory"`
	SubCategory  string     `gorm:"type:varchar(255);index" json:"subCategory"`
	GroupName    string     `gorm:"type:varchar(255);index" json:"groupName"`
	ReportDate   *time.Time `gorm:"index" json:"reportDate"`
	UploadedBy   string     `gorm:"type:varchar(100)" json:"uploadedBy"`
	MediaFile
	Audit
}

// Link is an external resource referenced from the dashboard
type Link struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"type:varchar(500);not null" json:"title"`
	URL          string `gorm:"type:varchar(2048);not null" json:"url"`
	MainCategory string `gorm:"type:varchar(255);index" json:"mainCategory"`
	SubCategory  string `gorm:"type:varchar(255);index" json:"subCategory"`
	Description  string `gorm:"type:text" json:"description"`
	Audit
}
