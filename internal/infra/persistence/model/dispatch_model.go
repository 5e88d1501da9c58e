package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchReportModel is the GORM-specific struct for the 'dispatch_reports' table.
// One row per Notify call.
type DispatchReportModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	FamilyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_dispatch_reports_family_time,priority:1"`
	Kind         string    `gorm:"type:text;not null"`
	Strategy     string    `gorm:"type:text"`
	Sent         int       `gorm:"not null;default:0"`
	Total        int       `gorm:"not null;default:0"`
	DispatchedAt time.Time `gorm:"not null;index:idx_dispatch_reports_family_time,priority:2,sort:desc"`
	CreatedAt    time.Time

	Recipients []DispatchRecipientModel `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DispatchReportModel) TableName() string {
	return "dispatch_reports"
}

// DispatchRecipientModel is the GORM-specific struct for the 'dispatch_recipients' table.
// Tokens are stored truncated.
type DispatchRecipientModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Token     string    `gorm:"type:text;not null"`
	Success   bool      `gorm:"not null"`
	MessageID string    `gorm:"type:text"`
	Error     string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DispatchRecipientModel) TableName() string {
	return "dispatch_recipients"
}
