package models

import (
	"time"
)

// AgreementModel represents the database persistence model for agreement
// revisions. A lineage is the set of rows sharing year+code; revision numbers
// are unique within it.
type AgreementModel struct {
	ID             string    `gorm:"primaryKey;size:36"`
	Year           int       `gorm:"not null;uniqueIndex:idx_lineage_revision,priority:1"`
	Code           string    `gorm:"not null;size:20;uniqueIndex:idx_lineage_revision,priority:2"`
	Revision       int       `gorm:"not null;uniqueIndex:idx_lineage_revision,priority:3"`
	IsRevised      bool      `gorm:"not null;default:false"`
	RevisionDate   time.Time `gorm:"not null"`
	ProviderPlanID string    `gorm:"not null;size:36;index:idx_agreement_provider_plan"`
	LocalPlanID    string    `gorm:"not null;size:36;index:idx_agreement_local_plan"`
	Name           string    `gorm:"not null;size:100"`
	Description    string    `gorm:"not null;size:500"`
	ContactEmail   string    `gorm:"not null;size:255"`
	Comment        *string   `gorm:"size:500"`
	DocumentURL    *string   `gorm:"size:300"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (AgreementModel) TableName() string {
	return "agreements"
}
