package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceModel represents the database persistence model for services
type ServiceModel struct {
	ID                 string          `gorm:"primaryKey;size:36"`
	AgreementID        string          `gorm:"not null;size:36;index:idx_service_agreement"`
	Name               string          `gorm:"not null;size:100"`
	Description        string          `gorm:"not null;size:500"`
	RunAmount          decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	ChgAmount          decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Amount             decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Currency           string          `gorm:"not null;size:3"`
	ResponsibleEmail   string          `gorm:"not null;size:255"`
	IsActive           bool            `gorm:"not null;default:false"`
	ProviderAllocation string          `gorm:"not null;size:500"`
	LocalAllocation    string          `gorm:"not null;size:500"`
	Status             string          `gorm:"not null;size:20;index:idx_service_status"`
	ValidatorEmail     string          `gorm:"size:255"`
	DocumentURL        *string         `gorm:"size:300"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ServiceSystemModel is one allocation slice of a service's cost to a system.
// The pair (service, system) is the natural key.
type ServiceSystemModel struct {
	ServiceID  string          `gorm:"primaryKey;size:36"`
	SystemID   string          `gorm:"primaryKey;size:36"`
	Allocation decimal.Decimal `gorm:"not null;type:decimal(9,6)"`
	RunAmount  decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	ChgAmount  decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Amount     decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Currency   string          `gorm:"not null;size:3"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ServiceSystemModel) TableName() string {
	return "service_systems"
}
