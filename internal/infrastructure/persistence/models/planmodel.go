package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanModel represents the database persistence model for cost plans
// This is the anti-corruption layer between domain and database
type PlanModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Code        string          `gorm:"not null;size:20;index:idx_plan_code"`
	Description string          `gorm:"not null;size:255"`
	Euro        decimal.Decimal `gorm:"not null;type:decimal(8,4)"`
	PlanDate    time.Time       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}
