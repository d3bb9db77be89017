// Package plan contains the exchange-rate plan aggregate. A plan records the
// euro conversion rate used to price agreements for a period.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
)

// Plan is an exchange-rate record referenced by agreements as provider or
// local plan. Identity is immutable; fields mutate via explicit change
// methods and are checked by Validate before persisting.
type Plan struct {
	planID      uuid.UUID
	code        string
	description string
	euro        decimal.Decimal
	planDate    time.Time
}

// NewPlan creates a plan with a fresh identity. No validation happens here;
// the caller must invoke Validate before persisting.
func NewPlan(code, description string, euro decimal.Decimal, planDate time.Time) *Plan {
	return &Plan{
		planID:      uuid.New(),
		code:        strings.TrimSpace(code),
		description: strings.TrimSpace(description),
		euro:        euro,
		planDate:    planDate,
	}
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(planID uuid.UUID, code, description string, euro decimal.Decimal, planDate time.Time) *Plan {
	return &Plan{
		planID:      planID,
		code:        code,
		description: description,
		euro:        euro,
		planDate:    planDate,
	}
}

func (p *Plan) ID() uuid.UUID { return p.planID }

func (p *Plan) Code() string { return p.code }

func (p *Plan) Description() string { return p.description }

func (p *Plan) Euro() decimal.Decimal { return p.euro }

func (p *Plan) PlanDate() time.Time { return p.planDate }

// Mutators always succeed in memory; correctness is deferred to Validate.

func (p *Plan) ChangeCode(code string) {
	p.code = strings.TrimSpace(code)
}

func (p *Plan) ChangeDescription(description string) {
	p.description = strings.TrimSpace(description)
}

func (p *Plan) ChangeEuro(euro decimal.Decimal) {
	p.euro = euro
}

func (p *Plan) ChangePlanDate(planDate time.Time) {
	p.planDate = planDate
}

// Validate runs all field checks in one pass and aggregates every problem
// into a single validation error.
func (p *Plan) Validate() error {
	var problems []string

	if p.code == "" {
		problems = append(problems, "Plan code is required")
	}
	if len(p.code) > 20 {
		problems = append(problems, "Plan code must be at most 20 characters long")
	}
	if p.description == "" {
		problems = append(problems, "Plan description is required")
	}
	if len(p.description) > 255 {
		problems = append(problems, "Plan description must be at most 255 characters long")
	}
	if !money.IsRate(p.euro) {
		problems = append(problems, "Plan euro rate must be a positive decimal with at most 4 decimal places and 8 total digits")
	}
	if p.planDate.IsZero() {
		problems = append(problems, "Plan date is required")
	}

	if len(problems) > 0 {
		return errors.NewValidationError(strings.Join(problems, ". "))
	}
	return nil
}

// String implements fmt.Stringer for log output.
func (p *Plan) String() string {
	return fmt.Sprintf("Plan{id=%s code=%s}", p.planID, p.code)
}
