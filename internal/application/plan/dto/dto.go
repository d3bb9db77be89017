// Package dto holds the transport-facing representations of plans.
package dto

import (
	"time"

	"tally/internal/domain/plan"
)

// PlanResponse is the transport representation of a plan. Monetary values
// travel as decimal strings end to end.
type PlanResponse struct {
	PlanID      string `json:"plan_id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Euro        string `json:"euro"`
	PlanDate    string `json:"plan_date"`
}

// FromPlan maps a domain plan to its response representation.
func FromPlan(p *plan.Plan) *PlanResponse {
	return &PlanResponse{
		PlanID:      p.ID().String(),
		Code:        p.Code(),
		Description: p.Description(),
		Euro:        p.Euro().String(),
		PlanDate:    p.PlanDate().Format(time.DateOnly),
	}
}

// FromPlans maps a slice of domain plans.
func FromPlans(plans []*plan.Plan) []*PlanResponse {
	out := make([]*PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = FromPlan(p)
	}
	return out
}
