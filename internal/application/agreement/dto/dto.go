// Package dto holds the transport-facing representations of agreements.
package dto

import (
	"time"

	"tally/internal/domain/agreement"
)

// AgreementResponse is the transport representation of one agreement revision.
type AgreementResponse struct {
	AgreementID    string  `json:"agreement_id"`
	Year           int     `json:"year"`
	Code           string  `json:"code"`
	Revision       int     `json:"revision"`
	IsRevised      bool    `json:"is_revised"`
	RevisionDate   string  `json:"revision_date"`
	ProviderPlanID string  `json:"provider_plan_id"`
	LocalPlanID    string  `json:"local_plan_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	ContactEmail   string  `json:"contact_email"`
	Comment        *string `json:"comment,omitempty"`
	DocumentURL    *string `json:"document_url,omitempty"`
}

// FromAgreement maps a domain agreement to its response representation.
func FromAgreement(a *agreement.Agreement) *AgreementResponse {
	return &AgreementResponse{
		AgreementID:    a.ID().String(),
		Year:           a.Year(),
		Code:           a.Code(),
		Revision:       a.Revision(),
		IsRevised:      a.IsRevised(),
		RevisionDate:   a.RevisionDate().Format(time.DateOnly),
		ProviderPlanID: a.ProviderPlanID().String(),
		LocalPlanID:    a.LocalPlanID().String(),
		Name:           a.Name(),
		Description:    a.Description(),
		ContactEmail:   a.ContactEmail(),
		Comment:        a.Comment(),
		DocumentURL:    a.DocumentURL(),
	}
}

// FromAgreements maps a slice of domain agreements.
func FromAgreements(agreements []*agreement.Agreement) []*AgreementResponse {
	out := make([]*AgreementResponse, len(agreements))
	for i, a := range agreements {
		out[i] = FromAgreement(a)
	}
	return out
}
