// Package dto holds the transport-facing representations of services and
// their system allocations.
package dto

import (
	"tally/internal/domain/service"
)

// ServiceSystemResponse is one allocation slice. Decimals travel as strings.
type ServiceSystemResponse struct {
	ServiceID  string `json:"service_id"`
	SystemID   string `json:"system_id"`
	Allocation string `json:"allocation"`
	RunAmount  string `json:"run_amount"`
	ChgAmount  string `json:"chg_amount"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

// ServiceResponse is the transport representation of a service.
type ServiceResponse struct {
	ServiceID          string                   `json:"service_id"`
	AgreementID        string                   `json:"agreement_id"`
	Name               string                   `json:"name"`
	Description        string                   `json:"description"`
	RunAmount          string                   `json:"run_amount"`
	ChgAmount          string                   `json:"chg_amount"`
	Amount             string                   `json:"amount"`
	Currency           string                   `json:"currency"`
	ResponsibleEmail   string                   `json:"responsible_email"`
	IsActive           bool                     `json:"is_active"`
	ProviderAllocation string                   `json:"provider_allocation"`
	LocalAllocation    string                   `json:"local_allocation"`
	Status             string                   `json:"status"`
	ValidatorEmail     string                   `json:"validator_email,omitempty"`
	DocumentURL        *string                  `json:"document_url,omitempty"`
	ServiceSystems     []*ServiceSystemResponse `json:"service_systems"`
}

// FromService maps a domain service to its response representation.
func FromService(s *service.Service) *ServiceResponse {
	systems := make([]*ServiceSystemResponse, 0, len(s.ServiceSystems()))
	for _, ss := range s.ServiceSystems() {
		systems = append(systems, &ServiceSystemResponse{
			ServiceID:  ss.ServiceID().String(),
			SystemID:   ss.SystemID().String(),
			Allocation: ss.Allocation().String(),
			RunAmount:  ss.RunAmount().StringFixed(2),
			ChgAmount:  ss.ChgAmount().StringFixed(2),
			Amount:     ss.Amount().StringFixed(2),
			Currency:   ss.Currency().String(),
		})
	}

	return &ServiceResponse{
		ServiceID:          s.ID().String(),
		AgreementID:        s.AgreementID().String(),
		Name:               s.Name(),
		Description:        s.Description(),
		RunAmount:          s.RunAmount().StringFixed(2),
		ChgAmount:          s.ChgAmount().StringFixed(2),
		Amount:             s.Amount().StringFixed(2),
		Currency:           s.Currency().String(),
		ResponsibleEmail:   s.ResponsibleEmail(),
		IsActive:           s.IsActive(),
		ProviderAllocation: s.ProviderAllocation(),
		LocalAllocation:    s.LocalAllocation(),
		Status:             s.Status().String(),
		ValidatorEmail:     s.ValidatorEmail(),
		DocumentURL:        s.DocumentURL(),
		ServiceSystems:     systems,
	}
}

// FromServices maps a slice of domain services.
func FromServices(services []*service.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromService(s)
	}
	return out
}
