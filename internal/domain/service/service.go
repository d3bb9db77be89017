// Package service contains the service aggregate: a billable line item under
// an agreement, its approval state machine, and the percentage allocation of
// its cost across target systems.
package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
	"tally/internal/shared/validation"
)

// Lock and gate messages surfaced verbatim at the UI boundary.
const (
	msgTerminalLock   = "Service cannot be changed after it has been approved or rejected"
	msgAllocationGate = "Service cannot be neither approved nor rejected when cost allocation to systems is not 100%"
)

// Service is the aggregate root for a billable item. Mutators always succeed
// in memory so multi-step edits can be composed; every correctness check is
// deferred to Validate, which the use cases run before persisting.
type Service struct {
	serviceID          uuid.UUID
	agreementID        uuid.UUID
	name               string
	description        string
	runAmount          decimal.Decimal
	chgAmount          decimal.Decimal
	amount             decimal.Decimal
	currency           Currency
	responsibleEmail   string
	isActive           bool
	providerAllocation string
	localAllocation    string
	status             Status
	validatorEmail     string
	documentURL        *string
	serviceSystems     []*ServiceSystem

	// originalStatus is the status the entity carried when it was loaded or
	// created; the terminal lock compares against it. dirty records whether
	// any mutator ran since then. Both reset after a successful Validate.
	originalStatus Status
	dirty          bool
}

// NewService creates a service in status created with a fresh identity.
// Nothing is validated here; the caller must invoke Validate before
// persisting.
func NewService(
	agreementID uuid.UUID,
	name, description string,
	runAmount, chgAmount decimal.Decimal,
	currency Currency,
	responsibleEmail, providerAllocation, localAllocation string,
	documentURL *string,
) *Service {
	s := &Service{
		serviceID:          uuid.New(),
		agreementID:        agreementID,
		name:               strings.TrimSpace(name),
		description:        strings.TrimSpace(description),
		runAmount:          runAmount,
		chgAmount:          chgAmount,
		amount:             runAmount.Add(chgAmount).Round(2),
		currency:           currency,
		responsibleEmail:   strings.ToLower(strings.TrimSpace(responsibleEmail)),
		providerAllocation: strings.TrimSpace(providerAllocation),
		localAllocation:    strings.TrimSpace(localAllocation),
		status:             StatusCreated,
		documentURL:        trimPtr(documentURL),
		originalStatus:     StatusCreated,
	}
	return s
}

// ReconstructService rebuilds a service from persistence. The loaded status
// becomes the reference point for the terminal lock.
func ReconstructService(
	serviceID, agreementID uuid.UUID,
	name, description string,
	runAmount, chgAmount, amount decimal.Decimal,
	currency Currency,
	responsibleEmail string,
	isActive bool,
	providerAllocation, localAllocation string,
	status Status,
	validatorEmail string,
	documentURL *string,
	serviceSystems []*ServiceSystem,
) *Service {
	return &Service{
		serviceID:          serviceID,
		agreementID:        agreementID,
		name:               name,
		description:        description,
		runAmount:          runAmount,
		chgAmount:          chgAmount,
		amount:             amount,
		currency:           currency,
		responsibleEmail:   responsibleEmail,
		isActive:           isActive,
		providerAllocation: providerAllocation,
		localAllocation:    localAllocation,
		status:             status,
		validatorEmail:     validatorEmail,
		documentURL:        documentURL,
		serviceSystems:     serviceSystems,
		originalStatus:     status,
	}
}

func (s *Service) ID() uuid.UUID { return s.serviceID }

func (s *Service) AgreementID() uuid.UUID { return s.agreementID }

func (s *Service) Name() string { return s.name }

func (s *Service) Description() string { return s.description }

func (s *Service) RunAmount() decimal.Decimal { return s.runAmount }

func (s *Service) ChgAmount() decimal.Decimal { return s.chgAmount }

func (s *Service) Amount() decimal.Decimal { return s.amount }

func (s *Service) Currency() Currency { return s.currency }

func (s *Service) ResponsibleEmail() string { return s.responsibleEmail }

func (s *Service) IsActive() bool { return s.isActive }

func (s *Service) ProviderAllocation() string { return s.providerAllocation }

func (s *Service) LocalAllocation() string { return s.localAllocation }

func (s *Service) Status() Status { return s.status }

func (s *Service) ValidatorEmail() string { return s.validatorEmail }

func (s *Service) DocumentURL() *string { return s.documentURL }

// ServiceSystems returns the allocation slices in attachment order.
func (s *Service) ServiceSystems() []*ServiceSystem { return s.serviceSystems }

func (s *Service) ChangeName(name string) {
	s.name = strings.TrimSpace(name)
	s.dirty = true
}

func (s *Service) ChangeDescription(description string) {
	s.description = strings.TrimSpace(description)
	s.dirty = true
}

// ChangeAmounts sets the run and change totals, rederives the combined
// amount, and fans the new totals out to every system slice.
func (s *Service) ChangeAmounts(runAmount, chgAmount decimal.Decimal) {
	s.runAmount = runAmount
	s.chgAmount = chgAmount
	s.amount = runAmount.Add(chgAmount).Round(2)
	s.dirty = true
	s.recalculateSystems()
}

func (s *Service) recalculateSystems() {
	for _, ss := range s.serviceSystems {
		ss.calculateAmounts(s.runAmount, s.chgAmount)
	}
}

// ChangeCurrency sets the currency on the service and every system slice.
func (s *Service) ChangeCurrency(currency Currency) {
	s.currency = currency
	s.dirty = true
	for _, ss := range s.serviceSystems {
		ss.currency = currency
	}
}

func (s *Service) ChangeResponsibleEmail(email string) {
	s.responsibleEmail = strings.ToLower(strings.TrimSpace(email))
	s.dirty = true
}

func (s *Service) ChangeProviderAllocation(text string) {
	s.providerAllocation = strings.TrimSpace(text)
	s.dirty = true
}

func (s *Service) ChangeLocalAllocation(text string) {
	s.localAllocation = strings.TrimSpace(text)
	s.dirty = true
}

func (s *Service) ChangeStatus(status Status) {
	s.status = status
	s.dirty = true
}

func (s *Service) ChangeValidatorEmail(email string) {
	s.validatorEmail = strings.ToLower(strings.TrimSpace(email))
	s.dirty = true
}

func (s *Service) ChangeDocumentURL(url *string) {
	s.documentURL = trimPtr(url)
	s.dirty = true
}

// HasServiceSystem reports whether a slice for the system is attached.
func (s *Service) HasServiceSystem(systemID uuid.UUID) bool {
	for _, ss := range s.serviceSystems {
		if ss.systemID == systemID {
			return true
		}
	}
	return false
}

// AddServiceSystem appends a slice for the system with amounts derived from
// the current totals.
func (s *Service) AddServiceSystem(systemID uuid.UUID, allocation decimal.Decimal) {
	ss := NewServiceSystem(s.serviceID, systemID, allocation, s.runAmount, s.chgAmount, s.currency)
	s.serviceSystems = append(s.serviceSystems, ss)
	s.dirty = true
}

// ChangeServiceSystemAllocation updates the slice for the system and rederives
// its amounts. It reports whether the system was attached.
func (s *Service) ChangeServiceSystemAllocation(systemID uuid.UUID, allocation decimal.Decimal) bool {
	for _, ss := range s.serviceSystems {
		if ss.systemID == systemID {
			ss.allocation = allocation
			ss.calculateAmounts(s.runAmount, s.chgAmount)
			s.dirty = true
			return true
		}
	}
	return false
}

// RemoveServiceSystem detaches the slice for the system. It reports whether
// the system was attached.
func (s *Service) RemoveServiceSystem(systemID uuid.UUID) bool {
	for i, ss := range s.serviceSystems {
		if ss.systemID == systemID {
			s.serviceSystems = append(s.serviceSystems[:i], s.serviceSystems[i+1:]...)
			s.dirty = true
			return true
		}
	}
	return false
}

// TotalAllocation sums the slice percentages with exact decimal arithmetic.
func (s *Service) TotalAllocation() decimal.Decimal {
	total := decimal.Zero
	for _, ss := range s.serviceSystems {
		total = total.Add(ss.allocation)
	}
	return total
}

// ChangeActivationStatusBasedOnAllocation recomputes the derived isActive
// flag: a service is active exactly when its systems absorb 100% of the cost.
// The flag is never updated implicitly; callers invoke this after touching
// allocations.
func (s *Service) ChangeActivationStatusBasedOnAllocation() {
	s.isActive = s.TotalAllocation().Equal(money.Hundred)
}

// Clone deep-copies the service under another agreement with a fresh
// identity. Used when an agreement revision replicates its service tree.
func (s *Service) Clone(agreementID uuid.UUID) *Service {
	clone := &Service{
		serviceID:          uuid.New(),
		agreementID:        agreementID,
		name:               s.name,
		description:        s.description,
		runAmount:          s.runAmount,
		chgAmount:          s.chgAmount,
		amount:             s.amount,
		currency:           s.currency,
		responsibleEmail:   s.responsibleEmail,
		isActive:           s.isActive,
		providerAllocation: s.providerAllocation,
		localAllocation:    s.localAllocation,
		status:             s.status,
		validatorEmail:     s.validatorEmail,
		documentURL:        trimPtr(s.documentURL),
		originalStatus:     s.status,
	}
	for _, ss := range s.serviceSystems {
		clone.serviceSystems = append(clone.serviceSystems, &ServiceSystem{
			serviceID:  clone.serviceID,
			systemID:   ss.systemID,
			allocation: ss.allocation,
			runAmount:  ss.runAmount,
			chgAmount:  ss.chgAmount,
			amount:     ss.amount,
			currency:   ss.currency,
		})
	}
	return clone
}

// Validate enforces the terminal lock, the allocation gate, and every field
// rule, aggregating field problems into a single validation error. On
// success the current status becomes the new reference point for the lock.
func (s *Service) Validate() error {
	// Terminal lock: a service that was already approved or rejected when it
	// was loaded cannot be changed, whatever the change was.
	if s.originalStatus.IsTerminal() && s.dirty {
		return errors.NewValidationError(msgTerminalLock)
	}

	var problems []string

	if len(s.name) < 2 || len(s.name) > 100 {
		problems = append(problems, "Service name must be between 2 and 100 characters long")
	}
	if len(s.description) > 500 {
		problems = append(problems, "Service description must be at most 500 characters long")
	}
	if !money.IsAmount(s.runAmount) {
		problems = append(problems, "Service run amount must be a non-negative decimal with at most 2 decimal places and 12 total digits")
	}
	if !money.IsAmount(s.chgAmount) {
		problems = append(problems, "Service change amount must be a non-negative decimal with at most 2 decimal places and 12 total digits")
	}
	if !s.currency.IsValid() {
		problems = append(problems, "Service currency must be EUR or USD")
	}
	if !validation.IsEmail(s.responsibleEmail) {
		problems = append(problems, "Service responsible email must be a valid email address")
	}
	if len(s.providerAllocation) > 500 {
		problems = append(problems, "Service provider allocation must be at most 500 characters long")
	}
	if len(s.localAllocation) > 500 {
		problems = append(problems, "Service local allocation must be at most 500 characters long")
	}
	if !s.status.IsValid() {
		problems = append(problems, "Service status must be one of created, assigned, approved, rejected")
	}
	if s.validatorEmail != "" && !validation.IsEmail(s.validatorEmail) {
		problems = append(problems, "Service validator email must be a valid email address")
	}
	if s.documentURL != nil {
		if len(*s.documentURL) > 300 {
			problems = append(problems, "Service document URL must be at most 300 characters long")
		}
		if !validation.IsURL(*s.documentURL) {
			problems = append(problems, "Service document URL must be a valid URL")
		}
	}
	for _, ss := range s.serviceSystems {
		if !money.IsAllocation(ss.allocation) {
			problems = append(problems, "System allocation must be a decimal between 0.000001 and 100 with at most 6 decimal places")
			break
		}
	}

	// Allocation gate: a terminal status requires the slices to absorb
	// exactly 100% of the cost, decimal-summed.
	if s.status.IsTerminal() && !s.TotalAllocation().Equal(money.Hundred) {
		problems = append(problems, msgAllocationGate)
	}

	if len(problems) > 0 {
		return errors.NewValidationError(strings.Join(problems, ". "))
	}

	s.originalStatus = s.status
	s.dirty = false
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
