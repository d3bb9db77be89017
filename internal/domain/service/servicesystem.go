package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tally/internal/domain/shared/money"
)

// ServiceSystem is a percentage slice of a service's cost assigned to one
// target system. It has no identity beyond the (serviceID, systemID) pair and
// lives inside the service aggregate. Monetary fields are derived from the
// parent's totals; each component is rounded to 2 decimal places on its own,
// so the sum of many slices can drift from the parent total by a cent.
type ServiceSystem struct {
	serviceID  uuid.UUID
	systemID   uuid.UUID
	allocation decimal.Decimal
	runAmount  decimal.Decimal
	chgAmount  decimal.Decimal
	amount     decimal.Decimal
	currency   Currency
}

// NewServiceSystem creates a slice and derives its amounts from the parent
// totals.
func NewServiceSystem(serviceID, systemID uuid.UUID, allocation decimal.Decimal, totalRun, totalChg decimal.Decimal, currency Currency) *ServiceSystem {
	ss := &ServiceSystem{
		serviceID:  serviceID,
		systemID:   systemID,
		allocation: allocation,
		currency:   currency,
	}
	ss.calculateAmounts(totalRun, totalChg)
	return ss
}

// ReconstructServiceSystem rebuilds a slice from persistence.
func ReconstructServiceSystem(serviceID, systemID uuid.UUID, allocation, runAmount, chgAmount, amount decimal.Decimal, currency Currency) *ServiceSystem {
	return &ServiceSystem{
		serviceID:  serviceID,
		systemID:   systemID,
		allocation: allocation,
		runAmount:  runAmount,
		chgAmount:  chgAmount,
		amount:     amount,
		currency:   currency,
	}
}

func (ss *ServiceSystem) ServiceID() uuid.UUID { return ss.serviceID }

func (ss *ServiceSystem) SystemID() uuid.UUID { return ss.systemID }

func (ss *ServiceSystem) Allocation() decimal.Decimal { return ss.allocation }

func (ss *ServiceSystem) RunAmount() decimal.Decimal { return ss.runAmount }

func (ss *ServiceSystem) ChgAmount() decimal.Decimal { return ss.chgAmount }

func (ss *ServiceSystem) Amount() decimal.Decimal { return ss.amount }

func (ss *ServiceSystem) Currency() Currency { return ss.currency }

// calculateAmounts derives the monetary slices from the parent totals.
// Rounding is applied per component, not on the combined total; amount is the
// sum of two already-rounded values.
func (ss *ServiceSystem) calculateAmounts(totalRun, totalChg decimal.Decimal) {
	ss.runAmount = money.Share(totalRun, ss.allocation)
	ss.chgAmount = money.Share(totalChg, ss.allocation)
	ss.amount = ss.runAmount.Add(ss.chgAmount).Round(2)
}
