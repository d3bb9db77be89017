// Package testutil provides in-memory mock implementations for testing the
// application layer.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"tally/internal/domain/agreement"
	"tally/internal/domain/plan"
	"tally/internal/domain/service"
	"tally/internal/domain/userlist"
	"tally/internal/shared/logger"
)

// MockPlanRepository is an in-memory implementation of plan.Repository.
type MockPlanRepository struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]*plan.Plan

	insertError error
	updateError error
	deleteError error
	findError   error
	listError   error
}

// NewMockPlanRepository creates a new mock plan repository.
func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{plans: make(map[uuid.UUID]*plan.Plan)}
}

// AddPlan seeds a plan without going through Insert.
func (m *MockPlanRepository) AddPlan(p *plan.Plan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID()] = p
}

// SetFindError sets the error returned by FindByID.
func (m *MockPlanRepository) SetFindError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findError = err
}

func (m *MockPlanRepository) Insert(ctx context.Context, p *plan.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertError != nil {
		return m.insertError
	}
	m.plans[p.ID()] = p
	return nil
}

func (m *MockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateError != nil {
		return m.updateError
	}
	m.plans[p.ID()] = p
	return nil
}

func (m *MockPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.plans, id)
	return nil
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findError != nil {
		return nil, m.findError
	}
	return m.plans[id], nil
}

func (m *MockPlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.listError != nil {
		return nil, m.listError
	}
	out := make([]*plan.Plan, 0, len(m.plans))
	for _, p := range m.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlanDate().After(out[j].PlanDate()) })
	return out, nil
}

// MockAgreementRepository is an in-memory implementation of
// agreement.Repository.
type MockAgreementRepository struct {
	mu         sync.RWMutex
	agreements map[uuid.UUID]*agreement.Agreement

	insertError error
	updateError error
	deleteError error
	findError   error
}

// NewMockAgreementRepository creates a new mock agreement repository.
func NewMockAgreementRepository() *MockAgreementRepository {
	return &MockAgreementRepository{agreements: make(map[uuid.UUID]*agreement.Agreement)}
}

// AddAgreement seeds an agreement without going through Insert.
func (m *MockAgreementRepository) AddAgreement(a *agreement.Agreement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agreements[a.ID()] = a
}

// SetInsertError sets the error returned by Insert.
func (m *MockAgreementRepository) SetInsertError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertError = err
}

func (m *MockAgreementRepository) Insert(ctx context.Context, a *agreement.Agreement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertError != nil {
		return m.insertError
	}
	m.agreements[a.ID()] = a
	return nil
}

func (m *MockAgreementRepository) Update(ctx context.Context, a *agreement.Agreement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateError != nil {
		return m.updateError
	}
	m.agreements[a.ID()] = a
	return nil
}

func (m *MockAgreementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.agreements, id)
	return nil
}

func (m *MockAgreementRepository) FindByID(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findError != nil {
		return nil, m.findError
	}
	return m.agreements[id], nil
}

func (m *MockAgreementRepository) CountRevisions(ctx context.Context, year int, code string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, a := range m.agreements {
		if a.Year() == year && a.Code() == code {
			count++
		}
	}
	return count, nil
}

func (m *MockAgreementRepository) ListRevisions(ctx context.Context, year int, code string) ([]*agreement.Agreement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*agreement.Agreement
	for _, a := range m.agreements {
		if a.Year() == year && a.Code() == code {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revision() < out[j].Revision() })
	return out, nil
}

func (m *MockAgreementRepository) CountByPlanID(ctx context.Context, planID uuid.UUID) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, a := range m.agreements {
		if a.ProviderPlanID() == planID || a.LocalPlanID() == planID {
			count++
		}
	}
	return count, nil
}

func (m *MockAgreementRepository) List(ctx context.Context) ([]*agreement.Agreement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*agreement.Agreement, 0, len(m.agreements))
	for _, a := range m.agreements {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year() != out[j].Year() {
			return out[i].Year() < out[j].Year()
		}
		if out[i].Code() != out[j].Code() {
			return out[i].Code() < out[j].Code()
		}
		return out[i].Revision() < out[j].Revision()
	})
	return out, nil
}

// MockServiceRepository is an in-memory implementation of service.Repository.
type MockServiceRepository struct {
	mu       sync.RWMutex
	services map[uuid.UUID]*service.Service

	insertError error
	updateError error
	deleteError error
	findError   error
}

// NewMockServiceRepository creates a new mock service repository.
func NewMockServiceRepository() *MockServiceRepository {
	return &MockServiceRepository{services: make(map[uuid.UUID]*service.Service)}
}

// AddService seeds a service without going through Insert.
func (m *MockServiceRepository) AddService(s *service.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[s.ID()] = s
}

// SetUpdateError sets the error returned by Update.
func (m *MockServiceRepository) SetUpdateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateError = err
}

// SetInsertError sets the error returned by Insert.
func (m *MockServiceRepository) SetInsertError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertError = err
}

func (m *MockServiceRepository) Insert(ctx context.Context, s *service.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertError != nil {
		return m.insertError
	}
	m.services[s.ID()] = s
	return nil
}

func (m *MockServiceRepository) Update(ctx context.Context, s *service.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateError != nil {
		return m.updateError
	}
	m.services[s.ID()] = s
	return nil
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.services, id)
	return nil
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findError != nil {
		return nil, m.findError
	}
	return m.services[id], nil
}

func (m *MockServiceRepository) FindManyByAgreementID(ctx context.Context, agreementID uuid.UUID) ([]*service.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*service.Service
	for _, s := range m.services {
		if s.AgreementID() == agreementID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *MockServiceRepository) CountNotValidatedByAgreementID(ctx context.Context, agreementID uuid.UUID) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, s := range m.services {
		if s.AgreementID() == agreementID && !s.Status().IsTerminal() {
			count++
		}
	}
	return count, nil
}

// MockUserListRepository is an in-memory implementation of
// userlist.Repository.
type MockUserListRepository struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]*userlist.UserList // keyed by service ID

	saveError   error
	deleteError error
	findError   error
}

// NewMockUserListRepository creates a new mock user list repository.
func NewMockUserListRepository() *MockUserListRepository {
	return &MockUserListRepository{lists: make(map[uuid.UUID]*userlist.UserList)}
}

// AddUserList seeds a roster without going through Save.
func (m *MockUserListRepository) AddUserList(ul *userlist.UserList) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[ul.ServiceID()] = ul
}

// SetSaveError sets the error returned by Save.
func (m *MockUserListRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

func (m *MockUserListRepository) Save(ctx context.Context, ul *userlist.UserList) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.lists[ul.ServiceID()] = ul
	return nil
}

func (m *MockUserListRepository) DeleteByServiceID(ctx context.Context, serviceID uuid.UUID) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return uuid.Nil, m.deleteError
	}
	ul, exists := m.lists[serviceID]
	if !exists {
		return uuid.Nil, nil
	}
	delete(m.lists, serviceID)
	return ul.ID(), nil
}

func (m *MockUserListRepository) FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*userlist.UserList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findError != nil {
		return nil, m.findError
	}
	return m.lists[serviceID], nil
}

// MockTxManager runs transactional functions directly against the mocks.
type MockTxManager struct {
	mu    sync.Mutex
	calls int
	err   error
}

// NewMockTxManager creates a new mock transaction manager.
func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

// SetError makes RunInTransaction fail without invoking the function.
func (m *MockTxManager) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls reports how many transactions ran.
func (m *MockTxManager) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	if m.err != nil {
		err := m.err
		m.mu.Unlock()
		return err
	}
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

// MockLogger records log calls for assertion.
type MockLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// LogEntry records one log call.
type LogEntry struct {
	Level   string
	Message string
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{entries: make([]LogEntry, 0)}
}

func (m *MockLogger) Debug(msg string, args ...any) { m.log("DEBUG", msg) }

func (m *MockLogger) Info(msg string, args ...any) { m.log("INFO", msg) }

func (m *MockLogger) Warn(msg string, args ...any) { m.log("WARN", msg) }

func (m *MockLogger) Error(msg string, args ...any) { m.log("ERROR", msg) }

func (m *MockLogger) With(args ...any) logger.Interface { return m }

func (m *MockLogger) Named(name string) logger.Interface { return m }

func (m *MockLogger) Debugw(msg string, keysAndValues ...interface{}) { m.log("DEBUG", msg) }

func (m *MockLogger) Infow(msg string, keysAndValues ...interface{}) { m.log("INFO", msg) }

func (m *MockLogger) Warnw(msg string, keysAndValues ...interface{}) { m.log("WARN", msg) }

func (m *MockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.log("ERROR", msg) }

func (m *MockLogger) log(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg})
}

// Entries returns all recorded log calls.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]LogEntry(nil), m.entries...)
}
