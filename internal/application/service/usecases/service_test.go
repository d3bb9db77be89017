package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/application/testutil"
	"tally/internal/domain/agreement"
	"tally/internal/domain/service"
	"tally/internal/domain/userlist"
	"tally/internal/shared/errors"
)

func seedAgreement(t *testing.T, repo *testutil.MockAgreementRepository) *agreement.Agreement {
	t.Helper()
	a := agreement.NewAgreement(
		2026, "AGR-001",
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		uuid.New(), uuid.New(),
		"Hosting", "Managed hosting", "owner@example.com",
		nil, nil,
	)
	require.NoError(t, a.Validate())
	repo.AddAgreement(a)
	return a
}

func seedService(t *testing.T, repo *testutil.MockServiceRepository, agreementID uuid.UUID) *service.Service {
	t.Helper()
	s := service.NewService(
		agreementID,
		"Compute", "Virtual machines",
		decimal.RequireFromString("1000.00"), decimal.RequireFromString("500.00"),
		service.CurrencyEUR,
		"ops@example.com", "Provider covers run", "Local covers change",
		nil,
	)
	require.NoError(t, s.Validate())
	repo.AddService(s)
	return s
}

func TestCreateService_Success(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	agreementRepo := testutil.NewMockAgreementRepository()
	a := seedAgreement(t, agreementRepo)

	uc := NewCreateServiceUseCase(serviceRepo, agreementRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), CreateServiceCommand{
		AgreementID:        a.ID().String(),
		Name:               "Compute",
		Description:        "Virtual machines",
		RunAmount:          "1000.00",
		ChgAmount:          "500.00",
		Currency:           "EUR",
		ResponsibleEmail:   "Ops@Example.COM",
		ProviderAllocation: "Provider covers run",
		LocalAllocation:    "Local covers change",
	})

	require.NoError(t, err)
	assert.Equal(t, "created", result.Status)
	assert.Equal(t, "1500.00", result.Amount)
	assert.Equal(t, "ops@example.com", result.ResponsibleEmail)
	assert.False(t, result.IsActive)
	assert.Empty(t, result.ServiceSystems)
}

func TestCreateService_AgreementNotFound(t *testing.T) {
	uc := NewCreateServiceUseCase(
		testutil.NewMockServiceRepository(),
		testutil.NewMockAgreementRepository(),
		testutil.NewMockLogger(),
	)

	_, err := uc.Execute(context.Background(), CreateServiceCommand{
		AgreementID:      uuid.NewString(),
		Name:             "Compute",
		RunAmount:        "1000.00",
		ChgAmount:        "500.00",
		Currency:         "EUR",
		ResponsibleEmail: "ops@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateService_AmountChangeFansOutToSystems(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("50"))
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("50"))
	require.NoError(t, s.Validate())

	uc := NewUpdateServiceUseCase(serviceRepo, testutil.NewMockLogger())

	run := "2000.00"
	chg := "1000.00"
	result, err := uc.Execute(context.Background(), UpdateServiceCommand{
		ServiceID: s.ID().String(),
		RunAmount: &run,
		ChgAmount: &chg,
	})

	require.NoError(t, err)
	assert.Equal(t, "3000.00", result.Amount)
	require.Len(t, result.ServiceSystems, 2)
	for _, ss := range result.ServiceSystems {
		assert.Equal(t, "1000.00", ss.RunAmount)
		assert.Equal(t, "500.00", ss.ChgAmount)
		assert.Equal(t, "1500.00", ss.Amount)
	}
}

func TestUpdateService_TerminalLock(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("100"))
	s.ChangeActivationStatusBasedOnAllocation()
	s.ChangeStatus(service.StatusApproved)
	require.NoError(t, s.Validate())

	uc := NewUpdateServiceUseCase(serviceRepo, testutil.NewMockLogger())

	name := "Renamed"
	_, err := uc.Execute(context.Background(), UpdateServiceCommand{
		ServiceID: s.ID().String(),
		Name:      &name,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Service cannot be changed after it has been approved or rejected")
}

func TestUpdateService_ApprovalRequiresFullAllocation(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("99.999999"))
	require.NoError(t, s.Validate())

	uc := NewUpdateServiceUseCase(serviceRepo, testutil.NewMockLogger())

	status := "approved"
	_, err := uc.Execute(context.Background(), UpdateServiceCommand{
		ServiceID: s.ID().String(),
		Status:    &status,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Service cannot be neither approved nor rejected when cost allocation to systems is not 100%")
}

func TestSaveServiceSystem_AppendsAndActivates(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())

	uc := NewSaveServiceSystemUseCase(serviceRepo, testutil.NewMockLogger())

	systemA := uuid.New()
	result, err := uc.Execute(context.Background(), SaveServiceSystemCommand{
		ServiceID:  s.ID().String(),
		SystemID:   systemA.String(),
		Allocation: "40",
	})
	require.NoError(t, err)
	assert.False(t, result.IsActive)
	require.Len(t, result.ServiceSystems, 1)
	assert.Equal(t, "400.00", result.ServiceSystems[0].RunAmount)

	result, err = uc.Execute(context.Background(), SaveServiceSystemCommand{
		ServiceID:  s.ID().String(),
		SystemID:   uuid.NewString(),
		Allocation: "60",
	})
	require.NoError(t, err)
	assert.True(t, result.IsActive)
	require.Len(t, result.ServiceSystems, 2)
}

func TestSaveServiceSystem_ReplacesExistingAllocation(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())
	systemID := uuid.New()
	s.AddServiceSystem(systemID, decimal.RequireFromString("30"))
	require.NoError(t, s.Validate())

	uc := NewSaveServiceSystemUseCase(serviceRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), SaveServiceSystemCommand{
		ServiceID:  s.ID().String(),
		SystemID:   systemID.String(),
		Allocation: "100",
	})

	require.NoError(t, err)
	require.Len(t, result.ServiceSystems, 1)
	assert.Equal(t, "100", result.ServiceSystems[0].Allocation)
	assert.Equal(t, "1000.00", result.ServiceSystems[0].RunAmount)
	assert.True(t, result.IsActive)
}

func TestSaveServiceSystem_RejectsInvalidAllocation(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())

	uc := NewSaveServiceSystemUseCase(serviceRepo, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), SaveServiceSystemCommand{
		ServiceID:  s.ID().String(),
		SystemID:   uuid.NewString(),
		Allocation: "0",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRemoveServiceSystem_Deactivates(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())
	systemA := uuid.New()
	systemB := uuid.New()
	s.AddServiceSystem(systemA, decimal.RequireFromString("50"))
	s.AddServiceSystem(systemB, decimal.RequireFromString("50"))
	s.ChangeActivationStatusBasedOnAllocation()
	require.NoError(t, s.Validate())
	require.True(t, s.IsActive())

	uc := NewRemoveServiceSystemUseCase(serviceRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), RemoveServiceSystemCommand{
		ServiceID: s.ID().String(),
		SystemID:  systemA.String(),
	})

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	require.Len(t, result.ServiceSystems, 1)
	assert.Equal(t, systemB.String(), result.ServiceSystems[0].SystemID)
}

func TestRemoveServiceSystem_NotAttached(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	s := seedService(t, serviceRepo, uuid.New())

	uc := NewRemoveServiceSystemUseCase(serviceRepo, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), RemoveServiceSystemCommand{
		ServiceID: s.ID().String(),
		SystemID:  uuid.NewString(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteService_RemovesUserListToo(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	userListRepo := testutil.NewMockUserListRepository()
	txMgr := testutil.NewMockTxManager()
	s := seedService(t, serviceRepo, uuid.New())

	items := []*userlist.UserListItem{
		userlist.NewUserListItem("Alice Doe", "alice@example.com", "U1234", "Finance", "CC-100-01"),
	}
	list := userlist.NewUserList(s.ID(), items)
	require.NoError(t, list.Validate())
	userListRepo.AddUserList(list)

	uc := NewDeleteServiceUseCase(serviceRepo, userListRepo, txMgr, testutil.NewMockLogger())

	err := uc.Execute(context.Background(), s.ID().String())

	require.NoError(t, err)
	assert.Equal(t, 1, txMgr.Calls())

	gone, _ := serviceRepo.FindByID(context.Background(), s.ID())
	assert.Nil(t, gone)
	goneList, _ := userListRepo.FindByServiceID(context.Background(), s.ID())
	assert.Nil(t, goneList)
}

func TestGetService_NotFound(t *testing.T) {
	uc := NewGetServiceUseCase(testutil.NewMockServiceRepository(), testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), uuid.NewString())

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListServices_ByAgreement(t *testing.T) {
	serviceRepo := testutil.NewMockServiceRepository()
	agreementID := uuid.New()
	seedService(t, serviceRepo, agreementID)
	seedService(t, serviceRepo, uuid.New())

	uc := NewListServicesUseCase(serviceRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), agreementID.String())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
