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

type agreementOption func(*agreementSeed)

type agreementSeed struct {
	year int
	code string
}

func withYear(year int) agreementOption {
	return func(s *agreementSeed) { s.year = year }
}

func withCode(code string) agreementOption {
	return func(s *agreementSeed) { s.code = code }
}

func seedAgreement(t *testing.T, repo *testutil.MockAgreementRepository, opts ...agreementOption) *agreement.Agreement {
	t.Helper()
	seed := &agreementSeed{year: 2026, code: "AGR-001"}
	for _, opt := range opts {
		opt(seed)
	}
	a := agreement.NewAgreement(
		seed.year, seed.code,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		uuid.New(), uuid.New(),
		"Hosting", "Managed hosting", "owner@example.com",
		nil, nil,
	)
	require.NoError(t, a.Validate())
	repo.AddAgreement(a)
	return a
}

func seedService(t *testing.T, repo *testutil.MockServiceRepository, agreementID uuid.UUID, status service.Status) *service.Service {
	t.Helper()
	s := service.NewService(
		agreementID,
		"Compute", "Virtual machines",
		decimal.RequireFromString("1000.00"), decimal.RequireFromString("500.00"),
		service.CurrencyEUR,
		"ops@example.com", "Provider covers run", "Local covers change",
		nil,
	)
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("100"))
	s.ChangeActivationStatusBasedOnAllocation()
	s.ChangeStatus(status)
	require.NoError(t, s.Validate())
	repo.AddService(s)
	return s
}

func seedUserList(t *testing.T, repo *testutil.MockUserListRepository, serviceID uuid.UUID) *userlist.UserList {
	t.Helper()
	items := []*userlist.UserListItem{
		userlist.NewUserListItem("Alice Doe", "alice@example.com", "U1234", "Finance", "CC-100-01"),
	}
	list := userlist.NewUserList(serviceID, items)
	require.NoError(t, list.Validate())
	repo.AddUserList(list)
	return list
}

func TestCreateAgreement_Success(t *testing.T) {
	repo := testutil.NewMockAgreementRepository()
	uc := NewCreateAgreementUseCase(repo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), CreateAgreementCommand{
		Year:           2026,
		Code:           "AGR-001",
		RevisionDate:   "2026-02-01",
		ProviderPlanID: uuid.NewString(),
		LocalPlanID:    uuid.NewString(),
		Name:           "Hosting",
		Description:    "Managed hosting",
		ContactEmail:   "Owner@Example.COM",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Revision)
	assert.False(t, result.IsRevised)
	assert.Equal(t, "owner@example.com", result.ContactEmail)
}

func TestUpdateAgreement_CodeLockedByLineage(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	a := seedAgreement(t, agreementRepo)
	// A second revision of the same lineage.
	successor := a.NewRevision(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), uuid.New(), uuid.New())
	require.NoError(t, successor.Validate())
	agreementRepo.AddAgreement(successor)

	uc := NewUpdateAgreementUseCase(agreementRepo, serviceRepo, testutil.NewMockLogger())

	code := "AGR-RENAMED"
	_, err := uc.Execute(context.Background(), UpdateAgreementCommand{
		AgreementID: a.ID().String(),
		Code:        &code,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Agreement code cannot be changed: 2 revisions found")
}

func TestUpdateAgreement_CodeChangeAllowedForSoleRevision(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	a := seedAgreement(t, agreementRepo)

	uc := NewUpdateAgreementUseCase(agreementRepo, serviceRepo, testutil.NewMockLogger())

	code := "AGR-RENAMED"
	result, err := uc.Execute(context.Background(), UpdateAgreementCommand{
		AgreementID: a.ID().String(),
		Code:        &code,
	})

	require.NoError(t, err)
	assert.Equal(t, "AGR-RENAMED", result.Code)
}

func TestUpdateAgreement_RevisedRequiresValidatedServices(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	a := seedAgreement(t, agreementRepo)
	seedService(t, serviceRepo, a.ID(), service.StatusApproved)
	seedService(t, serviceRepo, a.ID(), service.StatusCreated)
	seedService(t, serviceRepo, a.ID(), service.StatusAssigned)

	uc := NewUpdateAgreementUseCase(agreementRepo, serviceRepo, testutil.NewMockLogger())

	revised := true
	_, err := uc.Execute(context.Background(), UpdateAgreementCommand{
		AgreementID: a.ID().String(),
		IsRevised:   &revised,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Agreement cannot be marked as revised: 2 services not validated")
}

func TestUpdateAgreement_RevisedSucceedsWhenAllValidated(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	a := seedAgreement(t, agreementRepo)
	seedService(t, serviceRepo, a.ID(), service.StatusApproved)
	seedService(t, serviceRepo, a.ID(), service.StatusRejected)

	uc := NewUpdateAgreementUseCase(agreementRepo, serviceRepo, testutil.NewMockLogger())

	revised := true
	result, err := uc.Execute(context.Background(), UpdateAgreementCommand{
		AgreementID: a.ID().String(),
		IsRevised:   &revised,
	})

	require.NoError(t, err)
	assert.True(t, result.IsRevised)
}

func TestDeleteAgreement_CascadesServicesAndUserLists(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	userListRepo := testutil.NewMockUserListRepository()
	txMgr := testutil.NewMockTxManager()

	a := seedAgreement(t, agreementRepo)
	s1 := seedService(t, serviceRepo, a.ID(), service.StatusCreated)
	s2 := seedService(t, serviceRepo, a.ID(), service.StatusCreated)
	seedUserList(t, userListRepo, s1.ID())

	uc := NewDeleteAgreementUseCase(agreementRepo, serviceRepo, userListRepo, txMgr, testutil.NewMockLogger())

	err := uc.Execute(context.Background(), a.ID().String())

	require.NoError(t, err)
	assert.Equal(t, 1, txMgr.Calls())

	gone, _ := agreementRepo.FindByID(context.Background(), a.ID())
	assert.Nil(t, gone)
	for _, id := range []uuid.UUID{s1.ID(), s2.ID()} {
		svc, _ := serviceRepo.FindByID(context.Background(), id)
		assert.Nil(t, svc)
	}
	list, _ := userListRepo.FindByServiceID(context.Background(), s1.ID())
	assert.Nil(t, list)
}

func TestDeleteAgreement_NotFound(t *testing.T) {
	uc := NewDeleteAgreementUseCase(
		testutil.NewMockAgreementRepository(),
		testutil.NewMockServiceRepository(),
		testutil.NewMockUserListRepository(),
		testutil.NewMockTxManager(),
		testutil.NewMockLogger(),
	)

	err := uc.Execute(context.Background(), uuid.NewString())

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateRevision_ClonesServiceTree(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	userListRepo := testutil.NewMockUserListRepository()
	txMgr := testutil.NewMockTxManager()

	a := seedAgreement(t, agreementRepo)
	s := seedService(t, serviceRepo, a.ID(), service.StatusApproved)
	seedUserList(t, userListRepo, s.ID())

	uc := NewCreateAgreementRevisionUseCase(agreementRepo, serviceRepo, userListRepo, txMgr, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), CreateAgreementRevisionCommand{
		AgreementID:    a.ID().String(),
		RevisionDate:   "2026-06-01",
		ProviderPlanID: uuid.NewString(),
		LocalPlanID:    uuid.NewString(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Revision)
	assert.False(t, result.IsRevised)
	assert.NotEqual(t, a.ID().String(), result.AgreementID)

	// The service tree was replicated under the new revision.
	clones, err := serviceRepo.FindManyByAgreementID(context.Background(), mustUUID(t, result.AgreementID))
	require.NoError(t, err)
	require.Len(t, clones, 1)
	clone := clones[0]
	assert.NotEqual(t, s.ID(), clone.ID())
	assert.Equal(t, s.Name(), clone.Name())
	assert.Equal(t, s.Status(), clone.Status())
	require.Len(t, clone.ServiceSystems(), 1)

	clonedList, err := userListRepo.FindByServiceID(context.Background(), clone.ID())
	require.NoError(t, err)
	require.NotNil(t, clonedList)
	assert.Equal(t, 1, clonedList.UsersNumber())

	// The source tree is untouched.
	originals, err := serviceRepo.FindManyByAgreementID(context.Background(), a.ID())
	require.NoError(t, err)
	assert.Len(t, originals, 1)
}

func TestCreateRevision_SkipsEmptyUserLists(t *testing.T) {
	agreementRepo := testutil.NewMockAgreementRepository()
	serviceRepo := testutil.NewMockServiceRepository()
	userListRepo := testutil.NewMockUserListRepository()
	txMgr := testutil.NewMockTxManager()

	a := seedAgreement(t, agreementRepo)
	seedService(t, serviceRepo, a.ID(), service.StatusApproved)

	uc := NewCreateAgreementRevisionUseCase(agreementRepo, serviceRepo, userListRepo, txMgr, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), CreateAgreementRevisionCommand{
		AgreementID:    a.ID().String(),
		RevisionDate:   "2026-06-01",
		ProviderPlanID: uuid.NewString(),
		LocalPlanID:    uuid.NewString(),
	})

	require.NoError(t, err)
	clones, err := serviceRepo.FindManyByAgreementID(context.Background(), mustUUID(t, result.AgreementID))
	require.NoError(t, err)
	require.Len(t, clones, 1)

	list, err := userListRepo.FindByServiceID(context.Background(), clones[0].ID())
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestListAgreements_LineageRequiresYearAndCode(t *testing.T) {
	repo := testutil.NewMockAgreementRepository()
	uc := NewListAgreementsUseCase(repo, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), ListAgreementsQuery{Year: 2026})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListAgreements_Lineage(t *testing.T) {
	repo := testutil.NewMockAgreementRepository()
	a := seedAgreement(t, repo)
	successor := a.NewRevision(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), uuid.New(), uuid.New())
	require.NoError(t, successor.Validate())
	repo.AddAgreement(successor)
	seedAgreement(t, repo, withCode("AGR-OTHER"))

	uc := NewListAgreementsUseCase(repo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), ListAgreementsQuery{Year: 2026, Code: "AGR-001"})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Revision)
	assert.Equal(t, 2, result[1].Revision)
}

func mustUUID(t *testing.T, raw string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return id
}
