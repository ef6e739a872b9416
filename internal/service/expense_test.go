package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/repo"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/service"
)

// mockExpenseRepo is a hand-written test double for repo.ExpenseRepo.
type mockExpenseRepo struct {
	create    func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	listPaged func(ctx context.Context, params domain.PaginationParams) ([]domain.Expense, int64, error)
	update    func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, e)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

func echoExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{
		create: func(_ context.Context, e domain.Expense) (domain.Expense, error) { return e, nil },
		update: func(_ context.Context, e domain.Expense) (domain.Expense, error) { return e, nil },
	}
}

func validExpense() domain.Expense {
	return domain.Expense{
		Category:    "coworking",
		AmountCents: 14900,
		Currency:    "THB",
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestExpenseService_Create_Valid(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo())

	got, err := svc.Create(context.Background(), validExpense())

	require.NoError(t, err)
	assert.Equal(t, "coworking", got.Category)
}

func TestExpenseService_Create_NormalizesCurrency(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo())

	expense := validExpense()
	expense.Currency = " thb "

	got, err := svc.Create(context.Background(), expense)

	require.NoError(t, err)
	assert.Equal(t, "THB", got.Currency)
}

func TestExpenseService_Create_MissingCategory(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo())

	expense := validExpense()
	expense.Category = ""

	_, err := svc.Create(context.Background(), expense)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_Create_NonPositiveAmount(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo())

	expense := validExpense()
	expense.AmountCents = 0

	_, err := svc.Create(context.Background(), expense)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_Create_BadCurrency(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo())

	expense := validExpense()
	expense.Currency = "BAHT"

	_, err := svc.Create(context.Background(), expense)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_Create_MissingDate(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo())

	expense := validExpense()
	expense.Date = time.Time{}

	_, err := svc.Create(context.Background(), expense)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_ListPaged_Empty(t *testing.T) {
	r := &mockExpenseRepo{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.Expense, int64, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewExpenseService(r)

	got, total, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Zero(t, total)
}

func TestExpenseService_Delete_NotFound(t *testing.T) {
	r := &mockExpenseRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewExpenseService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
