package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/repo"
)

// ExpenseService implements business logic for expense operations.
type ExpenseService struct {
	repo repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided ExpenseRepo.
func NewExpenseService(r repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{repo: r}
}

// Create validates and persists a new expense.
func (s *ExpenseService) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	expense, err := validateExpense(expense)
	if err != nil {
		return domain.Expense{}, err
	}
	result, err := s.repo.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single expense by ID.
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of expenses (most recent first) and the total count.
func (s *ExpenseService) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Expense, int64, error) {
	expenses, total, err := s.repo.ListPaged(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ExpenseService.ListPaged: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, total, nil
}

// Update validates and updates an existing expense.
func (s *ExpenseService) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	expense, err := validateExpense(expense)
	if err != nil {
		return domain.Expense{}, err
	}
	result, err := s.repo.Update(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// validateExpense enforces business rules common to Create and Update and
// returns the expense with its currency code normalized to upper case.
func validateExpense(expense domain.Expense) (domain.Expense, error) {
	if strings.TrimSpace(expense.Category) == "" {
		return domain.Expense{}, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if expense.AmountCents <= 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount_cents must be positive", domain.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(expense.Currency))
	if len(currency) != 3 {
		return domain.Expense{}, fmt.Errorf("%w: currency must be a 3-letter ISO-4217 code", domain.ErrValidation)
	}
	expense.Currency = currency
	if expense.Date.IsZero() {
		return domain.Expense{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return expense, nil
}
