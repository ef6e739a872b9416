package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// ExpenseRepo defines the persistence operations for expenses.
type ExpenseRepo interface {
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	// ListPaged returns one page of expenses ordered by date descending
	// (most recent first) plus the total count.
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Expense, int64, error)
	Update(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

func (r *pgExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (category, description, amount_cents, currency, date)
		VALUES (@category, @description, @amount_cents, @currency, @date)
		RETURNING id, category, description, amount_cents, currency, date, created_at, updated_at`

	args := pgx.NamedArgs{
		"category":     expense.Category,
		"description":  expense.Description,
		"amount_cents": expense.AmountCents,
		"currency":     expense.Currency,
		"date":         expense.Date,
	}

	result, err := scanExpense(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	const q = `
		SELECT id, category, description, amount_cents, currency, date, created_at, updated_at
		FROM expenses
		WHERE id = @id`

	result, err := scanExpense(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgExpenseRepo) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Expense, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM expenses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT id, category, description, amount_cents, currency, date, created_at, updated_at
		FROM expenses
		ORDER BY date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListPaged: scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListPaged: rows: %w", err)
	}

	return expenses, total, nil
}

func (r *pgExpenseRepo) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	const q = `
		UPDATE expenses
		SET category     = @category,
		    description  = @description,
		    amount_cents = @amount_cents,
		    currency     = @currency,
		    date         = @date,
		    updated_at   = now()
		WHERE id = @id
		RETURNING id, category, description, amount_cents, currency, date, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":           expense.ID,
		"category":     expense.Category,
		"description":  expense.Description,
		"amount_cents": expense.AmountCents,
		"currency":     expense.Currency,
		"date":         expense.Date,
	}

	result, err := scanExpense(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanExpense maps a single database row into a domain.Expense.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e    domain.Expense
		id   pgtype.UUID
		date pgtype.Date
	)

	err := s.Scan(&id, &e.Category, &e.Description, &e.AmountCents, &e.Currency, &date, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.Date = date.Time
	return e, nil
}
