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

// ClientRepo defines the persistence operations for CRM clients.
type ClientRepo interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
	// ListPaged returns one page of clients ordered by name plus the total count.
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Client, int64, error)
	Update(ctx context.Context, client domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

func (r *pgClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	const q = `
		INSERT INTO clients (name, email, company, country, notes)
		VALUES (@name, @email, @company, @country, @notes)
		RETURNING id, name, email, company, country, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":    client.Name,
		"email":   client.Email,
		"company": client.Company,
		"country": client.Country,
		"notes":   client.Notes,
	}

	result, err := scanClient(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgClientRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	const q = `
		SELECT id, name, email, company, country, notes, created_at, updated_at
		FROM clients
		WHERE id = @id`

	result, err := scanClient(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgClientRepo) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Client, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ClientRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT id, name, email, company, country, notes, created_at, updated_at
		FROM clients
		ORDER BY name ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ClientRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ClientRepo.ListPaged: scan: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ClientRepo.ListPaged: rows: %w", err)
	}

	return clients, total, nil
}

func (r *pgClientRepo) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	const q = `
		UPDATE clients
		SET name       = @name,
		    email      = @email,
		    company    = @company,
		    country    = @country,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, email, company, country, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":      client.ID,
		"name":    client.Name,
		"email":   client.Email,
		"company": client.Company,
		"country": client.Country,
		"notes":   client.Notes,
	}

	result, err := scanClient(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM clients WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanClient maps a single database row into a domain.Client.
func scanClient(s scanner) (domain.Client, error) {
	var (
		c  domain.Client
		id pgtype.UUID
	)

	err := s.Scan(&id, &c.Name, &c.Email, &c.Company, &c.Country, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}
