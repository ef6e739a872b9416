package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/repo"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/service"
)

// mockClientRepo is a hand-written test double for repo.ClientRepo.
type mockClientRepo struct {
	create    func(ctx context.Context, client domain.Client) (domain.Client, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Client, error)
	listPaged func(ctx context.Context, params domain.PaginationParams) ([]domain.Client, int64, error)
	update    func(ctx context.Context, client domain.Client) (domain.Client, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockClientRepo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	return m.create(ctx, c)
}
func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	return m.getByID(ctx, id)
}
func (m *mockClientRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Client, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockClientRepo) Update(ctx context.Context, c domain.Client) (domain.Client, error) {
	return m.update(ctx, c)
}
func (m *mockClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ClientRepo = (*mockClientRepo)(nil)

func echoClientRepo() *mockClientRepo {
	return &mockClientRepo{
		create: func(_ context.Context, c domain.Client) (domain.Client, error) { return c, nil },
		update: func(_ context.Context, c domain.Client) (domain.Client, error) { return c, nil },
	}
}

func validClient() domain.Client {
	return domain.Client{Name: "Acme Corp", Email: "billing@acme.example"}
}

func TestClientService_Create_Valid(t *testing.T) {
	svc := service.NewClientService(echoClientRepo())

	got, err := svc.Create(context.Background(), validClient())

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
}

func TestClientService_Create_MissingName(t *testing.T) {
	svc := service.NewClientService(echoClientRepo())

	client := validClient()
	client.Name = "   "

	_, err := svc.Create(context.Background(), client)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_Create_InvalidEmail(t *testing.T) {
	svc := service.NewClientService(echoClientRepo())

	client := validClient()
	client.Email = "not-an-email"

	_, err := svc.Create(context.Background(), client)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_Create_EmptyEmailAllowed(t *testing.T) {
	svc := service.NewClientService(echoClientRepo())

	client := validClient()
	client.Email = ""

	_, err := svc.Create(context.Background(), client)

	assert.NoError(t, err)
}

func TestClientService_ListPaged_Empty(t *testing.T) {
	r := &mockClientRepo{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.Client, int64, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewClientService(r)

	got, total, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Zero(t, total)
}

func TestClientService_Delete_NotFound(t *testing.T) {
	r := &mockClientRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewClientService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
