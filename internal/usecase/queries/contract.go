package queries

import (
	"context"

	"github.com/google/uuid"
)

type ContractQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	ListOpen(ctx context.Context) ([]*ContractListItem, error)
}

type ContractViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	FindOpen(ctx context.Context) ([]*ContractListItem, error)
}

type contractQueriesImpl struct {
	repo ContractViewRepo
}

func NewContractQueries(repo ContractViewRepo) ContractQueries {
	return &contractQueriesImpl{repo: repo}
}

func (q *contractQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *contractQueriesImpl) ListOpen(ctx context.Context) ([]*ContractListItem, error) {
	return q.repo.FindOpen(ctx)
}
