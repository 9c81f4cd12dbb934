package queries

import (
	"context"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type CustomerViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindAll(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.repo.FindAll(ctx)
}
