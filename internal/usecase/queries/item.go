package queries

import (
	"context"

	"github.com/google/uuid"

	"equiprent/internal/domain/item"
	"equiprent/internal/pkg/errs"
)

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context, status *item.Status) ([]*ItemView, error)
}

type ItemViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAll(ctx context.Context) ([]*ItemView, error)
	FindByStatus(ctx context.Context, status item.Status) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	repo ItemViewRepo
}

func NewItemQueries(repo ItemViewRepo) ItemQueries {
	return &itemQueriesImpl{repo: repo}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *itemQueriesImpl) List(ctx context.Context, status *item.Status) ([]*ItemView, error) {
	if status == nil {
		return q.repo.FindAll(ctx)
	}
	if !status.IsValid() {
		return nil, errs.Newf("unknown item status %q", *status)
	}
	return q.repo.FindByStatus(ctx, *status)
}
