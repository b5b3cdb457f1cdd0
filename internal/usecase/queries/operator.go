package queries

import (
	"context"

	"github.com/google/uuid"

	"boat-scheduler/internal/infra"
	"boat-scheduler/internal/pkg/errs"
)

var ErrOperatorNotFound = errs.New("operator not found")

type OperatorQueries interface {
	GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error)
}

type OperatorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
	// FindByUsername also returns the bcrypt hash for credential checks.
	FindByUsername(ctx context.Context, username string) (*OperatorView, string, error)
}

type operatorQueriesImpl struct {
	readStore OperatorReadStore
}

func NewOperatorQueries(readStore OperatorReadStore) OperatorQueries {
	return &operatorQueriesImpl{
		readStore: readStore,
	}
}

func (q *operatorQueriesImpl) GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error) {
	op, err := q.readStore.FindByID(ctx, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}
	return op, nil
}
