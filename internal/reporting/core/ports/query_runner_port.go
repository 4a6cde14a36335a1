package ports

import (
	"context"

	"revenue-dashboard/internal/reporting/core/domain"
)

type QueryRunnerPort interface {
	// Spec returns the result shape of a catalog query.
	//   ok = false -> the id is not part of the catalog
	Spec(id domain.QueryID) (domain.QuerySpec, bool)

	// RunQuery executes a catalog query. A non-nil error is always a
	// *domain.QueryFailure; the runner never retries.
	RunQuery(ctx context.Context, id domain.QueryID) ([]domain.RawRow, error)
}
