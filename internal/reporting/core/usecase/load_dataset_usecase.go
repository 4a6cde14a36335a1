package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"revenue-dashboard/internal/reporting/core/domain"
	"revenue-dashboard/internal/reporting/core/ports"
)

var (
	ErrInvalidDatasetSpec = errors.New("invalid dataset spec")
	ErrUnknownQuery       = errors.New("unknown query")
)

// DatasetSpec names the catalog queries a dashboard is built from.
type DatasetSpec struct {
	Dimension  string
	Earned     domain.QueryID
	Unearned   domain.QueryID
	TimeSeries domain.QueryID // optional
}

type LoadDatasetUseCase struct {
	runner ports.QueryRunnerPort
	now    func() time.Time
}

func NewLoadDatasetUseCase(runner ports.QueryRunnerPort) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{runner: runner, now: time.Now}
}

// Execute runs the requested queries concurrently and derives the dataset.
// The first query failure cancels the others and is returned wrapped in a
// *domain.DerivationFailure.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context, in DatasetSpec) (*domain.Dataset, error) {
	if in.Dimension == "" || in.Earned == "" || in.Unearned == "" {
		return nil, ErrInvalidDatasetSpec
	}

	ids := []domain.QueryID{in.Earned, in.Unearned}
	if in.TimeSeries != "" {
		ids = append(ids, in.TimeSeries)
	}

	specs := make([]domain.QuerySpec, len(ids))
	for i, id := range ids {
		spec, ok := uc.runner.Spec(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownQuery, id)
		}
		specs[i] = spec
	}

	results := make([]domain.QueryResult, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i := range ids {
		i := i
		g.Go(func() error {
			rows, err := uc.runner.RunQuery(gctx, ids[i])
			results[i] = domain.ResultOf(specs[i], rows, err)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &domain.DerivationFailure{Cause: err}
	}

	metrics, err := DeriveMetrics(results[0], results[1])
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		Dimension: in.Dimension,
		Metrics:   metrics,
		LoadedAt:  uc.now().UTC(),
	}

	if in.TimeSeries != "" {
		series, err := DeriveTimeSeries(results[2])
		if err != nil {
			return nil, err
		}
		ds.TimeSeries = series
	}

	return ds, nil
}
