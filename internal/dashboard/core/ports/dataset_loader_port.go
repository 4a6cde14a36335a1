package ports

import (
	"context"

	reporting "revenue-dashboard/internal/reporting/core/domain"
	reportingUsecase "revenue-dashboard/internal/reporting/core/usecase"
)

type DatasetLoaderPort interface {
	Execute(ctx context.Context, spec reportingUsecase.DatasetSpec) (*reporting.Dataset, error)
}
