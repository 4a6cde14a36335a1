package sqlstore

import (
	"context"
	"strings"

	"revenue-dashboard/internal/reporting/core/domain"
	"revenue-dashboard/internal/reporting/core/ports"
)

// QueryGateway runs catalog queries against the store. It never retries.
type QueryGateway struct {
	db DB
}

func NewQueryGateway(db DB) *QueryGateway {
	return &QueryGateway{db: db}
}

var _ ports.QueryRunnerPort = (*QueryGateway)(nil)

func (g *QueryGateway) Spec(id domain.QueryID) (domain.QuerySpec, bool) {
	e, ok := catalog[id]
	return e.spec, ok
}

func (g *QueryGateway) RunQuery(ctx context.Context, id domain.QueryID) ([]domain.RawRow, error) {
	entry, ok := catalog[id]
	if !ok {
		return nil, &domain.QueryFailure{Query: id, Message: "unknown query id"}
	}

	rows, err := g.db.QueryContext(ctx, entry.sql)
	if err != nil {
		return nil, failure(id, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, failure(id, err)
	}
	for i := range cols {
		cols[i] = strings.ToLower(cols[i])
	}

	out := []domain.RawRow{}
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, failure(id, err)
		}

		row := make(domain.RawRow, len(cols))
		for i, c := range cols {
			row[c] = normalize(values[i])
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, failure(id, err)
	}

	return out, nil
}

func failure(id domain.QueryID, err error) error {
	return &domain.QueryFailure{Query: id, Message: err.Error(), Err: err}
}

// normalize detaches driver-owned buffers; NUMERIC columns arrive as bytes.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
