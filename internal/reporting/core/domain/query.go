package domain

type QueryID string

const (
	EarnedRevenueByCity            QueryID = "earnedRevenueByCity"
	UnearnedRevenueByCity          QueryID = "unearnedRevenueByCity"
	EarnedRevenueByProductLine     QueryID = "earnedRevenueByProductLine"
	UnearnedRevenueByProductLine   QueryID = "unearnedRevenueByProductLine"
	RevenueTimeSeriesByProductLine QueryID = "revenueTimeSeriesByProductLine"
)

// QuerySpec describes the shape of a catalog query's result.
type QuerySpec struct {
	ID          QueryID
	KeyColumn   string
	ValueColumn string
	DateColumn  string // only set for time series queries
}

// QueryResult pairs a query's rows with the failure that replaced them.
// Exactly one of Rows / Err is meaningful.
type QueryResult struct {
	Query QuerySpec
	Rows  []RawRow
	Err   error
}

func ResultOf(q QuerySpec, rows []RawRow, err error) QueryResult {
	if err != nil {
		return QueryResult{Query: q, Err: err}
	}
	return QueryResult{Query: q, Rows: rows}
}
