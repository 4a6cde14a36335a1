package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"revenue-dashboard/internal/dashboard/core/chart"
	"revenue-dashboard/internal/dashboard/core/graph"
	"revenue-dashboard/internal/dashboard/core/ports"
	"revenue-dashboard/internal/platform/log"
	reporting "revenue-dashboard/internal/reporting/core/domain"
)

var ErrUnknownDashboard = errors.New("unknown dashboard")

// Board is a dashboard definition bound to its loaded dataset.
type Board struct {
	Definition Definition
	Data       *reporting.Dataset
	Options    []string
	Defaults   graph.Selection
}

// NewBoard binds def to data. Default values missing from the data are
// dropped with a warning rather than failing the dashboard.
func NewBoard(def Definition, data *reporting.Dataset, defaults []string, logger *log.Logger) *Board {
	options := data.Metrics.Keys()

	sel := make(graph.Selection, 0, len(defaults))
	for _, v := range defaults {
		if !slices.Contains(options, v) {
			logger.Warn("default selection value not in data, dropping",
				"dashboard", def.Name, "value", v)
			continue
		}
		if !sel.Contains(v) {
			sel = append(sel, v)
		}
	}

	return &Board{Definition: def, Data: data, Options: options, Defaults: sel}
}

// Build creates a fresh graph for the board with default control values and
// every view computed.
func (b *Board) Build(adapter *chart.Adapter, opts ...graph.Option) (*graph.Graph, error) {
	return b.BuildWith(adapter, b.Defaults, opts...)
}

// BuildWith is Build with an explicit selection.
func (b *Board) BuildWith(adapter *chart.Adapter, sel graph.Selection, opts ...graph.Option) (*graph.Graph, error) {
	g := graph.New(b.Data, opts...)

	err := g.AddControl(graph.ControlSpec{
		Name:    ControlSelection,
		Default: sel,
		Options: b.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard %s: %w", b.Definition.Name, err)
	}

	for _, v := range b.Definition.Views {
		if err := g.Register(v.viewSpec(adapter)); err != nil {
			return nil, fmt.Errorf("dashboard %s: %w", b.Definition.Name, err)
		}
	}

	g.Flush()
	return g, nil
}

// LoadBoards loads the dataset of every named dashboard. Any failure is
// fatal and returned as is.
func LoadBoards(ctx context.Context, loader ports.DatasetLoaderPort, names []string, defaults map[string][]string, logger *log.Logger) ([]*Board, error) {
	boards := make([]*Board, 0, len(names))
	for _, name := range names {
		def, ok := LookupDefinition(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDashboard, name)
		}

		data, err := loader.Execute(ctx, def.Dataset)
		if err != nil {
			return nil, err
		}

		logger.Info("dataset loaded",
			"dashboard", name,
			"groups", len(data.Metrics),
			"timeseries_rows", len(data.TimeSeries))

		boards = append(boards, NewBoard(def, data, defaults[name], logger))
	}
	return boards, nil
}
