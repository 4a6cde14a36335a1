package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"revenue-dashboard/internal/dashboard/core/chart"
	"revenue-dashboard/internal/dashboard/core/graph"
	"revenue-dashboard/internal/dashboard/core/ports"
	"revenue-dashboard/internal/dashboard/core/usecase"
	"revenue-dashboard/internal/platform/log"
	reporting "revenue-dashboard/internal/reporting/core/domain"
	reportingUsecase "revenue-dashboard/internal/reporting/core/usecase"
)

var (
	jan = time.Date(2004, 1, 6, 0, 0, 0, 0, time.UTC)
	feb = time.Date(2004, 2, 10, 0, 0, 0, 0, time.UTC)
)

func productLineData() *reporting.Dataset {
	return &reporting.Dataset{
		Dimension: "productline",
		Metrics: reporting.MetricsTable{
			{GroupKey: "Classic Cars", EarnedRevenue: 900, UnearnedRevenue: 500, UnearnedPercentage: 35.714285714285715},
			{GroupKey: "Motorcycles", EarnedRevenue: 1700, UnearnedRevenue: 300, UnearnedPercentage: 15},
			{GroupKey: "Ships", EarnedRevenue: 450},
		},
		TimeSeries: []reporting.TimeSeriesRow{
			{Date: jan, GroupKey: "Classic Cars", Value: 500},
			{Date: jan, GroupKey: "Motorcycles", Value: 700},
			{Date: feb, GroupKey: "Classic Cars", Value: 400},
			{Date: feb, GroupKey: "Classic Cars", Value: 100},
			{Date: feb, GroupKey: "Ships", Value: 450},
		},
	}
}

func cityData() *reporting.Dataset {
	return &reporting.Dataset{
		Dimension: "city",
		Metrics: reporting.MetricsTable{
			{GroupKey: "NYC", EarnedRevenue: 1000},
			{GroupKey: "Boston", UnearnedRevenue: 500, UnearnedPercentage: 100},
			{GroupKey: "San Francisco", EarnedRevenue: 300},
		},
	}
}

var geo = chart.StaticLookup{
	"NYC":    {Lon: -74.0060, Lat: 40.7128},
	"Boston": {Lon: -71.0589, Lat: 42.3601},
}

func view(t *testing.T, g *graph.Graph, name string) graph.ViewState {
	t.Helper()
	st, err := g.View(name)
	if err != nil {
		t.Fatalf("View(%s): %v", name, err)
	}
	return st
}

// ------------------------------------------------------------
// BOARD CONSTRUCTION
// ------------------------------------------------------------

func TestNewBoard_DropsUnknownDefaults(t *testing.T) {
	b := usecase.NewBoard(usecase.ProductLine(), productLineData(), []string{"Motorcycles", "Planes", "Motorcycles", "Classic Cars"}, log.Discard())

	if len(b.Defaults) != 2 || b.Defaults[0] != "Motorcycles" || b.Defaults[1] != "Classic Cars" {
		t.Fatalf("unexpected defaults: %v", b.Defaults)
	}
	if len(b.Options) != 3 {
		t.Fatalf("expected options from metrics keys, got %v", b.Options)
	}
}

func TestBuild_GeographyViews(t *testing.T) {
	b := usecase.NewBoard(usecase.Geography(), cityData(), []string{"NYC", "Boston"}, log.Discard())

	g, err := b.Build(chart.NewAdapter(geo))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	views := g.Views()
	want := []string{"revenue-bar", "revenue-percent", "bubble-map"}
	if len(views) != len(want) {
		t.Fatalf("expected %d views, got %d", len(want), len(views))
	}
	for i, v := range views {
		if v.Name != want[i] || v.State != "fresh" || len(v.Controls) != 0 {
			t.Fatalf("view %d: unexpected %+v", i, v)
		}
	}

	// San Francisco has no coordinates: omitted from the map, kept in bars
	bubble := view(t, g, "bubble-map").Output
	if len(bubble.Series) != 1 || len(bubble.Series[0].Points) != 2 {
		t.Fatalf("expected 2 markers, got %+v", bubble.Series)
	}
	if len(bubble.Omitted) != 1 || bubble.Omitted[0] != "San Francisco" {
		t.Fatalf("unexpected omitted: %v", bubble.Omitted)
	}
	bars := view(t, g, "revenue-bar").Output
	if len(bars.Series) != 2 || len(bars.Series[0].Points) != 3 {
		t.Fatalf("expected 2x3 bars, got %+v", bars.Series)
	}

	// no view depends on the selection control
	recomputed, err := g.SetControl(usecase.ControlSelection, graph.Selection{"NYC"})
	if err != nil {
		t.Fatalf("SetControl: %v", err)
	}
	if len(recomputed) != 0 {
		t.Fatalf("expected no recomputation, got %v", recomputed)
	}
}

func TestBuild_ProductLineTimeSeriesFollowsSelection(t *testing.T) {
	b := usecase.NewBoard(usecase.ProductLine(), productLineData(), []string{"Motorcycles", "Classic Cars"}, log.Discard())

	g, err := b.Build(chart.NewAdapter(nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	line := view(t, g, "line-chart")
	if len(line.Controls) != 1 || line.Controls[0] != usecase.ControlSelection {
		t.Fatalf("expected line-chart to depend on selection, got %v", line.Controls)
	}
	if len(line.Output.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(line.Output.Series))
	}
	cars := line.Output.Series[0]
	if cars.Name != "Classic Cars" || len(cars.Points) != 2 || cars.Points[1].Y != 500 {
		t.Fatalf("expected duplicate (date, key) rows summed, got %+v", cars)
	}

	barBefore := view(t, g, "revenue-bar")
	barJSON, _ := json.Marshal(barBefore.Output)

	recomputed, err := g.SetControl(usecase.ControlSelection, graph.Selection{"Ships"})
	if err != nil {
		t.Fatalf("SetControl: %v", err)
	}
	if len(recomputed) != 1 || recomputed[0] != "line-chart" {
		t.Fatalf("expected only line-chart recomputed, got %v", recomputed)
	}

	barAfter := view(t, g, "revenue-bar")
	afterJSON, _ := json.Marshal(barAfter.Output)
	if barAfter.Revision != barBefore.Revision || !bytes.Equal(barJSON, afterJSON) {
		t.Fatalf("revenue-bar changed on selection event")
	}

	line = view(t, g, "line-chart")
	if len(line.Output.Series) != 1 || line.Output.Series[0].Name != "Ships" {
		t.Fatalf("unexpected series after change: %+v", line.Output.Series)
	}
}

func TestBuild_EmptySelectionGivesEmptyLineChart(t *testing.T) {
	b := usecase.NewBoard(usecase.ProductLine(), productLineData(), nil, log.Discard())

	g, err := b.Build(chart.NewAdapter(nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	line := view(t, g, "line-chart")
	if line.State != "fresh" || len(line.Output.Series) != 0 {
		t.Fatalf("expected fresh empty chart, got %+v", line)
	}
	if line.Output.Title != "Revenue Over Time by Product Line" {
		t.Fatalf("title must survive empty input, got %q", line.Output.Title)
	}
}

func TestBuild_MissingTimeSeriesTable(t *testing.T) {
	data := productLineData()
	data.TimeSeries = nil
	b := usecase.NewBoard(usecase.ProductLine(), data, nil, log.Discard())

	_, err := b.Build(chart.NewAdapter(nil))
	if !errors.Is(err, graph.ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

// ------------------------------------------------------------
// LOADING
// ------------------------------------------------------------

type fakeLoader struct {
	ExecuteFn func(ctx context.Context, spec reportingUsecase.DatasetSpec) (*reporting.Dataset, error)
	specs     []reportingUsecase.DatasetSpec
}

func (f *fakeLoader) Execute(ctx context.Context, spec reportingUsecase.DatasetSpec) (*reporting.Dataset, error) {
	f.specs = append(f.specs, spec)
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, spec)
	}
	return nil, nil
}

var _ ports.DatasetLoaderPort = (*fakeLoader)(nil)

func TestLoadBoards_Success(t *testing.T) {
	loader := &fakeLoader{
		ExecuteFn: func(ctx context.Context, spec reportingUsecase.DatasetSpec) (*reporting.Dataset, error) {
			if spec.Dimension == "city" {
				return cityData(), nil
			}
			return productLineData(), nil
		},
	}

	boards, err := usecase.LoadBoards(context.Background(), loader, []string{"productline", "geography"},
		map[string][]string{"geography": {"NYC"}}, log.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boards) != 2 || boards[0].Definition.Name != "productline" || boards[1].Definition.Name != "geography" {
		t.Fatalf("unexpected boards: %+v", boards)
	}
	if loader.specs[0].TimeSeries != reporting.RevenueTimeSeriesByProductLine {
		t.Fatalf("expected productline to load the time series, got %+v", loader.specs[0])
	}
	if loader.specs[1].TimeSeries != "" {
		t.Fatalf("geography must not load a time series, got %+v", loader.specs[1])
	}
	if len(boards[1].Defaults) != 1 || len(boards[0].Defaults) != 0 {
		t.Fatalf("unexpected defaults: %v / %v", boards[1].Defaults, boards[0].Defaults)
	}
}

func TestLoadBoards_Errors(t *testing.T) {
	failure := &reporting.DerivationFailure{Cause: &reporting.QueryFailure{Query: reporting.EarnedRevenueByCity, Message: "boom"}}

	tests := []struct {
		name    string
		names   []string
		loadErr error
		wantErr error
	}{
		{"unknown_dashboard", []string{"weather"}, nil, usecase.ErrUnknownDashboard},
		{"load_failure", []string{"geography"}, failure, failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &fakeLoader{
				ExecuteFn: func(ctx context.Context, spec reportingUsecase.DatasetSpec) (*reporting.Dataset, error) {
					return nil, tt.loadErr
				},
			}

			_, err := usecase.LoadBoards(context.Background(), loader, tt.names, nil, log.Discard())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// ------------------------------------------------------------
// SESSIONS
// ------------------------------------------------------------

type fakeSessions struct {
	mu    sync.Mutex
	items map[string]*ports.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{items: make(map[string]*ports.Session)}
}

func (f *fakeSessions) Add(s *ports.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[s.ID] = s
}

func (f *fakeSessions) Get(id string) (*ports.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	return s, ok
}

func (f *fakeSessions) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func newService(t *testing.T) (*usecase.DashboardService, *fakeSessions) {
	t.Helper()
	boards := []*usecase.Board{
		usecase.NewBoard(usecase.Geography(), cityData(), []string{"NYC", "Boston"}, log.Discard()),
		usecase.NewBoard(usecase.ProductLine(), productLineData(), []string{"Motorcycles", "Classic Cars"}, log.Discard()),
	}
	sessions := newFakeSessions()
	return usecase.NewDashboardService(boards, chart.NewAdapter(geo), sessions, log.Discard()), sessions
}

func TestDashboardService_SessionLifecycle(t *testing.T) {
	svc, sessions := newService(t)

	sess, err := svc.OpenSession("productline")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if sess.ID == "" || sess.Dashboard != "productline" || sessions.Len() != 1 {
		t.Fatalf("unexpected session: %+v", sess)
	}

	other, err := svc.OpenSession("productline")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if other.ID == sess.ID || other.Graph == sess.Graph {
		t.Fatalf("sessions must not share ids or graphs")
	}

	changed, err := svc.SetControl("productline", sess.ID, usecase.ControlSelection, []string{"Ships"})
	if err != nil {
		t.Fatalf("SetControl: %v", err)
	}
	if len(changed) != 1 || changed[0].Name != "line-chart" || changed[0].Revision != 2 {
		t.Fatalf("unexpected recomputed views: %+v", changed)
	}

	// the other session is untouched
	st, err := svc.View("productline", other.ID, "line-chart")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if st.Revision != 1 || len(st.Output.Series) != 2 {
		t.Fatalf("other session changed: %+v", st)
	}
}

func TestDashboardService_Errors(t *testing.T) {
	svc, _ := newService(t)

	sess, err := svc.OpenSession("geography")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}

	if _, err := svc.OpenSession("weather"); !errors.Is(err, usecase.ErrUnknownDashboard) {
		t.Fatalf("expected ErrUnknownDashboard, got %v", err)
	}
	if _, err := svc.Session("geography", "missing"); !errors.Is(err, usecase.ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
	if _, err := svc.Session("productline", sess.ID); !errors.Is(err, usecase.ErrUnknownSession) {
		t.Fatalf("session must be bound to its dashboard, got %v", err)
	}
	if _, err := svc.View("geography", sess.ID, "line-chart"); !errors.Is(err, graph.ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
	if _, err := svc.SetControl("geography", sess.ID, "year", nil); !errors.Is(err, graph.ErrUnknownControl) {
		t.Fatalf("expected ErrUnknownControl, got %v", err)
	}
	if _, err := svc.SetControl("geography", sess.ID, usecase.ControlSelection, []string{"Atlantis"}); !errors.Is(err, graph.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}
