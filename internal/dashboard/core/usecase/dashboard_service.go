package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"revenue-dashboard/internal/dashboard/core/chart"
	"revenue-dashboard/internal/dashboard/core/graph"
	"revenue-dashboard/internal/dashboard/core/ports"
	"revenue-dashboard/internal/platform/log"
)

var ErrUnknownSession = errors.New("unknown session")

// DashboardService hosts the loaded boards and their sessions.
type DashboardService struct {
	boards   map[string]*Board
	order    []string
	adapter  *chart.Adapter
	sessions ports.SessionStorePort
	logger   *log.Logger

	newID func() string
	now   func() time.Time
}

func NewDashboardService(boards []*Board, adapter *chart.Adapter, sessions ports.SessionStorePort, logger *log.Logger) *DashboardService {
	s := &DashboardService{
		boards:   make(map[string]*Board, len(boards)),
		adapter:  adapter,
		sessions: sessions,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, b := range boards {
		s.boards[b.Definition.Name] = b
		s.order = append(s.order, b.Definition.Name)
	}
	return s
}

// Boards returns the hosted boards in configuration order.
func (s *DashboardService) Boards() []*Board {
	out := make([]*Board, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.boards[name])
	}
	return out
}

func (s *DashboardService) Board(name string) (*Board, error) {
	b, ok := s.boards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDashboard, name)
	}
	return b, nil
}

// OpenSession builds a new graph for the dashboard and stores it.
func (s *DashboardService) OpenSession(dashboard string) (*ports.Session, error) {
	b, err := s.Board(dashboard)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	logger := s.logger.With("dashboard", dashboard, "session", id)
	g, err := b.Build(s.adapter, graph.WithListener(func(r graph.Revision) {
		logger.Debug("view recomputed",
			"view", r.View,
			"revision", r.Number,
			"generation", r.Generation,
			"series", len(r.Output.Series))
	}))
	if err != nil {
		return nil, err
	}

	sess := &ports.Session{ID: id, Dashboard: dashboard, Graph: g, CreatedAt: s.now().UTC()}
	s.sessions.Add(sess)

	s.logger.Info("session opened", "dashboard", dashboard, "session", id, "sessions", s.sessions.Len())
	return sess, nil
}

func (s *DashboardService) Session(dashboard, id string) (*ports.Session, error) {
	if _, err := s.Board(dashboard); err != nil {
		return nil, err
	}

	sess, ok := s.sessions.Get(id)
	if !ok || sess.Dashboard != dashboard {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return sess, nil
}

// SetControl applies a control event and returns the views it recomputed.
func (s *DashboardService) SetControl(dashboard, id, control string, values []string) ([]graph.ViewState, error) {
	sess, err := s.Session(dashboard, id)
	if err != nil {
		return nil, err
	}

	names, err := sess.Graph.SetControl(control, values)
	if err != nil {
		return nil, err
	}

	out := make([]graph.ViewState, 0, len(names))
	for _, name := range names {
		st, err := sess.Graph.View(name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *DashboardService) View(dashboard, id, view string) (graph.ViewState, error) {
	sess, err := s.Session(dashboard, id)
	if err != nil {
		return graph.ViewState{}, err
	}
	return sess.Graph.View(view)
}
