package graph

import (
	"fmt"
	"slices"
	"sync"

	"revenue-dashboard/internal/dashboard/core/domain"
	reporting "revenue-dashboard/internal/reporting/core/domain"
)

type control struct {
	spec   ControlSpec
	values Selection
}

type view struct {
	spec     ViewSpec
	state    State
	revision uint64
	output   domain.ChartDescription
}

// Graph owns a set of controls and the views derived from them. Every
// mutation is serialized by one mutex and recomputation is sequential.
type Graph struct {
	mu sync.Mutex

	data      *reporting.Dataset
	listeners []Listener

	controls     map[string]*control
	controlOrder []string
	views        map[string]*view
	viewOrder    []string
	dependents   map[string][]string

	generation uint64
}

type Option func(*Graph)

// WithListener registers a callback for view revisions. Listeners run after
// the graph lock is released.
func WithListener(l Listener) Option {
	return func(g *Graph) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

func New(data *reporting.Dataset, opts ...Option) *Graph {
	g := &Graph{
		data:       data,
		controls:   make(map[string]*control),
		views:      make(map[string]*view),
		dependents: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) AddControl(spec ControlSpec) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if spec.Name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownControl)
	}
	if _, ok := g.controls[spec.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateControl, spec.Name)
	}

	c := &control{spec: spec}
	c.spec.Options = slices.Clone(spec.Options)
	values := spec.Default.normalize()
	if err := c.check(values); err != nil {
		return err
	}
	c.values = values

	g.controls[spec.Name] = c
	g.controlOrder = append(g.controlOrder, spec.Name)
	return nil
}

func (c *control) check(values Selection) error {
	if len(c.spec.Options) == 0 {
		return nil
	}
	for _, v := range values {
		if !slices.Contains(c.spec.Options, v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidSelection, c.spec.Name, v)
		}
	}
	return nil
}

// Register adds a view. A view without control dependencies is computed
// here, once; the others start Stale and are computed by Flush, View or
// the next change of a control they depend on.
func (g *Graph) Register(spec ViewSpec) error {
	revs, err := g.register(spec)
	g.emit(revs)
	return err
}

func (g *Graph) register(spec ViewSpec) ([]Revision, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if spec.Name == "" || spec.Compute == nil {
		return nil, fmt.Errorf("%w: name and compute function are required", ErrInvalidView)
	}
	if _, ok := g.views[spec.Name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateView, spec.Name)
	}
	for _, name := range spec.Controls {
		if _, ok := g.controls[name]; !ok {
			return nil, fmt.Errorf("%w: %s (view %s)", ErrUnknownControl, name, spec.Name)
		}
	}
	for _, table := range spec.Tables {
		if g.data == nil || !g.data.HasTable(table) {
			return nil, fmt.Errorf("%w: %s (view %s)", ErrUnknownTable, table, spec.Name)
		}
	}

	spec.Controls = Selection(spec.Controls).normalize()
	v := &view{spec: spec, state: Stale}
	g.views[spec.Name] = v
	g.viewOrder = append(g.viewOrder, spec.Name)
	for _, name := range spec.Controls {
		g.dependents[name] = append(g.dependents[name], spec.Name)
	}

	if len(spec.Controls) == 0 {
		return []Revision{g.compute(v)}, nil
	}
	return nil, nil
}

// SetControl replaces a control's value and recomputes its dependents,
// returning their names in registration order. Setting the current value
// again is a no-op.
func (g *Graph) SetControl(name string, values Selection) ([]string, error) {
	revs, err := g.setControl(name, values)
	if err != nil {
		return nil, err
	}
	g.emit(revs)

	return viewNames(revs), nil
}

func (g *Graph) setControl(name string, values Selection) ([]Revision, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.controls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownControl, name)
	}

	values = values.normalize()
	if err := c.check(values); err != nil {
		return nil, err
	}
	if slices.Equal(c.values, values) {
		return nil, nil
	}

	c.values = values
	g.generation++

	deps := g.dependents[name]
	for _, vn := range deps {
		g.views[vn].state = Stale
	}

	revs := make([]Revision, 0, len(deps))
	for _, vn := range deps {
		revs = append(revs, g.compute(g.views[vn]))
	}
	return revs, nil
}

// Flush computes every Stale view.
func (g *Graph) Flush() []string {
	revs := g.flush()
	g.emit(revs)

	return viewNames(revs)
}

func (g *Graph) flush() []Revision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.computeStale()
}

// computeStale recomputes Stale views in registration order. Callers hold g.mu.
func (g *Graph) computeStale() []Revision {
	var revs []Revision
	for _, vn := range g.viewOrder {
		if v := g.views[vn]; v.state == Stale {
			revs = append(revs, g.compute(v))
		}
	}
	return revs
}

// View returns the current output of a view, computing it first if Stale.
func (g *Graph) View(name string) (ViewState, error) {
	out, revs, err := g.view(name)
	if err != nil {
		return ViewState{}, err
	}
	g.emit(revs)
	return out, nil
}

func (g *Graph) view(name string) (ViewState, []Revision, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.views[name]
	if !ok {
		return ViewState{}, nil, fmt.Errorf("%w: %s", ErrUnknownView, name)
	}

	var revs []Revision
	if v.state == Stale {
		revs = append(revs, g.compute(v))
	}
	return v.snapshot(), revs, nil
}

// Views returns a snapshot of every view in registration order.
func (g *Graph) Views() []ViewState {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]ViewState, 0, len(g.viewOrder))
	for _, vn := range g.viewOrder {
		out = append(out, g.views[vn].snapshot())
	}
	return out
}

func (g *Graph) Controls() []ControlState {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]ControlState, 0, len(g.controlOrder))
	for _, cn := range g.controlOrder {
		c := g.controls[cn]
		out = append(out, ControlState{
			Name:    cn,
			Options: slices.Clone(c.spec.Options),
			Values:  slices.Clone(c.values),
		})
	}
	return out
}

// Generation counts accepted control changes. Callers can compare it before
// and after a read to detect that controls moved in between.
func (g *Graph) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

// compute runs one view. Callers hold g.mu.
func (g *Graph) compute(v *view) Revision {
	v.state = Computing

	in := Inputs{Data: g.data, controls: make(map[string]Selection, len(v.spec.Controls))}
	for _, cn := range v.spec.Controls {
		in.controls[cn] = slices.Clone(g.controls[cn].values)
	}

	out := v.spec.Compute(in)
	if out.Series == nil {
		out.Series = []domain.Series{}
	}

	v.revision++
	v.state = Fresh
	v.output = out

	return Revision{View: v.spec.Name, Number: v.revision, Generation: g.generation, Output: out}
}

func (v *view) snapshot() ViewState {
	return ViewState{
		Name:     v.spec.Name,
		State:    v.state.String(),
		Revision: v.revision,
		Controls: slices.Clone(v.spec.Controls),
		Output:   v.output,
	}
}

func viewNames(revs []Revision) []string {
	names := make([]string, 0, len(revs))
	for _, r := range revs {
		names = append(names, r.View)
	}
	return names
}

func (g *Graph) emit(revs []Revision) {
	for _, r := range revs {
		for _, l := range g.listeners {
			l(r)
		}
	}
}
