package graph

import (
	"slices"

	"revenue-dashboard/internal/dashboard/core/domain"
	reporting "revenue-dashboard/internal/reporting/core/domain"
)

// State is the lifecycle of one view: Stale -> Computing -> Fresh -> Stale.
type State int

const (
	Stale State = iota
	Computing
	Fresh
)

func (s State) String() string {
	switch s {
	case Stale:
		return "stale"
	case Computing:
		return "computing"
	case Fresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// Selection is an ordered set of group keys.
type Selection []string

// normalize drops blanks and duplicates, keeping first occurrences.
func (s Selection) normalize() Selection {
	out := make(Selection, 0, len(s))
	for _, v := range s {
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Contains reports whether key is selected.
func (s Selection) Contains(key string) bool {
	return slices.Contains(s, key)
}

type ControlSpec struct {
	Name    string
	Default Selection
	// Options restricts accepted values. Empty means any value is accepted.
	Options []string
}

// ControlState is a snapshot of one control.
type ControlState struct {
	Name    string    `json:"name"`
	Options []string  `json:"options"`
	Values  Selection `json:"values"`
}

// Inputs is what a view computation may read: the shared dataset and the
// current values of the controls the view declared.
type Inputs struct {
	Data     *reporting.Dataset
	controls map[string]Selection
}

// Control returns a copy of the named control's value. Undeclared controls
// read as an empty selection.
func (in Inputs) Control(name string) Selection {
	return slices.Clone(in.controls[name])
}

type ViewFunc func(in Inputs) domain.ChartDescription

type ViewSpec struct {
	Name     string
	Controls []string
	Tables   []string
	Compute  ViewFunc
}

// ViewState is a snapshot of one view.
type ViewState struct {
	Name     string                  `json:"name"`
	State    string                  `json:"state"`
	Revision uint64                  `json:"revision"`
	Controls []string                `json:"controls"`
	Output   domain.ChartDescription `json:"-"`
}

// Revision is emitted to listeners every time a view finishes computing.
type Revision struct {
	View       string
	Number     uint64
	Generation uint64
	Output     domain.ChartDescription
}

type Listener func(Revision)
