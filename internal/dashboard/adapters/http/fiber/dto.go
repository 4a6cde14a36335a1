package fiber

import (
	"time"

	"revenue-dashboard/internal/dashboard/core/graph"
)

type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Dashboards int    `json:"dashboards" example:"2"`
}

type ControlResponse struct {
	Name    string   `json:"name" example:"selection"`
	Options []string `json:"options"`
	Values  []string `json:"values"`
}

type ViewDefinitionResponse struct {
	Name     string   `json:"name" example:"line-chart"`
	Kind     string   `json:"kind" example:"line"`
	Title    string   `json:"title" example:"Revenue Over Time by Product Line"`
	Controls []string `json:"controls"`
}

type DashboardResponse struct {
	Name     string                   `json:"name" example:"productline"`
	Title    string                   `json:"title" example:"Revenue by Product Line"`
	LoadedAt time.Time                `json:"loaded_at"`
	Controls []ControlResponse        `json:"controls"`
	Views    []ViewDefinitionResponse `json:"views"`
}

type ViewStateResponse struct {
	Name     string   `json:"name" example:"line-chart"`
	State    string   `json:"state" example:"fresh"`
	Revision uint64   `json:"revision" example:"1"`
	Controls []string `json:"controls"`
}

type SessionResponse struct {
	ID        string              `json:"id" example:"5f0c6a8e-3b8f-4a51-9a51-2f0f6d0c1c7e"`
	Dashboard string              `json:"dashboard" example:"productline"`
	CreatedAt time.Time           `json:"created_at"`
	Controls  []ControlResponse   `json:"controls"`
	Views     []ViewStateResponse `json:"views"`
}

// SetControlRequest replaces the value of one control. An empty list is a
// valid selection; a missing list is not.
type SetControlRequest struct {
	Values []string `json:"values" validate:"required,max=256,dive,required,max=128"`
}

type SetControlResponse struct {
	Control    string              `json:"control" example:"selection"`
	Recomputed []ViewStateResponse `json:"recomputed"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message" example:"unknown session: 42"`
}

func toViewStates(in []graph.ViewState) []ViewStateResponse {
	out := make([]ViewStateResponse, 0, len(in))
	for _, v := range in {
		out = append(out, ViewStateResponse{
			Name:     v.Name,
			State:    v.State,
			Revision: v.Revision,
			Controls: nonNil(v.Controls),
		})
	}
	return out
}

func toControls(in []graph.ControlState) []ControlResponse {
	out := make([]ControlResponse, 0, len(in))
	for _, c := range in {
		out = append(out, ControlResponse{
			Name:    c.Name,
			Options: nonNil(c.Options),
			Values:  nonNil(c.Values),
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
