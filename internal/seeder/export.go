package seeder

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CatalogView is the printable form of the static seed catalog.
type CatalogView struct {
	Dashboard   DashboardView   `json:"dashboard" yaml:"dashboard"`
	WidgetTypes []WidgetType    `json:"widget_types" yaml:"widget_types"`
	Widgets     []CandidateView `json:"widgets" yaml:"widgets"`
	Layout      []Placement     `json:"layout" yaml:"layout"`
}

type DashboardView struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type CandidateView struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Type        string   `json:"type" yaml:"type"`
	Requires    []string `json:"requires,omitempty" yaml:"requires,omitempty"`
}

func Catalog(opts Options) CatalogView {
	view := CatalogView{
		Dashboard:   DashboardView{Name: opts.DashboardName, Description: opts.DashboardDescription},
		WidgetTypes: WidgetTypes(),
		Layout:      Layout(),
	}
	for _, c := range Candidates() {
		view.Widgets = append(view.Widgets, CandidateView{
			Name:        c.Name,
			Description: c.Description,
			Type:        c.Type,
			Requires:    c.Requires,
		})
	}
	return view
}

// Encode renders the view as "yaml" or "json".
func (v CatalogView) Encode(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml", "":
		return yaml.Marshal(v)
	case "json":
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (use yaml or json)", format)
	}
}
