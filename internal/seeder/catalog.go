package seeder

// Widget type names.
const (
	TypeKPI        = "kpi"
	TypeLineChart  = "line_chart"
	TypeDonutChart = "donut_chart"
	TypeMap        = "map"
)

// Variable tags resolved from device_data_mapping.
const (
	TagOFR = "OFR"
	TagWFR = "WFR"
	TagGFR = "GFR"
	TagGVF = "GVF"
	TagWLR = "WLR"
)

// Seeded tables.
const (
	TableWidgetTypes       = "widget_types"
	TableWidgetDefinitions = "widget_definitions"
	TableDashboards        = "dashboards"
	TableDashboardLayouts  = "dashboard_layouts"
)

// MappingTags are looked up in this order.
var MappingTags = []string{TagOFR, TagWFR, TagGFR, TagGVF, TagWLR}

// SeededTables describes the foreign keys between the tables the seeder owns.
func SeededTables() *TableGraph {
	g := NewTableGraph()
	g.AddTable(TableWidgetTypes)
	g.AddTable(TableWidgetDefinitions, TableWidgetTypes)
	g.AddTable(TableDashboards)
	g.AddTable(TableDashboardLayouts, TableDashboards, TableWidgetDefinitions)
	return g
}

func WidgetTypes() []WidgetType {
	return []WidgetType{
		{Name: TypeKPI, ComponentName: "MetricsCard", DefaultConfig: WidgetTypeConfig{RefreshInterval: 5000}},
		{Name: TypeLineChart, ComponentName: "CustomLineChart", DefaultConfig: WidgetTypeConfig{RefreshInterval: 5000}},
		{Name: TypeDonutChart, ComponentName: "GVFWLRChart", DefaultConfig: WidgetTypeConfig{RefreshInterval: 5000}},
		{Name: TypeMap, ComponentName: "ProductionMap", DefaultConfig: WidgetTypeConfig{RefreshInterval: 30000}},
	}
}

// Env is what candidates may draw on when building their data source config.
type Env struct {
	DeviceTypeID int64
	Mappings     Mappings
}

// Candidate is a widget that is only created when every tag in Requires has
// a mapping.
type Candidate struct {
	Name        string
	Description string
	Type        string
	Requires    []string
	Config      func(env Env) any
}

func (c Candidate) Available(m Mappings) bool {
	return m.Has(c.Requires...)
}

func kpi(name, description string, cfg KPIConfig) Candidate {
	return Candidate{
		Name:        name,
		Description: description,
		Type:        TypeKPI,
		Config:      func(Env) any { return cfg },
	}
}

// lineChart plots one series per tag.
func lineChart(name, description string, tags ...string) Candidate {
	return Candidate{
		Name:        name,
		Description: description,
		Type:        TypeLineChart,
		Requires:    tags,
		Config: func(env Env) any {
			series := make([]Series, 0, len(tags))
			for _, tag := range tags {
				m := env.Mappings[tag]
				series = append(series, Series{
					PropertyID:         m.ID,
					PropertyName:       m.VariableName,
					DisplayName:        tag,
					DataSourceProperty: m.VariableTag,
					Unit:               m.Unit,
					DataType:           "numeric",
				})
			}
			return ChartConfig{
				DeviceTypeID:   env.DeviceTypeID,
				NumberOfSeries: len(series),
				SeriesConfig:   series,
			}
		},
	}
}

// Candidates returns every widget the dashboard may contain, in insertion
// order: KPI cards, single series charts, then the rest.
func Candidates() []Candidate {
	return []Candidate{
		kpi("OFR Metric", "Oil Flow Rate KPI", KPIConfig{
			Metric: "ofr", Unit: "l/min", Title: "Oil flow rate", ShortTitle: "OFR",
			Icon: "/oildark.png", ColorDark: "#4D3DF7", ColorLight: "#F56C44",
		}),
		kpi("WFR Metric", "Water Flow Rate KPI", KPIConfig{
			Metric: "wfr", Unit: "l/min", Title: "Water flow rate", ShortTitle: "WFR",
			Icon: "/waterdark.png", ColorDark: "#46B8E9", ColorLight: "#F6CA58",
		}),
		kpi("GFR Metric", "Gas Flow Rate KPI", KPIConfig{
			Metric: "gfr", Unit: "l/min", Title: "Gas flow rate", ShortTitle: "GFR",
			Icon: "/gasdark.png", ColorDark: "#F35DCB", ColorLight: "#38BF9D",
		}),
		kpi("Last Refresh", "System Last Refresh Time", KPIConfig{
			Metric: "last_refresh", Title: "Last Refresh", Icon: "clock", Color: "#d82e75",
		}),

		lineChart("OFR Chart", "Oil Flow Rate Line Chart", TagOFR),
		lineChart("WFR Chart", "Water Flow Rate Line Chart", TagWFR),
		lineChart("GFR Chart", "Gas Flow Rate Line Chart", TagGFR),

		lineChart("Fractions Chart", "GVF and WLR Fractions Chart", TagGVF, TagWLR),
		{
			// does not depend on the GVF/WLR mappings
			Name:        "GVF/WLR Donut Charts",
			Description: "GVF and WLR Donut Charts",
			Type:        TypeDonutChart,
			Config: func(Env) any {
				return DonutConfig{Metrics: []string{"gvf", "wlr"}, Title: "GVF/WLR"}
			},
		},
		{
			Name:        "Production Map",
			Description: "Device Locations Map",
			Type:        TypeMap,
			Config: func(Env) any {
				return MapConfig{ShowDevices: true, ShowStatistics: true}
			},
		},
	}
}

// BuildWidgets filters candidates against the resolved mappings. Skipped
// holds the names of candidates that were left out.
func BuildWidgets(candidates []Candidate, env Env) (widgets []WidgetDefinition, skipped []string) {
	for _, c := range candidates {
		if !c.Available(env.Mappings) {
			skipped = append(skipped, c.Name)
			continue
		}
		widgets = append(widgets, WidgetDefinition{
			Name:             c.Name,
			Description:      c.Description,
			TypeName:         c.Type,
			DataSourceConfig: c.Config(env),
		})
	}
	return widgets, skipped
}

// Layout is the fixed 12 column grid: four KPI cards, three line charts,
// two half width charts and a full width map.
func Layout() []Placement {
	return []Placement{
		{Widget: "OFR Metric", X: 0, Y: 0, W: 3, H: 2, MinW: 2, MinH: 1, Order: 1},
		{Widget: "WFR Metric", X: 3, Y: 0, W: 3, H: 2, MinW: 2, MinH: 1, Order: 2},
		{Widget: "GFR Metric", X: 6, Y: 0, W: 3, H: 2, MinW: 2, MinH: 1, Order: 3},
		{Widget: "Last Refresh", X: 9, Y: 0, W: 3, H: 2, MinW: 2, MinH: 1, Order: 4},

		{Widget: "OFR Chart", X: 0, Y: 2, W: 4, H: 3, MinW: 3, MinH: 2, Order: 5},
		{Widget: "WFR Chart", X: 4, Y: 2, W: 4, H: 3, MinW: 3, MinH: 2, Order: 6},
		{Widget: "GFR Chart", X: 8, Y: 2, W: 4, H: 3, MinW: 3, MinH: 2, Order: 7},

		{Widget: "Fractions Chart", X: 0, Y: 5, W: 6, H: 4, MinW: 4, MinH: 2, Order: 8},
		{Widget: "GVF/WLR Donut Charts", X: 6, Y: 5, W: 6, H: 4, MinW: 4, MinH: 2, Order: 9},

		{Widget: "Production Map", X: 0, Y: 9, W: 12, H: 4, MinW: 8, MinH: 3, Order: 10},
	}
}
