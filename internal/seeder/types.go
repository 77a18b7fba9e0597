package seeder

// Options are the per-run seed parameters.
type Options struct {
	AdminEmail           string
	DeviceType           string
	DashboardName        string
	DashboardDescription string
	DryRun               bool // roll back instead of committing
}

func DefaultOptions() Options {
	return Options{
		AdminEmail:           "admin@saherflow.com",
		DeviceType:           "MPFM",
		DashboardName:        "MPFM Production Dashboard",
		DashboardDescription: "Main production dashboard for MPFM devices",
	}
}

type WidgetType struct {
	Name          string           `json:"name" yaml:"name"`
	ComponentName string           `json:"component_name" yaml:"component_name"`
	DefaultConfig WidgetTypeConfig `json:"default_config" yaml:"default_config"`
}

type WidgetTypeConfig struct {
	RefreshInterval int `json:"refreshInterval" yaml:"refreshInterval"`
}

// Mapping is a device_data_mapping row.
type Mapping struct {
	ID           int64
	VariableName string
	VariableTag  string
	Unit         *string
}

// Mappings holds the resolved mappings keyed by variable tag.
type Mappings map[string]Mapping

// Has reports whether every tag has a mapping.
func (m Mappings) Has(tags ...string) bool {
	for _, tag := range tags {
		if _, ok := m[tag]; !ok {
			return false
		}
	}
	return true
}

// WidgetDefinition is a widget_definitions row ready to insert. TypeName is
// resolved to widget_type_id at insertion time.
type WidgetDefinition struct {
	Name             string
	Description      string
	TypeName         string
	DataSourceConfig any
}

type KPIConfig struct {
	Metric     string `json:"metric"`
	Unit       string `json:"unit,omitempty"`
	Title      string `json:"title"`
	ShortTitle string `json:"shortTitle,omitempty"`
	Icon       string `json:"icon"`
	ColorDark  string `json:"colorDark,omitempty"`
	ColorLight string `json:"colorLight,omitempty"`
	Color      string `json:"color,omitempty"`
}

type ChartConfig struct {
	DeviceTypeID   int64    `json:"deviceTypeId"`
	NumberOfSeries int      `json:"numberOfSeries"`
	SeriesConfig   []Series `json:"seriesConfig"`
}

type Series struct {
	PropertyID         int64   `json:"propertyId"`
	PropertyName       string  `json:"propertyName"`
	DisplayName        string  `json:"displayName"`
	DataSourceProperty string  `json:"dataSourceProperty"`
	Unit               *string `json:"unit"`
	DataType           string  `json:"dataType"`
}

type DonutConfig struct {
	Metrics []string `json:"metrics"`
	Title   string   `json:"title"`
}

type MapConfig struct {
	ShowDevices    bool `json:"showDevices"`
	ShowStatistics bool `json:"showStatistics"`
}

// Placement positions one widget on the 12 column dashboard grid.
type Placement struct {
	Widget string `json:"widget" yaml:"widget"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	W      int    `json:"w" yaml:"w"`
	H      int    `json:"h" yaml:"h"`
	MinW   int    `json:"minW" yaml:"minW"`
	MinH   int    `json:"minH" yaml:"minH"`
	Order  int    `json:"order" yaml:"order"`
}

// LayoutConfig is the JSON stored in dashboard_layouts.layout_config.
type LayoutConfig struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	W      int  `json:"w"`
	H      int  `json:"h"`
	MinW   int  `json:"minW"`
	MinH   int  `json:"minH"`
	Static bool `json:"static"`
}

func (p Placement) LayoutConfig() LayoutConfig {
	return LayoutConfig{X: p.X, Y: p.Y, W: p.W, H: p.H, MinW: p.MinW, MinH: p.MinH}
}

// Result summarises a seed run.
type Result struct {
	WidgetTypes       int
	WidgetDefinitions int
	Dashboards        int
	Layouts           int
	SkippedWidgets    []string
	SkippedPlacements []string
	DryRun            bool
}
