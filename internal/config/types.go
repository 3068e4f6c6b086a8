package config

// FeatureSpec is the on-disk form of a StateModel feature declaration:
// exactly one of DistanceUnit, TimeUnit, EnergyUnit, or Format must be
// set, per spec.md's state-feature declaration table.
type FeatureSpec struct {
	DistanceUnit string  `yaml:"distance_unit,omitempty" toml:"distance_unit,omitempty" json:"distance_unit,omitempty"`
	TimeUnit     string  `yaml:"time_unit,omitempty" toml:"time_unit,omitempty" json:"time_unit,omitempty"`
	EnergyUnit   string  `yaml:"energy_unit,omitempty" toml:"energy_unit,omitempty" json:"energy_unit,omitempty"`
	Format       string  `yaml:"format,omitempty" toml:"format,omitempty" json:"format,omitempty"`
	Initial      float64 `yaml:"initial,omitempty" toml:"initial,omitempty" json:"initial,omitempty"`
}

// CostModelConfig is the on-disk form of a CostModel declaration.
type CostModelConfig struct {
	Weights     map[string]float64 `yaml:"weights" toml:"weights" json:"weights"`
	Rates       map[string]float64 `yaml:"rates" toml:"rates" json:"rates"`
	Aggregation string             `yaml:"aggregation" toml:"aggregation" json:"aggregation"`
	Features    []string           `yaml:"features" toml:"features" json:"features"`
}

// TraversalModelConfig is the on-disk form of a TraversalModel
// declaration. Params is left loosely typed since each registered
// Type reads a different parameter shape out of it.
type TraversalModelConfig struct {
	Type   string                 `yaml:"type" toml:"type" json:"type"`
	Params map[string]interface{} `yaml:"params" toml:"params" json:"params"`
}

// QueryConfig is the on-disk form of spec.md §6's Query object.
type QueryConfig struct {
	OriginVertex        uint64                 `yaml:"origin_vertex" toml:"origin_vertex" json:"origin_vertex"`
	DestinationVertex   *uint64                `yaml:"destination_vertex,omitempty" toml:"destination_vertex,omitempty" json:"destination_vertex,omitempty"`
	StateModelOverrides map[string]FeatureSpec `yaml:"state_model_overrides,omitempty" toml:"state_model_overrides,omitempty" json:"state_model_overrides,omitempty"`
	CostModel           CostModelConfig        `yaml:"cost_model" toml:"cost_model" json:"cost_model"`
	TraversalModel      TraversalModelConfig   `yaml:"traversal_model" toml:"traversal_model" json:"traversal_model"`
	ExportTree          bool                   `yaml:"export_tree,omitempty" toml:"export_tree,omitempty" json:"export_tree,omitempty"`
}

// EngineConfig is the on-disk form of the engine-wide defaults a
// deployment configures once: the StateModel's declared features, the
// default CostModel, and where to ingest the graph from.
type EngineConfig struct {
	StateModelFeatures map[string]FeatureSpec `yaml:"state_model_features" toml:"state_model_features" json:"state_model_features"`
	CostModel          CostModelConfig        `yaml:"cost_model" toml:"cost_model" json:"cost_model"`
	VertexCSVPath      string                 `yaml:"vertex_csv_path,omitempty" toml:"vertex_csv_path,omitempty" json:"vertex_csv_path,omitempty"`
	EdgeCSVPath        string                 `yaml:"edge_csv_path,omitempty" toml:"edge_csv_path,omitempty" json:"edge_csv_path,omitempty"`
	SQLitePath         string                 `yaml:"sqlite_path,omitempty" toml:"sqlite_path,omitempty" json:"sqlite_path,omitempty"`
}
