package config

// DataConfig points at the input files
type DataConfig struct {
	EntrancesPath        string `yaml:"entrancesPath" validate:"omitempty"`
	CommandsPath         string `yaml:"commandsPath" validate:"omitempty"`
	VehiclePositionsPath string `yaml:"vehiclePositionsPath" validate:"omitempty"`
}

// ClusterConfig contains station clustering settings
type ClusterConfig struct {
	ThresholdKM  float64 `yaml:"thresholdKM" validate:"gt=0,lte=10"`
	SpatialIndex string  `yaml:"spatialIndex" validate:"oneof=linear rtree"`
}

// IndexConfig sizes the station and line hash tables
type IndexConfig struct {
	StationCapacity       int `yaml:"stationCapacity" validate:"gt=0"`
	StationRehashCapacity int `yaml:"stationRehashCapacity" validate:"gtfield=StationCapacity"`
	LineCapacity          int `yaml:"lineCapacity" validate:"gt=0"`
	LineRehashCapacity    int `yaml:"lineRehashCapacity" validate:"gtfield=LineCapacity"`
}

// OutputConfig selects how query results are rendered
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data     DataConfig    `yaml:"data"`
	Cluster  ClusterConfig `yaml:"cluster" validate:"required"`
	Index    IndexConfig   `yaml:"index" validate:"required"`
	Distance string        `yaml:"distance" validate:"oneof=haversine orb"`
	Output   OutputConfig  `yaml:"output" validate:"required"`
}
