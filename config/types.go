package config

// ValidatorConfig contains the settings of a validation run
type ValidatorConfig struct {
	Input       string   `yaml:"input"`
	URL         string   `yaml:"url" validate:"omitempty,http_url"`
	Output      string   `yaml:"output"`
	Exclude     []string `yaml:"exclude" validate:"dive,endswith=.txt"`
	Proto       bool     `yaml:"proto"`
	Parallel    int      `yaml:"parallel" validate:"gte=0,lte=64"`
	ResultsDB   string   `yaml:"resultsDB"`
	MetricsFile string   `yaml:"metricsFile"`
}

// ServerConfig contains settings of the serve command
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0,lte=65535"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Validator ValidatorConfig `yaml:"validator"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}
