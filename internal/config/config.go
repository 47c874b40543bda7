package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	PDF   PDFConfig   `yaml:"pdf" mapstructure:"pdf"`
	Batch BatchConfig `yaml:"batch" mapstructure:"batch"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// PDFConfig configures PDF text extraction.
type PDFConfig struct {
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// BatchConfig configures batch screening.
type BatchConfig struct {
	MaxConcurrentProperties int `yaml:"max_concurrent_properties" mapstructure:"max_concurrent_properties"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SCREENER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.path", "screener.db")
	v.SetDefault("pdf.pdftotext_path", "pdftotext")
	v.SetDefault("batch.max_concurrent_properties", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// PropertyConfig is the per-property screening configuration supplied as a
// JSON file alongside the PDF reports.
type PropertyConfig struct {
	PropertyName    string          `json:"property_name"`
	PropertyDetails PropertyDetails `json:"property_details"`
	Paths           PropertyPaths   `json:"paths"`
	DataSources     map[string]any  `json:"data_sources,omitempty"`
}

// PropertyDetails identifies the subject property.
type PropertyDetails struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// PropertyPaths locates the screening inputs on disk.
type PropertyPaths struct {
	PDFDir      string `json:"pdf_dir"`
	WebDataFile string `json:"web_data_file,omitempty"`
}

// LoadProperty reads a per-property configuration file.
func LoadProperty(path string) (*PropertyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read property file %s", path)
	}

	var pc PropertyConfig
	if err := json.Unmarshal(raw, &pc); err != nil {
		return nil, eris.Wrapf(err, "config: parse property file %s", path)
	}
	if pc.PropertyName == "" {
		return nil, eris.Errorf("config: property file %s missing property_name", path)
	}
	return &pc, nil
}

// AsRecordCategory renders the property configuration the way the record
// and the Data Inputs catalog expect it under the config category.
func (pc *PropertyConfig) AsRecordCategory() map[string]any {
	return map[string]any{
		"property_name": pc.PropertyName,
		"property_details": map[string]any{
			"address":  pc.PropertyDetails.Address,
			"city":     pc.PropertyDetails.City,
			"state":    pc.PropertyDetails.State,
			"zip_code": pc.PropertyDetails.ZipCode,
		},
		"paths": map[string]any{
			"pdf_dir":       pc.Paths.PDFDir,
			"web_data_file": pc.Paths.WebDataFile,
		},
		"data_sources": pc.DataSources,
	}
}
