package cmd

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/newsalpha/newsplot/pkg/plot"
)

// Config is the optional YAML file given by --config.
//
//	outputDir: figures
//	format: svg
//	plot:
//	  dpi: 120
//	  scale: 1.5
type Config struct {
	OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`

	Plot plot.Config `json:"plot,omitempty" yaml:"plot,omitempty"`
}

func LoadConfig(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config file %s", configFile)
	}

	return &config, nil
}

// loadConfig feeds the config file values to viper below the flags and the env vars.
func loadConfig(configFile string) error {
	if configFile == "" {
		return nil
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	if config.OutputDir != "" {
		viper.SetDefault("output-dir", config.OutputDir)
	}
	if config.Format != "" {
		viper.SetDefault("format", config.Format)
	}
	if config.Plot.DPI > 0 {
		viper.SetDefault("dpi", config.Plot.DPI)
	}
	if config.Plot.Scale > 0 {
		viper.SetDefault("scale", config.Plot.Scale)
	}

	log.Debugf("loaded config file %s", configFile)
	return nil
}

// newPlotter returns a plotter writing the figures into the configured output directory.
func newPlotter() (*plot.Plotter, error) {
	display, err := plot.NewFileDisplay(viper.GetString("output-dir"), viper.GetString("format"))
	if err != nil {
		return nil, err
	}

	return plot.New(display, plot.Config{
		DPI:   viper.GetFloat64("dpi"),
		Scale: viper.GetFloat64("scale"),
	}), nil
}
