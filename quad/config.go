package quad

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quadlabs/quadpi/internal/midpoint"
)

// DefaultConfigPath is where the init command writes its output and
// where the other commands look when -c is not given.
const DefaultConfigPath = ".quadpi.yaml"

// Config represents the overall tool configuration.
type Config struct {
	// Subintervals is the number of equal-width slices of [0,1].
	Subintervals int64 `yaml:"subintervals"`
	// Compensated switches the accumulator to Kahan summation.
	Compensated bool `yaml:"compensated"`
	// Precision is the digit count for printed values; -1 means the
	// shortest representation that round-trips.
	Precision int `yaml:"precision"`
}

func DefaultConfig() Config {
	return Config{
		Subintervals: midpoint.DefaultSubintervals,
		Precision:    -1,
	}
}

// LoadConfig reads the yaml configuration at path. An empty path falls
// back to DefaultConfigPath, and only then is a missing file treated as
// "use the defaults".
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// WriteConfig marshals config to path, overwriting any existing file.
func WriteConfig(path string, config Config) error {
	if path == "" {
		path = DefaultConfigPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
