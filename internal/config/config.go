package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/petewarden/magic-wand-capture/internal/calc"
)

// Augment holds the training set augmentation parameters.
type Augment struct {
	Shifts     int          `yaml:"shifts"`      // sequence shift variants per record
	ShiftRange float64      `yaml:"shift_range"` // peak-to-peak range of the shift offset
	Noises     int          `yaml:"noises"`      // noise injection variants per record
	NoiseLevel float64      `yaml:"noise_level"` // upper bound of per value noise
	Ratios     []calc.Ratio `yaml:"ratios"`      // time warping and amplitude scaling ratios
}

// Negative holds the synthetic negative generation parameters.
type Negative struct {
	Instances int `yaml:"instances"` // per family
	Length    int `yaml:"length"`
}

// Config holds all pipeline configuration values.
type Config struct {
	SeqLength int     `yaml:"seq_length"`
	PadNoise  float64 `yaml:"pad_noise"`

	// Seed for every random source in a run, 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Labels maps a gesture name to its class index. Names in a config file
	// are added to the default table, overriding ids of the same name.
	Labels map[string]int `yaml:"labels"`

	Augment  Augment  `yaml:"augment"`
	Negative Negative `yaml:"negative"`

	// CSVChunk is the number of samples per negative record cut from a CSV recording
	CSVChunk int `yaml:"csv_chunk"`
}

// DefaultLabels is the gesture name to class index table
func DefaultLabels() map[string]int {
	return map[string]int{
		"wing":     0,
		"ring":     1,
		"slope":    2,
		"negative": 3,
		"other":    3,
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	ratios := make([]calc.Ratio, len(calc.DefaultRatios))
	copy(ratios, calc.DefaultRatios)

	return &Config{
		SeqLength: 128,
		PadNoise:  calc.DefaultPadNoise,
		Labels:    DefaultLabels(),
		Augment: Augment{
			Shifts:     5,
			ShiftRange: 200,
			Noises:     5,
			NoiseLevel: 5,
			Ratios:     ratios,
		},
		Negative: Negative{
			Instances: 100,
			Length:    128,
		},
		CSVChunk: 120,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.UnmarshalStrict(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.SeqLength <= 0 {
		return errors.Errorf("seq_length must be positive, got %d", c.SeqLength)
	}
	if c.PadNoise < 0 {
		return errors.Errorf("pad_noise must not be negative, got %v", c.PadNoise)
	}
	if len(c.Labels) == 0 {
		return errors.New("labels table is empty")
	}
	for name, id := range c.Labels {
		if id < 0 {
			return errors.Errorf("label %q has negative id %d", name, id)
		}
	}
	if c.Augment.Shifts < 0 || c.Augment.Noises < 0 {
		return errors.New("augment variant counts must not be negative")
	}
	for _, r := range c.Augment.Ratios {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if c.Negative.Instances < 0 || c.Negative.Length <= 0 {
		return errors.Errorf("invalid negative generation %d x %d", c.Negative.Instances, c.Negative.Length)
	}
	if c.CSVChunk <= 0 {
		return errors.Errorf("csv_chunk must be positive, got %d", c.CSVChunk)
	}
	return nil
}
