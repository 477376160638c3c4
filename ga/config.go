package ga

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Config collects the parameters of an evolve run.
type Config struct {
	Evolution EvolutionConfig `yaml:"evolution"`
	Selection SelectionConfig `yaml:"selection"`
	Crossover CrossoverConfig `yaml:"crossover"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Creator   CreatorConfig   `yaml:"creator"`
	Network   NetworkConfig   `yaml:"network"`
}

// EvolutionConfig holds parameters of the generational loop.
type EvolutionConfig struct {
	PopSize            int     `ini:"pop_size" yaml:"pop_size"`
	Epochs             int     `ini:"epochs" yaml:"epochs"`
	FitnessTermination bool    `ini:"fitness_termination" yaml:"fitness_termination"`
	FitnessThreshold   float64 `ini:"fitness_threshold" yaml:"fitness_threshold"`
	MaxStagnation      int     `ini:"max_stagnation" yaml:"max_stagnation"` // 0 disables
	Seed               int64   `ini:"seed" yaml:"seed"`                     // 0 seeds from the clock
}

// SelectionConfig picks the selection strategy.
type SelectionConfig struct {
	Type string `ini:"type" yaml:"type"` // best, best_worst, best_best
}

// CrossoverConfig picks and parameterises the crossover strategy.
type CrossoverConfig struct {
	Type string `ini:"type" yaml:"type"` // local_search, recombination

	// local_search
	Step       float64 `ini:"step" yaml:"step"`
	Lambda0    float64 `ini:"lambda0" yaml:"lambda0"`
	Iterations int     `ini:"iterations" yaml:"iterations"`

	// recombination
	Bottom float64 `ini:"bottom" yaml:"bottom"`
	Top    float64 `ini:"top" yaml:"top"`
	Gain   float64 `ini:"gain" yaml:"gain"`
}

// MutationConfig picks the mutation strategy.
type MutationConfig struct {
	Type        string  `ini:"type" yaml:"type"`               // swap, none
	Probability float64 `ini:"probability" yaml:"probability"` // percent
}

// CreatorConfig bounds the random initial parameters.
type CreatorConfig struct {
	Lower float64 `ini:"lower" yaml:"lower"`
	Upper float64 `ini:"upper" yaml:"upper"`
}

// Strategy names accepted in configuration files.
const (
	SelectionBest      = "best"
	SelectionBestWorst = "best_worst"
	SelectionBestBest  = "best_best"

	CrossoverLocalSearch   = "local_search"
	CrossoverRecombination = "recombination"

	MutationSwap = "swap"
	MutationNone = "none"
)

// DefaultConfig returns the values used for keys missing from a file.
func DefaultConfig() *Config {
	return &Config{
		Evolution: EvolutionConfig{
			Epochs: 100,
		},
		Selection: SelectionConfig{Type: SelectionBest},
		Crossover: CrossoverConfig{
			Type:       CrossoverLocalSearch,
			Step:       0.01,
			Lambda0:    0.01,
			Iterations: DefaultLineSearchIterations,
			Bottom:     -10,
			Top:        10,
			Gain:       0.002,
		},
		Mutation: MutationConfig{Type: MutationNone},
		Creator:  CreatorConfig{Lower: -1, Upper: 1},
		Network: NetworkConfig{
			FeedbackHistory: 1,
			FeedbackStride:  1,
		},
	}
}

// LoadConfig reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as INI.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	var config *Config
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		config, err = ParseYAMLConfig(data)
	default:
		config, err = ParseINIConfig(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseINIConfig decodes and validates an INI configuration.
func ParseINIConfig(data []byte) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:          "=",
		UnescapeValueCommentSymbols: true,
	}, data)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	sections := []struct {
		name   string
		target interface{}
	}{
		{"evolution", &config.Evolution},
		{"selection", &config.Selection},
		{"crossover", &config.Crossover},
		{"mutation", &config.Mutation},
		{"creator", &config.Creator},
		{"network", &config.Network},
	}
	for _, s := range sections {
		if err := cfg.Section(s.name).MapTo(s.target); err != nil {
			return nil, fmt.Errorf("failed to map [%s] section: %w", s.name, err)
		}
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// ParseYAMLConfig decodes and validates a YAML configuration.
func ParseYAMLConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if err := config.finalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// finalize normalises string options and validates the result.
func (c *Config) finalize() error {
	c.Selection.Type = strings.ToLower(strings.TrimSpace(c.Selection.Type))
	c.Crossover.Type = strings.ToLower(strings.TrimSpace(c.Crossover.Type))
	c.Mutation.Type = strings.ToLower(strings.TrimSpace(c.Mutation.Type))
	for i, l := range c.Network.Layers {
		c.Network.Layers[i] = strings.TrimSpace(l)
	}
	for i, l := range c.Network.Connections {
		c.Network.Connections[i] = strings.TrimSpace(l)
	}
	return c.Validate()
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Evolution.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if c.Evolution.Epochs < 0 {
		return fmt.Errorf("config error: epochs cannot be negative")
	}
	if c.Evolution.MaxStagnation < 0 {
		return fmt.Errorf("config error: max_stagnation cannot be negative")
	}

	selection, err := c.NewSelection()
	if err != nil {
		return err
	}
	if c.Evolution.PopSize%selection.Arity() != 0 {
		return fmt.Errorf("config error: pop_size %d is not a multiple of the %s selection arity %d",
			c.Evolution.PopSize, c.Selection.Type, selection.Arity())
	}

	if _, err := c.NewCrossover(); err != nil {
		return err
	}
	switch c.Crossover.Type {
	case CrossoverLocalSearch:
		if c.Crossover.Step == 0 {
			return fmt.Errorf("config error: crossover step cannot be zero")
		}
		if c.Crossover.Lambda0 <= 0 {
			return fmt.Errorf("config error: crossover lambda0 must be positive")
		}
		if c.Crossover.Iterations < 0 {
			return fmt.Errorf("config error: crossover iterations cannot be negative")
		}
	case CrossoverRecombination:
		if c.Crossover.Top < c.Crossover.Bottom {
			return fmt.Errorf("config error: crossover top cannot be less than bottom")
		}
	}

	if _, err := c.NewMutation(nil); err != nil {
		return err
	}
	if c.Mutation.Probability < 0 || c.Mutation.Probability > 100 {
		return fmt.Errorf("config error: mutation probability must be between 0 and 100")
	}

	if c.Creator.Upper <= c.Creator.Lower {
		return fmt.Errorf("config error: creator upper must be greater than lower")
	}

	if len(c.Network.Layers) > 0 {
		if _, err := c.Network.Build(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// Rand returns a generator seeded from Evolution.Seed, or from the clock
// when the seed is zero.
func (c *Config) Rand() *rand.Rand {
	seed := c.Evolution.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSelection returns the configured selection strategy.
func (c *Config) NewSelection() (Selection, error) {
	switch c.Selection.Type {
	case SelectionBest:
		return BestSelection{}, nil
	case SelectionBestWorst:
		return BestWorstSelection{}, nil
	case SelectionBestBest:
		return BestBestSelection{}, nil
	}
	return nil, fmt.Errorf("config error: invalid selection type '%s'", c.Selection.Type)
}

// NewCrossover returns the configured crossover strategy.
func (c *Config) NewCrossover() (Crossover, error) {
	switch c.Crossover.Type {
	case CrossoverLocalSearch:
		return LocalSearch{
			Step:       c.Crossover.Step,
			Lambda0:    c.Crossover.Lambda0,
			Iterations: c.Crossover.Iterations,
		}, nil
	case CrossoverRecombination:
		return Recombination{
			Bottom: c.Crossover.Bottom,
			Top:    c.Crossover.Top,
			Gain:   c.Crossover.Gain,
		}, nil
	}
	return nil, fmt.Errorf("config error: invalid crossover type '%s'", c.Crossover.Type)
}

// NewMutation returns the configured mutation strategy drawing from rng.
func (c *Config) NewMutation(rng *rand.Rand) (Mutation, error) {
	switch c.Mutation.Type {
	case MutationNone:
		return NoMutation{}, nil
	case MutationSwap:
		return NewSwapMutation(c.Mutation.Probability, rng), nil
	}
	return nil, fmt.Errorf("config error: invalid mutation type '%s'", c.Mutation.Type)
}

// NewCreator returns a creator of size-parameter genotypes within the
// configured bounds.
func (c *Config) NewCreator(eval Evaluator, size int, rng *rand.Rand) *RandomCreator {
	return &RandomCreator{
		Evaluator: eval,
		Size:      size,
		Lower:     c.Creator.Lower,
		Upper:     c.Creator.Upper,
		Rand:      rng,
	}
}

// NewMonitor returns a monitor implementing the configured termination.
func (c *Config) NewMonitor(out io.Writer, logger *slog.Logger) *Monitor {
	return &Monitor{
		Epochs:             c.Evolution.Epochs,
		FitnessTermination: c.Evolution.FitnessTermination,
		FitnessThreshold:   c.Evolution.FitnessThreshold,
		MaxStagnation:      c.Evolution.MaxStagnation,
		Out:                out,
		Logger:             logger,
	}
}

// NewEvolver wires the configured strategies around stop.
func (c *Config) NewEvolver(rng *rand.Rand, stop StopFunction, logger *slog.Logger) (*Evolver, error) {
	selection, err := c.NewSelection()
	if err != nil {
		return nil, err
	}
	crossover, err := c.NewCrossover()
	if err != nil {
		return nil, err
	}
	mutation, err := c.NewMutation(rng)
	if err != nil {
		return nil, err
	}
	return &Evolver{
		Selection: selection,
		Crossover: crossover,
		Mutation:  mutation,
		Stop:      stop,
		Logger:    logger,
	}, nil
}
