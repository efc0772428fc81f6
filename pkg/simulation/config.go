package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

// ErrInvalidConfig wraps every semantic check failing after schema validation.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// World Dimensions (inclusive bounds every boid bounces inside)
	World behavior.Bounds `json:"world" yaml:"world"`

	// Population
	NumBoids int    `json:"numBoids" yaml:"numBoids"`
	Seed     uint64 `json:"seed" yaml:"seed"` // 0 = time based

	// Run control
	Ticks   uint64 `json:"ticks" yaml:"ticks"`     // 0 = run until stopped
	Workers int    `json:"workers" yaml:"workers"` // behave phase goroutines, 0 = GOMAXPROCS
	TPS     int    `json:"tps" yaml:"tps"`         // viewer ticks per second

	// Boids flocking parameters (matching pkg/behavior/boid.go)
	Boid behavior.Params `json:"boid" yaml:"boid"`

	// Outputs
	OutputDir         string `json:"outputDir" yaml:"outputDir"`
	DisplayPerception bool   `json:"displayPerception" yaml:"displayPerception"`
	DisplayAvoidance  bool   `json:"displayAvoidance" yaml:"displayAvoidance"`
}

func DefaultConfig() *Config {
	return &Config{
		World:    behavior.Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600},
		NumBoids: 150,
		TPS:      30,
		Boid:     behavior.DefaultParams(),
	}
}

// Validate checks what the schema cannot express: ordered bounds and a
// consistent pair of radii.
func (c *Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("%w: world: %w", ErrInvalidConfig, err)
	}
	if err := c.Boid.Validate(); err != nil {
		return fmt.Errorf("%w: boid: %w", ErrInvalidConfig, err)
	}
	if c.NumBoids < 0 || c.Workers < 0 {
		return fmt.Errorf("%w: numBoids and workers must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// NewFlock builds the population c describes. Seed 0 picks a time based seed.
func (c *Config) NewFlock() *behavior.Flock {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := behavior.NewFlock(c.NumBoids, c.World, c.Boid, rand.New(rand.NewPCG(seed, seed>>1|1)))
	f.Workers = c.Workers
	return f
}

// LoadConfig loads configuration from a JSON or YAML file (chosen by extension),
// validates it against the embedded schema and merges it over DefaultConfig.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File, YAML is normalized to JSON so both go through one path
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		if b, err = yamlToJSON(b); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
	}

	// 3. Validate
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads configFile, or returns DefaultConfig when it is empty.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	if configFile == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(configFile)
}

// WriteYAML saves the effective configuration, loadable again with LoadConfig.
func (c *Config) WriteYAML(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(configSchemaURL, strings.NewReader(configSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(configSchemaURL)
}

func yamlToJSON(b []byte) ([]byte, error) {
	var v map[string]interface{}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	if v == nil {
		v = map[string]interface{}{}
	}
	return json.Marshal(v)
}
