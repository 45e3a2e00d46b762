// Package config loads hopfield scenarios: the training rule, recall
// settings, display options and the patterns and probes to run.
// It supports YAML files, an optional .env file and HOPFIELD_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/hopfield"
	"github.com/katalvlaran/hopfield/logging"
	"gopkg.in/yaml.v3"
)

// EnvFile is the dotenv file Load reads from the working directory, if present.
const EnvFile = ".env"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid scenario")

// Scenario contains everything one CLI run needs.
type Scenario struct {
	// Network selects the training rule.
	Network NetworkConfig `json:"network" yaml:"network"`

	// Recall configures the relaxation dynamics.
	Recall RecallConfig `json:"recall" yaml:"recall"`

	// Similarity configures the cross-talk warning.
	Similarity SimilarityConfig `json:"similarity" yaml:"similarity"`

	// Display configures grid rendering.
	Display DisplayConfig `json:"display" yaml:"display"`

	// Logging configures operational and event logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Patterns are the memories to store, in training order.
	Patterns []NamedPattern `json:"patterns" yaml:"patterns"`

	// Probes are the inputs to recall from.
	Probes []Probe `json:"probes" yaml:"probes"`
}

// NetworkConfig configures training.
type NetworkConfig struct {
	// Rule is "hebb" (default) or "pseudoinverse".
	Rule string `json:"rule" yaml:"rule"`
}

// RecallConfig configures recall.
type RecallConfig struct {
	// Mode is "synchronous" (default) or "asynchronous".
	Mode string `json:"mode" yaml:"mode"`

	// MaxIterations caps the number of sweeps. Must be positive.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	// Trace prints every intermediate configuration.
	Trace bool `json:"trace" yaml:"trace"`

	// Workers parallelizes synchronous sweeps. Must be >= 1.
	Workers int `json:"workers" yaml:"workers"`
}

// SimilarityConfig configures the advisory orthogonality check.
type SimilarityConfig struct {
	// Threshold flags pattern pairs with |similarity| above it.
	// Range: 0.0 to 1.0
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

// DisplayConfig configures grid rendering.
type DisplayConfig struct {
	// Width is the number of cells per row; it must divide the pattern length.
	Width int `json:"width" yaml:"width"`

	// Cells draws a box around every cell instead of one outer frame.
	Cells bool `json:"cells" yaml:"cells"`

	// On and Off override the +1 and -1 glyphs.
	On  string `json:"on,omitempty" yaml:"on,omitempty"`
	Off string `json:"off,omitempty" yaml:"off,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is "trace", "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`

	// Events is a JSONL file receiving recall events at debug or trace level.
	Events string `json:"events,omitempty" yaml:"events,omitempty"`
}

// NamedPattern is a stored memory written as '+'/'-' glyphs.
// Spaces and '|' may separate rows.
type NamedPattern struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Probe is a recall input: either an explicit Value, or the stored pattern
// named From with the neurons in Flip inverted.
type Probe struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	From  string `json:"from,omitempty" yaml:"from,omitempty"`
	Flip  []int  `json:"flip,omitempty" yaml:"flip,omitempty"`
}

// ResolvedProbe is a Probe turned into a Pattern.
type ResolvedProbe struct {
	Name    string
	Pattern bipolar.Pattern
}

// Default returns the demo scenario: a 3×3 checkerboard and its
// complement, probed with the centre pixel flipped, five synchronous sweeps.
func Default() *Scenario {
	return &Scenario{
		Network: NetworkConfig{Rule: hopfield.RuleHebb.String()},
		Recall: RecallConfig{
			Mode:          hopfield.Synchronous.String(),
			MaxIterations: 5,
			Trace:         true,
			Workers:       1,
		},
		Similarity: SimilarityConfig{Threshold: hopfield.DefaultCrossTalkThreshold},
		Display:    DisplayConfig{Width: 3},
		Logging:    LoggingConfig{Level: "info"},
		Patterns: []NamedPattern{
			{Name: "checkerboard", Value: "+-+ | -+- | +-+"},
			{Name: "inverse", Value: "-+- | +-+ | -+-"},
		},
		Probes: []Probe{
			{Name: "centre-flipped", From: "checkerboard", Flip: []int{4}},
		},
	}
}

// Load builds a scenario.
// Order: defaults -> .env (if present) -> YAML file at path (if non-empty)
// -> HOPFIELD_* environment variables.
func Load(path string) (*Scenario, error) {
	if err := LoadEnv(EnvFile); err != nil {
		return nil, err
	}

	s := Default()
	if path != "" {
		fileScenario, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		s = fileScenario
	}
	applyEnvOverrides(s)

	return s, nil
}

// LoadEnv reads KEY=VALUE pairs from file into the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadEnv(file string) error {
	if err := godotenv.Load(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", file, err)
	}

	return nil
}

// LoadFromFile parses a YAML scenario over the defaults. A file that lists
// patterns replaces the demo patterns and probes.
func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over the defaults.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	var raw struct {
		Patterns []NamedPattern `yaml:"patterns"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if len(raw.Patterns) > 0 {
		s.Patterns, s.Probes = nil, nil
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return s, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks the scenario and that every pattern and probe resolves.
func (s *Scenario) Validate() error {
	if _, err := hopfield.ParseRule(s.Network.Rule); err != nil {
		return invalidf("network.rule: %v", err)
	}
	if _, err := hopfield.ParseMode(s.Recall.Mode); err != nil {
		return invalidf("recall.mode: %v", err)
	}
	if s.Recall.MaxIterations <= 0 {
		return invalidf("recall.max_iterations must be positive, got %d", s.Recall.MaxIterations)
	}
	if s.Recall.Workers < 1 {
		return invalidf("recall.workers must be >= 1, got %d", s.Recall.Workers)
	}
	if s.Similarity.Threshold < 0 || s.Similarity.Threshold > 1 {
		return invalidf("similarity.threshold must be between 0 and 1, got %f", s.Similarity.Threshold)
	}
	if !logging.ValidLevel(s.Logging.Level) {
		return invalidf("invalid log level: %s (valid: %s, or empty for default)",
			s.Logging.Level, strings.Join(logging.Levels, ", "))
	}

	patterns, err := s.ResolvePatterns()
	if err != nil {
		return err
	}
	n := len(patterns[0])
	if s.Display.Width <= 0 || n%s.Display.Width != 0 {
		return invalidf("display.width %d must be positive and divide the pattern length %d", s.Display.Width, n)
	}
	_, err = s.ResolveProbes()

	return err
}

// Rule returns the parsed training rule.
func (s *Scenario) Rule() (hopfield.Rule, error) {
	return hopfield.ParseRule(s.Network.Rule)
}

// RecallOptions converts the recall section into hopfield options.
func (s *Scenario) RecallOptions() ([]hopfield.Option, error) {
	mode, err := hopfield.ParseMode(s.Recall.Mode)
	if err != nil {
		return nil, err
	}

	return []hopfield.Option{
		hopfield.WithMode(mode),
		hopfield.WithMaxIterations(s.Recall.MaxIterations),
		hopfield.WithTrace(s.Recall.Trace),
		hopfield.WithWorkers(s.Recall.Workers),
	}, nil
}

// ResolvePatterns parses the stored patterns. Names must be unique and
// all patterns must share one length.
func (s *Scenario) ResolvePatterns() ([]bipolar.Pattern, error) {
	if len(s.Patterns) == 0 {
		return nil, invalidf("no patterns: %v", bipolar.ErrEmptySet)
	}
	seen := make(map[string]bool, len(s.Patterns))
	out := make([]bipolar.Pattern, len(s.Patterns))
	for i, np := range s.Patterns {
		if np.Name != "" {
			if seen[np.Name] {
				return nil, invalidf("duplicate pattern name %q", np.Name)
			}
			seen[np.Name] = true
		}
		p, err := bipolar.Parse(np.Value)
		if err != nil {
			return nil, invalidf("pattern %s: %v", label(np.Name, i), err)
		}
		out[i] = p
	}
	if _, err := bipolar.ValidateSet(out); err != nil {
		return nil, invalidf("patterns: %v", err)
	}

	return out, nil
}

// ResolveProbes turns every probe into a pattern of the stored length.
func (s *Scenario) ResolveProbes() ([]ResolvedProbe, error) {
	patterns, err := s.ResolvePatterns()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]bipolar.Pattern, len(patterns))
	for i, np := range s.Patterns {
		if np.Name != "" {
			byName[np.Name] = patterns[i]
		}
	}

	n := len(patterns[0])
	out := make([]ResolvedProbe, 0, len(s.Probes))
	for i, pr := range s.Probes {
		var p bipolar.Pattern
		switch {
		case pr.Value != "" && pr.From != "":
			return nil, invalidf("probe %s: set either value or from, not both", label(pr.Name, i))
		case pr.Value != "":
			if p, err = bipolar.Parse(pr.Value); err != nil {
				return nil, invalidf("probe %s: %v", label(pr.Name, i), err)
			}
		case pr.From != "":
			base, ok := byName[pr.From]
			if !ok {
				return nil, invalidf("probe %s: unknown pattern %q", label(pr.Name, i), pr.From)
			}
			if p, err = bipolar.Flip(base, pr.Flip...); err != nil {
				return nil, invalidf("probe %s: %v", label(pr.Name, i), err)
			}
		default:
			return nil, invalidf("probe %s: needs value or from", label(pr.Name, i))
		}
		if len(p) != n {
			return nil, invalidf("probe %s: length %d, want %d: %v", label(pr.Name, i), len(p), n, bipolar.ErrLengthMismatch)
		}
		out = append(out, ResolvedProbe{Name: label(pr.Name, i), Pattern: p})
	}

	return out, nil
}

// applyEnvOverrides applies HOPFIELD_* environment variables. Malformed
// numbers are ignored.
func applyEnvOverrides(s *Scenario) {
	if v := os.Getenv("HOPFIELD_RULE"); v != "" {
		s.Network.Rule = v
	}
	if v := os.Getenv("HOPFIELD_MODE"); v != "" {
		s.Recall.Mode = v
	}
	if v := os.Getenv("HOPFIELD_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Recall.MaxIterations = n
		}
	}
	if v := os.Getenv("HOPFIELD_TRACE"); v != "" {
		s.Recall.Trace = v == "true" || v == "1"
	}
	if v := os.Getenv("HOPFIELD_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Recall.Workers = n
		}
	}
	if v := os.Getenv("HOPFIELD_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Similarity.Threshold = f
		}
	}
	if v := os.Getenv("HOPFIELD_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Display.Width = n
		}
	}
	if v := os.Getenv("HOPFIELD_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("HOPFIELD_EVENTS"); v != "" {
		s.Logging.Events = v
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// label names a pattern or probe in messages, falling back to its index.
func label(name string, i int) string {
	if name != "" {
		return name
	}

	return "#" + strconv.Itoa(i)
}
