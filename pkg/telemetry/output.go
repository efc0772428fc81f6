package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
)

// ConfigWriter is anything that can dump itself as YAML.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// OutputManager handles experiment output: telemetry.csv and config.yaml.
type OutputManager struct {
	dir           string
	telemetryFile *os.File

	// Track if headers have been written
	telemetryHeaderWritten bool
}

// NewOutputManager creates the output directory and telemetry.csv.
// Returns nil if dir is empty (output disabled); a nil manager ignores writes.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	return &OutputManager{dir: dir, telemetryFile: f}, nil
}

// WriteConfig saves the configuration used for the run as config.yaml.
func (om *OutputManager) WriteConfig(cfg ConfigWriter) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends one record to telemetry.csv.
func (om *OutputManager) WriteStats(stats Stats) error {
	if om == nil {
		return nil
	}

	records := []Stats{stats}
	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the CSV file.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.telemetryFile.Close()
}

// Recorder computes Stats every Every ticks and hands them to an OutputManager.
// It satisfies simulation.TickObserver.
type Recorder struct {
	out   *OutputManager
	every uint64

	mu   sync.Mutex
	last Stats
}

// NewRecorder samples every n ticks (n < 1 means every tick). out may be nil.
func NewRecorder(out *OutputManager, n uint64) *Recorder {
	return &Recorder{out: out, every: max(n, 1)}
}

func (r *Recorder) ObserveTick(tick uint64, boids []*behavior.Boid) error {
	if tick%r.every != 0 {
		return nil
	}
	s := Compute(tick, boids)
	r.mu.Lock()
	r.last = s
	r.mu.Unlock()
	return r.out.WriteStats(s)
}

// Last returns the most recent sample.
func (r *Recorder) Last() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
