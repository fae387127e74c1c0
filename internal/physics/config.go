package physics

import (
	"encoding/json"
	"os"
)

// Solver and broad-phase defaults. Smaller cells reduce false positives
// per bucket but raise the per-body cell count for large shapes.
const (
	DefaultCellSize          = 5.0
	DefaultSlop              = 0.01
	DefaultCorrectionPercent = 0.8
	DefaultVelocityEpsilon   = 0.001
	DefaultIterations        = 1
)

// Config carries the engine tunables. Non-positive fields fall back to
// the defaults above when the config enters a World.
type Config struct {
	CellSize          float32 `json:"cellSize"`
	Slop              float32 `json:"slop"`
	CorrectionPercent float32 `json:"correctionPercent"`
	VelocityEpsilon   float32 `json:"velocityEpsilon"`
	Iterations        int     `json:"iterations"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:          DefaultCellSize,
		Slop:              DefaultSlop,
		CorrectionPercent: DefaultCorrectionPercent,
		VelocityEpsilon:   DefaultVelocityEpsilon,
		Iterations:        DefaultIterations,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.Slop <= 0 {
		c.Slop = d.Slop
	}
	if c.CorrectionPercent <= 0 {
		c.CorrectionPercent = d.CorrectionPercent
	}
	if c.VelocityEpsilon <= 0 {
		c.VelocityEpsilon = d.VelocityEpsilon
	}
	if c.Iterations <= 0 {
		c.Iterations = d.Iterations
	}
	return c
}

// LoadConfig reads tunables from a JSON file. A missing or malformed
// file yields the defaults and is not an error.
func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg.withDefaults()
}

// SaveConfig writes tunables as indented JSON.
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
