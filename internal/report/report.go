// Package report holds the benchmark session schema shared by cmd/bench and
// cmd/buildGraph, and reads and appends the results file.
package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sugawarayuuta/sonnet"

	"github.com/i5heu/GoPoolQueue/pkg/pool"
)

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation      string      `json:"implementation"`
	Capacity            uint64      `json:"capacity"`
	BatchSize           int         `json:"batch_size"`
	EditEvery           int         `json:"edit_every,omitempty"`
	NumMessages         int64       `json:"num_messages"`          // produced count
	NumMessagesConsumed int64       `json:"num_messages_consumed"` // consumed count
	NumEdits            int64       `json:"num_edits,omitempty"`
	NumRejected         int64       `json:"num_rejected,omitempty"`
	TestDuration        string      `json:"test_duration"`       // e.g. "5s"
	ActualElapsed       string      `json:"actual_elapsed"`      // measured time
	Throughput          float64     `json:"throughput_msgs_sec"` // based on consumed count
	NsPerOp             float64     `json:"ns_per_op"`
	PoolStats           *pool.Stats `json:"pool_stats,omitempty"`
	Timestamp           int64       `json:"timestamp"`
	GoVersion           string      `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// Load reads every session from filename. A missing file yields no sessions.
func Load(filename string) ([]FullReport, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", filename, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var sessions []FullReport
	if err := sonnet.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("unmarshal %q: %w", filename, err)
	}
	return sessions, nil
}

// Append adds sessions to the ones already stored in filename.
func Append(filename string, sessions ...FullReport) error {
	previous, err := Load(filename)
	if err != nil {
		return err
	}
	updated := append(previous, sessions...)
	data, err := sonnet.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write %q: %w", filename, err)
	}
	return nil
}
