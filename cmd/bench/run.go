package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"

	"github.com/i5heu/GoPoolQueue/internal/logger"
	"github.com/i5heu/GoPoolQueue/internal/queue"
	"github.com/i5heu/GoPoolQueue/internal/report"
	"github.com/i5heu/GoPoolQueue/internal/testbench"
	"github.com/i5heu/GoPoolQueue/pkg/config"
)

var (
	runIterations int
	runCapacities []uint
	runBatches    []int
	runEditEvery  int
	runDuration   time.Duration
	runJSONExport bool
	runJSONFile   string
	runProgress   bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runIterations, "iter", 5, "Number of test iterations per workload")
	cmd.Flags().UintSliceVar(&runCapacities, "capacity", []uint{64, 1024, 16384}, "Queue capacities to test")
	cmd.Flags().IntSliceVar(&runBatches, "batch", []int{1, 16, 256}, "Elements enqueued before each drain")
	cmd.Flags().IntVar(&runEditEvery, "edit-every", 8, "Positional edit every N enqueues on queues that support it (0 disables)")
	cmd.Flags().DurationVar(&runDuration, "duration", time.Second, "Duration of each iteration")
	cmd.Flags().BoolVar(&runJSONExport, "json", false, "Append results to the JSON results file")
	cmd.Flags().StringVar(&runJSONFile, "jsonfile", "test-results.json", "Path of the JSON results file")
	cmd.Flags().BoolVar(&runProgress, "progress", false, "Display a progress bar with ETA")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark workloads",
		Long: `The run command measures every implementation for each combination of
capacity and batch size.

Example:
  bench run --iter 3 --capacity 1024 --batch 16,256 --json
  bench run --duration 500ms --progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func workloads() []config.Config {
	var out []config.Config
	for _, c := range runCapacities {
		for _, b := range runBatches {
			out = append(out, config.Config{
				Capacity:  uint64(c),
				BatchSize: b,
				EditEvery: runEditEvery,
			})
		}
	}
	return out
}

func runBench() error {
	if runIterations < 1 {
		return fmt.Errorf("--iter must be at least 1, got %d", runIterations)
	}
	if runDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %s", runDuration)
	}

	impls := getImplementations()
	cfgs := workloads()
	totalTests := len(cfgs) * runIterations * len(impls)

	var bar *progressbar.ProgressBar
	if runProgress {
		bar = progressbar.Default(int64(totalTests), "benchmarking")
	}

	sysInfo := gatherSystemInfo()
	logger.L.Info("starting benchmark session",
		"implementations", len(impls),
		"workloads", len(cfgs),
		"iterations", runIterations,
		"cpu", sysInfo.CPUModel,
	)

	var results []report.BenchmarkResult
	for _, cfg := range cfgs {
		fmt.Printf("  [Workload: capacity=%d, batch=%d, edit-every=%d]\n", cfg.Capacity, cfg.BatchSize, cfg.EditEvery)
		for iteration := 1; iteration <= runIterations; iteration++ {
			fmt.Printf("    iteration %d/%d\n", iteration, runIterations)
			for _, impl := range impls {
				runtime.GC()
				result := runOne(impl, cfg)
				results = append(results, result)

				fmt.Printf("    %s => produced=%d, consumed=%d, edits=%d, throughput=%.0f msg/s, %.1f ns/op\n",
					impl.name, result.NumMessages, result.NumMessagesConsumed, result.NumEdits, result.Throughput, result.NsPerOp)
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if !runJSONExport {
		return nil
	}
	fr := report.FullReport{
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  sysInfo,
		Benchmarks:  results,
	}
	if err := report.Append(runJSONFile, fr); err != nil {
		return err
	}
	fmt.Printf("\nWrote results to %s\n", runJSONFile)
	return nil
}

func runOne(impl Implementation[*int, benchQueue], cfg config.Config) report.BenchmarkResult {
	q := impl.newQueue(cfg.Capacity)
	res := testbench.RunTimedTest[*int](q, cfg, runDuration, func(i int) *int {
		v := i
		return &v
	})

	result := report.BenchmarkResult{
		Implementation:      impl.name,
		Capacity:            cfg.Capacity,
		BatchSize:           cfg.BatchSize,
		EditEvery:           cfg.EditEvery,
		NumMessages:         res.Produced,
		NumMessagesConsumed: res.Consumed,
		NumEdits:            res.Edits,
		NumRejected:         res.Rejected,
		TestDuration:        runDuration.String(),
		ActualElapsed:       res.Elapsed.String(),
		Throughput:          res.Throughput(),
		NsPerOp:             res.NsPerOp(),
		Timestamp:           time.Now().Unix(),
		GoVersion:           runtime.Version(),
	}
	if s, ok := q.(statsSource); ok {
		st := s.Stats()
		result.PoolStats = &st
	}
	if c, ok := q.(queue.Closer); ok {
		c.Close()
	}
	logger.L.Debug("run finished", "implementation", impl.name, "elapsed", res.Elapsed, "rejected", res.Rejected)
	return result
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() report.SystemInfo {
	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	} else if err != nil {
		logger.L.Warn("cpu info unavailable", "err", err)
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	} else {
		logger.L.Warn("memory info unavailable", "err", err)
	}

	return report.SystemInfo{
		NumCPU:      runtime.NumCPU(),
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      runtime.GOARCH,
		TotalMemory: totalMemory,
	}
}
