package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/i5heu/GoPoolQueue/internal/report"
)

var tableJSONFile string

func init() {
	cmd := newTableCmd()
	cmd.Flags().StringVar(&tableJSONFile, "jsonfile", "test-results.json", "Path to JSON file for markdown table")
	rootCmd.AddCommand(cmd)
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print a markdown table of the last session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := report.Load(tableJSONFile)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				return fmt.Errorf("no sessions found in %s", tableJSONFile)
			}
			// Use the last session for the table.
			return writeMarkdownTable(os.Stdout, sessions[len(sessions)-1])
		},
	}
}

type tableRow struct {
	implementation string
	pkgName        string
	features       string
	description    string
	throughput     float64
	nsPerOp        float64
	runs           int
}

// summarize averages every run of an implementation in the session and sorts
// rows by throughput, fastest first.
func summarize(session report.FullReport) []tableRow {
	implMetaMap := make(map[string]Implementation[*int, benchQueue])
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}

	byName := make(map[string]*tableRow)
	var order []string
	for _, bench := range session.Benchmarks {
		row, ok := byName[bench.Implementation]
		if !ok {
			row = &tableRow{implementation: bench.Implementation}
			if meta, ok := implMetaMap[bench.Implementation]; ok {
				row.pkgName = meta.pkgName
				row.features = strings.Join(meta.features, ", ")
				row.description = meta.description
			}
			byName[bench.Implementation] = row
			order = append(order, bench.Implementation)
		}
		row.throughput += bench.Throughput
		row.nsPerOp += bench.NsPerOp
		row.runs++
	}

	rows := make([]tableRow, 0, len(order))
	for _, name := range order {
		r := *byName[name]
		r.throughput /= float64(r.runs)
		r.nsPerOp /= float64(r.runs)
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})
	return rows
}

func writeMarkdownTable(w io.Writer, session report.FullReport) error {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString("## Last Session Benchmark Summary\n\n")
	b.WriteString("| Implementation           | Package         | Features                    | Throughput (msgs/sec) | ns/op  |\n")
	b.WriteString("|--------------------------|-----------------|-----------------------------|-----------------------|--------|\n")
	rows := summarize(session)
	for _, r := range rows {
		b.WriteString(p.Sprintf("| %-24s | %-15s | %-27s | %21.0f | %6.1f |\n",
			r.implementation, r.pkgName, r.features, r.throughput, r.nsPerOp))
	}

	b.WriteString("\n### Implementations\n\n")
	for _, r := range rows {
		if r.description == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("- **%s**: %s\n", r.implementation, r.description))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
