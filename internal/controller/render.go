package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "classidx.dev/pkg/classidx/internal/model"
)

const maxDetailWidth = 100

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderScanSummary(summary m.ScanSummary) string {
	return fmt.Sprintf("Found %d candidate symbols (%d files parsed, %d reused from cache, %d collisions, %d warnings)\n",
		summary.Candidates, summary.Parsed, summary.Reused, summary.Collisions, summary.Warnings)
}

func renderBuildResult(result m.BuildResult) string {
	var buf bytes.Buffer

	summary := newTable(&buf, "Metric", "Value")
	summary.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	summary.AppendBulk([][]string{
		{"Candidates", fmt.Sprintf("%d", result.Scan.Candidates)},
		{"Valid", fmt.Sprintf("%d", result.Valid)},
		{"Excluded", fmt.Sprintf("%d", len(result.Errors))},
		{"Newly excluded", fmt.Sprintf("%d", len(result.NewlyExcluded))},
		{"Collisions", fmt.Sprintf("%d", len(result.Collisions))},
		{"Passes", fmt.Sprintf("%d", result.Passes)},
		{"Worker runs", fmt.Sprintf("%d", result.WorkerRuns)},
		{"Hierarchy records", fmt.Sprintf("%d", result.Hierarchy)},
	})
	summary.Render()

	if len(result.Timings) > 0 {
		buf.WriteString("\n")

		timings := newTable(&buf, "Stage", "Duration")
		timings.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

		var total time.Duration
		for _, timing := range result.Timings {
			timings.Append([]string{string(timing.Stage), timing.Duration.Round(time.Millisecond).String()})
			total += timing.Duration
		}

		timings.SetFooter([]string{"Total", total.Round(time.Millisecond).String()})
		timings.Render()
	}

	if len(result.Artifacts) > 0 {
		buf.WriteString("\n")

		paths := make([]string, 0, len(result.Artifacts))
		for path := range result.Artifacts {
			paths = append(paths, string(path))
		}

		sort.Strings(paths)

		artifacts := newTable(&buf, "Artifact", "Status")
		for _, path := range paths {
			artifacts.Append([]string{path, result.Artifacts[m.Path(path)]})
		}

		artifacts.Render()
	}

	if len(result.NewlyExcluded) > 0 {
		buf.WriteString("\n")

		excluded := newTable(&buf, "Newly excluded", "Reason")
		for _, symbol := range result.NewlyExcluded {
			excluded.Append([]string{symbol, firstLine(result.Errors[symbol])})
		}

		excluded.Render()
	}

	return buf.String()
}

func renderClassIndex(path m.Path, index m.ClassIndex) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s: %d symbols, %d excluded\n", path, len(index.ClassMap), len(index.Errors))

	if len(index.Errors) == 0 {
		return buf.String()
	}

	symbols := make([]string, 0, len(index.Errors))
	for symbol := range index.Errors {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	buf.WriteString("\n")

	table := newTable(&buf, "Excluded", "Reason")
	for _, symbol := range symbols {
		table.Append([]string{symbol, firstLine(index.Errors[symbol])})
	}

	table.Render()

	return buf.String()
}

// renderChanges prints the class map changes as a unified diff of
// "symbol => file" lines.
func renderChanges(changes []m.ClassMapChange) (string, error) {
	if len(changes) == 0 {
		return "Class map unchanged\n", nil
	}

	var before, after []string

	for _, change := range changes {
		if change.Before != "" {
			before = append(before, fmt.Sprintf("%s => %s\n", change.Symbol, change.Before))
		}

		if change.After != "" {
			after = append(after, fmt.Sprintf("%s => %s\n", change.Symbol, change.After))
		}
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: "previous",
		ToFile:   "current",
		Context:  0,
	})
	if err != nil {
		return "", err
	}

	return diff, nil
}

func renderFailure(stage m.Stage, err error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Build failed during %s: %v\n", stage, err)

	if detail := strings.TrimSpace(errorDiagnostic(err)); detail != "" {
		b.WriteString("Worker output:\n")
		b.WriteString(detail)
		b.WriteString("\n")
	}

	return b.String()
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if len(line) > maxDetailWidth {
		line = line[:maxDetailWidth] + "..."
	}

	return line
}
