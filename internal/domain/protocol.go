package domain

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	m "classidx.dev/pkg/classidx/internal/model"
)

// Sentinel lines printed by the validation worker.
const (
	startupToken = "FDSFZEREZ_STARTUP"
	beforeToken  = "X4EVDX4SEVX5_BEFOREINCLUDE"
	afterToken   = "DSQRZREZRZER__AFTERINCLUDE"
	endToken     = "SQDSG4FDSE3234JK_ENDFILE"
)

const maxQuotedLine = 120

// StreamResult is what one validation worker run proved. The run is trusted up
// to its first failure only: symbols requested after Failed were not decided.
type StreamResult struct {
	// Loaded lists the symbols that loaded cleanly, in request order.
	Loaded []string
	// Failed is the first symbol that failed, empty when none did.
	Failed string
	// Detail is the output captured for Failed.
	Detail string
	// Complete is set when the worker printed its end token.
	Complete bool
}

// Attempted returns how many requested symbols the run decided.
func (r StreamResult) Attempted() int {
	if r.Failed != "" {
		return len(r.Loaded) + 1
	}

	return len(r.Loaded)
}

// ParseValidationStream reads the sentinel protocol from a worker's output.
// requested is the symbol list the worker was given, in order; timeout is the
// limit the worker ran under and only feeds failure messages.
func ParseValidationStream(output m.WorkerOutput, requested []string, timeout time.Duration) (StreamResult, error) {
	var result StreamResult

	lines := splitLines(output.Stdout)

	i := 0
	for i < len(lines) && lines[i] != startupToken {
		i++
	}

	if i == len(lines) {
		return result, fmt.Errorf("%w: no %s line in output", ErrMissingStartup, startupToken)
	}

	if i > 0 {
		slog.Debug("Ignoring worker output before startup", "lines", i, "first", quote(lines[0]))
	}

	i++
	next := 0

	for i < len(lines) {
		switch lines[i] {
		case endToken:
			if next < len(requested) {
				return result, fmt.Errorf("%w: worker ended before reaching %q", ErrProtocol, requested[next])
			}

			if i+1 < len(lines) {
				slog.Debug("Ignoring worker output after end", "lines", len(lines)-i-1)
			}

			result.Complete = true

			return result, nil
		case beforeToken:
		default:
			return result, fmt.Errorf("%w: unexpected line %s", ErrProtocol, quote(lines[i]))
		}

		i++

		if next >= len(requested) {
			return result, fmt.Errorf("%w: worker loaded more symbols than requested", ErrProtocol)
		}

		symbol := requested[next]

		if i == len(lines) {
			result.Failed = symbol
			result.Detail = inFlightDetail(nil, output, timeout)

			return result, nil
		}

		if lines[i] != symbol {
			return result, fmt.Errorf("%w: expected symbol %q, got %s", ErrProtocol, symbol, quote(lines[i]))
		}

		i++
		next++

		start := i
		for i < len(lines) && !isSentinel(lines[i]) {
			i++
		}

		detail := lines[start:i]
		blank := strings.TrimSpace(joinDetail(detail)) == ""

		if blank && i < len(lines) && lines[i] == afterToken {
			result.Loaded = append(result.Loaded, symbol)
			i++

			continue
		}

		result.Failed = symbol

		switch {
		case i == len(lines):
			result.Detail = inFlightDetail(detail, output, timeout)
		case blank:
			result.Detail = "loading " + symbol + " did not complete"
		default:
			result.Detail = strings.TrimLeft(joinDetail(detail), "\n")
		}

		return result, nil
	}

	return result, nil
}

func inFlightDetail(detail []string, output m.WorkerOutput, timeout time.Duration) string {
	text := joinDetail(detail)

	switch {
	case output.TimedOut:
		text += "\nworker timed out after " + timeout.String()
	case text == "":
		text = fmt.Sprintf("worker exited with code %d", output.ExitCode)
	}

	return strings.TrimLeft(text, "\n")
}

func isSentinel(line string) bool {
	return line == beforeToken || line == afterToken || line == endToken
}

func splitLines(out []byte) []string {
	if len(out) == 0 {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func joinDetail(lines []string) string {
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}

func quote(line string) string {
	if len(line) > maxQuotedLine {
		line = line[:maxQuotedLine] + "..."
	}

	return fmt.Sprintf("%q", line)
}
