package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

const (
	startup = "FDSFZEREZ_STARTUP"
	before  = "X4EVDX4SEVX5_BEFOREINCLUDE"
	after   = "DSQRZREZRZER__AFTERINCLUDE"
	end     = "SQDSG4FDSE3234JK_ENDFILE"
)

func stream(lines ...string) m.WorkerOutput {
	return m.WorkerOutput{Stdout: []byte(strings.Join(lines, "\n") + "\n")}
}

func TestParseValidationStream(t *testing.T) {
	tests := []struct {
		name      string
		output    m.WorkerOutput
		requested []string
		want      domain.StreamResult
	}{
		{
			name:      "all symbols load",
			output:    stream(startup, before, "A", after, before, "B", after, end),
			requested: []string{"A", "B"},
			want:      domain.StreamResult{Loaded: []string{"A", "B"}, Complete: true},
		},
		{
			name:      "preamble before startup is ignored",
			output:    stream("Deprecated: something", startup, before, "A", after, end),
			requested: []string{"A"},
			want:      domain.StreamResult{Loaded: []string{"A"}, Complete: true},
		},
		{
			name:      "caught failure stops trusting the run",
			output:    stream(startup, before, "A", after, before, "B", "Error: Class \"Missing\" not found", before, "C", after, end),
			requested: []string{"A", "B", "C"},
			want:      domain.StreamResult{Loaded: []string{"A"}, Failed: "B", Detail: "Error: Class \"Missing\" not found"},
		},
		{
			name:      "warning before after is a failure",
			output:    stream(startup, before, "A", "Warning: include(x): failed", after, end),
			requested: []string{"A"},
			want:      domain.StreamResult{Failed: "A", Detail: "Warning: include(x): failed"},
		},
		{
			name:      "blank lines before after are not a failure",
			output:    stream(startup, before, "A", "", after, end),
			requested: []string{"A"},
			want:      domain.StreamResult{Loaded: []string{"A"}, Complete: true},
		},
		{
			name:      "fatal error ends the stream in flight",
			output:    m.WorkerOutput{Stdout: []byte(startup + "\n" + before + "\nA\nPHP Fatal error:  Cannot redeclare foo()\n"), ExitCode: 255},
			requested: []string{"A", "B"},
			want:      domain.StreamResult{Failed: "A", Detail: "PHP Fatal error:  Cannot redeclare foo()"},
		},
		{
			name:      "silent crash in flight reports the exit code",
			output:    m.WorkerOutput{Stdout: []byte(startup + "\n" + before + "\nA\n"), ExitCode: 139},
			requested: []string{"A"},
			want:      domain.StreamResult{Failed: "A", Detail: "worker exited with code 139"},
		},
		{
			name:      "stream ends between items",
			output:    stream(startup, before, "A", after),
			requested: []string{"A", "B"},
			want:      domain.StreamResult{Loaded: []string{"A"}},
		},
		{
			name:      "missing after before the next item",
			output:    stream(startup, before, "A", before, "B", after, end),
			requested: []string{"A", "B"},
			want:      domain.StreamResult{Failed: "A", Detail: "loading A did not complete"},
		},
		{
			name:      "crlf line endings",
			output:    m.WorkerOutput{Stdout: []byte(startup + "\r\n" + before + "\r\nA\r\n" + after + "\r\n" + end + "\r\n")},
			requested: []string{"A"},
			want:      domain.StreamResult{Loaded: []string{"A"}, Complete: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseValidationStream(tt.output, tt.requested, time.Second)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValidationStream_Timeout(t *testing.T) {
	output := m.WorkerOutput{
		Stdout:   []byte(startup + "\n" + before + "\nSlow\nstill loading\n"),
		TimedOut: true,
	}

	got, err := domain.ParseValidationStream(output, []string{"Slow", "Next"}, 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Slow", got.Failed)
	assert.Equal(t, "still loading\nworker timed out after 30s", got.Detail)
	assert.Equal(t, 1, got.Attempted())
}

func TestParseValidationStream_Errors(t *testing.T) {
	tests := []struct {
		name      string
		output    m.WorkerOutput
		requested []string
		wantErr   error
	}{
		{"empty output", m.WorkerOutput{}, []string{"A"}, domain.ErrMissingStartup},
		{"no startup", stream("PHP Parse error: syntax error"), []string{"A"}, domain.ErrMissingStartup},
		{"garbage where before is expected", stream(startup, "hello"), []string{"A"}, domain.ErrProtocol},
		{"garbage between items", stream(startup, before, "A", after, "oops"), []string{"A", "B"}, domain.ErrProtocol},
		{"wrong symbol", stream(startup, before, "B", after, end), []string{"A"}, domain.ErrProtocol},
		{"end before all symbols", stream(startup, before, "A", after, end), []string{"A", "B"}, domain.ErrProtocol},
		{"more items than requested", stream(startup, before, "A", after, before, "B", after, end), []string{"A"}, domain.ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseValidationStream(tt.output, tt.requested, time.Second)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStreamResult_Attempted(t *testing.T) {
	assert.Equal(t, 0, domain.StreamResult{}.Attempted())
	assert.Equal(t, 2, domain.StreamResult{Loaded: []string{"A", "B"}}.Attempted())
	assert.Equal(t, 3, domain.StreamResult{Loaded: []string{"A", "B"}, Failed: "C"}.Attempted())
}
