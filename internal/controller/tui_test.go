package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classidx.dev/pkg/classidx/internal/model"
)

func update(t *testing.T, model buildModel, msg tea.Msg) buildModel {
	t.Helper()

	next, _ := model.Update(msg)
	updated, ok := next.(buildModel)
	require.True(t, ok)

	return updated
}

func TestBuildModel_StageTransitions(t *testing.T) {
	model := newBuildModel()

	model = update(t, model, stageMsg{stage: m.StageScan})
	assert.Equal(t, stateRunning, model.states[m.StageScan])

	model = update(t, model, scanMsg{summary: m.ScanSummary{Candidates: 4, Parsed: 4}})
	model = update(t, model, stageMsg{stage: m.StageValidate})
	assert.Equal(t, stateDone, model.states[m.StageScan])
	assert.Equal(t, stateRunning, model.states[m.StageValidate])

	model = update(t, model, progressMsg{progress: m.ValidationProgress{Pass: 1, Attempted: 2, Total: 4}})
	view := model.View()
	assert.Contains(t, view, "4 candidates, 4 parsed, 0 cached")
	assert.Contains(t, view, "pass 1")
	assert.Contains(t, view, "2/4")

	model = update(t, model, failureMsg{stage: m.StageValidate})
	assert.Equal(t, stateFailed, model.states[m.StageValidate])

	next, cmd := model.Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.True(t, next.(buildModel).quitting)
	assert.Equal(t, stateFailed, next.(buildModel).states[m.StageValidate])
	assert.Equal(t, statePending, next.(buildModel).states[m.StageWrite])
}

func TestTUI_PrintsDirectlyWhenNotStarted(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	ui.DisplayClassIndex(context.Background(), "classmap.json", m.ClassIndex{ClassMap: map[string]m.Path{"A": "/a.php"}})

	assert.Contains(t, out.String(), "classmap.json: 1 symbols, 0 excluded")
}
