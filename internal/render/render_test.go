package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/suderio/ojcalc/internal/engine"
	"github.com/suderio/ojcalc/internal/session"
)

func exampleReport(t *testing.T, detail bool) session.Report {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.ShowDetail = detail
	r, err := session.New(cfg, nil).Evaluate(session.Request{
		Params: engine.Params{HP: 3, Attack: 5, Defense: 2, Evasion: 1},
	})
	require.NoError(t, err)
	return r
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "100.0%", Percent(1))
	assert.Equal(t, "33.3%", Percent(1.0/3.0))
	assert.Equal(t, "66.7%", Percent(2.0/3.0))
	assert.Equal(t, "0.0%", Percent(0))
}

func TestText(t *testing.T) {
	out := Text(exampleReport(t, false))

	assert.Contains(t, out, "HP=3, ATK=5, DEF=2, EVD=1, dice=[6]")
	assert.Contains(t, out, "100.0% (6/6)")
	assert.Contains(t, out, "33.3% (2/6)")
	assert.Contains(t, out, "DEF")
	assert.Contains(t, out, "66.7%")
	assert.NotContains(t, out, "Detail")
}

func TestText_TieHasNoAdvantage(t *testing.T) {
	r, err := session.New(session.DefaultConfig(), nil).EvaluateQuick("10 8 0 0 6 6")
	require.NoError(t, err)

	out := Text(r)
	assert.Contains(t, out, "DEF/EVD (tie)")
	assert.NotContains(t, out, "Advantage")
}

func TestText_Warnings(t *testing.T) {
	r, err := session.New(session.DefaultConfig(), nil).EvaluateQuick("3 5 2 1 0")
	require.NoError(t, err)
	assert.Contains(t, Text(r), "warning: invalid dice configuration [0]")
}

func TestText_Breakdown(t *testing.T) {
	out := Text(exampleReport(t, true))

	assert.Contains(t, out, "dice 1: damage 2 -> survive")
	assert.Contains(t, out, "dice 6: damage 1 -> survive")
	assert.Contains(t, out, "dice 4 (EVD+dice=5): damage 5 -> dead")
	assert.Contains(t, out, "dice 5 (EVD+dice=6): evaded")
}

func TestBreakdown_MultiDieLabels(t *testing.T) {
	p := engine.Params{HP: 10, Attack: 8}
	outcomes, err := engine.Outcomes(engine.Dice{2, 2})
	require.NoError(t, err)

	out := Breakdown(p, engine.Detail(p, outcomes))
	assert.Contains(t, out, "dice 1+2: damage 5 -> survive")
	assert.Contains(t, out, "dice 2+2 (EVD+dice=4): damage 8 -> survive")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, exampleReport(t, true)))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "DEF", doc["recommendation"])
	def := doc["def"].(map[string]any)
	assert.Equal(t, 6, def["survived"])
	evd := doc["evd"].(map[string]any)
	assert.InDelta(t, 1.0/3.0, evd["probability"], 1e-9)

	bd := doc["breakdown"].(map[string]any)
	assert.Len(t, bd["evd"], 6)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, exampleReport(t, false)))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, []int{6}, doc.Input.Dice)
	assert.Equal(t, 2, doc.Evade.Survived)
	assert.Equal(t, 6, doc.Evade.Total)
	assert.Nil(t, doc.Breakdown)
	assert.NotContains(t, buf.String(), "breakdown")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, exampleReport(t, false)))
	assert.Contains(t, buf.String(), "=== Result ===")
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": FormatText, "text": FormatText, "YAML": FormatYAML, "yml": FormatYAML, "json": FormatJSON}
	for in, expected := range tests {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, expected, f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
