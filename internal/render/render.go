// Package render turns session reports into text, YAML or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suderio/ojcalc/internal/engine"
	"github.com/suderio/ojcalc/internal/session"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. Blank means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (use text, yaml or json)", s)
}

type inputDoc struct {
	HP      int   `json:"hp" yaml:"hp"`
	Attack  int   `json:"attack" yaml:"attack"`
	Defense int   `json:"def" yaml:"def"`
	Evasion int   `json:"evd" yaml:"evd"`
	Dice    []int `json:"dice" yaml:"dice"`
}

type probabilityDoc struct {
	Probability float64 `json:"probability" yaml:"probability"`
	Survived    int     `json:"survived" yaml:"survived"`
	Total       int     `json:"total" yaml:"total"`
}

type rowDoc struct {
	Dice     []int `json:"dice" yaml:"dice,flow"`
	Damage   int   `json:"damage" yaml:"damage"`
	Survived bool  `json:"survived" yaml:"survived"`
	Total    *int  `json:"evd_total,omitempty" yaml:"evd_total,omitempty"`
}

type breakdownDoc struct {
	Defend []rowDoc `json:"def" yaml:"def"`
	Evade  []rowDoc `json:"evd" yaml:"evd"`
}

// Document is the structured form of a report used by the YAML and JSON encoders.
type Document struct {
	Input          inputDoc       `json:"input" yaml:"input"`
	Defend         probabilityDoc `json:"def" yaml:"def"`
	Evade          probabilityDoc `json:"evd" yaml:"evd"`
	Recommendation string         `json:"recommendation" yaml:"recommendation"`
	Advantage      float64        `json:"advantage" yaml:"advantage"`
	Warnings       []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Breakdown      *breakdownDoc  `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

func probability(p engine.Probability) probabilityDoc {
	return probabilityDoc{Probability: p.Value(), Survived: p.Survived, Total: p.Total}
}

func rows(in []engine.BreakdownRow, withTotal bool) []rowDoc {
	out := make([]rowDoc, 0, len(in))
	for _, r := range in {
		doc := rowDoc{Dice: r.Outcome, Damage: r.Damage, Survived: r.Survived}
		if withTotal {
			total := r.Total
			doc.Total = &total
		}
		out = append(out, doc)
	}
	return out
}

// NewDocument converts a report into its structured form.
func NewDocument(r session.Report) Document {
	a := r.Analysis
	doc := Document{
		Input: inputDoc{
			HP:      a.Params.HP,
			Attack:  a.Params.Attack,
			Defense: a.Params.Defense,
			Evasion: a.Params.Evasion,
			Dice:    a.Dice,
		},
		Defend:         probability(a.Defend),
		Evade:          probability(a.Evade),
		Recommendation: a.Recommendation.String(),
		Advantage:      a.Advantage(),
		Warnings:       r.Warnings,
	}
	if r.Breakdown != nil {
		doc.Breakdown = &breakdownDoc{
			Defend: rows(r.Breakdown.Defend, false),
			Evade:  rows(r.Breakdown.Evade, true),
		}
	}
	return doc
}

// Write encodes a report to w in the requested format.
func Write(w io.Writer, f Format, r session.Report) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(r)); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(r)); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(w, Text(r))
	return err
}
