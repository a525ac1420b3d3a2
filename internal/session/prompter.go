package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/suderio/ojcalc/internal/parser"
)

// Field identifies the value the detailed input mode is currently asking for.
type Field int

const (
	FieldHP Field = iota
	FieldAttack
	FieldDefense
	FieldEvasion
	FieldDice
)

var prompts = map[Field]string{
	FieldHP:      "Current HP (exit to quit)",
	FieldAttack:  "Attacker's attack",
	FieldDefense: "Character DEF",
	FieldEvasion: "Character EVD",
	FieldDice:    "Dice (e.g. 6 or 6,6 or 2d6, blank for default)",
}

// Prompter walks the detailed input mode one field at a time.
//
// Each accepted answer advances to the next field. A rejected answer keeps the
// current field so the shell can ask again. After the dice field the calculation
// runs and the prompter starts over at FieldHP. A calculation that fails keeps
// the earlier answers and asks for the dice again.
type Prompter struct {
	s     *Session
	field Field
	req   Request
}

// NewPrompter starts a detailed-mode calculation.
func (s *Session) NewPrompter() *Prompter {
	return &Prompter{s: s}
}

// Field returns the field waiting for an answer.
func (p *Prompter) Field() Field {
	return p.field
}

// Prompt returns the question for the current field.
func (p *Prompter) Prompt() string {
	return prompts[p.field]
}

// Reset discards any partial answers.
func (p *Prompter) Reset() {
	p.field = FieldHP
	p.req = Request{}
}

// Submit answers the current field. It returns a report once the dice field has been answered.
func (p *Prompter) Submit(line string) (*Report, error) {
	if IsExit(line) {
		return nil, ErrExit
	}

	if p.field == FieldDice {
		return p.finish(line)
	}

	v, err := parser.ParseField(line)
	if err != nil {
		return nil, err
	}

	switch p.field {
	case FieldHP:
		if v <= 0 {
			return nil, fmt.Errorf("%w (got %d)", ErrNonPositiveHP, v)
		}
		p.req.Params.HP = v
	case FieldAttack:
		if v <= 0 {
			return nil, fmt.Errorf("%w (got %d)", ErrNonPositiveAttack, v)
		}
		p.req.Params.Attack = v
	case FieldDefense:
		p.req.Params.Defense = v
	case FieldEvasion:
		p.req.Params.Evasion = v
	}
	p.field++
	return nil, nil
}

func (p *Prompter) finish(line string) (*Report, error) {
	var warnings []string
	dice, err := parser.ParseDice(line)
	if err != nil {
		if !errors.Is(err, parser.ErrMalformedInput) {
			return nil, err
		}
		p.s.log.Warn("unreadable dice configuration, using default", zap.String("input", line), zap.Error(err))
		warnings = append(warnings, fmt.Sprintf("could not read dice %q, using [%s]", line, p.s.cfg.fallbackDice().String()))
		dice = nil
	}

	req := p.req
	req.Dice = dice
	report, err := p.s.Evaluate(req)
	if err != nil {
		return nil, err
	}
	p.Reset()
	report.Warnings = append(warnings, report.Warnings...)
	return &report, nil
}
