package session

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/suderio/ojcalc/internal/engine"
	"github.com/suderio/ojcalc/internal/parser"
)

var (
	// ErrNonPositiveHP rejects a calculation for a defender with no hit points left.
	ErrNonPositiveHP = errors.New("HP must be greater than 0")
	// ErrNonPositiveAttack rejects a calculation against an attack of 0 or less.
	ErrNonPositiveAttack = errors.New("attack must be greater than 0")
	// ErrTooManyOutcomes rejects dice whose outcome space exceeds Config.MaxOutcomes.
	ErrTooManyOutcomes = errors.New("too many dice outcomes")
	// ErrExit is returned when the user asks to leave the shell.
	ErrExit = errors.New("exit requested")
	// ErrEmptyInput is returned for a blank quick line; the shell simply prompts again.
	ErrEmptyInput = errors.New("empty input")
)

// Request is a validated-at-the-boundary calculation. A nil Dice means the session default.
type Request struct {
	Params engine.Params
	Dice   engine.Dice
}

// Report is everything a presentation layer needs to display one calculation.
type Report struct {
	Analysis  engine.Analysis
	Breakdown *engine.Breakdown
	Warnings  []string
}

// Session coordinates input validation, the dice leniency policy and the engine.
type Session struct {
	cfg Config
	log *zap.Logger
}

// New creates a Session. A nil logger discards all logs and a MaxOutcomes
// below 1 is replaced by DefaultMaxOutcomes.
func New(cfg Config, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.MaxOutcomes < 1 {
		cfg.MaxOutcomes = DefaultMaxOutcomes
	}
	return &Session{cfg: cfg, log: log}
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// IsExit reports whether a line asks to leave the shell.
func IsExit(line string) bool {
	line = strings.TrimSpace(line)
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}

// EvaluateQuick parses a one-line calculation and evaluates it.
func (s *Session) EvaluateQuick(line string) (Report, error) {
	if IsExit(line) {
		return Report{}, ErrExit
	}
	if strings.TrimSpace(line) == "" {
		return Report{}, ErrEmptyInput
	}

	q, err := parser.ParseQuick(line)
	if err != nil {
		return Report{}, err
	}
	return s.Evaluate(Request{Params: q.Params, Dice: q.Dice})
}

// Evaluate validates req and computes both survival probabilities.
// Invalid dice are replaced by the default configuration and reported as a warning.
func (s *Session) Evaluate(req Request) (Report, error) {
	if req.Params.HP <= 0 {
		return Report{}, fmt.Errorf("%w (got %d)", ErrNonPositiveHP, req.Params.HP)
	}
	if req.Params.Attack <= 0 {
		return Report{}, fmt.Errorf("%w (got %d)", ErrNonPositiveAttack, req.Params.Attack)
	}

	var report Report
	dice := req.Dice
	if dice == nil {
		dice = s.cfg.fallbackDice()
	} else if err := dice.Validate(); err != nil {
		fallback := s.cfg.fallbackDice()
		s.log.Warn("replacing invalid dice configuration",
			zap.String("dice", dice.String()),
			zap.String("default", fallback.String()),
			zap.Error(err))
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("invalid dice configuration [%s], using [%s] instead", dice.String(), fallback.String()))
		dice = fallback
	}

	if n := dice.Count(); n > s.cfg.MaxOutcomes {
		return Report{}, fmt.Errorf("%w: [%s] has %d outcomes, the limit is %d", ErrTooManyOutcomes, dice.String(), n, s.cfg.MaxOutcomes)
	}

	outcomes, err := engine.Outcomes(dice)
	if err != nil {
		return Report{}, fmt.Errorf("failed to enumerate dice outcomes: %w", err)
	}

	report.Analysis = engine.AnalyzeOutcomes(req.Params, dice, outcomes)
	if s.cfg.ShowDetail {
		b := engine.Detail(req.Params, outcomes)
		report.Breakdown = &b
	}

	s.log.Debug("calculated survival",
		zap.Int("hp", req.Params.HP),
		zap.Int("attack", req.Params.Attack),
		zap.Int("def", req.Params.Defense),
		zap.Int("evd", req.Params.Evasion),
		zap.String("dice", dice.String()),
		zap.Int("outcomes", len(outcomes)),
		zap.Float64("def_probability", report.Analysis.Defend.Value()),
		zap.Float64("evd_probability", report.Analysis.Evade.Value()),
		zap.Stringer("recommendation", report.Analysis.Recommendation))

	return report, nil
}
