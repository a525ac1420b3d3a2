package engine

import "math"

// Probability is the share of the outcome space in which the defender survives.
type Probability struct {
	Survived int
	Total    int
}

// Value returns Survived/Total, or 0 for an empty outcome space.
func (p Probability) Value() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Survived) / float64(p.Total)
}

// Survival counts the outcomes where the defender outlives the damage dealt by choice c.
func Survival(p Params, c Choice, outcomes []Outcome) Probability {
	res := Probability{Total: len(outcomes)}
	for _, o := range outcomes {
		if p.Survives(p.Damage(c, o)) {
			res.Survived++
		}
	}
	return res
}

// Recommendation is the verdict from comparing both survival probabilities.
type Recommendation int

const (
	Tie Recommendation = iota
	PreferDefend
	PreferEvade
)

func (r Recommendation) String() string {
	switch r {
	case PreferDefend:
		return "DEF"
	case PreferEvade:
		return "EVD"
	}
	return "DEF/EVD (tie)"
}

// Recommend picks the choice with the strictly higher probability. Equal values are a tie.
func Recommend(defend, evade float64) Recommendation {
	switch {
	case defend > evade:
		return PreferDefend
	case evade > defend:
		return PreferEvade
	}
	return Tie
}

// Analysis holds both survival probabilities over the same outcome space.
type Analysis struct {
	Params         Params
	Dice           Dice
	Defend         Probability
	Evade          Probability
	Recommendation Recommendation
}

// Analyze builds the outcome space of d once and evaluates both choices against it.
func Analyze(p Params, d Dice) (Analysis, error) {
	outcomes, err := Outcomes(d)
	if err != nil {
		return Analysis{}, err
	}
	return AnalyzeOutcomes(p, d, outcomes), nil
}

// AnalyzeOutcomes is Analyze over an already generated outcome space.
func AnalyzeOutcomes(p Params, d Dice, outcomes []Outcome) Analysis {
	a := Analysis{
		Params: p,
		Dice:   d,
		Defend: Survival(p, Defend, outcomes),
		Evade:  Survival(p, Evade, outcomes),
	}
	a.Recommendation = Recommend(a.Defend.Value(), a.Evade.Value())
	return a
}

// Advantage is the absolute gap between both probabilities.
func (a Analysis) Advantage() float64 {
	return math.Abs(a.Defend.Value() - a.Evade.Value())
}
