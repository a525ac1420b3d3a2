package engine

// BreakdownRow is the verdict of a single outcome under one choice.
type BreakdownRow struct {
	Outcome  Outcome
	Damage   int
	Survived bool
	// Total is the stat plus dice compared against the attack. Only set for Evade rows.
	Total int
}

// Evaded reports whether an evade row dodged the attack entirely.
func (r BreakdownRow) Evaded() bool {
	return r.Damage == 0
}

// Breakdown lists every outcome under both choices, in outcome order.
type Breakdown struct {
	Defend []BreakdownRow
	Evade  []BreakdownRow
}

// Detail runs both resolvers over every outcome.
func Detail(p Params, outcomes []Outcome) Breakdown {
	b := Breakdown{
		Defend: make([]BreakdownRow, 0, len(outcomes)),
		Evade:  make([]BreakdownRow, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		dmg := p.Damage(Defend, o)
		b.Defend = append(b.Defend, BreakdownRow{
			Outcome:  o,
			Damage:   dmg,
			Survived: p.Survives(dmg),
		})

		dmg = p.Damage(Evade, o)
		b.Evade = append(b.Evade, BreakdownRow{
			Outcome:  o,
			Damage:   dmg,
			Survived: p.Survives(dmg),
			Total:    p.Evasion + o.Sum(),
		})
	}
	return b
}
