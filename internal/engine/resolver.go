package engine

import "math"

// Choice is the defensive option picked by the defender when attacked.
type Choice int

const (
	// Defend subtracts the defense stat and the dice from the attack.
	Defend Choice = iota
	// Evade avoids the whole attack when evasion plus dice beats it.
	Evade
)

func (c Choice) String() string {
	switch c {
	case Defend:
		return "DEF"
	case Evade:
		return "EVD"
	}
	return "unknown"
}

// Params are the combat numbers of a single calculation.
type Params struct {
	HP      int `json:"hp" yaml:"hp"`
	Attack  int `json:"attack" yaml:"attack"`
	Defense int `json:"def" yaml:"def"`
	Evasion int `json:"evd" yaml:"evd"`
}

// sub returns a - b and whether the result fits in an int.
func sub(a, b int) (int, bool) {
	d := a - b
	return d, (b >= 0) == (d <= a)
}

// clampSub is a - b saturated to [math.MinInt, math.MaxInt].
func clampSub(a, b int) int {
	d, ok := sub(a, b)
	switch {
	case ok:
		return d
	case b < 0:
		return math.MaxInt
	default:
		return math.MinInt
	}
}

// DefendDamage is attack - defense - dice, but never less than 1.
// Damage beyond math.MaxInt is reported as math.MaxInt.
func DefendDamage(attack, defense int, o Outcome) int {
	sum := o.Sum()

	// Outcome sums are never negative, so when both partial differences
	// overflow they both went below math.MinInt.
	damage := math.MinInt
	if d, ok := sub(attack, defense); ok {
		damage = clampSub(d, sum)
	} else if d, ok := sub(attack, sum); ok {
		damage = clampSub(d, defense)
	}

	if damage < 1 {
		return 1
	}
	return damage
}

// EvadeDamage is 0 when evasion + dice is strictly greater than attack, and the full attack otherwise.
func EvadeDamage(attack, evasion int, o Outcome) int {
	gap, ok := sub(attack, evasion)
	if !ok {
		// evasion is so far below attack that no roll closes the gap, or so far above that any roll does.
		if evasion < 0 {
			return attack
		}
		return 0
	}
	if o.Sum() > gap {
		return 0
	}
	return attack
}

// Damage resolves the outcome with the resolver matching c.
func (p Params) Damage(c Choice, o Outcome) int {
	if c == Evade {
		return EvadeDamage(p.Attack, p.Evasion, o)
	}
	return DefendDamage(p.Attack, p.Defense, o)
}

// Survives reports whether the defender is left standing; HP equal to damage is death.
func (p Params) Survives(damage int) bool {
	return p.HP > damage
}
