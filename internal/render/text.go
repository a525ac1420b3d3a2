package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suderio/ojcalc/internal/engine"
	"github.com/suderio/ojcalc/internal/session"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	recommendStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))
)

// Percent formats a probability with one decimal, e.g. 0.3333 -> "33.3%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// Input echoes the parameters of a calculation on one line.
func Input(a engine.Analysis) string {
	p := a.Params
	return fmt.Sprintf("HP=%d, ATK=%d, DEF=%d, EVD=%d, dice=[%s]", p.HP, p.Attack, p.Defense, p.Evasion, a.Dice.String())
}

// Text renders a report for the terminal.
func Text(r session.Report) string {
	var b strings.Builder

	for _, w := range r.Warnings {
		b.WriteString(warnStyle.Render("warning: "+w) + "\n")
	}

	a := r.Analysis
	b.WriteString(headerStyle.Render("=== Result ===") + "\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Input:"), mutedStyle.Render(Input(a)))
	fmt.Fprintf(&b, "%s %s (%d/%d)\n", labelStyle.Render("DEF survival:"), Percent(a.Defend.Value()), a.Defend.Survived, a.Defend.Total)
	fmt.Fprintf(&b, "%s %s (%d/%d)\n", labelStyle.Render("EVD survival:"), Percent(a.Evade.Value()), a.Evade.Survived, a.Evade.Total)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Recommendation:"), recommendStyle.Render(a.Recommendation.String()))
	if a.Recommendation != engine.Tie {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Advantage:"), Percent(a.Advantage()))
	}

	if r.Breakdown != nil {
		b.WriteString("\n")
		b.WriteString(Breakdown(a.Params, *r.Breakdown))
	}

	return b.String()
}

// Breakdown renders the per-outcome damage of both choices.
func Breakdown(p engine.Params, bd engine.Breakdown) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("=== Detail ===") + "\n")
	fmt.Fprintf(&b, "%s\n", labelStyle.Render("DEF - damage per roll:"))
	for _, row := range bd.Defend {
		fmt.Fprintf(&b, "  dice %s: damage %d -> %s\n", row.Outcome.Label(), row.Damage, verdict(row.Survived))
	}

	fmt.Fprintf(&b, "%s\n", labelStyle.Render("EVD - damage per roll:"))
	for _, row := range bd.Evade {
		if row.Evaded() {
			fmt.Fprintf(&b, "  dice %s (EVD+dice=%d): evaded\n", row.Outcome.Label(), row.Total)
			continue
		}
		fmt.Fprintf(&b, "  dice %s (EVD+dice=%d): damage %d -> %s\n", row.Outcome.Label(), row.Total, row.Damage, verdict(row.Survived))
	}

	return b.String()
}

func verdict(survived bool) string {
	if survived {
		return "survive"
	}
	return "dead"
}
