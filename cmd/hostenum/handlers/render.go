package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/hostenum/internal/config"
	"github.com/imamik/hostenum/internal/enumerate"
)

var (
	reportColorGreen = lipgloss.Color("#22c55e")
	reportColorBlue  = lipgloss.Color("#3b82f6")
	reportColorDim   = lipgloss.Color("#6b7280")
	reportColorWhite = lipgloss.Color("#f9fafb")
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorWhite)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportGreenStyle = lipgloss.NewStyle().
				Foreground(reportColorGreen)
)

// renderReport produces the report in the configured format.
func renderReport(cfg *config.Config, plan *enumerate.Plan, applied bool) (string, error) {
	if cfg.Output == config.OutputJSON {
		return renderJSON(cfg, plan, applied)
	}
	return renderText(cfg, plan, applied), nil
}

// renderText produces a lipgloss-styled plan summary. Color is dropped
// automatically when stdout is not a terminal.
func renderText(cfg *config.Config, plan *enumerate.Plan, applied bool) string {
	var b strings.Builder

	verb := "plan"
	if applied {
		verb = "applied"
	}

	b.WriteString("\n")
	b.WriteString(reportTitleStyle.Render(fmt.Sprintf("  hostenum %s: %s (tag %s)", verb, cfg.Pattern, cfg.Tag)))
	b.WriteString("\n")
	b.WriteString(reportDimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	b.WriteString(reportSectionStyle.Render(fmt.Sprintf("  Conforming (%d)", len(plan.Conforming))))
	b.WriteString("\n")
	for _, c := range plan.Conforming {
		b.WriteString(fmt.Sprintf("    %-20s %s\n", c.Instance.TagValue, reportDimStyle.Render(instanceHandle(c.Instance))))
	}

	b.WriteString("\n")
	if applied {
		b.WriteString(reportSectionStyle.Render(fmt.Sprintf("  Renamed (%d)", len(plan.Changes))))
	} else {
		b.WriteString(reportSectionStyle.Render(fmt.Sprintf("  To rename (%d)", len(plan.Changes))))
	}
	b.WriteString("\n")
	for _, ch := range plan.Changes {
		before := ch.Before
		if before == "" {
			before = "(none)"
		}
		// Pad before styling so ANSI escapes do not skew the columns.
		b.WriteString(fmt.Sprintf("    %-20s -> %s %s\n",
			before,
			reportGreenStyle.Render(fmt.Sprintf("%-20s", ch.After)),
			reportDimStyle.Render(changeHandle(ch))))
	}

	if len(plan.Changes) == 0 {
		b.WriteString(reportDimStyle.Render("    every instance already conforms"))
		b.WriteString("\n")
	}

	return b.String()
}

func instanceHandle(inst enumerate.Instance) string {
	if inst.Name != "" && inst.Name != inst.ID {
		return fmt.Sprintf("%s (%s)", inst.Name, inst.ID)
	}
	return inst.ID
}

func changeHandle(ch enumerate.Change) string {
	if ch.Name != "" && ch.Name != ch.InstanceID {
		return fmt.Sprintf("%s (%s)", ch.Name, ch.InstanceID)
	}
	return ch.InstanceID
}
