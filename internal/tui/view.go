package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// View renders the whole screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mortcalc"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.missing != nil:
		b.WriteString(errorStyle.Render("Needs more info:"))
		b.WriteString("\n")
		for _, field := range m.missing {
			b.WriteString(labelStyle.Render(fmt.Sprintf("  - %s", field)))
			b.WriteString("\n")
		}
	case m.result != nil:
		b.WriteString(m.renderBreakdown())
		b.WriteString("\n")
	default:
		b.WriteString(labelStyle.Render("Type a mortgage question and press Enter."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: calculate  •  esc: quit"))

	return appStyle.Render(b.String())
}

func (m Model) renderBreakdown() string {
	r := m.result
	var b strings.Builder

	row := func(label string, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Loan amount", money(r.LoanAmount))
	row("Rate", r.AnnualRatePct.String()+"%")
	row("Term", r.TermYears.StringFixed(0)+" years")
	if r.Zip != "" {
		location := r.Zip
		if r.County != "" {
			location = fmt.Sprintf("%s (%s County, %s)", r.Zip, r.County, r.State)
		}
		row("Location", location)
	}
	b.WriteString("\n")
	row("Principal & interest", money(r.MonthlyPI))
	row("Property tax", money(r.MonthlyTax))
	row("Insurance", money(r.MonthlyIns))
	row("HOA", money(r.MonthlyHOA))
	row("Mortgage insurance", money(r.MonthlyMI))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", "Total PITI")))
	b.WriteString(totalStyle.Render(money(r.MonthlyTotalPITI)))
	b.WriteString("\n\n")
	row("At -0.25%", money(r.Sensitivity.Down025))
	row("At +0.25%", money(r.Sensitivity.Up025))
	if r.MIDropsMonth != nil {
		row("MI drops at month", fmt.Sprintf("%d", *r.MIDropsMonth))
	}

	return breakdownStyle.Render(b.String())
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
