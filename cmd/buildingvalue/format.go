package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/ChicagoDave/buildingvalue/pkg/scenario"
	"github.com/ChicagoDave/buildingvalue/pkg/structure"
	"github.com/ChicagoDave/buildingvalue/pkg/validation"
	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func formatSummary(r *valuation.Result) string {
	var b strings.Builder
	in := r.Inputs

	fmt.Fprintln(&b, titleStyle.Render("Building Value Estimate"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, headingStyle.Render("Building"))
	fmt.Fprintf(&b, "  Structure:              %s (%d-year life)\n", r.Structure.DisplayName, r.LifeLimit)
	fmt.Fprintf(&b, "  Floor area:             %s ping (%s m²)\n", formatAmount(in.Area), formatAmount(valuation.SquareMeters(in.Area)))
	fmt.Fprintf(&b, "  Age:                    %s years (%.1f%% used)\n", strconv.FormatFloat(in.Age, 'f', -1, 64), r.UsedRatio*100)
	fmt.Fprintf(&b, "  Total cost:             %s\n", formatAmount(r.TotalCost))
	fmt.Fprintf(&b, "  Depreciation to date:   %s\n", formatAmount(r.DepreciationAmount))
	fmt.Fprintf(&b, "  Residual value:         %s\n", formatAmount(r.ResidualValue))
	fmt.Fprintf(&b, "  Depreciation this year: %s\n", formatAmount(r.PointAt(in.Age).YearlyDepreciationAmount))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, headingStyle.Render("Land"))
	fmt.Fprintf(&b, "  Land area:              %s ping\n", formatAmount(in.LandArea))
	fmt.Fprintf(&b, "  Land value:             %s\n", formatAmount(r.LandTotalValue))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, headingStyle.Render(fmt.Sprintf("Monthly rent at %s%% ROI", strconv.FormatFloat(in.ROIPercent, 'f', -1, 64))))
	fmt.Fprintf(&b, "  Land ROI:               %s\n", formatAmount(r.RentFromLandROI))
	fmt.Fprintf(&b, "  Building ROI:           %s\n", formatAmount(r.RentFromBuildingROI))
	fmt.Fprintf(&b, "  Building cost recovery: %s\n", formatAmount(r.RentFromBuildingCostRecovery))
	fmt.Fprintf(&b, "  Land subtotal:          %s\n", formatAmount(r.LandRentSubtotal))
	fmt.Fprintf(&b, "  Building subtotal:      %s\n", formatAmount(r.BuildingRentSubtotal))
	fmt.Fprintf(&b, "  Total rent:             %s\n", formatAmount(r.TotalRent))
	fmt.Fprintf(&b, "  Annual rent:            %s\n", formatAmount(r.AnnualRent()))

	return b.String()
}

func formatSchedule(r *valuation.Result) string {
	current := r.PointAt(r.Inputs.Age).Year

	rows := make([][]string, 0, len(r.YearlyData))
	for _, p := range r.YearlyData {
		rows = append(rows, []string{
			strconv.Itoa(p.Year),
			formatAmount(p.Depreciation),
			formatAmount(p.Value),
			formatAmount(p.YearlyDepreciationAmount),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Year", "Depreciation", "Value", "Per year").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			if row == current {
				return s.Inherit(currentStyle)
			}
			return s
		})

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Depreciation Schedule: %s, %d years", r.Structure.DisplayName, r.LifeLimit)))
	fmt.Fprintf(&b, "%s\n", t.Render())
	fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("Current year: %d", current)))
	return b.String()
}

func formatScenarios(name string, outcomes []scenario.Outcome) string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		r := o.Result
		rows = append(rows, []string{
			o.Name,
			r.Structure.DisplayName,
			strconv.FormatFloat(r.Inputs.Age, 'f', -1, 64),
			formatMoney(r.TotalCost),
			formatMoney(r.ResidualValue),
			formatAmount(r.TotalRent),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scenario", "Structure", "Age", "Cost", "Residual", "Rent/month").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			if col >= 2 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})

	if name == "" {
		name = "Scenarios"
	}
	return titleStyle.Render(name) + "\n" + t.Render() + "\n"
}

func formatStructures(defs []structure.Def) string {
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{string(d.Key), d.DisplayName, strconv.Itoa(d.LifeLimitYears)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Key", "Name", "Life (years)").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		})
	return t.Render() + "\n"
}

func formatReport(r *validation.Report) string {
	var b strings.Builder

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			writeResult(&b, e)
		}
		fmt.Fprintln(&b)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			writeResult(&b, w)
		}
		fmt.Fprintln(&b)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(&b, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(&b, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(&b)
	}

	if r.Valid {
		fmt.Fprintf(&b, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(&b, "Result: INVALID (%s)\n", r.Summary)
	}
	return b.String()
}

func writeResult(b *strings.Builder, res validation.Result) {
	fmt.Fprintf(b, "  [%s] %s\n", res.Level, res.Message)
	if res.Field != "" {
		fmt.Fprintf(b, "    -> %s = %v\n", res.Field, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(b, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(b, "    * %s\n", s)
	}
}

// formatAmount renders a figure with thousands separators and two decimals.
func formatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
