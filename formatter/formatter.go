package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	tt "github.com/quadlabs/quadpi/internal/types"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	labelStyle  = color.New(color.FgBlue, color.Bold)
	valueStyle  = color.New(color.FgGreen, color.Bold)
	errorStyle  = color.New(color.FgYellow)
)

// FormatFloat renders v the way fmt's %v would when precision < 0,
// otherwise with the given number of digits after the decimal point.
func FormatFloat(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatResult renders the detail block shown in verbose mode.
func FormatResult(result tt.Result, precision int) string {
	var builder strings.Builder

	method := "midpoint rule"
	if result.Compensated {
		method = "midpoint rule (compensated)"
	}
	builder.WriteString(headerStyle.Sprintf("%s: n=%d h=%s\n", method, result.N, FormatFloat(result.H, -1)))

	builder.WriteString(labelStyle.Sprint("  estimate:  "))
	builder.WriteString(valueStyle.Sprint(FormatFloat(result.Estimate, precision)))
	builder.WriteString("\n")

	builder.WriteString(labelStyle.Sprint("  abs error: "))
	builder.WriteString(errorStyle.Sprint(FormatFloat(result.AbsError, precision)))
	builder.WriteString("\n")

	return builder.String()
}

// FormatSeries renders a convergence sweep as an aligned table. Ratio is
// the error shrink factor against the previous row ("-" on the first).
func FormatSeries(points []tt.SeriesPoint, precision int) string {
	if len(points) == 0 {
		return ""
	}

	width := len("n")
	for _, p := range points {
		if l := len(strconv.FormatInt(p.N, 10)); l > width {
			width = l
		}
	}

	var builder strings.Builder
	builder.WriteString(headerStyle.Sprintf("%*s  %-22s %-14s %s\n", width, "n", "estimate", "abs error", "ratio"))
	for _, p := range points {
		builder.WriteString(labelStyle.Sprintf("%*d  ", width, p.N))
		builder.WriteString(valueStyle.Sprintf("%-22s ", FormatFloat(p.Estimate, precision)))
		builder.WriteString(errorStyle.Sprintf("%-14s ", FormatFloat(p.AbsError, precision)))
		if p.Ratio > 0 {
			builder.WriteString(fmt.Sprintf("%.1f", p.Ratio))
		} else {
			builder.WriteString("-")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
