// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary is the engine-neutral content of a results table.
//
// Coef, SE, Stat and P must have equal length; Names may be shorter (missing
// names render as x0, x1, …). When Crit > 0 the table adds a confidence
// interval coef ± Crit·SE.
type Summary struct {
	Title    string
	StatName string // "t" or "z"
	Names    []string
	Coef     []float64
	SE       []float64
	Stat     []float64
	P        []float64
	Crit     float64
	Info     [][2]string // key/value lines printed above the coefficients
}

// RenderSummary renders s as two plain-text tables: model info, then coefficients.
func RenderSummary(s Summary) string {
	var b strings.Builder

	// keep "P>|t|" and friends in their conventional case
	style := table.StyleLight
	style.Format.Header = text.FormatDefault

	info := table.NewWriter()
	info.SetStyle(style)
	info.SetTitle(s.Title)
	for _, kv := range s.Info {
		info.AppendRow(table.Row{kv[0], kv[1]})
	}
	b.WriteString(info.Render())
	b.WriteString("\n")

	coef := table.NewWriter()
	coef.SetStyle(style)
	header := table.Row{"", "coef", "std err", s.StatName, fmt.Sprintf("P>|%s|", s.StatName)}
	if s.Crit > 0 {
		header = append(header, "[0.025", "0.975]")
	}
	coef.AppendHeader(header)
	for i := range s.Coef {
		row := table.Row{
			RegressorName(s.Names, i),
			fmtFloat(s.Coef[i]),
			fmtFloat(s.SE[i]),
			fmtFloat(s.Stat[i]),
			fmtFloat(s.P[i]),
		}
		if s.Crit > 0 {
			row = append(row, fmtFloat(s.Coef[i]-s.Crit*s.SE[i]), fmtFloat(s.Coef[i]+s.Crit*s.SE[i]))
		}
		coef.AppendRow(row)
	}
	b.WriteString(coef.Render())

	return b.String()
}

// RegressorName returns names[i] when set, otherwise "x<i>".
func RegressorName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return fmt.Sprintf("x%d", i)
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
