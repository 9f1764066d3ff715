package ui

import (
	"strconv"
	"strings"

	"wildfire-ca/internal/core"
)

// PanelLine is one row of the parameter panel.
type PanelLine struct {
	Text   string
	Header bool
}

// PanelLines lays out a parameter snapshot as display rows: a header per
// group, one row per parameter and the group summary when present.
func PanelLines(snap core.ParameterSnapshot) []PanelLine {
	var lines []PanelLine
	for i, g := range snap.Groups {
		if i > 0 {
			lines = append(lines, PanelLine{})
		}
		lines = append(lines, PanelLine{Text: g.Name, Header: true})
		for _, p := range g.Params {
			lines = append(lines, PanelLine{Text: p.Label + ": " + formatValue(p)})
		}
		if g.Summary != "" {
			lines = append(lines, PanelLine{Text: g.Summary})
		}
	}
	return lines
}

func formatValue(p core.Parameter) string {
	if p.Type != core.ParamTypeFloat {
		return p.Value
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return p.Value
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
