package stats

import (
	"fmt"
	"strings"
)

// BarWidth is the rendered width of every report bar.
const BarWidth = 21

const (
	EarlyBirdTitle = "I'm an early 🐤"
	NightOwlTitle  = "I'm a night 🦉"
)

// ReportLine is one rendered bucket row.
type ReportLine struct {
	Label   string
	Count   int
	Percent float64
	Bar     string
}

func (l ReportLine) String() string {
	return fmt.Sprintf("%s %5d commits %s %5.1f%%", l.Label, l.Count, l.Bar, l.Percent)
}

// Lines renders the four buckets in fixed order. Labels share a fixed
// column width so the rows align.
func Lines(b Buckets) []ReportLine {
	total := b.Total()
	rows := []struct {
		emoji string
		name  string
		count int
	}{
		{"🌞", "Morning", b.Morning},
		{"🌆", "Daytime", b.Daytime},
		{"🌃", "Evening", b.Evening},
		{"🌙", "Night", b.Night},
	}

	lines := make([]ReportLine, 0, len(rows))
	for _, row := range rows {
		var percent float64
		if total > 0 {
			percent = float64(row.count) / float64(total) * 100
		}
		lines = append(lines, ReportLine{
			Label:   fmt.Sprintf("%s %-8s", row.emoji, row.name),
			Count:   row.count,
			Percent: percent,
			Bar:     RenderBar(percent, BarWidth),
		})
	}
	return lines
}

// RenderReport joins the bucket rows into the published gist body.
func RenderReport(b Buckets) string {
	lines := Lines(b)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, line.String())
	}
	return strings.Join(rendered, "\n")
}

// Classify picks the gist title from the bucket balance.
func Classify(b Buckets) string {
	if b.EarlyBird() {
		return EarlyBirdTitle
	}
	return NightOwlTitle
}
