package eval

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Report is a rendered snapshot of collected metrics.
type Report struct {
	Phases    []string
	Timings   map[string]time.Duration
	TotalTime time.Duration
	Comm      CommunicationStats
	Gates     GateStats
}

// Report produces a snapshot of the collected metrics.
func (m *Metrics) Report() *Report {
	phases := make([]string, len(m.phases))
	copy(phases, m.phases)

	timings := make(map[string]time.Duration, len(m.timings))
	for k, v := range m.timings {
		timings[k] = v
	}

	return &Report{
		Phases:    phases,
		Timings:   timings,
		TotalTime: m.TotalTime(),
		Comm:      m.comm,
		Gates:     m.gates,
	}
}

// Render writes the report as a table to w.
func (r *Report) Render(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Phase").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	for _, phase := range r.Phases {
		d := r.Timings[phase]
		row := tab.Row()
		row.Column(phase)
		row.Column(d.String())
		if r.TotalTime > 0 {
			row.Column(fmt.Sprintf("%.2f%%", float64(d)/float64(r.TotalTime)*100))
		} else {
			row.Column("")
		}
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(r.TotalTime.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("├╴Rounds").SetFormat(tabulate.FmtItalic)
	row.Column(fmt.Sprintf("%d", r.Comm.Rounds)).SetFormat(tabulate.FmtItalic)
	row.Column("")

	row = tab.Row()
	row.Column("├╴Est. bytes").SetFormat(tabulate.FmtItalic)
	row.Column(fmt.Sprintf("%d", r.Comm.TotalBytes)).SetFormat(tabulate.FmtItalic)
	row.Column("")

	row = tab.Row()
	row.Column("╰╴Est. latency").SetFormat(tabulate.FmtItalic)
	row.Column(r.Comm.Latency.String()).SetFormat(tabulate.FmtItalic)
	row.Column("")

	tab.Print(w)
}
