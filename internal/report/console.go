package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var boardHeader = table.Row{
	"#",
	"from",
	"departing time (departure local time)",
	"departing time (destination local time)",
	"to",
	"arriving time (departure local time)",
	"arriving time (destination local time)",
	"duration",
}

// Console writes the report sections in order: diagnostics, summary, board.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Banner prints msg as a success block. An empty message prints nothing.
func (c *Console) Banner(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(c.w, "[OK] %s\n\n", msg)
}

func (c *Console) Render(r Report) {
	c.diagnostics(r.Diagnostics)
	c.summary(r.Summary)
	c.board(r.Board)
}

func (c *Console) diagnostics(lines []Diagnostic) {
	for _, d := range lines {
		c.info(fmt.Sprintf("#%d Raw fly duration: %s, departure TZ: %s, arrive TZ: %s, TZ difference: %s.",
			d.Index, d.RawDurationHuman, d.DepartureTZ, d.ArrivalTZ, d.TZDifferenceHuman))
	}
}

func (c *Console) summary(s *Summary) {
	if s == nil {
		return
	}
	c.info(fmt.Sprintf("Avg. flight duration: %s.", s.AvgDurationHuman))
}

func (c *Console) board(rows []BoardRow) {
	if len(rows) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(boardHeader)
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Index,
			r.From,
			r.DepartureLocalTime,
			r.DepartureDestinationTime,
			r.To,
			r.ArrivalOriginTime,
			r.ArrivalLocalTime,
			r.DurationHuman,
		})
	}
	t.Render()
}

func (c *Console) info(line string) {
	fmt.Fprintf(c.w, "[INFO] %s\n\n", line)
}
