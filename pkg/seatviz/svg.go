package seatviz

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

// Options configures the rendered diagram's canvas and table geometry.
type Options struct {
	Width       int
	Height      int
	Margin      int
	TableRadius int
	SeatRadius  int
}

// DefaultOptions returns sensible defaults for a typical wedding-sized plan.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 1000, Margin: 80, TableRadius: 60, SeatRadius: 8}
}

// RenderSVG draws plan's tables as circles arranged on a ring spanning the
// canvas, with each table's occupants drawn as small labeled circles around
// its circumference in the plan's chosen ring order.
func RenderSVG(w io.Writer, plan seatmodel.Plan, guests []seatmodel.Guest, tables []seatmodel.Table, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions().Height
	}
	if opts.TableRadius <= 0 {
		opts.TableRadius = DefaultOptions().TableRadius
	}
	if opts.SeatRadius <= 0 {
		opts.SeatRadius = DefaultOptions().SeatRadius
	}
	if opts.Margin <= 0 {
		opts.Margin = DefaultOptions().Margin
	}

	guestByID := make(map[seatmodel.GuestID]seatmodel.Guest, len(guests))
	for _, g := range guests {
		guestByID[g.ID] = g
	}
	tableByID := make(map[seatmodel.TableID]seatmodel.Table, len(tables))
	for _, t := range tables {
		tableByID[t.ID] = t
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	cx, cy := opts.Width/2, opts.Height/2
	layoutRadius := (min(opts.Width, opts.Height) - 2*opts.Margin) / 2
	if layoutRadius < opts.TableRadius {
		layoutRadius = opts.TableRadius
	}

	n := len(plan.Tables)
	for i, ts := range plan.Tables {
		angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
		tx := cx + int(float64(layoutRadius)*math.Cos(angle))
		ty := cy + int(float64(layoutRadius)*math.Sin(angle))

		table := tableByID[ts.TableID]
		name := table.Name
		if name == "" {
			name = table.ID
		}

		canvas.Circle(tx, ty, opts.TableRadius, "fill:#f0f0f0;stroke:#333333;stroke-width:2")
		canvas.Text(tx, ty, name, "text-anchor:middle;font-size:14px;fill:#333333")

		occupants := ts.Order
		for j, guestID := range occupants {
			seatAngle := 2 * math.Pi * float64(j) / float64(max(len(occupants), 1))
			sx := tx + int(float64(opts.TableRadius+opts.SeatRadius+10)*math.Cos(seatAngle))
			sy := ty + int(float64(opts.TableRadius+opts.SeatRadius+10)*math.Sin(seatAngle))

			guest := guestByID[guestID]
			canvas.Circle(sx, sy, opts.SeatRadius, "fill:#8ecae6;stroke:#023047;stroke-width:1")
			canvas.Text(sx, sy+opts.SeatRadius+12, fmt.Sprintf("%s (%d)", guest.Name, guest.Count), "text-anchor:middle;font-size:10px;fill:#023047")
		}
	}

	canvas.End()
	return nil
}
