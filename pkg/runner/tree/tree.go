package tree

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/runner/mcp"
)

// Tree prints a sample session grouped by year and month.
type Tree struct {
	Today    entry.Date
	Days     int
	Boxes    int
	JSON     bool
	Table    bool
	Calendar bool
	ShowID   bool
	Color    bool
	Out      io.Writer
	Log      *zap.Logger
	Clock    func() time.Time
}

func (t *Tree) Do(ctx context.Context) error {
	clock := t.Clock
	if clock == nil {
		clock = time.Now
	}
	today := t.Today
	if today.IsZero() {
		today = entry.DateOf(clock())
	}
	out := t.Out
	if out == nil {
		out = color.Output
	}

	store := journal.New(
		journal.WithClock(clock),
		journal.WithToday(today),
		journal.WithSeed(Demo(today, t.Days, t.Boxes, clock())...),
	)
	svc := app.New(store, t.Log)

	if t.JSON {
		b, err := json.MarshalIndent(mcp.NewService(svc).Tree(ctx), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := &printers.PrettyPrint{Out: out, ShowID: t.ShowID, Color: t.Color}
	switch {
	case t.Table:
		pp.Table(svc.Entries(ctx)...)
	default:
		pp.Tree(svc.Tree(ctx))
	}
	if t.Calendar {
		pp.Calendar(today, today, svc.Entries(ctx)...)
	}
	return nil
}
