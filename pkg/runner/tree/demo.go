package tree

import (
	"fmt"
	"time"

	"tableflip.dev/diary/pkg/entry"
)

var demoTitles = []string{
	"Morning run",
	"",
	"Coffee with Sam",
	"Rainy afternoon",
	"",
	"Finished the book",
	"Garden",
}

// Demo builds days consecutive entries ending on today, with boxes extra
// entries on each day. Titles repeat from a small fixed list.
func Demo(today entry.Date, days, boxes int, now time.Time) []entry.Entry {
	if days < 1 {
		days = 1
	}
	if boxes < 0 {
		boxes = 0
	}
	out := make([]entry.Entry, 0, days*(boxes+1))
	for i := days - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		for b := 0; b <= boxes; b++ {
			e := entry.New("", d, now)
			e.Title = demoTitles[(i+b)%len(demoTitles)]
			if b > 0 {
				e.Content = fmt.Sprintf("box %d", b)
			}
			out = append(out, e)
		}
	}
	return out
}
