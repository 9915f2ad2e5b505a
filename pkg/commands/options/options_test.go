package options

import (
	"testing"
	"time"

	"tableflip.dev/diary/pkg/entry"
)

func TestGetToday(t *testing.T) {
	now := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in     string
		want   entry.Date
		ok     bool
		hasErr bool
	}{
		{in: "", ok: false},
		{in: "2024-02-28", want: entry.MustDate("2024-02-28"), ok: true},
		{in: "2/28", want: entry.MustDate("2023-02-28"), ok: true},
		{in: "yesterday", hasErr: true},
	}
	for _, tc := range tests {
		o := &TodayOptions{TodayString: tc.in}
		got, ok, err := o.GetToday(now)
		if (err != nil) != tc.hasErr {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if ok != tc.ok || !got.Equal(tc.want) {
			t.Fatalf("%q: got %s/%v, want %s/%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestColorDisabled(t *testing.T) {
	o := &ColorOptions{NoColor: true}
	if o.Enabled(nil) {
		t.Fatalf("expected color disabled")
	}
}
