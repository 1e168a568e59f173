package template

import (
	"testing"
	"time"
)

func TestFormatSpec(t *testing.T) {
	ref := time.Date(2020, 5, 15, 14, 30, 45, 0, time.UTC) // a Friday

	tests := []struct {
		spec string
		want string
	}{
		{"%Y", "2020"},
		{"%y", "20"},
		{"%Y-%m-%d", "2020-05-15"},
		{"%Y/%m", "2020/05"},
		{"%H:%M:%S", "14:30:45"},
		{"%I %p", "02 PM"},
		{"%A", "Friday"},
		{"%a %b", "Fri May"},
		{"%B", "May"},
		{"%j", "136"},
		{"%%Y", "%Y"},
		{"100%", "100%"},
		{"%Q", "%Q"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := FormatSpec(tt.spec, ref)
			if got != tt.want {
				t.Errorf("FormatSpec(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}
