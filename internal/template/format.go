package template

import (
	"fmt"
	"strings"
	"time"
)

// FormatSpec applies a strftime-style format spec to t.
//
// Supported verbs: %Y %y %m %d %e %H %I %M %S %p %A %a %B %b %j %%.
// Unknown verbs and plain text are copied through unchanged, so a spec
// like "%Y/%m" produces nested path segments.
func FormatSpec(spec string, t time.Time) string {
	var sb strings.Builder

	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c != '%' || i+1 >= len(spec) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch verb := spec[i]; verb {
		case 'Y':
			sb.WriteString(t.Format("2006"))
		case 'y':
			sb.WriteString(t.Format("06"))
		case 'm':
			sb.WriteString(t.Format("01"))
		case 'd':
			sb.WriteString(t.Format("02"))
		case 'e':
			sb.WriteString(t.Format("_2"))
		case 'H':
			sb.WriteString(t.Format("15"))
		case 'I':
			sb.WriteString(t.Format("03"))
		case 'M':
			sb.WriteString(t.Format("04"))
		case 'S':
			sb.WriteString(t.Format("05"))
		case 'p':
			sb.WriteString(t.Format("PM"))
		case 'A':
			sb.WriteString(t.Format("Monday"))
		case 'a':
			sb.WriteString(t.Format("Mon"))
		case 'B':
			sb.WriteString(t.Format("January"))
		case 'b':
			sb.WriteString(t.Format("Jan"))
		case 'j':
			fmt.Fprintf(&sb, "%03d", t.YearDay())
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(verb)
		}
	}

	return sb.String()
}
