package capture

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jmelhus/albumpath/internal/catalog"
)

// Timestamp field names read from the host catalog.
const (
	FieldDateTimeOriginal         = "dateTimeOriginal"
	FieldDateTimeOriginalISO8601  = "dateTimeOriginalISO8601"
	FieldDateTimeDigitized        = "dateTimeDigitized"
	FieldDateTimeDigitizedISO8601 = "dateTimeDigitizedISO8601"
)

// keyDateCreated is the formatted-metadata key holding the free-text
// creation date.
const keyDateCreated = "dateCreated"

// Resolver resolves capture instants for media items.
type Resolver struct {
	files  catalog.FileTimes
	clock  catalog.Clock
	events func(catalog.Event)
}

// NewResolver creates a Resolver.
//
// files may be nil, in which case the file-creation-time fallback is
// skipped. clock may be nil, in which case the system clock is used.
// events may be nil to discard advisory messages.
func NewResolver(files catalog.FileTimes, clock catalog.Clock, events func(catalog.Event)) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{files: files, clock: clock, events: events}
}

// CaptureInstant returns the best available capture instant for item
// and whether it is a true original-capture value.
//
// CaptureInstant never fails; with no metadata, no readable file and
// nothing else to go on it returns the current time.
func (r *Resolver) CaptureInstant(item catalog.Item) (time.Time, bool) {
	ordered := []struct {
		field    string
		original bool
	}{
		{FieldDateTimeOriginal, true},
		{FieldDateTimeOriginalISO8601, true},
		{FieldDateTimeDigitized, false},
		{FieldDateTimeDigitizedISO8601, false},
	}

	for _, src := range ordered {
		if t, ok := item.TimestampField(src.field); ok {
			r.emit(catalog.LevelVerbose, fmt.Sprintf("capture date for %s from %s", item.ID(), src.field))
			return t, src.original
		}
	}

	if raw, ok := item.FormattedMetadata()[keyDateCreated]; ok {
		if t, ok := ParseDateCreated(raw); ok {
			r.emit(catalog.LevelVerbose, fmt.Sprintf("capture date for %s parsed from dateCreated %q", item.ID(), raw))
			return t, false
		}
	}

	if r.files != nil {
		if t, ok := r.files.CreationTime(item.BackingFilePath()); ok {
			r.emit(catalog.LevelVerbose, fmt.Sprintf("capture date for %s from file creation time", item.ID()))
			return t, false
		}
	}

	r.emit(catalog.LevelWarning, fmt.Sprintf("no capture date found for %s, using current time", item.ID()))
	return r.clock.Now(), false
}

// dateCreatedPattern matches a date anywhere in the free-text value:
// mandatory YYYY-MM-DD, optional THH:MM:SS, optional trailing timezone
// token (Z or a +-hh:mm / +-hhmm offset).
var dateCreatedPattern = regexp.MustCompile(
	`(\d{4})-(\d{2})-(\d{2})(?:T(\d{2}):(\d{2}):(\d{2}))?(Z|[+-]\d{2}:?\d{2})?`)

// ParseDateCreated parses the formatted "dateCreated" metadata value.
//
// Missing time components default to zero; a missing timezone token
// defaults to local time. Returns false when no date pattern is found
// in the string at all.
func ParseDateCreated(s string) (time.Time, bool) {
	m := dateCreatedPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year := mustInt(m[1])
	month := mustInt(m[2])
	day := mustInt(m[3])

	var hour, minute, sec int
	if m[4] != "" {
		hour = mustInt(m[4])
		minute = mustInt(m[5])
		sec = mustInt(m[6])
	}

	loc := time.Local
	switch tz := m[7]; {
	case tz == "Z":
		loc = time.UTC
	case tz != "":
		sign := 1
		if tz[0] == '-' {
			sign = -1
		}
		digits := tz[1:]
		if len(digits) == 5 { // hh:mm
			digits = digits[:2] + digits[3:]
		}
		offset := sign * (mustInt(digits[:2])*3600 + mustInt(digits[2:])*60)
		loc = time.FixedZone(tz, offset)
	}

	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc), true
}

// mustInt converts digits already validated by the pattern.
func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func (r *Resolver) emit(level catalog.Level, msg string) {
	if r.events != nil {
		r.events(catalog.Event{Message: msg, Level: level})
	}
}
