package template

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmelhus/albumpath/internal/capture"
	"github.com/jmelhus/albumpath/internal/catalog"
	"github.com/jmelhus/albumpath/internal/collection"
	"github.com/jmelhus/albumpath/internal/pathutil"
)

// mandatoryMarker is the sentinel default meaning "value required but
// unavailable". It skips sanitization so it stays visible in the
// resolved path.
const mandatoryMarker = "?"

// One pattern per namespace, optional groups covering the
// filter/default variants. Tokens the patterns reject are left alone.
var (
	datePattern = regexp.MustCompile(`\{Date ([^|}]*)(?:\|([^}]*))?\}`)
	fmPattern   = regexp.MustCompile(`\{LrFM:([^|}]*)(?:\|([^}]*))?\}`)
	ccPattern   = regexp.MustCompile(`\{LrCC:(name|path)(?: ([^|}]*))?(?:\|([^}]*))?\}`)
)

// Engine resolves path templates against item metadata.
type Engine struct {
	capture *capture.Resolver
	events  func(catalog.Event)
}

// NewEngine creates an Engine using the given capture-date resolver.
//
// resolver may be nil, in which case a default resolver (system clock,
// no file-time source) is used. events may be nil.
func NewEngine(resolver *capture.Resolver, events func(catalog.Event)) *Engine {
	if resolver == nil {
		resolver = capture.NewResolver(nil, nil, events)
	}
	return &Engine{capture: resolver, events: events}
}

// Resolve expands all recognized tokens in tmpl against item and
// returns the normalized result.
//
// Namespace passes run in a fixed order - Date, then LrFM, then LrCC -
// each operating on the output of the previous pass. A pass whose
// trigger substring is absent is skipped. Unrecognized tokens survive
// byte-for-byte; Resolve never fails.
func (e *Engine) Resolve(tmpl string, item catalog.Item) string {
	if !strings.Contains(tmpl, "{") {
		return pathutil.NormalizePath(tmpl)
	}

	out := tmpl
	if strings.Contains(out, "{Date") {
		out = e.resolveDates(out, item)
	}
	if strings.Contains(out, "{LrFM:") {
		out = e.resolveMetadata(out, item)
	}
	if strings.Contains(out, "{LrCC:") {
		out = e.resolveMemberships(out, item)
	}

	return pathutil.NormalizePath(out)
}

// resolveDates expands {Date <formatSpec>} tokens. The capture instant
// is computed once, on the first matching token.
func (e *Engine) resolveDates(tmpl string, item catalog.Item) string {
	var instant time.Time
	resolved := false

	return datePattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		m := datePattern.FindStringSubmatch(token)
		if !resolved {
			instant, _ = e.capture.CaptureInstant(item)
			resolved = true
		}

		if formatted := FormatSpec(m[1], instant); formatted != "" {
			return formatted
		}
		return m[2]
	})
}

// resolveMetadata expands {LrFM:<key>} tokens from the item's
// formatted metadata.
func (e *Engine) resolveMetadata(tmpl string, item catalog.Item) string {
	meta := item.FormattedMetadata()

	return fmPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		m := fmPattern.FindStringSubmatch(token)
		key, def := m[1], m[2]

		if v, ok := meta[key]; ok && v != "" {
			if v == mandatoryMarker {
				return v
			}
			return pathutil.SanitizeSegment(v)
		}
		return def
	})
}

// resolveMemberships expands {LrCC:<type> <filter>} tokens from the
// item's collection memberships.
func (e *Engine) resolveMemberships(tmpl string, item catalog.Item) string {
	memberships := item.ContainerMemberships()
	paths := make([]string, len(memberships))
	for i, c := range memberships {
		paths[i] = collection.HierarchyPath(c)
	}

	return ccPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		m := ccPattern.FindStringSubmatch(token)
		typ, filter, def := m[1], m[2], m[3]

		if len(paths) == 0 {
			return def
		}

		var re *regexp.Regexp
		if filter != "" {
			var err error
			re, err = regexp.Compile(filter)
			if err != nil {
				e.emit(catalog.LevelWarning, fmt.Sprintf("invalid collection filter %q: %v", filter, err))
				return def
			}
		}

		// First membership (in host order) whose candidate passes wins.
		for _, p := range paths {
			candidate := p
			if typ == "name" {
				if i := strings.LastIndex(p, "/"); i >= 0 {
					candidate = p[i+1:]
				}
			}
			if re == nil || re.MatchString(candidate) {
				return candidate
			}
		}
		return def
	})
}

func (e *Engine) emit(level catalog.Level, msg string) {
	if e.events != nil {
		e.events(catalog.Event{Message: msg, Level: level})
	}
}
