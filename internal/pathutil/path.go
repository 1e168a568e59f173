package pathutil

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in file/folder names across common
	// filesystems: < > : " / \ | ? * and control characters.
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// SanitizeSegment makes a single path segment legal across operating
// systems, Windows having the most restrictive rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// SanitizeSegment is total and idempotent; empty input yields "".
func SanitizeSegment(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = whitespaceRun.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// NormalizePath cleans up a joined destination path: surrounding
// whitespace is trimmed, backslashes become forward slashes and one
// trailing slash is stripped.
//
// NormalizePath never character-sanitizes. Segments are sanitized
// before joining, so a full path may legitimately contain separators
// that must not be replaced.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, "\\", "/")
	return strings.TrimSuffix(path, "/")
}
