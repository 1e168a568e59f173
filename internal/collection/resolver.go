package collection

import (
	"github.com/jmelhus/albumpath/internal/catalog"
	"github.com/jmelhus/albumpath/internal/pathutil"
)

// maxDepth bounds the parent walk. The host guarantees an acyclic
// tree, but a corrupted chain must not hang the resolver.
const maxDepth = 64

// HierarchyPath returns the slash-separated path of a container within
// the collection tree, e.g. "2020/Paris/Best".
//
// The leaf keeps its display name as-is; ancestor names are sanitized
// before joining. A nil container yields "". Root containers yield
// just their name.
func HierarchyPath(c catalog.Container) string {
	if c == nil {
		return ""
	}

	path := c.Name()
	depth := 0
	for p := c.Parent(); p != nil && depth < maxDepth; p = p.Parent() {
		path = pathutil.SanitizeSegment(p.Name()) + "/" + path
		depth++
	}

	return path
}

// UploadRootPath composes the upload root configured for a published
// container.
//
// The container's own setting is read first: dstRoot on a collection,
// baseDir on a collection set. Then each ancestor collection set with
// a non-empty baseDir prepends its normalized value. Ancestors with an
// empty or absent baseDir contribute nothing - no empty segment is
// inserted.
//
// The second result is false when no setting was found at any level,
// signalling "use the default root" to the caller.
func UploadRootPath(c catalog.Container) (string, bool) {
	if c == nil {
		return "", false
	}

	ownKey := catalog.SettingBaseDir
	if c.Kind() == catalog.KindCollection {
		ownKey = catalog.SettingDstRoot
	}

	var path string
	found := false

	if v, ok := c.Setting(ownKey); ok {
		if v = pathutil.NormalizePath(v); v != "" {
			path = v
			found = true
		}
	}

	depth := 0
	for p := c.Parent(); p != nil && depth < maxDepth; p = p.Parent() {
		if v, ok := p.Setting(catalog.SettingBaseDir); ok {
			if v = pathutil.NormalizePath(v); v != "" {
				if found {
					path = v + "/" + path
				} else {
					path = v
					found = true
				}
			}
		}
		depth++
	}

	return path, found
}
