// Package collection resolves paths from the host's collection tree.
//
// HierarchyPath turns a container's ancestor chain into a
// slash-separated path:
//
//	// Root -> "2020" -> "Paris" -> "Best"
//	collection.HierarchyPath(best) // "2020/Paris/Best"
//
// UploadRootPath composes a per-collection upload root from the
// dstRoot/baseDir settings configured on the container and its
// ancestors. A false result means no setting was found anywhere on
// the chain and the caller should fall back to its default root.
//
// Both functions are total: absent containers or settings degrade to
// empty contributions, never errors.
package collection
