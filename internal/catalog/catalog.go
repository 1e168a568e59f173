package catalog

import "time"

// ContainerKind distinguishes the two node types in the collection tree.
type ContainerKind int

const (
	// KindCollection is a leaf container holding media items.
	KindCollection ContainerKind = iota

	// KindCollectionSet is a branch container holding other containers.
	KindCollectionSet
)

// Setting keys read from published containers.
const (
	// SettingDstRoot is the upload root configured on a published collection.
	SettingDstRoot = "dstRoot"

	// SettingBaseDir is the base directory configured on a published
	// collection set. Ancestor base directories are joined into the
	// upload root of the collections below them.
	SettingBaseDir = "baseDir"
)

// Container is a named node in the host's collection tree.
//
// The parent chain is owned by the host and expected to be finite and
// acyclic; resolvers walk it read-only and never construct containers.
type Container interface {
	// Name returns the container's display name.
	Name() string

	// Parent returns the containing collection set, or nil at the root.
	Parent() Container

	// Kind reports whether this is a collection or a collection set.
	Kind() ContainerKind

	// Setting returns a publish setting configured on this container.
	// The second result is false when the key is not set.
	Setting(key string) (string, bool)
}

// Tag is a keyword attached to an item. Tag handles are opaque to the
// engine; removal is delegated back to the host via Item.RemoveTag.
type Tag interface {
	Name() string
}

// Item is a single media asset in the host catalog.
//
// All accessors are snapshots: the engine reads them at resolution
// time and holds nothing between calls. AddTag and RemoveTag are the
// only mutations this module ever requests.
type Item interface {
	// ID returns the host's unique identifier for the item.
	ID() string

	// TimestampField returns a named capture/creation timestamp from
	// the item's metadata, or false when the field is absent.
	TimestampField(name string) (time.Time, bool)

	// FormattedMetadata returns the item's formatted metadata map
	// (display-form string values keyed by field name).
	FormattedMetadata() map[string]string

	// BackingFilePath returns the path of the item's source file on disk.
	BackingFilePath() string

	// ContainerMemberships returns the containers the item belongs to,
	// in the order the host catalog reports them.
	ContainerMemberships() []Container

	// CurrentTags returns the item's keyword tags in host order.
	CurrentTags() []Tag

	// AddTag attaches a keyword with the given name to the item.
	AddTag(name string)

	// RemoveTag detaches a previously returned tag from the item.
	RemoveTag(tag Tag)
}

// FileTimes provides creation timestamps for files backing items.
type FileTimes interface {
	// CreationTime returns the capture/creation time of the file at
	// path, or false when it cannot be determined.
	CreationTime(path string) (time.Time, bool)
}

// Clock abstracts wall-clock time so tests can pin the last-resort
// capture date fallback.
type Clock interface {
	Now() time.Time
}
