package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jmelhus/albumpath/internal/catalog"
)

// jsonContainer is the wire form of a collection tree node.
type jsonContainer struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Kind     string            `json:"kind"` // "collection" or "set"
	Parent   string            `json:"parent,omitempty"`
	Settings map[string]string `json:"settings,omitempty"`
}

// jsonItem is the wire form of a media item.
type jsonItem struct {
	ID          string               `json:"id"`
	File        string               `json:"file"`
	Timestamps  map[string]time.Time `json:"timestamps,omitempty"`
	Metadata    map[string]string    `json:"metadata,omitempty"`
	Collections []string             `json:"collections,omitempty"`
	Keywords    []string             `json:"keywords,omitempty"`
}

type jsonSnapshot struct {
	Containers []jsonContainer `json:"containers"`
	Items      []jsonItem      `json:"items"`
}

// Snapshot is a loaded catalog snapshot.
type Snapshot struct {
	// Items in file order.
	Items []*Item

	// Containers by id.
	Containers map[string]*Container
}

// Container is the in-memory catalog.Container.
type Container struct {
	name     string
	kind     catalog.ContainerKind
	parent   *Container
	settings map[string]string
}

func (c *Container) Name() string { return c.name }
func (c *Container) Kind() catalog.ContainerKind { return c.kind }

func (c *Container) Parent() catalog.Container {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *Container) Setting(key string) (string, bool) {
	v, ok := c.settings[key]
	return v, ok
}

// Tag is the in-memory catalog.Tag.
type Tag struct {
	name string
}

func (t *Tag) Name() string { return t.name }

// Item is the in-memory catalog.Item.
type Item struct {
	id          string
	file        string
	timestamps  map[string]time.Time
	metadata    map[string]string
	memberships []catalog.Container
	tags        []catalog.Tag
}

func (i *Item) ID() string { return i.id }

func (i *Item) TimestampField(name string) (time.Time, bool) {
	t, ok := i.timestamps[name]
	return t, ok
}

func (i *Item) FormattedMetadata() map[string]string { return i.metadata }
func (i *Item) BackingFilePath() string { return i.file }
func (i *Item) ContainerMemberships() []catalog.Container { return i.memberships }
func (i *Item) CurrentTags() []catalog.Tag { return i.tags }

func (i *Item) AddTag(name string) {
	i.tags = append(i.tags, &Tag{name: name})
}

func (i *Item) RemoveTag(tag catalog.Tag) {
	for idx, t := range i.tags {
		if t == tag {
			i.tags = append(i.tags[:idx], i.tags[idx+1:]...)
			return
		}
	}
}

// Load reads a snapshot from a JSON file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse builds a Snapshot from raw snapshot JSON.
func Parse(data []byte) (*Snapshot, error) {
	var raw jsonSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	containers := make(map[string]*Container, len(raw.Containers))
	for _, jc := range raw.Containers {
		kind := catalog.KindCollection
		if jc.Kind == "set" {
			kind = catalog.KindCollectionSet
		}
		containers[jc.ID] = &Container{
			name:     jc.Name,
			kind:     kind,
			settings: jc.Settings,
		}
	}

	// Second pass: parents may be declared in any order.
	for _, jc := range raw.Containers {
		if jc.Parent == "" {
			continue
		}
		parent, ok := containers[jc.Parent]
		if !ok {
			return nil, fmt.Errorf("container %q references unknown parent %q", jc.ID, jc.Parent)
		}
		containers[jc.ID].parent = parent
	}

	snap := &Snapshot{Containers: containers}
	for _, ji := range raw.Items {
		id := ji.ID
		if id == "" {
			id = uuid.NewString()
		}

		item := &Item{
			id:         id,
			file:       ji.File,
			timestamps: ji.Timestamps,
			metadata:   ji.Metadata,
		}
		for _, cid := range ji.Collections {
			c, ok := containers[cid]
			if !ok {
				return nil, fmt.Errorf("item %q references unknown collection %q", id, cid)
			}
			item.memberships = append(item.memberships, c)
		}
		for _, name := range ji.Keywords {
			item.tags = append(item.tags, &Tag{name: name})
		}

		snap.Items = append(snap.Items, item)
	}

	return snap, nil
}

// CatalogItems returns the snapshot's items as catalog handles, in
// file order.
func (s *Snapshot) CatalogItems() []catalog.Item {
	items := make([]catalog.Item, len(s.Items))
	for i, item := range s.Items {
		items[i] = item
	}
	return items
}

// Container returns the container with the given id, or nil.
func (s *Snapshot) Container(id string) catalog.Container {
	c, ok := s.Containers[id]
	if !ok {
		return nil
	}
	return c
}
