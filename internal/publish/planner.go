package publish

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jmelhus/albumpath/internal/capture"
	"github.com/jmelhus/albumpath/internal/catalog"
	"github.com/jmelhus/albumpath/internal/collection"
	"github.com/jmelhus/albumpath/internal/config"
	"github.com/jmelhus/albumpath/internal/keyword"
	"github.com/jmelhus/albumpath/internal/pathutil"
	"github.com/jmelhus/albumpath/internal/template"
)

// Entry is the planned outcome for one item.
type Entry struct {
	// ItemID identifies the item in the host catalog.
	ItemID string

	// Path is the fully resolved destination path, upload root included.
	Path string

	// Keywords is the add/remove delta against the configured list.
	Keywords keyword.Delta
}

// Plan is the planned outcome for a set of items, in input order.
type Plan struct {
	// UploadRoot is the resolved root all entry paths live under.
	UploadRoot string

	Entries []Entry
}

// Planner coordinates publish planning.
type Planner struct {
	settings *config.Settings
	engine   *template.Engine

	planned int32
	total   int32

	events func(catalog.Event)
}

// NewPlanner creates a new Planner.
//
// files provides file creation times for the capture-date fallback and
// may be nil. clock may be nil for the system clock. events may be nil.
func NewPlanner(settings *config.Settings, files catalog.FileTimes, clock catalog.Clock, events func(catalog.Event)) *Planner {
	resolver := capture.NewResolver(files, clock, events)
	return &Planner{
		settings: settings,
		engine:   template.NewEngine(resolver, events),
		events:   events,
	}
}

// Plan resolves destination paths and keyword deltas for items
// published through container.
//
// container may be nil; the upload root then falls back to the
// configured default. Entries keep the order of items.
func (p *Planner) Plan(ctx context.Context, container catalog.Container, items []catalog.Item) (*Plan, error) {
	root, ok := collection.UploadRootPath(container)
	if !ok {
		root = pathutil.NormalizePath(p.settings.DefaultUploadRoot)
		p.progress(catalog.Event{Message: fmt.Sprintf("no upload root configured, using default %q", root), Level: catalog.LevelVerbose})
	}

	atomic.StoreInt32(&p.planned, 0)
	atomic.StoreInt32(&p.total, int32(len(items)))

	g, ctx := errgroup.WithContext(ctx)
	limit := p.settings.MaxConcurrentResolves
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	entries := make([]Entry, len(items))
	for i, item := range items {
		i, item := i, item // capture
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			entries[i] = p.planItem(root, item)
			atomic.AddInt32(&p.planned, 1)
			p.progress(catalog.Event{Message: fmt.Sprintf("planned %s -> %s", item.ID(), entries[i].Path), Level: catalog.LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.progress(catalog.Event{Message: fmt.Sprintf("planned %d items under %q", len(items), root), Level: catalog.LevelSuccess})
	return &Plan{UploadRoot: root, Entries: entries}, nil
}

// Progress returns how many items have been planned so far.
func (p *Planner) Progress() (planned, total int32) {
	return atomic.LoadInt32(&p.planned), atomic.LoadInt32(&p.total)
}

// Apply performs the keyword deltas of a plan on the given items.
//
// items must be the slice the plan was computed from. Entries with an
// empty delta are skipped.
func (p *Planner) Apply(plan *Plan, items []catalog.Item) {
	for i, entry := range plan.Entries {
		if i >= len(items) || entry.Keywords.IsEmpty() {
			continue
		}
		keyword.Apply(items[i], entry.Keywords, p.events)
	}
}

func (p *Planner) planItem(root string, item catalog.Item) Entry {
	rel := p.engine.Resolve(p.settings.PathTemplate, item)
	path := rel
	switch {
	case root == "":
	case rel == "":
		path = root
	default:
		path = root + "/" + rel
	}

	return Entry{
		ItemID:   item.ID(),
		Path:     path,
		Keywords: keyword.Diff(item.CurrentTags(), p.settings.Keywords),
	}
}

func (p *Planner) progress(event catalog.Event) {
	if p.events != nil {
		p.events(event)
	}
}
