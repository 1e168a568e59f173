package publish

import (
	"context"
	"testing"
	"time"

	"github.com/jmelhus/albumpath/internal/catalog"
	"github.com/jmelhus/albumpath/internal/config"
	"github.com/jmelhus/albumpath/internal/snapshot"
)

const testSnapshot = `{
  "containers": [
    {"id": "archive", "name": "Archive", "kind": "set",
     "settings": {"baseDir": "galleries"}},
    {"id": "paris", "name": "Paris", "kind": "collection",
     "parent": "archive", "settings": {"dstRoot": "paris"}}
  ],
  "items": [
    {"id": "img-1", "file": "/photos/img-1.jpg",
     "timestamps": {"dateTimeOriginal": "2020-05-15T14:30:00Z"},
     "collections": ["paris"],
     "keywords": ["old", "travel"]},
    {"id": "img-2", "file": "/photos/img-2.jpg",
     "timestamps": {"dateTimeOriginal": "2021-07-01T09:00:00Z"},
     "collections": ["paris"]}
  ]
}`

type frozenClock struct{ t time.Time }

func (c frozenClock) Now() time.Time { return c.t }

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.PathTemplate = "{Date %Y}/{LrCC:name}"
	s.Keywords = []string{"travel", "published"}
	return s
}

func loadTestSnapshot(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.Parse([]byte(testSnapshot))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return snap
}

func TestPlanner_Plan(t *testing.T) {
	snap := loadTestSnapshot(t)
	planner := NewPlanner(testSettings(), nil, frozenClock{time.Now()}, nil)

	plan, err := planner.Plan(context.Background(), snap.Container("paris"), snap.CatalogItems())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if plan.UploadRoot != "galleries/paris" {
		t.Errorf("UploadRoot = %q, want %q", plan.UploadRoot, "galleries/paris")
	}
	if len(plan.Entries) != 2 {
		t.Fatalf("Entry count = %d, want 2", len(plan.Entries))
	}

	first := plan.Entries[0]
	if first.ItemID != "img-1" {
		t.Errorf("Entries[0].ItemID = %q, want %q (input order)", first.ItemID, "img-1")
	}
	if first.Path != "galleries/paris/2020/Paris" {
		t.Errorf("Entries[0].Path = %q, want %q", first.Path, "galleries/paris/2020/Paris")
	}

	second := plan.Entries[1]
	if second.Path != "galleries/paris/2021/Paris" {
		t.Errorf("Entries[1].Path = %q, want %q", second.Path, "galleries/paris/2021/Paris")
	}
}

func TestPlanner_KeywordDeltas(t *testing.T) {
	snap := loadTestSnapshot(t)
	planner := NewPlanner(testSettings(), nil, frozenClock{time.Now()}, nil)

	plan, err := planner.Plan(context.Background(), snap.Container("paris"), snap.CatalogItems())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	// img-1 has "old" (remove) and "travel" (keep); needs "published".
	first := plan.Entries[0].Keywords
	if len(first.NamesToAdd) != 1 || first.NamesToAdd[0] != "published" {
		t.Errorf("Entries[0] NamesToAdd = %v, want [published]", first.NamesToAdd)
	}
	if len(first.NamesToRemove) != 1 || first.NamesToRemove[0] != "old" {
		t.Errorf("Entries[0] NamesToRemove = %v, want [old]", first.NamesToRemove)
	}

	// img-2 has no keywords; needs both.
	second := plan.Entries[1].Keywords
	if len(second.NamesToAdd) != 2 || len(second.NamesToRemove) != 0 {
		t.Errorf("Entries[1] delta = %+v, want two adds and no removals", second)
	}
}

func TestPlanner_DefaultRootWithoutContainer(t *testing.T) {
	snap := loadTestSnapshot(t)
	settings := testSettings()
	settings.DefaultUploadRoot = "fallback/"
	planner := NewPlanner(settings, nil, frozenClock{time.Now()}, nil)

	plan, err := planner.Plan(context.Background(), nil, snap.CatalogItems())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if plan.UploadRoot != "fallback" {
		t.Errorf("UploadRoot = %q, want %q", plan.UploadRoot, "fallback")
	}
}

func TestPlanner_Apply(t *testing.T) {
	snap := loadTestSnapshot(t)
	planner := NewPlanner(testSettings(), nil, frozenClock{time.Now()}, nil)

	items := snap.CatalogItems()
	plan, err := planner.Plan(context.Background(), snap.Container("paris"), items)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	planner.Apply(plan, items)

	got := names(items[0].CurrentTags())
	want := []string{"travel", "published"}
	if len(got) != len(want) {
		t.Fatalf("tags after apply = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tags after apply = %v, want %v", got, want)
			break
		}
	}
}

func TestPlanner_CancelledContext(t *testing.T) {
	snap := loadTestSnapshot(t)
	planner := NewPlanner(testSettings(), nil, frozenClock{time.Now()}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := planner.Plan(ctx, nil, snap.CatalogItems()); err == nil {
		t.Error("Plan should fail when the context is already cancelled")
	}
}

func names(tags []catalog.Tag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.Name()
	}
	return out
}
