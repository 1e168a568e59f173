// Package publish plans the publishing of media items: for each item
// it resolves a destination path from the configured template and
// computes the keyword delta against the configured keyword list.
//
// # Planner
//
// The Planner coordinates the planning process:
//
//  1. Resolve the upload root of the published container
//  2. Resolve each item's destination path from the path template
//  3. Diff each item's keywords against the configured list
//
// # Basic Usage
//
//	planner := publish.NewPlanner(settings, capture.ExifFileTimes{}, nil,
//	    func(event catalog.Event) {
//	        fmt.Println(event.Message)
//	    })
//
//	plan, err := planner.Plan(ctx, publishedCollection, items)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, entry := range plan.Entries {
//	    fmt.Println(entry.ItemID, "->", entry.Path)
//	}
//
// # Concurrency
//
// Items are resolved in parallel, bounded by
// settings.MaxConcurrentResolves. Entries keep input order regardless
// of completion order. Planning never mutates items; applying keyword
// deltas is a separate, explicit step.
package publish
