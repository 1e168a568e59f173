// Package catalog defines the interfaces through which the resolution
// engine reads the host photo catalog, plus the shared progress event
// types.
//
// The engine never owns catalog data. Items, containers and tags are
// handles into the host's object model; this package only states what
// the engine needs to read from them (and, for keywords, the two
// mutation hooks it delegates to).
//
// # Items and Containers
//
// Item is a single media asset: timestamp fields, formatted metadata,
// the backing file path, container memberships and current keyword
// tags. Container is a node in the collection tree - a Collection leaf
// holding items, or a CollectionSet holding other containers.
//
// # Events
//
// Components report advisory conditions through an injected callback:
//
//	engine := template.NewEngine(resolver, func(event catalog.Event) {
//	    fmt.Println(event.Message)
//	})
//
// A nil callback is always allowed and means "discard".
package catalog
