// Package snapshot loads a JSON snapshot of a photo catalog and
// exposes it through the catalog interfaces.
//
// A snapshot file carries containers and items:
//
//	{
//	  "containers": [
//	    {"id": "trips", "name": "Trips", "kind": "set",
//	     "settings": {"baseDir": "archive"}},
//	    {"id": "paris", "name": "Paris", "kind": "collection",
//	     "parent": "trips", "settings": {"dstRoot": "paris"}}
//	  ],
//	  "items": [
//	    {"id": "img-001", "file": "/photos/img-001.jpg",
//	     "timestamps": {"dateTimeOriginal": "2020-05-15T14:30:00Z"},
//	     "metadata": {"creator": "Ansel"},
//	     "collections": ["paris"],
//	     "keywords": ["travel"]}
//	  ]
//	}
//
// Items without an id are assigned one at load time. The loaded types
// are the in-memory implementation of the collaborator interfaces used
// by the CLI; a live host catalog would provide its own.
package snapshot
