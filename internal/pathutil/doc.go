// Package pathutil provides path sanitization helpers for destination
// paths built from photo metadata.
//
// Two distinct operations are kept deliberately separate:
//
//   - SanitizeSegment cleans a single path segment (a metadata value or
//     container name) before it is joined into a path. Separators are
//     illegal here and become underscores.
//   - NormalizePath cleans an already-joined path: it normalizes
//     separators and trims, but never touches individual characters,
//     so intentional slashes inserted by the resolvers survive.
//
// Example:
//
//	pathutil.SanitizeSegment("Trip: Day 1/2") // "Trip_ Day 1_2"
//	pathutil.NormalizePath(`photos\2020\`)    // "photos/2020"
package pathutil
