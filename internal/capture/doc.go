// Package capture determines the best available capture instant for a
// media item.
//
// Metadata sources are tried in a fixed order, first match wins:
//
//  1. dateTimeOriginal (a true original-capture value)
//  2. dateTimeOriginalISO8601 (also original)
//  3. dateTimeDigitized
//  4. dateTimeDigitizedISO8601
//  5. the formatted "dateCreated" string, parsed permissively
//  6. creation time of the backing file (FileTimes source)
//  7. the current wall-clock time
//
// Resolution never fails; the result is always a usable instant, and
// the boolean reports whether it came from an original-capture source
// (steps 1-2 only). Falling all the way to the clock is reported as a
// warning through the event callback.
//
// # File times
//
// ExifFileTimes is the production FileTimes source: it reads EXIF
// DateTimeOriginal from the backing file and falls back to the file
// modification time.
package capture
