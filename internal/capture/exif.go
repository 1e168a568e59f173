package capture

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// ExifFileTimes reads creation times from the files backing items.
//
// EXIF DateTimeOriginal is preferred; files without EXIF data (videos,
// stripped JPEGs) fall back to the file modification time.
type ExifFileTimes struct{}

// CreationTime implements catalog.FileTimes.
func (ExifFileTimes) CreationTime(path string) (time.Time, bool) {
	if t, err := exifDate(path); err == nil {
		return t, true
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// exifDate extracts DateTimeOriginal from a file's EXIF metadata.
func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}

// SystemClock is the production catalog.Clock.
type SystemClock struct{}

// Now implements catalog.Clock.
func (SystemClock) Now() time.Time { return time.Now() }
