package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UploadedFile describes one accepted multipart file. It lives only inside the
// response of the request that created it; nothing tracks it afterward.
type UploadedFile struct {
	OriginalName string `json:"originalName"`
	StoredName   string `json:"storedName"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

// StoredFilename derives a collision-resistant name by inserting a nanosecond
// timestamp between the original base name and its extension, e.g.
// "notes.txt" -> "notes-1700000000000000000.txt".
func StoredFilename(original string, now time.Time) string {
	base := filepath.Base(original)
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "file"
	}
	return fmt.Sprintf("%s-%d%s", stem, now.UnixNano(), ext)
}
