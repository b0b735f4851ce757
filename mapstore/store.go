// Package mapstore persists finished track maps keyed by track identity.
//
// Every backend stores the same document: a JSON array of [x, y] pairs in
// driving order. Load never fails hard; a missing or unusable document is a
// cache miss and the caller traces the lap live instead.
package mapstore

import (
	"io"
	"log"

	"trackmap/models"
)

// Store loads and saves track maps.
type Store interface {
	// Load returns the stored map for id, or false on a miss.
	Load(id models.TrackIdentity) (models.Path, bool)
	// Save writes p for id, replacing any previous map.
	Save(id models.TrackIdentity, p models.Path) error
}

func discardLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
