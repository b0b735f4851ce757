package mapstore

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"trackmap/models"
)

// FileStore keeps one JSON document per track layout in a directory.
type FileStore struct {
	dir    string
	fs     FileSystem
	logger *log.Logger
}

// NewFileStore stores maps under dir. A nil fsys uses the OS filesystem; a nil
// logger discards output.
func NewFileStore(dir string, fsys FileSystem, logger *log.Logger) *FileStore {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &FileStore{dir: dir, fs: fsys, logger: discardLogger(logger)}
}

// PathFor is the file the map for id is stored in.
func (s *FileStore) PathFor(id models.TrackIdentity) string {
	return filepath.Join(s.dir, id.DocumentName())
}

func (s *FileStore) Load(id models.TrackIdentity) (models.Path, bool) {
	p, err := s.load(id)
	switch {
	case err == nil:
		return p, true
	case errors.Is(err, ErrNotFound):
	default:
		s.logger.Printf("trackmap: ignoring stored map for %s: %v", id, err)
	}
	return nil, false
}

func (s *FileStore) load(id models.TrackIdentity) (models.Path, error) {
	name := s.PathFor(id)
	data, err := s.fs.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// Save writes the document to a temporary file and renames it into place so
// a failed write never truncates an existing map.
func (s *FileStore) Save(id models.TrackIdentity, p models.Path) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create map dir: %w", err)
	}
	name := s.PathFor(id)
	tmp := name + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
