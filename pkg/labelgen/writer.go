package labelgen

import (
	"errors"
	"fmt"
	"path"

	"github.com/hack-pad/hackpadfs"
)

var ErrWriteArtifact = errors.New("labelgen: write artifact")

// Writer persists a generated artifact on a hackpadfs filesystem.
// Paths are slash-separated and relative to the filesystem root.
type Writer struct {
	FS   hackpadfs.FS
	Path string
}

// Write replaces the file at w.Path with data. The bytes go to a sibling
// temporary file first and are renamed into place, so the target either
// keeps its old contents or gets all of the new ones.
func (w *Writer) Write(data []byte) error {
	tmp := path.Join(path.Dir(w.Path), "."+path.Base(w.Path)+".tmp")

	if err := hackpadfs.WriteFullFile(w.FS, tmp, data, 0644); err != nil {
		_ = hackpadfs.Remove(w.FS, tmp)
		return fmt.Errorf("%w %s: %w", ErrWriteArtifact, w.Path, err)
	}

	if err := hackpadfs.Rename(w.FS, tmp, w.Path); err != nil {
		_ = hackpadfs.Remove(w.FS, tmp)
		return fmt.Errorf("%w %s: %w", ErrWriteArtifact, w.Path, err)
	}

	return nil
}

// Read returns the current contents of the artifact.
func (w *Writer) Read() ([]byte, error) {
	return hackpadfs.ReadFile(w.FS, w.Path)
}
