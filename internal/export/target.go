package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davidpaquet/archive-browser/internal/logging"
)

// ErrDownloadUnavailable means the host cannot save an export right now
var ErrDownloadUnavailable = errors.New("download unavailable")

// Target receives a finished export
type Target interface {
	Save(filename, text string) error
}

// FileTarget saves exports into a directory
type FileTarget struct {
	Dir string
}

// NewFileTarget creates a target writing into dir
func NewFileTarget(dir string) *FileTarget {
	return &FileTarget{Dir: dir}
}

// Available reports whether the directory can be written to
func (f *FileTarget) Available() error {
	if f.Dir == "" {
		return fmt.Errorf("%w: no export directory configured", ErrDownloadUnavailable)
	}
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadUnavailable, err)
	}
	check, err := os.CreateTemp(f.Dir, ".write-check-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadUnavailable, err)
	}
	check.Close()
	os.Remove(check.Name())
	return nil
}

// Save writes text to Dir/filename. The file is staged under a temporary name
// and renamed into place; the staging file never outlives the call.
func (f *FileTarget) Save(filename, text string) error {
	if err := f.Available(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.Dir, "."+filepath.Base(filename)+"-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}

	dest := f.Path(filename)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("move export into place: %w", err)
	}

	logging.Info("Export saved", "path", dest, "bytes", len(text), "mime", MIMEType)
	return nil
}

// Path is where filename ends up
func (f *FileTarget) Path(filename string) string {
	return filepath.Join(f.Dir, filepath.Base(filename))
}

// WriterTarget streams exports to a writer, e.g. stdout in headless mode
type WriterTarget struct {
	W io.Writer
}

func (w WriterTarget) Save(filename, text string) error {
	if w.W == nil {
		return ErrDownloadUnavailable
	}
	if _, err := io.WriteString(w.W, text+"\n"); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
