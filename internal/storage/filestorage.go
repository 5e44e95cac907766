// Package storage reads and writes the plain-text journal file.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
)

// WriteFileFunc writes data to a file at path. Tests inject failures
// through it.
type WriteFileFunc func(path string, data []byte) error

// DefaultWriteFile writes the file with 0600 permissions.
func DefaultWriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0600)
}

// FileStorage loads and saves one journal file.
type FileStorage struct {
	path  string
	write WriteFileFunc
}

// NewFileStorage creates a FileStorage for the given journal file.
// If write is nil, uses DefaultWriteFile.
func NewFileStorage(path string, write WriteFileFunc) *FileStorage {
	if write == nil {
		write = DefaultWriteFile
	}
	return &FileStorage{path: path, write: write}
}

// Path returns the journal file path.
func (fs *FileStorage) Path() string {
	return fs.path
}

// Exists returns true if the journal file exists.
func (fs *FileStorage) Exists() bool {
	info, err := os.Stat(fs.path)
	return err == nil && !info.IsDir()
}

// Load reads and parses the journal file. A missing file yields an empty
// journal; read failures are system errors carrying the path.
func (fs *FileStorage) Load(cfg journal.Config) (*journal.Journal, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return journal.NewJournal(cfg), nil
		}
		return nil, output.NewSystemErrorWithCause(
			fmt.Sprintf("reading journal %s: %v", fs.path, err), err)
	}
	return journal.Parse(string(data), cfg), nil
}

// Save writes the journal's canonical form, creating parent directories as
// needed.
func (fs *FileStorage) Save(j *journal.Journal) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return output.NewSystemErrorWithCause(
				fmt.Sprintf("creating journal directory %s: %v", dir, err), err)
		}
	}
	if err := fs.write(fs.path, []byte(j.WriteForm())); err != nil {
		return output.NewSystemErrorWithCause(
			fmt.Sprintf("writing journal %s: %v", fs.path, err), err)
	}
	return nil
}
