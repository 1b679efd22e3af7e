package filesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// FS is the set of filesystem operations codec needs.
type FS interface {
	// Stat follows symbolic links.
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow symbolic links where the backend supports them,
	// and falls back to Stat otherwise.
	Lstat(name string) (fs.FileInfo, error)
	// ReadDir returns the entries of a directory sorted by name. Entry types
	// describe the entries themselves, not the targets of links.
	ReadDir(name string) ([]fs.DirEntry, error)

	Open(name string) (io.ReadCloser, error)
	// Create creates or truncates a file.
	Create(name string) (io.WriteCloser, error)
	MkdirAll(path string, perm fs.FileMode) error

	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// aferoFS implements FS on top of an afero.Fs
type aferoFS struct {
	fs afero.Fs
}

// NewAfero wraps an afero filesystem.
func NewAfero(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS returns the operating system's filesystem.
func NewOS() FS {
	return NewAfero(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() FS {
	return NewAfero(afero.NewMemMapFs())
}

// NewDryRun returns a filesystem that reads from disk and writes to memory.
// Nothing written through it reaches the disk, but later reads see the
// writes, so a generation run behaves exactly as it would for real.
func NewDryRun() FS {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	return NewAfero(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()))
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (a *aferoFS) Open(name string) (io.ReadCloser, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return a.fs.Open(name)
}

func (a *aferoFS) Create(name string) (io.WriteCloser, error) {
	return a.fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}
