// Package adapter contains the storage and compiler adapters the harness
// drives: the in-memory virtual store, the read-only library source and the
// Go source compiler.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when reading or listing a path that does not exist.
	ErrNotFound = errors.New("no such file or directory")
	// ErrNotAFile is returned when a file operation targets a directory.
	ErrNotAFile = errors.New("is a directory")
	// ErrNotADirectory is returned when a directory operation meets a file.
	ErrNotADirectory = errors.New("not a directory")
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// VirtualStore is the in-memory hierarchical file store one pipeline run
// works in. Paths are absolute and slash-delimited; relative paths are
// interpreted from the store root.
//
//nolint:interfacebloat // Mirrors the filesystem surface the compiler host needs.
type VirtualStore interface {
	// Mkdirp creates every missing directory of p, root to leaf.
	Mkdirp(p string) error

	// WriteFile creates the ancestors of p and stores data at p.
	WriteFile(p string, data []byte) error

	// ReadFile returns the contents stored at p.
	ReadFile(p string) ([]byte, error)

	// ListFiles returns every file under root relative to root.
	ListFiles(root string) ([]string, error)

	// CopyTree copies every file under srcRoot in src to the same relative
	// location under destRoot.
	CopyTree(src afero.Fs, srcRoot, destRoot string) error

	// Exists reports whether p is a file or directory.
	Exists(p string) bool

	// IsFile reports whether p is a regular file.
	IsFile(p string) bool

	// IsDir reports whether p is a directory.
	IsDir(p string) bool

	// Fs exposes the backing filesystem.
	Fs() afero.Fs
}

// MemStore is a VirtualStore backed by afero's MemMapFs, an arena keyed by
// path.
type MemStore struct {
	fs afero.Fs
}

// NewMemStore returns an empty store containing only the root directory.
func NewMemStore() *MemStore {
	return &MemStore{fs: afero.NewMemMapFs()}
}

// Fs implements VirtualStore.
func (s *MemStore) Fs() afero.Fs {
	return s.fs
}

// Mkdirp implements VirtualStore.
func (s *MemStore) Mkdirp(p string) error {
	p = normalize(p)
	if p == "/" {
		return nil
	}

	prefix := ""

	for _, fragment := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		prefix += "/" + fragment

		info, err := s.fs.Stat(prefix)

		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return &fs.PathError{Op: "mkdir", Path: prefix, Err: ErrNotADirectory}
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}

		if err := s.fs.Mkdir(prefix, dirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", prefix, err)
		}
	}

	return nil
}

// WriteFile implements VirtualStore.
func (s *MemStore) WriteFile(p string, data []byte) error {
	p = normalize(p)

	if s.IsDir(p) {
		return &fs.PathError{Op: "write", Path: p, Err: ErrNotAFile}
	}

	if err := s.Mkdirp(path.Dir(p)); err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, p, data, filePerm); err != nil {
		slog.Error("failed to write file", "path", p, "error", err)
		return fmt.Errorf("write %s: %w", p, err)
	}

	slog.Debug("wrote file", "path", p, "bytes", len(data))

	return nil
}

// ReadFile implements VirtualStore.
func (s *MemStore) ReadFile(p string) ([]byte, error) {
	p = normalize(p)

	info, err := s.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fs.PathError{Op: "read", Path: p, Err: ErrNotFound}
		}

		return nil, err
	}

	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: p, Err: ErrNotAFile}
	}

	return afero.ReadFile(s.fs, p)
}

// ListFiles implements VirtualStore.
func (s *MemStore) ListFiles(root string) ([]string, error) {
	return ListFiles(s.fs, normalize(root))
}

// CopyTree implements VirtualStore.
func (s *MemStore) CopyTree(src afero.Fs, srcRoot, destRoot string) error {
	files, err := ListFiles(src, srcRoot)
	if err != nil {
		return err
	}

	for _, rel := range files {
		data, err := afero.ReadFile(src, filepath.Join(srcRoot, filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}

		if err := s.WriteFile(path.Join(normalize(destRoot), rel), data); err != nil {
			return err
		}
	}

	slog.Debug("copied tree", "from", srcRoot, "to", destRoot, "files", len(files))

	return nil
}

// Exists implements VirtualStore.
func (s *MemStore) Exists(p string) bool {
	_, err := s.fs.Stat(normalize(p))
	return err == nil
}

// IsFile implements VirtualStore.
func (s *MemStore) IsFile(p string) bool {
	info, err := s.fs.Stat(normalize(p))
	return err == nil && !info.IsDir()
}

// IsDir implements VirtualStore.
func (s *MemStore) IsDir(p string) bool {
	info, err := s.fs.Stat(normalize(p))
	return err == nil && info.IsDir()
}

// ListFiles enumerates every file below root in fsys, depth first in name
// order, and returns the paths relative to root using forward slashes.
// Directories are descended into but not reported.
func ListFiles(fsys afero.Fs, root string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fs.PathError{Op: "list", Path: root, Err: ErrNotFound}
		}

		return nil, err
	}

	if !info.IsDir() {
		return nil, &fs.PathError{Op: "list", Path: root, Err: ErrNotADirectory}
	}

	files := make([]string, 0)

	return listInto(fsys, root, "", files)
}

func listInto(fsys afero.Fs, dir, rel string, files []string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		childRel := entry.Name()
		if rel != "" {
			childRel = rel + "/" + entry.Name()
		}

		if entry.IsDir() {
			files, err = listInto(fsys, filepath.Join(dir, entry.Name()), childRel, files)
			if err != nil {
				return nil, err
			}

			continue
		}

		files = append(files, childRel)
	}

	return files, nil
}

func normalize(p string) string {
	return path.Clean("/" + filepath.ToSlash(p))
}
