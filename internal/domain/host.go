package domain

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"goxform.dev/pkg/goxform/internal/adapter"
	m "goxform.dev/pkg/goxform/internal/model"
)

// BuildArgs is everything one compilation context is built from.
type BuildArgs struct {
	Root    m.File
	Sources []m.File
	Mocks   []m.MockModule
	Options m.Options

	// Base, when set, is copied into the store first. Root, sources and
	// mocks are written over it.
	Base afero.Fs
}

// ContextBuilder prepares a fresh virtual store and compiler host for a
// single compilation.
type ContextBuilder interface {
	Build(args BuildArgs) (*Host, error)
}

type contextBuilder struct {
	compiler adapter.Compiler
	library  afero.Fs
}

// NewContextBuilder constructs a ContextBuilder that copies the compiler's
// library snapshot out of library.
func NewContextBuilder(compiler adapter.Compiler, library afero.Fs) ContextBuilder {
	return &contextBuilder{
		compiler: compiler,
		library:  library,
	}
}

// Build writes the root, the auxiliary sources and the mock packages, copies
// the library snapshot, merges args.Options over the defaults and binds the
// host to the new store. Missing or broken sources are not detected here.
func (b *contextBuilder) Build(args BuildArgs) (*Host, error) {
	store := adapter.NewMemStore()

	if args.Base != nil {
		if err := store.CopyTree(args.Base, "/", "/"); err != nil {
			return nil, fmt.Errorf("failed to copy base filesystem: %w", err)
		}
	}

	for _, file := range append([]m.File{args.Root}, args.Sources...) {
		if err := store.WriteFile(file.Path, []byte(file.Contents)); err != nil {
			return nil, fmt.Errorf("failed to write source %s: %w", file.Path, err)
		}
	}

	for _, mock := range args.Mocks {
		if err := writeMock(store, mock); err != nil {
			return nil, err
		}
	}

	libLocation := b.compiler.DefaultLibLocation()
	if err := store.CopyTree(b.library, libLocation, m.LibraryDir); err != nil {
		return nil, fmt.Errorf("failed to copy library from %s: %w", libLocation, err)
	}

	options := m.MergeOptions(m.DefaultOptions(), args.Options)

	slog.Debug("built compilation context",
		"root", args.Root.Path,
		"sources", len(args.Sources),
		"mocks", len(args.Mocks),
		"library", libLocation)

	return &Host{
		store:    store,
		options:  options,
		resolver: NewResolver(store, options),
	}, nil
}

// MockPath returns the entry file a mock module named name is written to.
func MockPath(name string) string {
	return path.Join(m.MockRoot, name, path.Base(name)+m.GoExt)
}

func writeMock(store adapter.VirtualStore, mock m.MockModule) error {
	entry := MockPath(mock.Name)
	if err := store.WriteFile(entry, []byte(mock.Content)); err != nil {
		return fmt.Errorf("failed to write mock %s: %w", mock.Name, err)
	}

	descriptor, err := yaml.Marshal(m.ModuleDescriptor{
		Name: mock.Name,
		Main: "./" + path.Base(entry),
	})
	if err != nil {
		return fmt.Errorf("failed to encode descriptor for mock %s: %w", mock.Name, err)
	}

	if err := store.WriteFile(path.Join(path.Dir(entry), m.DescriptorName), descriptor); err != nil {
		return fmt.Errorf("failed to write descriptor for mock %s: %w", mock.Name, err)
	}

	return nil
}

// Host is the compiler host bound to one compilation context's store.
type Host struct {
	store    adapter.VirtualStore
	options  m.Options
	resolver Resolver
}

// Store returns the virtual store the host reads from and writes to.
func (h *Host) Store() adapter.VirtualStore {
	return h.store
}

// Options returns the merged compiler configuration.
func (h *Host) Options() m.Options {
	return h.options
}

// FileExists implements adapter.CompilerHost.
func (h *Host) FileExists(p string) bool {
	return h.store.IsFile(p)
}

// ReadFile implements adapter.CompilerHost.
func (h *Host) ReadFile(p string) ([]byte, error) {
	return h.store.ReadFile(p)
}

// WriteFile implements adapter.CompilerHost.
func (h *Host) WriteFile(p string, data []byte) error {
	return h.store.WriteFile(p, data)
}

// DefaultLibLocation implements adapter.CompilerHost.
func (h *Host) DefaultLibLocation() string {
	return m.LibraryDir
}

// ResolveModuleNames implements adapter.CompilerHost.
func (h *Host) ResolveModuleNames(names []string, containingFile string) []adapter.ResolvedModule {
	results := make([]adapter.ResolvedModule, len(names))

	for i, name := range names {
		resolved, err := h.resolver.Resolve(name, containingFile)
		results[i] = adapter.ResolvedModule{Name: name, ResolvedFileName: resolved, Err: err}
	}

	return results
}
