package domain

import (
	"log/slog"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"goxform.dev/pkg/goxform/internal/adapter"
	m "goxform.dev/pkg/goxform/internal/model"
)

const vendorDir = "vendor"

// Resolver maps an import reference, as written in containingFile, to a file
// in the virtual store.
type Resolver interface {
	Resolve(name, containingFile string) (string, error)
}

type resolver struct {
	store      adapter.VirtualStore
	extensions []string
	strategy   string
}

// NewResolver constructs a Resolver over store using the extension priority
// list and strategy configured in options.
func NewResolver(store adapter.VirtualStore, options m.Options) Resolver {
	return &resolver{
		store:      store,
		extensions: options.ResolveExtensions(),
		strategy:   options.ModuleResolution(),
	}
}

func (r *resolver) Resolve(name, containingFile string) (string, error) {
	var (
		resolved string
		ok       bool
	)

	basedir := path.Dir(path.Join("/", containingFile))

	switch r.strategy {
	case m.ResolutionClassic:
		resolved, ok = r.resolveClassic(name, basedir)
	default:
		resolved, ok = r.resolveNode(name, basedir)
	}

	if !ok {
		slog.Debug("module not found", "name", name, "from", containingFile, "strategy", r.strategy)
		return "", &ModuleNotFoundError{Name: name, ContainingFile: containingFile}
	}

	slog.Debug("resolved module", "name", name, "from", containingFile, "path", resolved)

	return resolved, nil
}

func (r *resolver) resolveNode(name, basedir string) (string, bool) {
	if isPathReference(name) {
		target := path.Join(basedir, name)
		if path.IsAbs(name) {
			target = path.Clean(name)
		}

		if p, ok := r.loadAsFile(target); ok {
			return p, true
		}

		return r.loadAsDirectory(target)
	}

	for _, dir := range vendorDirs(basedir) {
		target := path.Join(dir, name)

		if p, ok := r.loadAsFile(target); ok {
			return p, true
		}

		if p, ok := r.loadAsDirectory(target); ok {
			return p, true
		}
	}

	return "", false
}

func (r *resolver) resolveClassic(name, basedir string) (string, bool) {
	if isPathReference(name) {
		target := path.Join(basedir, name)
		if path.IsAbs(name) {
			target = path.Clean(name)
		}

		return r.loadAsFile(target)
	}

	for _, dir := range ancestors(basedir) {
		if p, ok := r.loadAsFile(path.Join(dir, name)); ok {
			return p, true
		}
	}

	return "", false
}

// loadAsFile tries target itself, then target with each extension in
// priority order.
func (r *resolver) loadAsFile(target string) (string, bool) {
	if r.store.IsFile(target) {
		return target, true
	}

	for _, ext := range r.extensions {
		if candidate := target + ext; r.store.IsFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// loadAsDirectory follows the package descriptor's main entry, then falls
// back to an index file.
func (r *resolver) loadAsDirectory(dir string) (string, bool) {
	if !r.store.IsDir(dir) {
		return "", false
	}

	if main := r.descriptorMain(dir); main != "" {
		target := path.Join(dir, main)

		if p, ok := r.loadAsFile(target); ok {
			return p, true
		}

		if p, ok := r.loadAsIndex(target); ok {
			return p, true
		}
	}

	return r.loadAsIndex(dir)
}

func (r *resolver) loadAsIndex(dir string) (string, bool) {
	for _, ext := range r.extensions {
		if candidate := path.Join(dir, "index"+ext); r.store.IsFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func (r *resolver) descriptorMain(dir string) string {
	descriptorPath := path.Join(dir, m.DescriptorName)
	if !r.store.IsFile(descriptorPath) {
		return ""
	}

	data, err := r.store.ReadFile(descriptorPath)
	if err != nil {
		return ""
	}

	var descriptor m.ModuleDescriptor
	if err := yaml.Unmarshal(data, &descriptor); err != nil {
		slog.Debug("ignoring malformed package descriptor", "path", descriptorPath, "error", err)
		return ""
	}

	return descriptor.Main
}

func isPathReference(name string) bool {
	return name == "." || name == ".." ||
		strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../") || strings.HasPrefix(name, "/")
}

// ancestors lists dir and each of its parents up to the root.
func ancestors(dir string) []string {
	dir = path.Clean(dir)
	dirs := []string{dir}

	for dir != "/" {
		dir = path.Dir(dir)
		dirs = append(dirs, dir)
	}

	return dirs
}

// vendorDirs lists the vendor directories searched for a bare reference made
// from dir, nearest first. Ancestors that are vendor directories themselves
// are skipped.
func vendorDirs(dir string) []string {
	var dirs []string

	for _, ancestor := range ancestors(dir) {
		if path.Base(ancestor) == vendorDir {
			continue
		}

		dirs = append(dirs, path.Join(ancestor, vendorDir))
	}

	return dirs
}
