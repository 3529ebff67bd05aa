package model

import (
	"maps"
	"strings"

	"github.com/spf13/cast"
)

// Options is the compiler configuration: option name to value. Keys are
// snake_case so that values loaded through viper (which lowercases keys)
// line up with the constants below.
type Options map[string]any

// Option keys understood by the Go source compiler and the harness.
const (
	OptOutDir            = "out_dir"
	OptLib               = "lib"
	OptModule            = "module"
	OptModuleResolution  = "module_resolution"
	OptAllowSoftErrors   = "allow_soft_errors"
	OptSkipLibCheck      = "skip_lib_check"
	OptGoVersion         = "go_version"
	OptTypes             = "types"
	OptNoEmitOnError     = "no_emit_on_error"
	OptTestFiles         = "test_files"
	OptResolveExtensions = "resolve_extensions"
)

// Values accepted by enumerated options.
const (
	ModuleLatest = "latest"

	ResolutionNode    = "node"
	ResolutionClassic = "classic"

	TestFilesPreserve = "preserve"
	TestFilesCompile  = "compile"
)

// Fixed locations inside the virtual store.
const (
	DefaultOutDir   = "/dist"
	LibraryDir      = "/goroot/src/builtin"
	LibraryFile     = LibraryDir + "/builtin.go"
	MockRoot        = "/vendor"
	DescriptorName  = "module.yaml"
	DefaultFilePath = "/main.go"
)

// Script extensions.
const (
	GoExt     = ".go"
	GoTestExt = "_test.go"
)

// DefaultOptions returns a fresh copy of the base configuration. Callers may
// modify the result; the base itself is never exposed.
func DefaultOptions() Options {
	return Options{
		OptOutDir:            DefaultOutDir,
		OptLib:               []string{LibraryFile},
		OptModule:            ModuleLatest,
		OptModuleResolution:  ResolutionNode,
		OptAllowSoftErrors:   true,
		OptSkipLibCheck:      true,
		OptGoVersion:         "",
		OptTypes:             []string{},
		OptNoEmitOnError:     true,
		OptTestFiles:         TestFilesPreserve,
		OptResolveExtensions: []string{GoExt, GoTestExt},
	}
}

// MergeOptions overlays override onto base key by key. Nested values are
// replaced, not merged. Neither argument is modified.
func MergeOptions(base, override Options) Options {
	merged := make(Options, len(base)+len(override))
	maps.Copy(merged, base)

	for key, value := range override {
		merged[strings.ToLower(key)] = value
	}

	return merged
}

// Clone returns a shallow copy of o.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}

	return maps.Clone(o)
}

// OutDir returns the configured output directory.
func (o Options) OutDir() string {
	return o.String(OptOutDir)
}

// Lib returns the library files every program loads.
func (o Options) Lib() []string {
	return o.Strings(OptLib)
}

// Module returns the module syntax level.
func (o Options) Module() string {
	return o.String(OptModule)
}

// ModuleResolution returns the resolution strategy, defaulting to node.
func (o Options) ModuleResolution() string {
	if s := o.String(OptModuleResolution); s != "" {
		return strings.ToLower(s)
	}

	return ResolutionNode
}

// AllowSoftErrors reports whether soft type errors are suppressed.
func (o Options) AllowSoftErrors() bool {
	return o.Bool(OptAllowSoftErrors)
}

// SkipLibCheck reports whether library files are only checked for existence.
func (o Options) SkipLibCheck() bool {
	return o.Bool(OptSkipLibCheck)
}

// GoVersion returns the language version passed to the type checker.
func (o Options) GoVersion() string {
	return o.String(OptGoVersion)
}

// Types returns the ambient packages loaded even when not imported.
func (o Options) Types() []string {
	return o.Strings(OptTypes)
}

// NoEmitOnError reports whether any diagnostic halts emission.
func (o Options) NoEmitOnError() bool {
	return o.Bool(OptNoEmitOnError)
}

// TestFiles returns the handling mode for test-flavored sources.
func (o Options) TestFiles() string {
	return strings.ToLower(o.String(OptTestFiles))
}

// ResolveExtensions returns the candidate extensions in priority order.
func (o Options) ResolveExtensions() []string {
	if exts := o.Strings(OptResolveExtensions); len(exts) > 0 {
		return exts
	}

	return []string{GoExt, GoTestExt}
}

// String returns the value at key coerced to a string.
func (o Options) String(key string) string {
	v, ok := o[key]
	if !ok || v == nil {
		return ""
	}

	return cast.ToString(v)
}

// Bool returns the value at key coerced to a bool.
func (o Options) Bool(key string) bool {
	v, ok := o[key]
	if !ok || v == nil {
		return false
	}

	return cast.ToBool(v)
}

// Strings returns the value at key coerced to a string slice.
func (o Options) Strings(key string) []string {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}

	return cast.ToStringSlice(v)
}
