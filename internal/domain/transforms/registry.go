// Package transforms provides ready-made transform factories such as
// operator swaps, branch inversions and import rewrites.
package transforms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"goxform.dev/pkg/goxform/internal/adapter"
)

var (
	// ErrUnknownTransform is returned for names missing from the registry.
	ErrUnknownTransform = errors.New("unknown transform")
	// ErrInvalidArgument is returned when a transform's argument is missing
	// or malformed.
	ErrInvalidArgument = errors.New("invalid transform argument")
)

// Builder constructs a factory from the text after the colon in name:arg.
type Builder func(arg string) (adapter.TransformFactory, error)

// Entry describes one registered transform.
type Entry struct {
	Name        string
	Description string
	Argument    string
	Build       Builder
}

var registry = map[string]Entry{}

func register(e Entry) {
	registry[e.Name] = e
}

func init() {
	register(Entry{
		Name:        "arithmetic",
		Description: "swap + and -, * and /, turn % into *",
		Build:       noArg(Arithmetic),
	})
	register(Entry{
		Name:        "comparison",
		Description: "negate comparisons (< and >=, > and <=, == and !=)",
		Build:       noArg(Comparison),
	})
	register(Entry{
		Name:        "logical",
		Description: "swap && and ||",
		Build:       noArg(Logical),
	})
	register(Entry{
		Name:        "boolean",
		Description: "flip the predeclared true and false",
		Build:       noArg(Boolean),
	})
	register(Entry{
		Name:        "branch",
		Description: "invert if and for conditions",
		Build:       noArg(Branch),
	})
	register(Entry{
		Name:        "remove-else",
		Description: "drop else branches",
		Build:       noArg(RemoveElse),
	})
	register(Entry{
		Name:        "rename",
		Description: "rename an identifier",
		Argument:    "old=new",
		Build:       pairArg(Rename),
	})
	register(Entry{
		Name:        "rewrite-import",
		Description: "rewrite an import path",
		Argument:    "old=new",
		Build:       pairArg(RewriteImport),
	})
}

// List returns every registered transform sorted by name.
func List() []Entry {
	entries := make([]Entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries
}

// Lookup builds the transform described by spec, written name or name:arg.
func Lookup(spec string) (adapter.TransformFactory, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(spec), ":")

	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	factory, err := entry.Build(arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return factory, nil
}

// LookupAll builds every spec in order.
func LookupAll(specs []string) ([]adapter.TransformFactory, error) {
	factories := make([]adapter.TransformFactory, 0, len(specs))

	for _, spec := range specs {
		factory, err := Lookup(spec)
		if err != nil {
			return nil, err
		}

		factories = append(factories, factory)
	}

	return factories, nil
}

func noArg(factory adapter.TransformFactory) Builder {
	return func(arg string) (adapter.TransformFactory, error) {
		if arg != "" {
			return nil, fmt.Errorf("%w: takes no argument, got %q", ErrInvalidArgument, arg)
		}

		return factory, nil
	}
}

func pairArg(build func(from, to string) adapter.TransformFactory) Builder {
	return func(arg string) (adapter.TransformFactory, error) {
		from, to, ok := strings.Cut(arg, "=")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%w: want old=new, got %q", ErrInvalidArgument, arg)
		}

		return build(from, to), nil
	}
}
