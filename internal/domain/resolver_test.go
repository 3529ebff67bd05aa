package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxform.dev/pkg/goxform/internal/adapter"
	"goxform.dev/pkg/goxform/internal/domain"
	m "goxform.dev/pkg/goxform/internal/model"
)

func newStore(t *testing.T, files map[string]string) *adapter.MemStore {
	t.Helper()

	store := adapter.NewMemStore()
	for p, contents := range files {
		require.NoError(t, store.WriteFile(p, []byte(contents)))
	}

	return store
}

func TestResolver_Node(t *testing.T) {
	store := newStore(t, map[string]string{
		"/a.go":                       "package a",
		"/a_test.go":                  "package a",
		"/b_test.go":                  "package b",
		"/src/util.go":                "package util",
		"/src/lib/index.go":           "package lib",
		"/vendor/foo/foo.go":          "package foo",
		"/vendor/foo/module.yaml":     "name: foo\nmain: ./foo.go\n",
		"/vendor/bar/index.go":        "package bar",
		"/vendor/baz/module.yaml":     "name: baz\nmain: ./lib\n",
		"/vendor/baz/lib/index.go":    "package baz",
		"/vendor/broken/module.yaml":  "main: [",
		"/vendor/broken/index.go":     "package broken",
		"/src/vendor/foo/foo.go":      "package nearer",
		"/src/vendor/foo/module.yaml": "name: foo\nmain: ./foo.go\n",
		"/exact":                      "no extension",
	})

	resolver := domain.NewResolver(store, m.DefaultOptions())

	tests := []struct {
		name string
		ref  string
		from string
		want string
	}{
		{"relative with extension priority", "./a", "/main.go", "/a.go"},
		{"second extension", "./b", "/main.go", "/b_test.go"},
		{"parent directory", "../a", "/src/main.go", "/a.go"},
		{"absolute", "/src/util", "/main.go", "/src/util.go"},
		{"exact file name", "./exact", "/main.go", "/exact"},
		{"directory index", "./lib", "/src/main.go", "/src/lib/index.go"},
		{"mock from root", "foo", "/main.go", "/vendor/foo/foo.go"},
		{"mock from a deep file", "foo", "/other/deep/x.go", "/vendor/foo/foo.go"},
		{"nearest vendor wins", "foo", "/src/main.go", "/src/vendor/foo/foo.go"},
		{"mock from inside vendor", "bar", "/vendor/foo/foo.go", "/vendor/bar/index.go"},
		{"index without descriptor", "bar", "/main.go", "/vendor/bar/index.go"},
		{"descriptor main is a directory", "baz", "/main.go", "/vendor/baz/lib/index.go"},
		{"malformed descriptor falls back to index", "broken", "/main.go", "/vendor/broken/index.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(tt.ref, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_NodeNotFound(t *testing.T) {
	store := newStore(t, map[string]string{"/a.go": "package a"})
	resolver := domain.NewResolver(store, m.DefaultOptions())

	for _, ref := range []string{"missing", "./missing", "/a/b"} {
		t.Run(ref, func(t *testing.T) {
			_, err := resolver.Resolve(ref, "/main.go")
			require.ErrorIs(t, err, domain.ErrModuleNotFound)

			var notFound *domain.ModuleNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, ref, notFound.Name)
			assert.Equal(t, "/main.go", notFound.ContainingFile)
		})
	}
}

func TestResolver_ExtensionOrderIsConfigurable(t *testing.T) {
	store := newStore(t, map[string]string{
		"/a.go":      "package a",
		"/a_test.go": "package a",
	})

	options := m.MergeOptions(m.DefaultOptions(), m.Options{
		m.OptResolveExtensions: []string{"_test.go", ".go"},
	})

	got, err := domain.NewResolver(store, options).Resolve("./a", "/main.go")
	require.NoError(t, err)
	assert.Equal(t, "/a_test.go", got)
}

func TestResolver_Classic(t *testing.T) {
	store := newStore(t, map[string]string{
		"/a.go":              "package a",
		"/shared.go":         "package shared",
		"/src/lib/index.go":  "package lib",
		"/vendor/foo/foo.go": "package foo",
	})

	options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptModuleResolution: m.ResolutionClassic})
	resolver := domain.NewResolver(store, options)

	got, err := resolver.Resolve("./a", "/main.go")
	require.NoError(t, err)
	assert.Equal(t, "/a.go", got)

	got, err = resolver.Resolve("shared", "/src/deep/x.go")
	require.NoError(t, err)
	assert.Equal(t, "/shared.go", got)

	_, err = resolver.Resolve("./lib", "/src/main.go")
	require.ErrorIs(t, err, domain.ErrModuleNotFound, "classic resolution does not load directories")

	_, err = resolver.Resolve("foo", "/main.go")
	require.ErrorIs(t, err, domain.ErrModuleNotFound, "classic resolution does not search vendor")
}
