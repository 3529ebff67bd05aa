package domain_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"goxform.dev/pkg/goxform/internal/adapter"
	adaptermocks "goxform.dev/pkg/goxform/internal/adapter/mocks"
	"goxform.dev/pkg/goxform/internal/domain"
	m "goxform.dev/pkg/goxform/internal/model"
)

const fakeLibLocation = "/toolchain/src/builtin"

func newLibrary(t *testing.T) afero.Fs {
	t.Helper()

	lib := afero.NewMemMapFs()
	require.NoError(t, lib.MkdirAll(fakeLibLocation, 0o755))
	require.NoError(t, afero.WriteFile(lib, fakeLibLocation+"/builtin.go", []byte("package builtin\n"), 0o644))

	return lib
}

func newLibCompiler(t *testing.T) *adaptermocks.MockCompiler {
	t.Helper()

	compiler := adaptermocks.NewMockCompiler(t)
	compiler.EXPECT().DefaultLibLocation().Return(fakeLibLocation)

	return compiler
}

func TestContextBuilder_Build(t *testing.T) {
	builder := domain.NewContextBuilder(newLibCompiler(t), newLibrary(t))

	host, err := builder.Build(domain.BuildArgs{
		Root:    m.File{Path: "/main.go", Contents: "package main"},
		Sources: []m.File{{Path: "/pkg/util/util.go", Contents: "package util"}},
		Mocks: []m.MockModule{
			{Name: "foo", Content: "package foo"},
			{Name: "example.com/bar", Content: "package bar"},
		},
		Options: m.Options{m.OptOutDir: "/out"},
	})
	require.NoError(t, err)

	store := host.Store()

	t.Run("writes root and sources", func(t *testing.T) {
		assert.True(t, host.FileExists("/main.go"))
		assert.True(t, host.FileExists("/pkg/util/util.go"))

		data, err := host.ReadFile("/pkg/util/util.go")
		require.NoError(t, err)
		assert.Equal(t, "package util", string(data))
	})

	t.Run("materializes mocks with descriptors", func(t *testing.T) {
		assert.Equal(t, "/vendor/foo/foo.go", domain.MockPath("foo"))
		assert.Equal(t, "/vendor/example.com/bar/bar.go", domain.MockPath("example.com/bar"))

		data, err := store.ReadFile("/vendor/example.com/bar/module.yaml")
		require.NoError(t, err)

		var descriptor m.ModuleDescriptor
		require.NoError(t, yaml.Unmarshal(data, &descriptor))
		assert.Equal(t, m.ModuleDescriptor{Name: "example.com/bar", Main: "./bar.go"}, descriptor)
	})

	t.Run("copies the library snapshot", func(t *testing.T) {
		files, err := store.ListFiles(m.LibraryDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"builtin.go"}, files)
		assert.Equal(t, m.LibraryDir, host.DefaultLibLocation())
	})

	t.Run("merges options over defaults", func(t *testing.T) {
		options := host.Options()
		assert.Equal(t, "/out", options.OutDir())
		assert.Equal(t, []string{m.LibraryFile}, options.Lib())
		assert.True(t, options.NoEmitOnError())
	})

	t.Run("resolves through the store", func(t *testing.T) {
		results := host.ResolveModuleNames([]string{"foo", "example.com/bar", "./pkg/util/util", "nope"}, "/main.go")
		require.Len(t, results, 4)

		assert.Equal(t, "/vendor/foo/foo.go", results[0].ResolvedFileName)
		assert.Equal(t, "/vendor/example.com/bar/bar.go", results[1].ResolvedFileName)
		assert.Equal(t, "/pkg/util/util.go", results[2].ResolvedFileName)
		assert.ErrorIs(t, results[3].Err, domain.ErrModuleNotFound)
		assert.Equal(t, "nope", results[3].Name)
	})

	t.Run("writes create ancestors", func(t *testing.T) {
		require.NoError(t, host.WriteFile("/out/nested/main.go", []byte("x")))
		assert.True(t, store.IsDir("/out/nested"))
	})
}

func TestContextBuilder_MockResolvableFromAnywhere(t *testing.T) {
	builder := domain.NewContextBuilder(newLibCompiler(t), newLibrary(t))

	host, err := builder.Build(domain.BuildArgs{
		Root:  m.File{Path: "/main.go", Contents: "package main"},
		Mocks: []m.MockModule{{Name: "foo", Content: "package foo"}},
	})
	require.NoError(t, err)

	for _, from := range []string{"/main.go", "/a/b/c/d.go", "/vendor/other/other.go", "/goroot/src/builtin/builtin.go"} {
		results := host.ResolveModuleNames([]string{"foo"}, from)
		require.NoError(t, results[0].Err, from)
		assert.Equal(t, "/vendor/foo/foo.go", results[0].ResolvedFileName, from)
	}
}

func TestContextBuilder_MissingRootIsNotAnError(t *testing.T) {
	builder := domain.NewContextBuilder(newLibCompiler(t), newLibrary(t))

	host, err := builder.Build(domain.BuildArgs{Root: m.File{Path: "/main.go"}})
	require.NoError(t, err)
	assert.True(t, host.FileExists("/main.go"))
}

func TestContextBuilder_MissingLibrary(t *testing.T) {
	builder := domain.NewContextBuilder(newLibCompiler(t), afero.NewMemMapFs())

	_, err := builder.Build(domain.BuildArgs{Root: m.File{Path: "/main.go"}})
	require.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestContextBuilder_SourceOverDirectory(t *testing.T) {
	compiler := adaptermocks.NewMockCompiler(t)
	builder := domain.NewContextBuilder(compiler, newLibrary(t))

	_, err := builder.Build(domain.BuildArgs{
		Root:    m.File{Path: "/main.go"},
		Sources: []m.File{{Path: "/pkg/a.go"}, {Path: "/pkg"}},
	})
	require.ErrorIs(t, err, adapter.ErrNotAFile)
}

func TestContextBuilder_RealLibrary(t *testing.T) {
	location := adapter.LocalLibraryLocation()
	if ok, _ := afero.Exists(adapter.NewLocalLibrarySource(), location); !ok {
		t.Skip("toolchain sources not available")
	}

	builder := domain.NewContextBuilder(adapter.NewLocalGoCompiler(), adapter.NewLocalLibrarySource())

	host, err := builder.Build(domain.BuildArgs{Root: m.File{Path: "/main.go"}})
	require.NoError(t, err)
	assert.True(t, host.FileExists(m.LibraryFile))
}

func TestContextBuilder_Build_Base(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/shared/num.go", []byte("package num"), 0o644))
	require.NoError(t, afero.WriteFile(base, "/main.go", []byte("package stale"), 0o644))

	builder := domain.NewContextBuilder(newLibCompiler(t), newLibrary(t))

	host, err := builder.Build(domain.BuildArgs{
		Root: m.File{Path: "/main.go", Contents: "package main"},
		Base: base,
	})
	require.NoError(t, err)

	data, err := host.ReadFile("/shared/num.go")
	require.NoError(t, err)
	assert.Equal(t, "package num", string(data))

	data, err = host.ReadFile("/main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main", string(data))

	ok, err := afero.Exists(base, m.LibraryDir)
	require.NoError(t, err)
	assert.False(t, ok)
}
