package adapter

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "goxform.dev/pkg/goxform/internal/model"
)

var errUnresolved = errors.New("unresolved")

// storeHost is a CompilerHost over a MemStore with a fixed import table.
type storeHost struct {
	store   *MemStore
	modules map[string]string
}

func newStoreHost(t *testing.T, files map[string]string) *storeHost {
	t.Helper()

	store := NewMemStore()
	require.NoError(t, store.WriteFile(m.LibraryFile, []byte("package builtin\n\nfunc println(args ...any)\n")))

	for p, contents := range files {
		require.NoError(t, store.WriteFile(p, []byte(contents)))
	}

	return &storeHost{store: store, modules: map[string]string{}}
}

func (h *storeHost) FileExists(p string) bool               { return h.store.IsFile(p) }
func (h *storeHost) ReadFile(p string) ([]byte, error)      { return h.store.ReadFile(p) }
func (h *storeHost) WriteFile(p string, data []byte) error  { return h.store.WriteFile(p, data) }
func (h *storeHost) DefaultLibLocation() string             { return m.LibraryDir }
func (h *storeHost) artifact(t *testing.T, p string) string { return string(mustRead(t, h.store, p)) }

func (h *storeHost) ResolveModuleNames(names []string, containingFile string) []ResolvedModule {
	results := make([]ResolvedModule, 0, len(names))

	for _, name := range names {
		if resolved, ok := h.modules[name]; ok {
			results = append(results, ResolvedModule{Name: name, ResolvedFileName: resolved})
			continue
		}

		results = append(results, ResolvedModule{
			Name: name,
			Err:  fmt.Errorf("%w: %s from %s", errUnresolved, name, containingFile),
		})
	}

	return results
}

func mustRead(t *testing.T, store *MemStore, p string) []byte {
	t.Helper()

	data, err := store.ReadFile(p)
	require.NoError(t, err)

	return data
}

const helloMain = "package main\n\nfunc main() { println(1+1) }\n"

func TestLocalGoCompiler_EmitsFormattedSource(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
	require.Empty(t, program.Diagnostics())

	result := program.Emit("/main.go", nil)
	require.False(t, result.Skipped)
	require.Empty(t, result.Diagnostics)
	assert.Equal(t, []string{"/dist/main.go"}, result.EmittedFiles)

	assert.Contains(t, host.artifact(t, "/dist/main.go"), "println(1 + 1)")
}

func TestLocalGoCompiler_SourceFiles(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	files := program.SourceFiles()
	require.Len(t, files, 2)
	assert.Equal(t, m.LibraryFile, files[0].Path)
	assert.True(t, files[0].IsLib)
	assert.Equal(t, "/main.go", files[1].Path)
	assert.NotNil(t, files[1].Info)
	assert.Equal(t, "main", files[1].Package.Name())
}

func TestLocalGoCompiler_MissingLibrary(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})
	options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptLib: []string{"/nowhere/builtin.go"}})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)

	result := program.Emit("/main.go", nil)
	require.True(t, result.Skipped)
	require.Len(t, result.Diagnostics, 1)
	assert.ErrorIs(t, result.Diagnostics[0].Err, ErrLibraryNotFound)
}

func TestLocalGoCompiler_RelativeLibraryUsesDefaultLocation(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})
	options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptLib: []string{"builtin.go"}})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)

	assert.Empty(t, program.Diagnostics())

	_, ok := program.SourceFile(m.LibraryFile)
	assert.True(t, ok)
}

func TestLocalGoCompiler_LibraryParseErrors(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})
	require.NoError(t, host.store.WriteFile(m.LibraryFile, []byte("package builtin\nfunc (")))

	skipping := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
	assert.Empty(t, skipping.Diagnostics())

	options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptSkipLibCheck: false})
	checking := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)

	require.NotEmpty(t, checking.Diagnostics())
	assert.Equal(t, CategorySyntactic, checking.Diagnostics()[0].Category)
	assert.Equal(t, m.LibraryFile, checking.Diagnostics()[0].File)
}

func TestLocalGoCompiler_ResolvesThroughHost(t *testing.T) {
	host := newStoreHost(t, map[string]string{
		"/main.go": "package main\n\nimport \"./a\"\n\nfunc main() { println(a.X) }\n",
		"/a.go":    "package a\n\nconst X = 1\n",
	})
	host.modules["./a"] = "/a.go"

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
	require.Empty(t, program.Diagnostics())

	sf, ok := program.SourceFile("/a.go")
	require.True(t, ok)
	assert.Equal(t, "a", sf.Package.Name())

	result := program.Emit("/main.go", nil)
	require.False(t, result.Skipped)
	assert.Contains(t, host.artifact(t, "/dist/main.go"), "println(a.X)")
}

func TestLocalGoCompiler_UnresolvedImport(t *testing.T) {
	host := newStoreHost(t, map[string]string{
		"/main.go": "package main\n\nimport \"example.com/missing\"\n\nfunc main() { missing.Do() }\n",
	})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	diags := program.Diagnostics()
	require.Len(t, diags, 1)
	assert.ErrorIs(t, diags[0].Err, errUnresolved)
	assert.Equal(t, CategorySemantic, diags[0].Category)
	assert.Equal(t, "/main.go", diags[0].File)
	assert.Equal(t, 3, diags[0].Line)

	result := program.Emit("/main.go", nil)
	assert.True(t, result.Skipped)
}

func TestLocalGoCompiler_StandardLibraryFallback(t *testing.T) {
	if testing.Short() {
		t.Skip("export data lookup invokes the go command")
	}

	host := newStoreHost(t, map[string]string{
		"/main.go": "package main\n\nimport \"strings\"\n\nfunc main() { println(strings.ToUpper(\"x\")) }\n",
	})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
	require.Empty(t, program.Diagnostics())
}

func TestLocalGoCompiler_ImportCycle(t *testing.T) {
	host := newStoreHost(t, map[string]string{
		"/main.go": "package main\n\nimport \"./a\"\n\nfunc main() { println(a.A) }\n",
		"/a.go":    "package a\n\nimport \"./b\"\n\nconst A = b.B\n",
		"/b.go":    "package b\n\nimport \"./a\"\n\nconst B = a.A\n",
	})
	host.modules["./a"] = "/a.go"
	host.modules["./b"] = "/b.go"

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	var messages []string
	for _, d := range program.Diagnostics() {
		messages = append(messages, d.Message)
	}

	assert.Contains(t, strings.Join(messages, "\n"), "import cycle")
}

func TestLocalGoCompiler_SoftErrors(t *testing.T) {
	src := "package main\n\nfunc main() {\n\tx := 1\n}\n"

	t.Run("suppressed by default", func(t *testing.T) {
		host := newStoreHost(t, map[string]string{"/main.go": src})
		program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
		assert.Empty(t, program.Diagnostics())
	})

	t.Run("unused import suppressed by default", func(t *testing.T) {
		host := newStoreHost(t, map[string]string{"/main.go": "package main\n\nimport \"unsafe\"\n\nfunc main() {}\n"})
		program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
		assert.Empty(t, program.Diagnostics())
	})

	t.Run("reported when strict", func(t *testing.T) {
		host := newStoreHost(t, map[string]string{"/main.go": src})
		options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptAllowSoftErrors: false})

		program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)

		diags := program.Diagnostics()
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "declared and not used")
		assert.Equal(t, 4, diags[0].Line)
	})
}

func TestLocalGoCompiler_EmitsDespiteErrorsWhenAllowed(t *testing.T) {
	host := newStoreHost(t, map[string]string{
		"/main.go": "package main\n\nfunc main() { println(undefined) }\n",
	})
	options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptNoEmitOnError: false})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)
	require.NotEmpty(t, program.Diagnostics())

	result := program.Emit("/main.go", nil)
	require.False(t, result.Skipped)
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, host.artifact(t, "/dist/main.go"), "println(undefined)")
}

func TestLocalGoCompiler_SyntaxErrors(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": "package main\n\nfunc main( {\n"})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	diags := program.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, CategorySyntactic, diags[0].Category)
	assert.True(t, program.Emit("/main.go", nil).Skipped)
}

func TestLocalGoCompiler_MissingRoot(t *testing.T) {
	host := newStoreHost(t, nil)

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	diags := program.Diagnostics()
	require.Len(t, diags, 1)
	assert.ErrorIs(t, diags[0].Err, ErrNotFound)

	_, ok := program.SourceFile("/main.go")
	assert.False(t, ok)
}

func TestLocalGoCompiler_InvalidOptions(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})
	options := m.MergeOptions(m.DefaultOptions(), m.Options{
		m.OptModule:           "commonjs",
		m.OptModuleResolution: "bundler",
		m.OptTestFiles:        "drop",
		m.OptGoVersion:        "banana",
	})

	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)

	diags := program.Diagnostics()
	require.Len(t, diags, 4)

	for _, d := range diags {
		assert.Equal(t, CategoryOptions, d.Category)
	}
}

func TestLocalGoCompiler_GoVersionGatesFeatures(t *testing.T) {
	host := newStoreHost(t, map[string]string{
		"/main.go": "package main\n\nfunc main() {\n\tfor i := range 3 {\n\t\tprintln(i)\n\t}\n}\n",
	})

	latest := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)
	assert.Empty(t, latest.Diagnostics())

	for _, allowSoft := range []bool{true, false} {
		options := m.MergeOptions(m.DefaultOptions(), m.Options{
			m.OptGoVersion:       "1.21",
			m.OptAllowSoftErrors: allowSoft,
		})
		old := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)

		diags := old.Diagnostics()
		require.NotEmpty(t, diags, "allow_soft_errors=%v", allowSoft)
		assert.Equal(t, CategorySemantic, diags[0].Category)
		assert.Contains(t, diags[0].Message, "requires go1.22")
		assert.Equal(t, 4, diags[0].Line)
	}
}

func TestIsUnusedError(t *testing.T) {
	assert.True(t, isUnusedError("declared and not used: x"))
	assert.True(t, isUnusedError(`"fmt" imported and not used`))
	assert.True(t, isUnusedError("label L declared and not used"))
	assert.False(t, isUnusedError("cannot range over 3 (untyped int constant): requires go1.22 or later"))
}

func TestLocalGoCompiler_AmbientTypes(t *testing.T) {
	host := newStoreHost(t, map[string]string{
		"/main.go":           helloMain,
		"/vendor/foo/foo.go": "package foo\n\nconst Name = \"foo\"\n",
	})
	host.modules["foo"] = "/vendor/foo/foo.go"

	options := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptTypes: []string{"foo"}})
	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, options, host)
	require.Empty(t, program.Diagnostics())

	sf, ok := program.SourceFile("/vendor/foo/foo.go")
	require.True(t, ok)
	assert.Equal(t, "foo", sf.Package.Name())

	missing := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptTypes: []string{"bar"}})
	program = NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, missing, host)
	require.Len(t, program.Diagnostics(), 1)
	assert.ErrorIs(t, program.Diagnostics()[0].Err, errUnresolved)
}

func TestLocalGoCompiler_TransformChain(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})
	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	var seenByFactory bool

	one2two := func(p Program) Rewriter {
		_, seenByFactory = p.SourceFile("/main.go")
		return rewriteLiterals("1", "2")
	}
	two2three := func(Program) Rewriter { return rewriteLiterals("2", "3") }

	result := program.Emit("/main.go", []TransformFactory{one2two, nil, two2three})
	require.False(t, result.Skipped)

	assert.True(t, seenByFactory)
	assert.Contains(t, host.artifact(t, "/dist/main.go"), "println(3 + 3)")
}

func TestLocalGoCompiler_TransformReturningNil(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/main.go": helloMain})
	program := NewLocalGoCompiler().CreateProgram([]string{"/main.go"}, m.DefaultOptions(), host)

	drop := func(Program) Rewriter { return func(*ast.File) *ast.File { return nil } }

	result := program.Emit("/main.go", []TransformFactory{drop})
	require.True(t, result.Skipped)
	assert.Equal(t, CategoryEmit, result.Diagnostics[0].Category)
	assert.False(t, host.store.Exists("/dist/main.go"))
}

func TestLocalGoCompiler_TestFileArtifact(t *testing.T) {
	host := newStoreHost(t, map[string]string{"/calc_test.go": "package calc\n\nfunc helper() int { return 1 }\n"})
	program := NewLocalGoCompiler().CreateProgram([]string{"/calc_test.go"}, m.DefaultOptions(), host)

	result := program.Emit("/calc_test.go", nil)
	require.False(t, result.Skipped)
	assert.Equal(t, []string{"/dist/calc_test.go"}, result.EmittedFiles)
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "/a.go:3:7: boom", Diagnostic{File: "/a.go", Line: 3, Column: 7, Message: "boom"}.String())
	assert.Equal(t, "/a.go: boom", Diagnostic{File: "/a.go", Message: "boom"}.String())
	assert.Equal(t, "boom", Diagnostic{Message: "boom"}.String())
}

func TestIsStdlibPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"fmt", true},
		{"net/http", true},
		{"missing", true},
		{"example.com/pkg", false},
		{"./a", false},
		{"../a", false},
		{"/abs", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isStdlibPath(tt.path))
		})
	}
}

func rewriteLiterals(from, to string) Rewriter {
	return func(file *ast.File) *ast.File {
		ast.Inspect(file, func(n ast.Node) bool {
			if lit, ok := n.(*ast.BasicLit); ok && lit.Kind == token.INT && lit.Value == from {
				lit.Value = to
			}

			return true
		})

		return file
	}
}
