package model

import (
	"path"
	"strings"
)

// SourceExt returns the script extension of p. Test-flavored files report the
// compound "_test.go" extension so the flavor survives relocation.
func SourceExt(p string) string {
	base := path.Base(p)
	if strings.HasSuffix(base, GoTestExt) && base != GoTestExt {
		return GoTestExt
	}

	return path.Ext(base)
}

// ArtifactPath maps a source path to the path of its emitted counterpart under
// the configured output directory. The second result is false when the source
// has no usable basename.
func ArtifactPath(sourcePath string, options Options) (string, bool) {
	if sourcePath == "" {
		return "", false
	}

	ext := SourceExt(sourcePath)
	basename := strings.TrimSuffix(path.Base(sourcePath), ext)

	if basename == "" || basename == "." || basename == "/" {
		return "", false
	}

	artifactExt := GoExt
	if ext == GoTestExt && options.TestFiles() == TestFilesPreserve {
		artifactExt = GoTestExt
	}

	outDir := options.OutDir()
	if outDir == "" {
		outDir = "."
	}

	return path.Join(outDir, basename+artifactExt), true
}
