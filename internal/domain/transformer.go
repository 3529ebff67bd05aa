package domain

import (
	"slices"

	"github.com/spf13/afero"

	"goxform.dev/pkg/goxform/internal/adapter"
	m "goxform.dev/pkg/goxform/internal/model"
)

// Transformer accumulates the inputs of one pipeline run. It is immutable:
// every method returns a new Transformer and leaves the receiver unchanged,
// so partially configured values can be shared and extended freely.
type Transformer struct {
	pipeline   Pipeline
	options    m.Options
	file       *m.File
	filePath   string
	mocks      []m.MockModule
	sources    []m.File
	transforms []adapter.TransformFactory
	base       afero.Fs
}

// NewTransformer returns an empty Transformer that runs through pipeline.
func NewTransformer(pipeline Pipeline) *Transformer {
	return &Transformer{pipeline: pipeline}
}

func (t *Transformer) clone() *Transformer {
	c := &Transformer{
		pipeline:   t.pipeline,
		options:    t.options.Clone(),
		filePath:   t.filePath,
		mocks:      slices.Clone(t.mocks),
		sources:    slices.Clone(t.sources),
		transforms: slices.Clone(t.transforms),
		base:       t.base,
	}

	if t.file != nil {
		file := *t.file
		c.file = &file
	}

	return c
}

// AddMock registers a mock module.
func (t *Transformer) AddMock(mock m.MockModule) *Transformer {
	c := t.clone()
	c.mocks = append(c.mocks, mock)

	return c
}

// AddSource registers an auxiliary source file.
func (t *Transformer) AddSource(source m.File) *Transformer {
	c := t.clone()
	c.sources = append(c.sources, source)

	return c
}

// AddTransformer appends one factory to the chain.
func (t *Transformer) AddTransformer(factory adapter.TransformFactory) *Transformer {
	return t.AddTransformers(factory)
}

// AddTransformers appends factories to the chain in order.
func (t *Transformer) AddTransformers(factories ...adapter.TransformFactory) *Transformer {
	c := t.clone()
	c.transforms = append(c.transforms, factories...)

	return c
}

// SetCompilerOptions replaces the option overrides.
func (t *Transformer) SetCompilerOptions(options m.Options) *Transformer {
	c := t.clone()
	c.options = options.Clone()

	return c
}

// SetFileSystem seeds every run with the files of fsys. fsys is only read.
func (t *Transformer) SetFileSystem(fsys afero.Fs) *Transformer {
	c := t.clone()
	c.base = fsys

	return c
}

// SetFile sets the root file.
func (t *Transformer) SetFile(file m.File) *Transformer {
	c := t.clone()
	c.file = &file

	return c
}

// SetFilePath sets the path inline sources are placed at.
func (t *Transformer) SetFilePath(p string) *Transformer {
	c := t.clone()
	c.filePath = p

	return c
}

// Transform runs the pipeline on the root set with SetFile.
func (t *Transformer) Transform() (string, error) {
	if t.file == nil {
		return "", ErrNoRootFile
	}

	return t.run(*t.file)
}

// TransformSource runs the pipeline with src as the root contents, placed at
// the SetFilePath path (or /main.go). Any root set with SetFile is ignored.
func (t *Transformer) TransformSource(src string) (string, error) {
	p := t.filePath
	if p == "" {
		p = m.DefaultFilePath
	}

	return t.run(m.File{Path: p, Contents: src})
}

func (t *Transformer) run(root m.File) (string, error) {
	return t.pipeline.Run(RunArgs{
		Root:       root,
		Sources:    slices.Clone(t.sources),
		Mocks:      slices.Clone(t.mocks),
		Options:    t.options.Clone(),
		Transforms: slices.Clone(t.transforms),
		Base:       t.base,
	})
}
