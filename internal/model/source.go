// Package model defines the data structures shared by the transform harness.
package model

// File describes one compilation unit seeded into the virtual store.
type File struct {
	// Path is the absolute, slash-delimited location inside the store.
	Path string
	// Contents is the source text written at Path.
	Contents string
}

// MockModule is a synthetic dependency materialized under the mock root so
// that bare imports of Name resolve to Content.
type MockModule struct {
	Name    string
	Content string
}

// ModuleDescriptor is the minimal package descriptor written next to a mock
// module's entry file.
type ModuleDescriptor struct {
	Name string `yaml:"name"`
	Main string `yaml:"main"`
}
