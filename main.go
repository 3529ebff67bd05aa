// main package for goxform command-line tool
// Package main is the entry point for the goxform CLI.
package main

import "goxform.dev/pkg/goxform/cmd"

func main() {
	cmd.Execute()
}
