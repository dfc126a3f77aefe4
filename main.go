// Package main is the entry point for the testscaffold CLI, a batch tool that
// parses C# source files with tree-sitter and generates skeleton xUnit test
// files with Moq-backed constructor dependencies.
package main

import "testscaffold/cmd"

func main() {
	cmd.Execute()
}
