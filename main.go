// Package main is the entry point for the classidx CLI.
package main

import "classidx.dev/pkg/classidx/cmd"

func main() {
	cmd.Execute()
}
