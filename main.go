// Package main is the entry point for the subsume CLI.
package main

import "gooze.dev/pkg/subsume/cmd"

func main() {
	cmd.Execute()
}
