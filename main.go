// Package main is the entry point for the tokfuzz CLI.
package main

import "gooze.dev/pkg/tokfuzz/cmd"

func main() {
	cmd.Execute()
}
