// Package main is the entry point for the fixpass CLI.
package main

import "fixpass.dev/pkg/fixpass/cmd"

func main() {
	cmd.Execute()
}
