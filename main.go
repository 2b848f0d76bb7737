// Package main is the entry point for the scalefit CLI.
package main

import "github.com/mouse-blink/scalefit/cmd"

func main() {
	cmd.Execute()
}
