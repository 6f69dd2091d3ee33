// Command qrestore restores color images with missing pixels using
// low-rank quaternion matrix completion (package lrqmc).
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "qrestore: %v\n", err)
		os.Exit(1)
	}
}
