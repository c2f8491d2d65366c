package main

import (
	"fmt"
	"os"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "treedit: %v\n", err)
		os.Exit(1)
	}
}
