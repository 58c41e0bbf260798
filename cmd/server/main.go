// Package main is the entry point for the content-api server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content-api",
	Short: "Homebrew content pack server",
	Long:  `content-api serializes homebrew D&D 5e content into canonical documents and serves uploaded content packs over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
