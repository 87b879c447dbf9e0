package cmd

import (
	"github.com/spf13/cobra"
)

// detectCmd is an explicit alias for the root scan flow
var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Detect the framework and bundler of a project",
	Long: Logo + `
Framescout reads the project's package.json and decides which frontend
framework and bundler it was built with, based on declared dependencies and
their version ranges.

Template frameworks (Create React App, Vue CLI, Next.js, Nuxt, Angular) are
checked before plain libraries (React, Vue, Svelte), and the bundler is only
reported for libraries since templates ship their own toolchain.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	// Just call the root command function
	runRootCommand(cmd, args)
}

func init() {
	// detectCmd is added to rootCmd in root.go
}
