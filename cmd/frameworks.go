package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"framescout/pkg/detector"

	"github.com/spf13/cobra"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List detectable frameworks and bundlers",
	Long:  "Show the ordered framework catalog and the bundlers framescout recognizes, with the dependency rules behind each one",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFrameworksList(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runFrameworksList() error {
	if jsonOutput {
		catalog := struct {
			Frameworks []detector.Framework `json:"frameworks"`
			Bundlers   []detector.Bundler   `json:"bundlers"`
		}{detector.Frameworks, detector.Bundlers}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	fmt.Printf("%s\n", logoStyle.Render("Detectable Frameworks"))
	fmt.Println()

	fmt.Println("Templates (checked first, the toolchain brings its own bundler):")
	for _, framework := range detector.Frameworks {
		if framework.Family != detector.FamilyTemplate {
			continue
		}
		fmt.Printf("  🧩 %s (%s)\n", framework.Name, framework.Type)
		fmt.Printf("     Requires: %s\n", formatRules(framework.Detectors))
	}
	fmt.Println()

	fmt.Println("Libraries (paired with whichever supported bundler is declared):")
	for _, framework := range detector.Frameworks {
		if framework.Family != detector.FamilyLibrary {
			continue
		}
		fmt.Printf("  📦 %s (%s)\n", framework.Name, framework.Type)
		fmt.Printf("     Requires: %s\n", formatRules(framework.Detectors))
		fmt.Printf("     Bundlers: %s\n", formatBundlerTypes(framework.Bundlers))
	}
	fmt.Println()

	fmt.Println("Bundlers:")
	for _, bundler := range detector.Bundlers {
		fmt.Printf("  ⚡ %s (%s), requires %s\n", bundler.Name, bundler.Type, formatRules(bundler.Detectors))
	}

	return nil
}

func formatRules(rules []detector.Rule) string {
	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		parts = append(parts, fmt.Sprintf("%s %s", rule.Package, rule.Requires))
	}
	return strings.Join(parts, ", ")
}

func formatBundlerTypes(bundlers []detector.BundlerType) string {
	parts := make([]string, 0, len(bundlers))
	for _, b := range bundlers {
		parts = append(parts, string(b))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}
