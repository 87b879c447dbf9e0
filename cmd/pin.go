package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"framescout/cmd/flags"
	"framescout/cmd/ui/multiInput"
	"framescout/pkg/detector"
	"framescout/pkg/util"

	"github.com/spf13/cobra"
)

var (
	pinFramework flags.Framework
	pinBundler   flags.Bundler
	pinClear     bool
)

var pinCmd = &cobra.Command{
	Use:   "pin [PROJECT_PATH]",
	Short: "Pin a project's framework in framescout.toml",
	Long: `Write a framescout.toml into the project so scans skip dependency matching
and report the pinned framework instead. Use --clear to remove an existing pin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectPath := "."
		if len(args) > 0 {
			projectPath = args[0]
		}

		if err := runPin(projectPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runPin(projectPath string) error {
	absPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		return err
	}

	if pinClear {
		pinPath := filepath.Join(absPath, detector.PinFileName)
		if err := os.Remove(pinPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Printf("No %s found in %s\n", detector.PinFileName, absPath)
				return nil
			}
			return fmt.Errorf("failed to remove %s: %w", detector.PinFileName, err)
		}
		fmt.Printf("%s\n", successStyle.Render("✅ Removed "+detector.PinFileName))
		return nil
	}

	pin := &detector.Pin{Framework: string(pinFramework), Bundler: string(pinBundler)}

	if pin.Framework == "" {
		if skipInteractive || !isTerminal() {
			return fmt.Errorf("--framework is required in non-interactive mode (one of: %s)",
				strings.Join(flags.AllowedFrameworks(), ", "))
		}

		pin, err = promptForPin()
		if err != nil {
			if errors.Is(err, multiInput.ErrCancelled) {
				fmt.Println("Pin cancelled.")
				return nil
			}
			return err
		}
	}

	if err := detector.SavePin(absPath, pin); err != nil {
		return err
	}

	result := pin.Resolve()
	label := result.Framework.Name
	if bundler, ok := detector.BundlerByType(result.Bundler); ok {
		label += " + " + bundler.Name
	}

	fmt.Printf("%s\n", successStyle.Render(fmt.Sprintf("✅ Pinned %s in %s", label, filepath.Join(absPath, detector.PinFileName))))
	return nil
}

func init() {
	pinCmd.Flags().Var(&pinFramework, "framework", fmt.Sprintf("Framework to pin (one of: %s)", strings.Join(flags.AllowedFrameworks(), ", ")))
	pinCmd.Flags().Var(&pinBundler, "bundler", fmt.Sprintf("Bundler to pin (one of: %s)", strings.Join(flags.AllowedBundlers(), ", ")))
	pinCmd.Flags().BoolVar(&pinClear, "clear", false, "Remove an existing framescout.toml instead of writing one")

	rootCmd.AddCommand(pinCmd)
}
