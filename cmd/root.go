package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"framescout/cmd/ui/detection"
	"framescout/cmd/ui/multiInput"
	"framescout/cmd/ui/spinner"
	"framescout/pkg/config"
	"framescout/pkg/detector"
	"framescout/pkg/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const Version = "0.1.0"

var (
	jsonOutput      bool
	skipInteractive bool
	verbose         bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

const Logo = `
███████╗██████╗  █████╗ ███╗   ███╗███████╗
██╔════╝██╔══██╗██╔══██╗████╗ ████║██╔════╝
█████╗  ██████╔╝███████║██╔████╔██║█████╗
██╔══╝  ██╔══██╗██╔══██║██║╚██╔╝██║██╔══╝
██║     ██║  ██║██║  ██║██║ ╚═╝ ██║███████╗
╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝
███████╗ ██████╗ ██████╗ ██╗   ██╗████████╗
██╔════╝██╔════╝██╔═══██╗██║   ██║╚══██╔══╝
███████╗██║     ██║   ██║██║   ██║   ██║
╚════██║██║     ██║   ██║██║   ██║   ██║
███████║╚██████╗╚██████╔╝╚██████╔╝   ██║
╚══════╝ ╚═════╝ ╚═════╝  ╚═════╝    ╚═╝
`

var rootCmd = &cobra.Command{
	Use:   "framescout [PROJECT_PATH]",
	Short: "Detect which frontend framework and bundler a project uses",
	Long: Logo + `
Framescout inspects a project's package.json and surrounding files to work
out its frontend framework (Create React App, Vue CLI, Next.js, Nuxt,
Angular, React, Vue, Svelte) and bundler (webpack or vite), along with the
language, package manager and npm registry in use.

Detection is driven purely by declared dependencies and their version
ranges. Project-level choices can be pinned in framescout.toml or remembered
across runs.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	absPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput || skipInteractive || !isTerminal() {
		report := scanOrExit(absPath)
		applyRemembered(&report, absPath)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(report)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Scanning project..."))

	// Start spinner in background
	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			// Suppress the "program was killed" error message since it's expected
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	report := scanOrExit(absPath)

	spinnerProgram.Quit()

	remembered := applyRemembered(&report, absPath)

	if report.Framework == nil {
		picked, err := pickFrameworkManually(&report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !picked {
			fmt.Println("No framework selected.")
			return
		}
	}

	offerRemember := report.Framework != nil && !report.Pinned && !remembered

	wantsRemember, err := detection.ShowScanResults(report, offerRemember)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scan results: %v\n", err)
		os.Exit(1)
	}

	if !wantsRemember {
		return
	}

	if err := rememberProject(absPath, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error remembering project: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", endingMsgStyle.Render("Saved to "+config.GetConfigPath()))
	fmt.Printf("%s\n", tipMsgStyle.Render("Tip: use --json for CI/automation mode"))
}

func scanOrExit(absPath string) detector.Report {
	report, err := detector.Scan(absPath, detector.Options{Logger: logger.Debugf})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return report
}

// applyRemembered fills an empty detection result from the remembered
// project registry. Pins and live detections always win over memory.
func applyRemembered(report *detector.Report, absPath string) bool {
	if report.Framework != nil || report.Pinned {
		return false
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Debug("could not load config for remembered projects", "err", err)
		return false
	}

	name, project, found := cfg.FindProjectByPath(absPath)
	if !found {
		return false
	}

	pin := &detector.Pin{Framework: project.Framework, Bundler: project.Bundler}
	if err := pin.Validate(); err != nil {
		logger.Debug("ignoring stale remembered project", "name", name, "err", err)
		return false
	}

	result := pin.Resolve()
	report.Framework = result.Framework
	report.Bundler = result.Bundler
	report.Signals = append(report.Signals, fmt.Sprintf("remembered project %q", name))
	report.Meta["remembered"] = "true"
	return true
}

// pickFrameworkManually walks the user through choosing a framework, and a
// bundler when the framework is a library. Returns false if the user backed
// out.
func pickFrameworkManually(report *detector.Report) (bool, error) {
	pin, err := promptForPin()
	if err != nil {
		if errors.Is(err, multiInput.ErrCancelled) {
			return false, nil
		}
		return false, err
	}

	result := pin.Resolve()
	report.Framework = result.Framework
	report.Bundler = result.Bundler
	report.Signals = append(report.Signals, "framework chosen manually")
	return true, nil
}

func rememberProject(absPath string, report detector.Report) error {
	if report.Framework == nil {
		return fmt.Errorf("nothing to remember")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	name := util.ProjectNameFromPath(absPath)
	cfg.SetProject(name, config.ProjectConfig{
		ProjectPath: absPath,
		Framework:   string(report.Framework.Type),
		Bundler:     string(report.Bundler),
	})

	if err := cfg.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("framescout version {{.Version}}\n")

	rootCmd.AddCommand(detectCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each detection step to stderr")
}
