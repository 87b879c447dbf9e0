package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"framescout/cmd/flags"
	"framescout/cmd/ui/multiInput"
	"framescout/pkg/config"
	"framescout/pkg/detector"
	"framescout/pkg/util"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

var (
	rememberFramework flags.Framework
	rememberBundler   flags.Bundler
	rememberName      string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage remembered projects",
	Long:  "List, remember, or forget projects whose framework and bundler were resolved once and saved for later runs",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered projects",
	Long:  "Display all remembered projects and the framework each one resolves to",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runProjectsList(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var projectsRememberCmd = &cobra.Command{
	Use:   "remember [PROJECT_PATH]",
	Short: "Remember a project's framework and bundler",
	Long:  "Save the framework (and bundler) for a project so future scans resolve instantly without matching dependencies",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectPath := "."
		if len(args) > 0 {
			projectPath = args[0]
		}

		if err := runProjectsRemember(projectPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var projectsForgetCmd = &cobra.Command{
	Use:   "forget NAME",
	Short: "Forget a remembered project",
	Long:  "Remove a remembered project by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runProjectsForget(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runProjectsList() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.Projects) == 0 {
		fmt.Println("No projects remembered yet.")
		fmt.Println("Run 'framescout projects remember' to add one.")
		return nil
	}

	fmt.Printf("%s\n", logoStyle.Render("Remembered Projects"))
	fmt.Println()

	for name, project := range cfg.Projects {
		fmt.Printf("📁 %s\n", name)
		fmt.Printf("  Path: %s\n", project.ProjectPath)

		if framework, ok := detector.FrameworkByType(detector.FrameworkType(project.Framework)); ok {
			fmt.Printf("  Framework: %s (%s)\n", framework.Name, framework.Family)
		} else {
			fmt.Printf("  Framework: %s %s\n", project.Framework, warningStyle.Render("(no longer in catalog)"))
		}

		if project.Bundler != "" {
			if bundler, ok := detector.BundlerByType(detector.BundlerType(project.Bundler)); ok {
				fmt.Printf("  Bundler: %s\n", bundler.Name)
			} else {
				fmt.Printf("  Bundler: %s %s\n", project.Bundler, warningStyle.Render("(no longer in catalog)"))
			}
		}

		fmt.Println()
	}

	return nil
}

func runProjectsRemember(projectPath string) error {
	absPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		return err
	}

	pin := &detector.Pin{Framework: string(rememberFramework), Bundler: string(rememberBundler)}

	if pin.Framework == "" {
		if skipInteractive || !isTerminal() {
			return fmt.Errorf("--framework is required in non-interactive mode (one of: %s)",
				strings.Join(flags.AllowedFrameworks(), ", "))
		}

		pin, err = promptForPin()
		if err != nil {
			if errors.Is(err, multiInput.ErrCancelled) {
				fmt.Println("Remember cancelled.")
				return nil
			}
			return err
		}
	} else if err := pin.Validate(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	name := rememberName
	if name == "" {
		name = util.ProjectNameFromPath(absPath)
	}

	cfg.SetProject(name, config.ProjectConfig{
		ProjectPath: absPath,
		Framework:   pin.Framework,
		Bundler:     pin.Bundler,
	})

	if err := cfg.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	result := pin.Resolve()
	label := result.Framework.Name
	if bundler, ok := detector.BundlerByType(result.Bundler); ok {
		label += " + " + bundler.Name
	}

	fmt.Printf("%s\n", successStyle.Render(fmt.Sprintf("✅ Remembered '%s' as %s", name, label)))
	fmt.Printf("%s\n", endingMsgStyle.Render("Saved to "+config.GetConfigPath()))
	return nil
}

func runProjectsForget(name string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	project, exists := cfg.GetProject(name)
	if !exists {
		fmt.Printf("No remembered project named: %s\n", name)
		return nil
	}

	fmt.Printf("Are you sure you want to forget '%s' (%s)? (y/N): ", name, project.ProjectPath)
	var response string
	fmt.Scanln(&response)

	if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
		fmt.Println("Forget cancelled.")
		return nil
	}

	if err := cfg.DeleteProject(name); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Printf("%s\n", successStyle.Render("✅ Project forgotten"))
	return nil
}

func init() {
	projectsRememberCmd.Flags().Var(&rememberFramework, "framework", fmt.Sprintf("Framework to remember (one of: %s)", strings.Join(flags.AllowedFrameworks(), ", ")))
	projectsRememberCmd.Flags().Var(&rememberBundler, "bundler", fmt.Sprintf("Bundler to remember (one of: %s)", strings.Join(flags.AllowedBundlers(), ", ")))
	projectsRememberCmd.Flags().StringVar(&rememberName, "name", "", "Name to remember the project under (defaults to the directory name)")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsRememberCmd)
	projectsCmd.AddCommand(projectsForgetCmd)

	rootCmd.AddCommand(projectsCmd)
}
