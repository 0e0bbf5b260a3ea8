// Package main provides the CLI entrypoint for numeracal.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/numeracal/internal/config"
	"github.com/verte-zerg/numeracal/internal/fullscreen"
	"github.com/verte-zerg/numeracal/internal/interrupt"
	"github.com/verte-zerg/numeracal/internal/logging"
	"github.com/verte-zerg/numeracal/internal/model"
	"github.com/verte-zerg/numeracal/internal/render"
	"github.com/verte-zerg/numeracal/internal/session"
	"github.com/verte-zerg/numeracal/internal/weights"
)

var version = "dev"

const defaultLogLevel = "warn"

var (
	flagFast        bool
	flagRecursive   bool
	flagLess        bool
	flagRaw         bool
	flagNoTotal     bool
	flagJSON        bool
	flagTable       bool
	flagQuiet       bool
	flagColor       string
	flagDecorations string
	flagLogLevel    string
	flagConfigPath  string
	flagEditConfig  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logErrf("error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "numeracal [words...]",
		Short:         "Calculate the numeric value of words",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&flagFast, "fast", "f", false, "score once and exit instead of opening the interactive screen")
	flags.BoolVarP(&flagRecursive, "recursive", "r", false, "keep prompting for new words until interrupted")
	flags.BoolVarP(&flagLess, "less", "l", false, "omit individual letter values")
	flags.BoolVarP(&flagRaw, "raw", "R", false, "eliminate formatting and extra text")
	flags.BoolVar(&flagNoTotal, "no-total", false, "exclude the total value from the output")
	flags.BoolVar(&flagJSON, "json", false, "format the output as json")
	flags.BoolVar(&flagTable, "table", false, "print the table used to determine the values")
	flags.StringVar(&flagColor, "color", string(model.ToggleAuto), "color output: auto, always or never")
	flags.StringVar(&flagDecorations, "decorations", string(model.ToggleAuto), "bold/italic decorations: auto, always or never")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "silence extra output such as notes")
	flags.StringVar(&flagLogLevel, "log-level", defaultLogLevel, "diagnostic log level: debug, info, warn or error")
	flags.StringVar(&flagConfigPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/numeracal/config.toml)")
	flags.BoolVar(&flagEditConfig, "edit-config", false, "create/open the config file in $EDITOR")

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	cfgPath := flagConfigPath
	if cfgPath == "" {
		cfgPath = config.ResolveConfigPath()
	}
	if flagEditConfig {
		return editConfig(cfgPath)
	}

	fileCfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "less", &flagLess, fileCfg.Output.Less)
	applyBoolConfig(cmd, "raw", &flagRaw, fileCfg.Output.Raw)
	applyBoolConfig(cmd, "no-total", &flagNoTotal, fileCfg.Output.NoTotal)
	applyBoolConfig(cmd, "json", &flagJSON, fileCfg.Output.JSON)
	applyBoolConfig(cmd, "quiet", &flagQuiet, fileCfg.Output.Quiet)
	applyStringConfig(cmd, "color", &flagColor, fileCfg.Output.Color)
	applyStringConfig(cmd, "decorations", &flagDecorations, fileCfg.Output.Decorations)
	applyBoolConfig(cmd, "fast", &flagFast, fileCfg.Session.Fast)
	applyBoolConfig(cmd, "recursive", &flagRecursive, fileCfg.Session.Recursive)

	opts, err := outputOptions()
	if err != nil {
		return err
	}

	logger := logging.NewCLILogger(os.Stderr, flagLogLevel, opts.Color != model.ToggleNever && isTerminal(os.Stderr))
	logger.Debug("config resolved", "path", cfgPath)

	stdout := os.Stdout
	formatter := render.New(stdout, opts)
	ctrl := session.NewController(weights.Default(), formatter, os.Stdin, stdout, logger)

	if flagTable {
		return ctrl.RunTable()
	}

	flags := model.Flags{
		Table:     flagTable,
		Fast:      flagFast,
		Recursive: flagRecursive,
		JSON:      flagJSON,
	}
	mode := session.SelectMode(isTerminal(os.Stdin), fullScreenSupported(), flags)
	if mode == model.ModeInteractiveFullScreen {
		ctrl.SetScreen(fullscreen.NewRunner(ctrl, formatter, interrupt.NewListener(), os.Stdin, stdout))
	}
	return ctrl.Run(cmd.Context(), mode, args)
}

func outputOptions() (model.OutputOptions, error) {
	color, err := model.ParseToggle(flagColor)
	if err != nil {
		return model.OutputOptions{}, fmt.Errorf("invalid --color value: %w", err)
	}
	decorations, err := model.ParseToggle(flagDecorations)
	if err != nil {
		return model.OutputOptions{}, fmt.Errorf("invalid --decorations value: %w", err)
	}
	return model.OutputOptions{
		Less:        flagLess,
		Raw:         flagRaw,
		NoTotal:     flagNoTotal,
		JSON:        flagJSON,
		Quiet:       flagQuiet,
		Color:       color,
		Decorations: decorations,
	}, nil
}

// fullScreenSupported reports whether the alternate-screen mode can run here.
func fullScreenSupported() bool {
	return runtime.GOOS != "windows" && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func editConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate(path)), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate(path string) string {
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		return `# numeracal configuration
# Uncomment a value to enable it. CLI flags override config values.

output:
#  less: false          # Omit individual letter values
#  raw: false           # Eliminate formatting and extra text
#  no-total: false      # Exclude the total value
#  json: false          # Format the output as json
#  quiet: false         # Silence notes
#  color: auto          # auto, always or never
#  decorations: auto    # auto, always or never

session:
#  fast: false          # Score once instead of opening the interactive screen
#  recursive: false     # Keep prompting for new words
`
	}
	return `# numeracal configuration
# Uncomment a value to enable it. CLI flags override config values.

[output]
# less = false          # Omit individual letter values
# raw = false           # Eliminate formatting and extra text
# no-total = false      # Exclude the total value
# json = false          # Format the output as json
# quiet = false         # Silence notes
# color = "auto"        # auto, always or never
# decorations = "auto"  # auto, always or never

[session]
# fast = false          # Score once instead of opening the interactive screen
# recursive = false     # Keep prompting for new words
`
}

func logErrf(format string, args ...any) {
	// stderr may already be closed; nothing left to report to.
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
