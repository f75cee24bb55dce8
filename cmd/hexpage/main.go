package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/hexpage"
	"github.com/iw2rmb/hexpage/internal/config"
	"github.com/iw2rmb/hexpage/internal/logging"
	"github.com/iw2rmb/hexpage/viewer"
)

type options struct {
	configPath string
	width      int
	logFile    string
	logLevel   string
	base64     bool
}

func main() {
	var opts options
	if err := newRootCommand(&opts).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hexpage [file]",
		Short:   "Paginated terminal hex viewer",
		Long:    "hexpage shows a file as a paginated hex grid with an ASCII preview.\nWith no file argument it reads standard input when that is not a terminal.",
		Args:    cobra.MaximumNArgs(1),
		Version: hexpage.Version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, *opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hexpage/config.toml)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "bytes per row (0 = fit to terminal width)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error, none")
	cmd.Flags().BoolVar(&opts.base64, "base64", false, "treat the input as base64 text and show the decoded bytes")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a TTY (refusing to start the viewer)")
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := logging.Nop()
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "hexpage ")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = logging.New(f, cfg.Level())
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}

	var load tea.Cmd
	switch {
	case len(args) == 1 && opts.base64:
		load = viewer.LoadBase64File(args[0])
	case len(args) == 1:
		load = viewer.LoadFile(args[0])
	case !isatty.IsTerminal(os.Stdin.Fd()):
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if opts.base64 {
			load = viewer.LoadBase64("stdin", string(data))
		} else {
			load = viewer.LoadBytes("stdin", data)
		}
		// Keys and mouse come from the terminal, not the drained pipe.
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	a := newApp(cfg, logger, load)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		a = a.setSize(w, h)
	} else {
		a = a.setSize(80, 24)
	}

	logger.Info("%s starting", hexpage.BuildString())
	_, err = tea.NewProgram(a, progOpts...).Run()
	return err
}

// resolveConfig loads the config file and applies explicitly set flags over it.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.BytesPerRow = opts.width
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
