package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	adapter "github.com/ionut-t/richedit/adapter-bubbletea"
	"github.com/ionut-t/richedit/config"
	editor "github.com/ionut-t/richedit/core"
	"github.com/ionut-t/richedit/internal/logger"
)

type rootOptions struct {
	configPath   string
	maxHistory   int
	placeholder  string
	sourceTheme  string
	wrapWidth    int
	logLevel     string
	logFile      string
	noStatusLine bool
	noToolbar    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "richedit [file]",
		Short: "Terminal rich-text editor",
		Long: `richedit edits a small HTML subset (paragraphs, h1-h3 headings, bold,
italic, underline, links and block alignment) in the terminal.

The file is loaded on start and written back with ctrl+s.

Examples:
  # Edit a document
  richedit notes.html

  # Start with an empty document and no toolbar
  richedit --no-toolbar`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			if err := initLogging(cfg); err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, logger.Close())
			}()

			file := ""
			if len(args) == 1 {
				file = args[0]
			}

			m, err := newApp(cfg, file)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to start the terminal user interface: %w", err)
			}
			return nil
		},
	}

	bindRootFlags(cmd.Flags(), opts)

	cmd.AddCommand(newStatsCommand(), newStripCommand(), newVersionCommand())

	return cmd
}

func bindRootFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	flags.IntVar(&opts.maxHistory, "max-history", config.DefaultMaxHistory, "maximum undo snapshots, 0 for unbounded")
	flags.StringVar(&opts.placeholder, "placeholder", config.DefaultPlaceholder, "text shown while the document is empty")
	flags.StringVar(&opts.sourceTheme, "source-theme", config.DefaultSourceTheme, "chroma style for the source view, empty disables highlighting")
	flags.IntVar(&opts.wrapWidth, "wrap-width", 0, "wrap column, 0 wraps at the window width")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", `log file, "-" for stderr`)
	flags.BoolVar(&opts.noStatusLine, "no-status-line", false, "hide the status line")
	flags.BoolVar(&opts.noToolbar, "no-toolbar", false, "hide the toolbar")
}

// loadConfig reads the config file and applies the flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-history") {
		if opts.maxHistory < 0 {
			return nil, fmt.Errorf("--max-history must not be negative, got %d", opts.maxHistory)
		}
		cfg.Editor.MaxHistory = opts.maxHistory
	}
	if flags.Changed("placeholder") {
		cfg.Editor.Placeholder = opts.placeholder
	}
	if flags.Changed("source-theme") {
		cfg.Editor.SourceTheme = opts.sourceTheme
	}
	if flags.Changed("wrap-width") {
		cfg.Editor.WrapWidth = max(0, opts.wrapWidth)
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logger.File = opts.logFile
	}
	if opts.noStatusLine {
		cfg.Editor.ShowStatusLine = false
	}
	if opts.noToolbar {
		cfg.Editor.ShowToolbar = false
	}

	return cfg, nil
}

// initLogging configures the logger from cfg and reports what config.Load
// found wrong before logging was available.
func initLogging(cfg *config.Config) error {
	if err := logger.InitFile(cfg.Logger.Level, cfg.Logger.File); err != nil {
		return err
	}
	for _, warning := range cfg.Warnings() {
		logger.Warnf("%s", warning)
	}
	return nil
}

func readDocument(file string) (string, error) {
	if file == "" {
		return "", nil
	}
	content, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("Starting new document: %s", file)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(content), nil
}

func newApp(cfg *config.Config, file string) (app, error) {
	// Load and save must agree on the path.
	file = expandHome(file)
	content, err := readDocument(file)
	if err != nil {
		return app{}, err
	}

	textEditor := adapter.New(80, 20,
		editor.WithMaxHistory(cfg.Editor.MaxHistory),
		editor.WithInitialContent(content),
	)
	textEditor.WithTheme(themeFromConfig(cfg.Theme))
	textEditor.SetSourceTheme(cfg.Editor.SourceTheme)
	textEditor.SetPlaceholder(cfg.Editor.Placeholder)
	textEditor.SetWrapWidth(cfg.Editor.WrapWidth)
	textEditor.SetMessageDuration(cfg.MessageDuration())
	textEditor.HideStatusLine(!cfg.Editor.ShowStatusLine)
	textEditor.HideToolbar(!cfg.Editor.ShowToolbar)
	textEditor.Focus()
	if cfg.Editor.CursorBlink {
		textEditor.SetCursorMode(adapter.CursorBlink)
	}

	return app{
		editor:          textEditor,
		file:            file,
		saved:           textEditor.GetContent(),
		messageDuration: cfg.MessageDuration(),
	}, nil
}
