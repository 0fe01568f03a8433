package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ionut-t/govi/internal/config"
	"github.com/ionut-t/govi/internal/log"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "govi [file]",
		Short: "A modal text editor for the terminal",
		Long: heredoc.Doc(`
			govi edits one file with Vi style modal keys: counts, operators,
			text objects, visual selections, marks, macros, dot repeat and a
			small set of ex commands.

			Ctrl+S writes the file and Ctrl+Q quits. Settings come from
			~/.config/govi/config.yaml, GOVI_ environment variables and flags.
		`),
		Example: heredoc.Doc(`
			govi main.go
			govi --language markdown NOTES
			GOVI_UI_RELATIVE_NUMBERS=true govi todo.txt
		`),
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, v, opts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: ~/.config/govi/config.yaml)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false,
		"write debug logs to debug.log")
	cmd.Flags().StringP("language", "l", "",
		"syntax highlighting language (default: detected from the file name)")
	cmd.Flags().Bool("no-line-numbers", false,
		"hide line numbers")

	_ = v.BindPFlag("ui.language", cmd.Flags().Lookup("language"))

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

func runEditor(cmd *cobra.Command, v *viper.Viper, opts *rootOptions, args []string) error {
	if opts.debug {
		cleanup, err := log.InitWithTeaLog("debug.log", "govi")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	cfg, err := config.LoadWith(v, opts.configPath)
	if err != nil {
		return err
	}

	// Negated flag, so it only ever turns numbers off.
	if hide, _ := cmd.Flags().GetBool("no-line-numbers"); hide {
		cfg.UI.LineNumbers = false
	}

	if cfg.UI.Color == config.ColorNone {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	model, err := newApp(cfg, path)
	if err != nil {
		return err
	}

	log.Info(log.CatUI, "starting", "file", path)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the govi configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: heredoc.Doc(`
			Writes every setting with its default value. The path defaults to
			--config, then ~/.config/govi/config.yaml. An existing file is kept
			unless --force is given.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.DefaultPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}
			cmd.Printf("Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
