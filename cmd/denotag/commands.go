package denotag

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/denotag/internal/version"
	"github.com/arthur-debert/denotag/pkg/bundler"
	"github.com/arthur-debert/denotag/pkg/cobrax/topics"
	"github.com/arthur-debert/denotag/pkg/config"
	"github.com/arthur-debert/denotag/pkg/core"
	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/executor"
	"github.com/arthur-debert/denotag/pkg/filesystem"
	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/paths"
	"github.com/arthur-debert/denotag/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// rootFlags holds the flags shared by the commands that load configuration
type rootFlags struct {
	verbosity  int
	configFile string
	output     string
	runCommand string
	capture    string
	trim       bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "denotag <file>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, flags, args[0])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)

	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	addRunFlags(rootCmd, flags)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm, err := initTopics(rootCmd)
	if err != nil {
		log.Warn().Err(err).Msg(MsgErrLoadTopics)
	}
	rootCmd.AddCommand(newSyntaxCmd(tm))

	return rootCmd
}

func initTopics(rootCmd *cobra.Command) (*topics.TopicManager, error) {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}

	tm, err := topics.Initialize(rootCmd, fsys, topics.Options{
		Renderer: topics.RendererFor(ui.IsTerminal(os.Stdout), 0),
	})
	if err != nil {
		return nil, err
	}
	rootCmd.SetHelpCommandGroupID("misc")
	return tm, nil
}

// addRunFlags registers the flags that override run and output settings
func addRunFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVar(&flags.runCommand, "run-command", "", MsgFlagRunCommand)
	cmd.Flags().StringVar(&flags.capture, "capture", "", MsgFlagCapture)
	cmd.Flags().BoolVar(&flags.trim, "trim", false, MsgFlagTrim)
}

// overrides turns the run flags the user set into configuration keys
func (f *rootFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	if cmd.Flags().Changed("run-command") {
		out["run.command"] = strings.Fields(f.runCommand)
	}
	if cmd.Flags().Changed("capture") {
		out["run.capture"] = f.capture
	}
	if cmd.Flags().Changed("trim") {
		out["output.trim_trailing_newline"] = f.trim
	}
	return out
}

func (f *rootFlags) loadConfig(cmd *cobra.Command, fsys filesystem.FS, documentDir string) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		FS:          fsys,
		DocumentDir: documentDir,
		ConfigFile:  f.configFile,
		Overrides:   f.overrides(cmd),
	})
}

// transformOptions builds the pipeline options from cfg with the real
// process and esbuild backends.
func transformOptions(cmd *cobra.Command, cfg *config.Config, fsys filesystem.FS, documentDir string) (core.Options, error) {
	var env []string
	if cfg.Run.EnvFile != "" {
		var err error
		env, err = executor.ReadEnvFile(fsys, documentDir, cfg.Run.EnvFile)
		if err != nil {
			return core.Options{}, err
		}
	}

	return core.Options{
		Runner: executor.New(executor.Options{
			Timeout: cfg.Run.Timeout,
			Stderr:  cmd.ErrOrStderr(),
			Env:     env,
		}),
		Bundler:             bundler.New(),
		RunCommand:          cfg.Run.Command,
		Capture:             cfg.Run.Capture,
		BundleOptions:       cfg.Bundle,
		TrimTrailingNewline: cfg.Output.TrimTrailingNewline,
	}, nil
}

func runTransform(cmd *cobra.Command, flags *rootFlags, path string) error {
	logging.LogCommand("transform", []string{path})
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "transform")
	defer done()

	fsys := filesystem.NewOS()

	doc, err := paths.ResolveDocument(fsys, path)
	if err != nil {
		return err
	}

	cfg, err := flags.loadConfig(cmd, fsys, doc.Dir)
	if err != nil {
		return err
	}

	opts, err := transformOptions(cmd, cfg, fsys, doc.Dir)
	if err != nil {
		return err
	}

	out, err := core.TransformFile(cmd.Context(), doc.Path, opts, fsys)
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if err := fsys.WriteFile(flags.output, []byte(out), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteOutput, flags.output).
			WithDetail("path", flags.output)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), MsgWroteOutput, flags.output)
	return nil
}

func newScanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "scan <file>",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}

			fsys := filesystem.NewOS()
			doc, err := paths.ResolveDocument(fsys, args[0])
			if err != nil {
				return err
			}
			data, err := fsys.ReadFile(doc.Path)
			if err != nil {
				return fmt.Errorf(MsgErrReadDocument, args[0], err)
			}

			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderReport(ui.NewReport(args[0], core.Inspect(string(data))))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	return cmd
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config [file]",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := filesystem.NewOS()

			var documentDir string
			if len(args) == 1 {
				doc, err := paths.ResolveDocument(fsys, args[0])
				if err != nil {
					return err
				}
				documentDir = doc.Dir
			}

			cfg, err := flags.loadConfig(cmd, fsys, documentDir)
			if err != nil {
				return err
			}

			out, err := cfg.ToTOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	addRunFlags(cmd, flags)
	return cmd
}

func newSyntaxCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tm == nil {
				return errors.Newf(errors.ErrInternal, MsgErrTopicMissing, "syntax")
			}
			topic, ok := tm.GetTopic("syntax")
			if !ok {
				return errors.Newf(errors.ErrInternal, MsgErrTopicMissing, "syntax")
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// "help topics" lists them
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
