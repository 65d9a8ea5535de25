// Package cmd provides the root command and CLI setup for docgap.
package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/docgap/internal/adapter"
	"github.com/mouse-blink/docgap/internal/controller"
	"github.com/mouse-blink/docgap/internal/domain"
	m "github.com/mouse-blink/docgap/internal/model"
)

const (
	configName = ".docgap"
	envPrefix  = "DOCGAP"

	defaultReportsDir = ".docgap"
)

var fsAdapter adapter.SourceFSAdapter
var gitAdapter adapter.GitSourceAdapter
var corpusAdapter adapter.CorpusAdapter
var indexStore adapter.IndexStore
var reportStore adapter.ReportStore
var controlsStore adapter.ControlsStore
var extractor domain.Extractor
var workflow domain.Workflow
var ui controller.UI

var logLevel = new(slog.LevelVar)
var logger *slog.Logger

func init() {
	logger = newLogger(os.Stderr, logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	gitAdapter = adapter.NewLocalGitSourceAdapter()
	corpusAdapter = adapter.NewLocalCorpusAdapter(fsAdapter)
	indexStore = adapter.NewIndexStore()
	reportStore = adapter.NewReportStore()
	controlsStore = adapter.NewControlsStore()
	extractor = domain.NewExtractor()
	workflow = domain.NewWorkflow(
		fsAdapter,
		gitAdapter,
		corpusAdapter,
		indexStore,
		reportStore,
		controlsStore,
		ui,
		extractor,
		domain.WithLogger(logger),
	)

	cobra.OnInitialize(initConfig)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docgap",
		Short: "Find public APIs missing from your documentation",
		Long: `Docgap scans C# sources for public API declarations, writes a
markdown API index, and reports which of those APIs are never mentioned in a
set of markdown reference documents.

Typical usage:
  docgap index --repo ../MyLib
  docgap coverage --references docs
  docgap view
  docgap controls --pattern 'src/Avalonia.Controls*/**/*.cs'`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if viper.GetBool("verbose") {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("repo", ".", "path to the repository root to scan")
	flags.String("git-ref", "", "scan this git ref (branch, tag or commit) instead of the working tree")
	flags.StringArray("pattern", adapter.DefaultSourcePatterns, "glob pattern of source files relative to the repo (can be repeated)")
	flags.IntP("parallel", "p", runtime.NumCPU(), "number of parallel workers")
	flags.String("reports", defaultReportsDir, "directory where coverage snapshots are stored")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	bindFlags(flags, map[string]string{
		"repo":     "repo",
		"git-ref":  "git-ref",
		"patterns": "pattern",
		"parallel": "parallel",
		"reports":  "reports",
		"verbose":  "verbose",
	})

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// initConfig loads .env and the optional .docgap.yaml, then enables
// DOCGAP_* environment overrides.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Warn("failed to read config", slog.String("error", err.Error()))
		}

		return
	}

	logger.Debug("config loaded", slog.String("file", viper.ConfigFileUsed()))
}

func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// bindFlags binds viper keys to flags by name.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func sourceArgs() domain.SourceArgs {
	return domain.SourceArgs{
		Repo:     m.Path(viper.GetString("repo")),
		GitRef:   viper.GetString("git-ref"),
		Patterns: viper.GetStringSlice("patterns"),
		Threads:  viper.GetInt("parallel"),
	}
}
