package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandeepkv93/focusflow/internal/ai"
	"github.com/sandeepkv93/focusflow/internal/config"
	"github.com/sandeepkv93/focusflow/internal/logger"
	"github.com/sandeepkv93/focusflow/internal/state"
	"github.com/sandeepkv93/focusflow/internal/storage"
	"github.com/sandeepkv93/focusflow/internal/update"
	"github.com/sandeepkv93/focusflow/internal/views"
)

var version = "dev"

type rootOptions struct {
	configPath string
	envFile    string
	dataDir    string
	driver     string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "focusflow",
		Short:         "Tasks, habits and goals in your terminal",
		Long:          "FocusFlow tracks tasks, daily habits and goals locally, with optional AI task breakdowns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, a *app) error {
				model := update.NewModel(a.ctrl, update.WithContext(ctx), update.WithLogger(a.log))
				_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			})
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.StringVar(&opts.dataDir, "data", "", "data directory (overrides config)")
	flags.StringVar(&opts.driver, "storage", "", "storage driver: sqlite, file, redis or memory")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")

	cmd.AddCommand(newSummaryCmd(opts), newMotivationCmd(opts))
	return cmd
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print an AI summary of the last seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, a *app) error {
				counts := a.ctrl.Counts()
				text := a.ctrl.Assistant().WeeklySummary(ctx, counts.CompletedThisWeek, counts.HabitsThisWeek)
				fmt.Fprintf(cmd.OutOrStdout(), "completed this week: %d, habits kept: %d\n\n",
					counts.CompletedThisWeek, counts.HabitsThisWeek)
				fmt.Fprintln(cmd.OutOrStdout(), views.RenderMarkdown(text, 80))
				return nil
			})
		},
	}
}

func newMotivationCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "motivation",
		Short: "Print a short motivational line for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, a *app) error {
				counts := a.ctrl.Counts()
				fmt.Fprintln(cmd.OutOrStdout(), a.ctrl.Assistant().Motivation(ctx, counts.Pending, counts.Completed))
				return nil
			})
		},
	}
}

type app struct {
	ctrl *state.Controller
	log  *zap.Logger
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.driver != "" {
		cfg.Storage.Driver = strings.ToLower(o.driver)
	}
	if o.debug {
		cfg.Log.Debug = true
	}
	return cfg, cfg.Validate()
}

// run wires config, logging, storage and the AI client, loads state and
// hands the result to fn.
func (o *rootOptions) run(ctx context.Context, fn func(context.Context, *app) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogPath(), cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync(log) }()

	backend, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	store := storage.NewStore(backend)
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("close storage", zap.Error(err))
		}
	}()

	assistant := ai.New(cfg.AIConfig(), log.Named("ai"))
	ctrl := state.New(store, assistant,
		state.WithLogger(log.Named("state")),
		state.WithPrimaryGoal(cfg.Goals.PrimaryID),
	)
	ctrl.Load(ctx)
	log.Info("focusflow started",
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("ai_enabled", assistant.Enabled()),
	)

	return fn(ctx, &app{ctrl: ctrl, log: log})
}
