package main

import (
	"ai_digest/logic"
	"ai_digest/server"
	"ai_digest/shared"
	"ai_digest/texts"
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"net/http"
	"os"
	"runtime/debug"
)

const flagConfig = "config"

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai_digest",
		Short: "Builds a one-page digest of AI news feeds",
		Long: `ai_digest reads a fixed list of RSS/Atom feeds, takes the newest entries of each,
finds a preview image for every entry, and writes one self-contained HTML page.

Entries with an image are featured as image cards; the rest are listed as text cards.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String(flagConfig, "", "Path to JSONC config (default: $CONFIG, then ./dev/config.dev.jsonc)")
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the page once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.OutputFile = output
			}

			var dg logic.IDigest
			app := fx.New(
				fx.NopLogger,
				provideCommon(cfg, logger),
				fx.Populate(&dg),
			)
			if err = app.Err(); err != nil {
				return err
			}
			_, err = dg.Generate()
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the page here instead of the configured output_file")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Regenerate the page on a schedule and serve it over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			app := fx.New(
				fx.NopLogger,
				provideCommon(cfg, logger),
				fx.Provide(
					logic.NewScheduler,
					logic.NewProfiler,
					server.NewHTTPServer,
					fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
					asHandlerGroupDef(server.NewApiHandlerGroup),
					asHandlerGroupDef(server.NewWebHandlerGroup),
					asHandlerGroupDef(server.NewMetricsHandlerGroup),
				),
				fx.Invoke(
					registerHooks,
					func(*http.Server) {},
				),
				fx.ErrorHook(&initErrorHandler{}),
			)
			app.Run()
			return nil
		},
	}
}

func setup(cmd *cobra.Command) (*shared.Config, shared.ILogger, error) {
	cfgPath, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := shared.LoadConfigOrDefault(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := shared.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// provideCommon wires everything a single generation run needs.
func provideCommon(cfg *shared.Config, logger shared.ILogger) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			func() shared.ILogger { return logger },
			shared.NewUserAgent,
			logic.NewMetrics,
			logic.NewFeedReader,
			logic.NewImageResolver,
			logic.NewAggregator,
			texts.NewTexts,
			logic.NewPageRenderer,
			logic.NewDigest,
		),
	)
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func registerHooks(
	lc fx.Lifecycle,
	logger shared.ILogger,
	scheduler logic.IScheduler,
	profiler logic.IProfiler,
) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				scheduler.Start()
				profiler.Start()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				profiler.Stop()
				scheduler.Stop()
				return nil
			},
		},
	)
}

func getVersion() string {
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}
	return "(devel)"
}
