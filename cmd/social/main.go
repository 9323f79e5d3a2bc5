package main

import (
	"context"
	"log/slog"

	"social/config"
	"social/internal/delivery"
	"social/internal/delivery/scenario"
	logs "social/internal/infra/log"
	"social/internal/infra/persistence/memory"
	"social/internal/infra/validation"
	"social/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startRunParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(
			startRun,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewPostRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			validation.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPostService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scenario.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startRun serves every delivery once and shuts the app down when they are
// all done. A failing delivery ends the process with exit code 1.
func startRun(ctx context.Context, params startRunParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				for _, d := range params.Deliveries {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Delivery failed", slog.Any("error", err))
						exitCode = 1

						break
					}
				}
				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
