package console

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/rotorworks/enigma/cmd/enigma/application"
	"github.com/rotorworks/enigma/cmd/enigma/commander"
	"github.com/rotorworks/enigma/cmd/enigma/container"
	"github.com/rotorworks/enigma/internal/console"
	"github.com/rotorworks/enigma/internal/metrics"
)

type Component struct{}

func newConsole(
	app container.Container,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *console.Console {
	return console.New(
		app.EncodeText,
		app.SaveMachine,
		app.LoadMachine,
		collector,
		logger,
		os.Stdin,
		os.Stdout,
	)
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cons *console.Console,
	logger *zerolog.Logger,
) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(stopped)
				if err := cons.Run(ctx); err != nil {
					logger.Error().Err(err).Msg("Console session failed")
				}
				if shutErr := shutdowner.Shutdown(); shutErr != nil {
					logger.Error().Err(shutErr).Msg("Failed to shut down after console session")
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-stopped
			logger.Info().Msg("Console stopped")
			return nil
		},
	})

	return &Component{}
}

type command struct{}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Console command `cmd:"" help:"Start an interactive encoding session"`
}

var Module = fx.Module("console",
	fx.Provide(newConsole),
	fx.Provide(New),
)
