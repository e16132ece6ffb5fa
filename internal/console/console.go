// Package console implements the interactive terminal session:
// the keyboard on one side, the lighting box on the other,
// with the cipher engine in between.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rotorworks/enigma/internal/core/usecases/encodetext"
	"github.com/rotorworks/enigma/internal/core/usecases/loadmachine"
	"github.com/rotorworks/enigma/internal/core/usecases/savemachine"
	"github.com/rotorworks/enigma/internal/metrics"
)

type Console struct {
	encodeText  encodetext.UseCase
	saveMachine savemachine.UseCase
	loadMachine loadmachine.UseCase
	collector   *metrics.Collector
	logger      *zerolog.Logger
	reader      io.Reader
	writer      io.Writer
}

func New(
	encodeTextUseCase encodetext.UseCase,
	saveMachineUseCase savemachine.UseCase,
	loadMachineUseCase loadmachine.UseCase,
	collector *metrics.Collector,
	logger *zerolog.Logger,
	reader io.Reader,
	writer io.Writer,
) *Console {
	return &Console{
		encodeText:  encodeTextUseCase,
		saveMachine: saveMachineUseCase,
		loadMachine: loadMachineUseCase,
		collector:   collector,
		logger:      logger,
		reader:      reader,
		writer:      writer,
	}
}

// Run drives a session until the input is exhausted or the context is done.
// Wheel settings from a previous session are restored first, and the
// starting position is saved back before any keystroke is accepted:
// decrypting this session's output later depends on it.
func (c *Console) Run(ctx context.Context) error {
	sessionID := uuid.New()
	logger := c.logger.With().Stringer("session", sessionID).Logger()

	if err := c.loadMachine.Execute(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to restore machine settings")
		return err
	}
	if err := c.saveMachine.Execute(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to save the starting position")
		return err
	}
	logger.Info().Msg("Machine is ready")

	scanner := bufio.NewScanner(c.reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		for _, char := range scanner.Text() {
			if char == ' ' || char == '\t' {
				continue
			}
			if err := c.press(ctx, char, &logger); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to read input")
		return err
	}
	logger.Info().Msg("Session finished")
	return nil
}

func (c *Console) press(ctx context.Context, char rune, logger *zerolog.Logger) error {
	started := time.Now()
	out, err := c.encodeText.Execute(ctx, string(char))
	if err != nil {
		c.collector.ConsoleKeystrokeErrors.Inc()
		logger.Warn().Err(err).Str("char", string(char)).Msg("Keystroke rejected")
		return nil
	}
	c.collector.ConsoleKeystrokes.Inc()
	c.collector.ConsoleEncodeDurations.Observe(time.Since(started).Seconds())
	if _, err = fmt.Fprintln(c.writer, out); err != nil {
		return err
	}
	return nil
}
