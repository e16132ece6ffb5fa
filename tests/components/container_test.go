package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/rotorworks/enigma/cmd/enigma/application"
	"github.com/rotorworks/enigma/cmd/enigma/container"
	"github.com/rotorworks/enigma/cmd/enigma/persistence"
	"github.com/rotorworks/enigma/tests/testapp"
)

func TestContainer_UseCasesAreWired(t *testing.T) {
	ctx := context.TODO()
	var c container.Container

	app := fx.New(
		application.Module,
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvidePersistence),
		fx.Provide(persistence.Provide),
		fx.NopLogger,
		fx.Populate(&c),
	)
	require.NoError(t, app.Start(ctx))
	defer func() {
		app.Stop(ctx) // nolint: errcheck
	}()

	// a fresh environment has no settings file yet
	require.NoError(t, c.LoadMachine.Execute(ctx))
	require.NoError(t, c.SaveMachine.Execute(ctx))

	cipher, err := c.EncodeText.Execute(ctx, "hello")
	require.NoError(t, err)
	assert.Len(t, cipher, 5)
	assert.NotEqual(t, "hello", cipher)

	// rewind to the saved position and replay
	require.NoError(t, c.LoadMachine.Execute(ctx))
	again, err := c.EncodeText.Execute(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, cipher, again)
}
