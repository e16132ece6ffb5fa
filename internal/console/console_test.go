package console_test

import (
	"context"
	mrand "math/rand"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rotorworks/enigma/internal/console"
	"github.com/rotorworks/enigma/internal/core/repositories"
	"github.com/rotorworks/enigma/internal/core/usecases/encodetext"
	"github.com/rotorworks/enigma/internal/core/usecases/loadmachine"
	"github.com/rotorworks/enigma/internal/core/usecases/savemachine"
	"github.com/rotorworks/enigma/internal/machine"
	"github.com/rotorworks/enigma/internal/metrics"
)

type MockSettingsRepository struct {
	mock.Mock
	repositories.SettingsRepository
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings machine.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) Load(ctx context.Context) (machine.WheelSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(machine.WheelSettings), args.Error(1) // nolint: forcetypeassert
}

func newConsole(
	seed int64,
	input string,
	output *strings.Builder,
) (*console.Console, *MockSettingsRepository, *metrics.Collector) {
	eng := machine.New(mrand.New(mrand.NewSource(seed))) // nolint: gosec
	mockRepo := new(MockSettingsRepository)
	collector := metrics.New()
	logger := zerolog.Nop()
	csl := console.New(
		encodetext.New(eng),
		savemachine.New(eng, mockRepo),
		loadmachine.New(eng, mockRepo),
		collector,
		&logger,
		strings.NewReader(input),
		output,
	)
	return csl, mockRepo, collector
}

func reference(t *testing.T, seed int64, text string) []string {
	t.Helper()
	eng := machine.New(mrand.New(mrand.NewSource(seed))) // nolint: gosec
	uc := encodetext.New(eng)
	lines := make([]string, 0, len(text))
	for _, char := range text {
		out, err := uc.Execute(context.TODO(), string(char))
		require.NoError(t, err)
		lines = append(lines, out)
	}
	return lines
}

func TestConsole_EncodesKeystrokesLineByLine(t *testing.T) {
	var output strings.Builder
	csl, mockRepo, collector := newConsole(401, "abc\nxyz\n", &output)
	mockRepo.On("Load", mock.Anything).Return(machine.WheelSettings{}, repositories.ErrSettingsNotFound)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, csl.Run(context.TODO()))

	want := reference(t, 401, "abcxyz")
	assert.Equal(t, strings.Join(want, "\n")+"\n", output.String())
	assert.InDelta(t, 6, testutil.ToFloat64(collector.ConsoleKeystrokes), 0.01)
	assert.InDelta(t, 0, testutil.ToFloat64(collector.ConsoleKeystrokeErrors), 0.01)
	mockRepo.AssertExpectations(t)
}

func TestConsole_InvalidKeystrokesAreSkippedWithoutStepping(t *testing.T) {
	var output strings.Builder
	csl, mockRepo, collector := newConsole(409, "a1b?c\n", &output)
	mockRepo.On("Load", mock.Anything).Return(machine.WheelSettings{}, repositories.ErrSettingsNotFound)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, csl.Run(context.TODO()))

	// rejected keystrokes must not advance the rotors,
	// so the output matches a machine fed only the valid letters
	want := reference(t, 409, "abc")
	assert.Equal(t, strings.Join(want, "\n")+"\n", output.String())
	assert.InDelta(t, 3, testutil.ToFloat64(collector.ConsoleKeystrokes), 0.01)
	assert.InDelta(t, 2, testutil.ToFloat64(collector.ConsoleKeystrokeErrors), 0.01)
}

func TestConsole_UppercaseIsFolded(t *testing.T) {
	var output strings.Builder
	csl, mockRepo, _ := newConsole(419, "ABC\n", &output)
	mockRepo.On("Load", mock.Anything).Return(machine.WheelSettings{}, repositories.ErrSettingsNotFound)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, csl.Run(context.TODO()))

	want := reference(t, 419, "abc")
	assert.Equal(t, strings.Join(want, "\n")+"\n", output.String())
}

func TestConsole_RestoresWheelsBeforeSaving(t *testing.T) {
	saved := machine.New(mrand.New(mrand.NewSource(421))) // nolint: gosec
	savedWheels := saved.Snapshot().WheelSettings

	var output strings.Builder
	csl, mockRepo, _ := newConsole(431, "", &output)
	mockRepo.On("Load", mock.Anything).Return(savedWheels, nil)
	// the position saved back must carry the restored wheels
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s machine.Settings) bool {
		return assert.ObjectsAreEqual(savedWheels, s.WheelSettings)
	})).Return(nil)

	require.NoError(t, csl.Run(context.TODO()))
	mockRepo.AssertExpectations(t)
}

func TestConsole_SettingsLoadErrorAbortsSession(t *testing.T) {
	var output strings.Builder
	csl, mockRepo, _ := newConsole(433, "abc\n", &output)
	mockRepo.On("Load", mock.Anything).Return(machine.WheelSettings{}, repositories.ErrSettingsMalformed)

	assert.ErrorIs(t, csl.Run(context.TODO()), repositories.ErrSettingsMalformed)
	assert.Empty(t, output.String())
}
