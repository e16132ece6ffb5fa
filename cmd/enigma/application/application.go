package application

import (
	"go.uber.org/fx"

	"github.com/rotorworks/enigma/cmd/enigma/components/exporter"
	"github.com/rotorworks/enigma/cmd/enigma/container"
	"github.com/rotorworks/enigma/cmd/enigma/logging"
	"github.com/rotorworks/enigma/internal/machine"
	"github.com/rotorworks/enigma/internal/metrics"
	"github.com/rotorworks/enigma/internal/validation"
	"github.com/rotorworks/enigma/pkg/random"
)

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

func observeMachine(m *machine.Machine, collector *metrics.Collector) {
	collector.MachinePlugboardPairs.Set(float64(m.Plugboard().NumPairs()))
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(random.NewSource),
	fx.Provide(validation.New),
	fx.Provide(machine.New),
	fx.Provide(metrics.New),
	fx.Invoke(observeMachine),
	container.Module,
)
