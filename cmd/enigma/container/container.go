package container

import (
	"go.uber.org/fx"

	"github.com/rotorworks/enigma/internal/core/usecases/encodetext"
	"github.com/rotorworks/enigma/internal/core/usecases/loadmachine"
	"github.com/rotorworks/enigma/internal/core/usecases/savemachine"
)

type Container struct {
	EncodeText  encodetext.UseCase
	SaveMachine savemachine.UseCase
	LoadMachine loadmachine.UseCase
}

func New(
	encodeTextUseCase encodetext.UseCase,
	saveMachineUseCase savemachine.UseCase,
	loadMachineUseCase loadmachine.UseCase,
) Container {
	return Container{
		EncodeText:  encodeTextUseCase,
		SaveMachine: saveMachineUseCase,
		LoadMachine: loadMachineUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(encodetext.New),
	fx.Provide(savemachine.New),
	fx.Provide(loadmachine.New),
	fx.Provide(New),
)
