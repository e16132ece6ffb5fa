package inifile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/ini.v1"

	"github.com/rotorworks/enigma/internal/core/repositories"
	"github.com/rotorworks/enigma/internal/machine"
)

const (
	reflectorSection = "Reflector"
	plugboardSection = "Plugboard"
	wiringKey        = "config"
	notchKey         = "notch"
	ringstellungKey  = "Ringstellung"
	plugboardKey     = "settings"
)

type reflectorRecord struct {
	Wiring []int `validate:"required,permutation,involution,nofixedpoints"`
}

type rotorRecord struct {
	Wiring       []int `validate:"required,permutation"`
	Notch        int   `validate:"gte=0,lt=26"`
	Ringstellung int   `validate:"gte=0,lt=26"`
}

// Repository stores machine settings in an INI file:
// a Reflector section, one Rotor_<k> section per rotor in chain order,
// and a Plugboard section. Wiring arrays are JSON-encoded values.
type Repository struct {
	path     string
	validate *validator.Validate
}

func New(path string, validate *validator.Validate) *Repository {
	return &Repository{
		path:     path,
		validate: validate,
	}
}

func (r *Repository) Save(_ context.Context, settings machine.Settings) error {
	cfg := ini.Empty()

	refl, err := cfg.NewSection(reflectorSection)
	if err != nil {
		return err
	}
	if err = setWiring(refl, settings.Reflector); err != nil {
		return err
	}

	for idx, rs := range settings.Rotors {
		sec, sectionErr := cfg.NewSection(rotorSectionName(idx))
		if sectionErr != nil {
			return sectionErr
		}
		if _, keyErr := sec.NewKey(ringstellungKey, strconv.Itoa(rs.Ringstellung)); keyErr != nil {
			return keyErr
		}
		if _, keyErr := sec.NewKey(notchKey, strconv.Itoa(rs.Notch)); keyErr != nil {
			return keyErr
		}
		if err = setWiring(sec, rs.Wiring); err != nil {
			return err
		}
	}

	plug, err := cfg.NewSection(plugboardSection)
	if err != nil {
		return err
	}
	if _, err = plug.NewKey(plugboardKey, settings.Plugboard); err != nil {
		return err
	}

	return cfg.SaveTo(r.path)
}

// Load reads back the Reflector and Rotor sections.
// The Plugboard section is intentionally left alone: only the wheels
// are ever restored from a settings file.
func (r *Repository) Load(_ context.Context) (machine.WheelSettings, error) {
	if _, err := os.Stat(r.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return machine.WheelSettings{}, repositories.ErrSettingsNotFound
		}
		return machine.WheelSettings{}, err
	}

	cfg, err := ini.Load(r.path)
	if err != nil {
		return machine.WheelSettings{}, malformed(err)
	}

	reflWiring, err := r.loadReflector(cfg)
	if err != nil {
		return machine.WheelSettings{}, err
	}

	rotors := make([]machine.RotorSettings, machine.NumRotors)
	for idx := range rotors {
		rotors[idx], err = r.loadRotor(cfg, idx)
		if err != nil {
			return machine.WheelSettings{}, err
		}
	}

	return machine.WheelSettings{
		Reflector: reflWiring,
		Rotors:    rotors,
	}, nil
}

func (r *Repository) loadReflector(cfg *ini.File) ([]int, error) {
	sec, err := cfg.GetSection(reflectorSection)
	if err != nil {
		return nil, malformed(err)
	}
	wiring, err := getWiring(sec)
	if err != nil {
		return nil, err
	}
	record := reflectorRecord{Wiring: wiring}
	if err = r.validate.Struct(record); err != nil {
		return nil, malformed(err)
	}
	return wiring, nil
}

func (r *Repository) loadRotor(cfg *ini.File, idx int) (machine.RotorSettings, error) {
	sec, err := cfg.GetSection(rotorSectionName(idx))
	if err != nil {
		return machine.RotorSettings{}, malformed(err)
	}
	wiring, err := getWiring(sec)
	if err != nil {
		return machine.RotorSettings{}, err
	}
	notch, err := getInt(sec, notchKey)
	if err != nil {
		return machine.RotorSettings{}, err
	}
	ringstellung, err := getInt(sec, ringstellungKey)
	if err != nil {
		return machine.RotorSettings{}, err
	}
	record := rotorRecord{
		Wiring:       wiring,
		Notch:        notch,
		Ringstellung: ringstellung,
	}
	if err = r.validate.Struct(record); err != nil {
		return machine.RotorSettings{}, malformed(err)
	}
	return machine.RotorSettings{
		Wiring:       wiring,
		Notch:        notch,
		Ringstellung: ringstellung,
	}, nil
}

func rotorSectionName(idx int) string {
	return fmt.Sprintf("Rotor_%d", idx+1)
}

func setWiring(sec *ini.Section, wiring []int) error {
	encoded, err := json.Marshal(wiring)
	if err != nil {
		return err
	}
	_, err = sec.NewKey(wiringKey, string(encoded))
	return err
}

func getWiring(sec *ini.Section) ([]int, error) {
	key, err := sec.GetKey(wiringKey)
	if err != nil {
		return nil, malformed(err)
	}
	var wiring []int
	if err = json.Unmarshal([]byte(key.String()), &wiring); err != nil {
		return nil, malformed(err)
	}
	return wiring, nil
}

func getInt(sec *ini.Section, name string) (int, error) {
	key, err := sec.GetKey(name)
	if err != nil {
		return 0, malformed(err)
	}
	value, err := key.Int()
	if err != nil {
		return 0, malformed(err)
	}
	return value, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", repositories.ErrSettingsMalformed, err)
}
