package machine

// RotorSettings captures one rotor's full state:
// the disc's current wiring, the ring notch and the ring setting.
type RotorSettings struct {
	Wiring       []int
	Notch        int
	Ringstellung int
}

// WheelSettings is the restorable part of a machine's state.
// It deliberately excludes the plugboard: load only ever restores
// the reflector and the rotors.
type WheelSettings struct {
	Reflector []int
	Rotors    []RotorSettings
}

// Settings is a full snapshot of a machine, as written by save.
type Settings struct {
	WheelSettings
	Plugboard string
}
