package gameboy

// Status represents the status of an emulation session. It can be
// one of the following:
//
//   - Unloaded
//   - Loaded
//   - Running
//   - Errored
type Status int

const (
	// Unloaded represents a session that has no cartridge.
	Unloaded Status = iota
	// Loaded represents a session with a cartridge installed that
	// has not executed any instruction yet.
	Loaded
	// Running represents a session that has executed at least one
	// instruction.
	Running
	// Errored represents a session that has been halted by a fault.
	// It stays Errored for the rest of its lifetime.
	Errored
)

func (s Status) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Loaded:
		return "Loaded"
	case Running:
		return "Running"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running
}

func (s Status) IsErrored() bool {
	return s == Errored
}
