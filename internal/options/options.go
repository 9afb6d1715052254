// Package options contains the program options.
package options

// Frontend names selectable on the command line.
const (
	FrontendTerminal = "terminal"
	FrontendGL       = "gl"
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Frontend        string // renderer backend: terminal, gl
	InstructionRate int    // instructions executed per second

	NoSound      bool // disable audio output
	ShiftInPlace bool // 8XY6/8XYE shift VX instead of VY
	KeepIndex    bool // FX55/FX65 leave the index register unchanged
	Debug        bool // enable debug logging
	Quiet        bool // quiet mode
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}
