// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file and returns its raw bytes. ROM files carry no
// header or container format, the bytes are the program image that gets
// mapped at the program start address. Size validation against the
// available memory happens when the program is loaded into a machine.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	program, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(program) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	return program, nil
}
