package midi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"pitched/debug"
)

// ScanTimeout bounds port enumeration; CoreMIDI can hang.
const ScanTimeout = 3 * time.Second

var (
	ErrNoPort      = errors.New("no midi port")
	ErrScanTimeout = errors.New("midi port scan timed out")
)

type portsResult struct {
	ins  []drivers.In
	outs []drivers.Out
}

func scan(timeout time.Duration) (portsResult, error) {
	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		debug.Log("midi", "scan: %d in, %d out", len(r.ins), len(r.outs))
		return r, nil
	case <-time.After(timeout):
		// User needs to run: sudo killall coreaudiod midiserver
		return portsResult{}, ErrScanTimeout
	}
}

// OutPorts lists the MIDI output ports.
func OutPorts(timeout time.Duration) ([]drivers.Out, error) {
	r, err := scan(timeout)
	return r.outs, err
}

// InPorts lists the MIDI input ports.
func InPorts(timeout time.Duration) ([]drivers.In, error) {
	r, err := scan(timeout)
	return r.ins, err
}

// Ports lists input and output ports in one scan.
func Ports(timeout time.Duration) ([]drivers.In, []drivers.Out, error) {
	r, err := scan(timeout)
	return r.ins, r.outs, err
}

// Shutdown releases the MIDI driver. Call once, after all ports are closed.
func Shutdown() {
	gomidi.CloseDriver()
}

// PortNames returns the names of ports; a port's index is accepted as its id.
func PortNames[P drivers.Port](ports []P) []string {
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.String()
	}
	return names
}

// selectPort resolves a port id against the port names. The id is tried as
// an exact name, then as an index, then as a case-insensitive substring. An
// empty id selects the last port.
func selectPort(names []string, id string) (int, error) {
	if len(names) == 0 {
		return -1, ErrNoPort
	}
	if id == "" {
		return len(names) - 1, nil
	}
	for i, name := range names {
		if name == id {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(id); err == nil && i >= 0 && i < len(names) {
		return i, nil
	}
	lower := strings.ToLower(id)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w with the id %q", ErrNoPort, id)
}
