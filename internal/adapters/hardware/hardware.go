// Package hardware bridges till peripherals: the cash drawer, the receipt
// printer, and the weighing scale. Counters without peripherals run the
// disconnected bridge, which fails every action with ErrUnavailable so the
// dispatcher can answer honestly instead of pretending.
package hardware

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable reports that no peripheral is attached on this counter
var ErrUnavailable = errors.New("hardware: peripheral not connected")

// Bridge is the peripheral surface consumed by the command dispatcher
type Bridge interface {
	// OpenDrawer pulses the cash drawer kick line
	OpenDrawer(ctx context.Context) error
	// PrintTest feeds a short self-test page through the receipt printer
	PrintTest(ctx context.Context) error
	// ReadScale samples the weighing scale once, in kilograms
	ReadScale(ctx context.Context) (float64, error)
}

// Config selects and addresses the peripheral bridge
type Config struct {
	// Driver is "escpos" for a networked ESC/POS printer or "none"
	Driver string
	// Addr is the printer host:port when Driver is escpos
	Addr string
	// Timeout bounds each peripheral round trip
	Timeout time.Duration
}

// FromConfig returns the bridge matching cfg. Unknown drivers fall back
// to disconnected rather than failing startup.
func FromConfig(cfg Config) Bridge {
	if cfg.Driver == "escpos" && cfg.Addr != "" {
		return NewESCPOS(cfg.Addr, cfg.Timeout)
	}
	return Disconnected{}
}

// Disconnected is the bridge for counters with no peripherals attached
type Disconnected struct{}

// OpenDrawer always reports ErrUnavailable
func (Disconnected) OpenDrawer(context.Context) error { return ErrUnavailable }

// PrintTest always reports ErrUnavailable
func (Disconnected) PrintTest(context.Context) error { return ErrUnavailable }

// ReadScale always reports ErrUnavailable
func (Disconnected) ReadScale(context.Context) (float64, error) { return 0, ErrUnavailable }
