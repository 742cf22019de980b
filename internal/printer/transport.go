// internal/printer/transport.go

// Package printer owns the print-session lifecycle against a physical
// ESC/POS device: availability probe, session open, document/page
// bracketing, payload write and guaranteed teardown.
package printer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"receipt-service/internal/config"
)

// statusRequest is the DLE EOT 1 realtime status query used to probe
// device availability.
var statusRequest = []byte{0x10, 0x04, 0x01}

// Transport moves bytes to one physical printer. Implementations raise
// on failure of any operation; the session manager translates those
// into the fault taxonomy.
type Transport interface {
	// Connection lifecycle
	Open(ctx context.Context) error
	Close() error
	IsOpen() bool

	// Device availability
	QueryStatus(ctx context.Context) error

	// Job framing. Raw byte streams have no spooler, so these mark the
	// session state machine and validate the connection.
	BeginDocument(title string) error
	BeginPage() error
	EndPage() error
	EndDocument() error

	// Data
	Write(ctx context.Context, data []byte) error
}

// NewTransport creates a transport from a printer registry entry.
func NewTransport(cfg config.PrinterConfig, logger *zap.Logger) (Transport, error) {
	switch cfg.Connection {
	case "tcp":
		return NewTCPTransport(cfg, logger), nil
	case "serial":
		return NewSerialTransport(cfg, logger), nil
	case "usb":
		return NewUSBTransport(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported connection type: %s", cfg.Connection)
	}
}
