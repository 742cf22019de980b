// internal/printer/serial.go
package printer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"

	"receipt-service/internal/config"
)

// SerialTransport implements Transport for printers on a serial line.
type SerialTransport struct {
	config config.PrinterConfig
	port   serial.Port
	logger *zap.Logger
	mutex  sync.RWMutex
	isOpen bool
}

// NewSerialTransport creates a new serial transport
func NewSerialTransport(cfg config.PrinterConfig, logger *zap.Logger) *SerialTransport {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 9600
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &SerialTransport{
		config: cfg,
		logger: logger.With(
			zap.String("transport", "serial"),
			zap.String("device", cfg.Device),
		),
	}
}

// Open opens the serial port
func (st *SerialTransport) Open(ctx context.Context) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	if st.isOpen {
		return nil
	}

	mode := &serial.Mode{
		BaudRate: st.config.BaudRate,
		DataBits: 8,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}

	port, err := serial.Open(st.config.Device, mode)
	if err != nil {
		st.logger.Error("Failed to open serial port", zap.Error(err))
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	if err := port.SetReadTimeout(st.config.Timeout); err != nil {
		port.Close()
		return fmt.Errorf("failed to set read timeout: %w", err)
	}

	st.port = port
	st.isOpen = true

	st.logger.Debug("Serial port opened")
	return nil
}

// Close closes the serial port
func (st *SerialTransport) Close() error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	if !st.isOpen || st.port == nil {
		return nil
	}

	if err := st.port.Close(); err != nil {
		st.logger.Error("Failed to close serial port", zap.Error(err))
		return fmt.Errorf("failed to close serial port: %w", err)
	}

	st.port = nil
	st.isOpen = false

	st.logger.Debug("Serial port closed")
	return nil
}

// IsOpen returns whether the port is open
func (st *SerialTransport) IsOpen() bool {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.isOpen && st.port != nil
}

// QueryStatus sends a realtime status request to verify the device
// accepts data.
func (st *SerialTransport) QueryStatus(ctx context.Context) error {
	return st.Write(ctx, statusRequest)
}

// BeginDocument marks the start of a print job
func (st *SerialTransport) BeginDocument(title string) error {
	if !st.IsOpen() {
		return fmt.Errorf("serial port not open")
	}
	st.logger.Info("Print job started", zap.String("title", title))
	return nil
}

// BeginPage marks the start of a page
func (st *SerialTransport) BeginPage() error {
	if !st.IsOpen() {
		return fmt.Errorf("serial port not open")
	}
	return nil
}

// EndPage marks the end of a page
func (st *SerialTransport) EndPage() error {
	if !st.IsOpen() {
		return fmt.Errorf("serial port not open")
	}
	return nil
}

// EndDocument marks the end of a print job
func (st *SerialTransport) EndDocument() error {
	if !st.IsOpen() {
		return fmt.Errorf("serial port not open")
	}
	st.logger.Info("Print job ended")
	return nil
}

// Write writes data to the serial port
func (st *SerialTransport) Write(ctx context.Context, data []byte) error {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	if !st.isOpen || st.port == nil {
		return fmt.Errorf("serial port not open")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	n, err := st.port.Write(data)
	if err != nil {
		st.logger.Error("Serial write failed", zap.Error(err))
		return fmt.Errorf("failed to write to serial port: %w", err)
	}

	if n != len(data) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(data))
	}

	st.logger.Debug("Serial write completed", zap.Int("bytes", len(data)))
	return nil
}
