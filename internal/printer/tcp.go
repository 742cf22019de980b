// internal/printer/tcp.go
package printer

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"receipt-service/internal/config"
)

const defaultRawPrintPort = 9100

// TCPTransport implements Transport for network printers speaking raw
// ESC/POS on the JetDirect port.
type TCPTransport struct {
	config config.PrinterConfig
	conn   net.Conn
	logger *zap.Logger
	mutex  sync.RWMutex
	isOpen bool
}

// NewTCPTransport creates a new TCP transport
func NewTCPTransport(cfg config.PrinterConfig, logger *zap.Logger) *TCPTransport {
	if cfg.Port == 0 {
		cfg.Port = defaultRawPrintPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &TCPTransport{
		config: cfg,
		logger: logger.With(
			zap.String("transport", "tcp"),
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
		),
	}
}

// Open opens the TCP connection
func (tc *TCPTransport) Open(ctx context.Context) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if tc.isOpen {
		return nil
	}

	dialer := &net.Dialer{
		Timeout:   tc.config.Timeout,
		KeepAlive: 30 * time.Second,
	}

	address := fmt.Sprintf("%s:%d", tc.config.Host, tc.config.Port)
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		tc.logger.Error("Failed to open TCP connection", zap.Error(err))
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}

	tc.conn = conn
	tc.isOpen = true

	tc.logger.Debug("TCP connection opened")
	return nil
}

// Close closes the TCP connection
func (tc *TCPTransport) Close() error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if !tc.isOpen || tc.conn == nil {
		return nil
	}

	if err := tc.conn.Close(); err != nil {
		tc.logger.Error("Failed to close TCP connection", zap.Error(err))
		return fmt.Errorf("failed to close TCP connection: %w", err)
	}

	tc.conn = nil
	tc.isOpen = false

	tc.logger.Debug("TCP connection closed")
	return nil
}

// IsOpen returns whether the connection is open
func (tc *TCPTransport) IsOpen() bool {
	tc.mutex.RLock()
	defer tc.mutex.RUnlock()
	return tc.isOpen && tc.conn != nil
}

// QueryStatus sends a realtime status request to verify the device
// accepts data.
func (tc *TCPTransport) QueryStatus(ctx context.Context) error {
	return tc.Write(ctx, statusRequest)
}

// BeginDocument marks the start of a print job on the wire log. Raw
// TCP streams carry no job framing of their own.
func (tc *TCPTransport) BeginDocument(title string) error {
	if !tc.IsOpen() {
		return fmt.Errorf("TCP connection not open")
	}
	tc.logger.Info("Print job started", zap.String("title", title))
	return nil
}

// BeginPage marks the start of a page
func (tc *TCPTransport) BeginPage() error {
	if !tc.IsOpen() {
		return fmt.Errorf("TCP connection not open")
	}
	return nil
}

// EndPage marks the end of a page
func (tc *TCPTransport) EndPage() error {
	if !tc.IsOpen() {
		return fmt.Errorf("TCP connection not open")
	}
	return nil
}

// EndDocument marks the end of a print job
func (tc *TCPTransport) EndDocument() error {
	if !tc.IsOpen() {
		return fmt.Errorf("TCP connection not open")
	}
	tc.logger.Info("Print job ended")
	return nil
}

// Write writes data to the TCP connection
func (tc *TCPTransport) Write(ctx context.Context, data []byte) error {
	tc.mutex.RLock()
	defer tc.mutex.RUnlock()

	if !tc.isOpen || tc.conn == nil {
		return fmt.Errorf("TCP connection not open")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if tc.config.WriteTimeout > 0 {
		tc.conn.SetWriteDeadline(time.Now().Add(tc.config.WriteTimeout))
	}

	n, err := tc.conn.Write(data)
	if err != nil {
		tc.logger.Error("TCP write failed", zap.Error(err))
		return fmt.Errorf("failed to write to TCP connection: %w", err)
	}

	if n != len(data) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(data))
	}

	tc.logger.Debug("TCP write completed", zap.Int("bytes", len(data)))
	return nil
}
