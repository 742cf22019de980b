// internal/printer/session.go
package printer

import (
	"context"

	"go.uber.org/zap"

	"receipt-service/internal/config"
	"receipt-service/internal/escpos"
	"receipt-service/internal/render"
)

// Manager owns the print-session lifecycle for the configured printer
// registry. One Submit call owns the device handle for its full
// duration; callers serialize submissions per physical printer.
type Manager struct {
	printers map[string]config.PrinterConfig
	logger   *zap.Logger

	// newTransport is swappable in tests
	newTransport func(config.PrinterConfig, *zap.Logger) (Transport, error)
}

// NewManager creates a session manager over the printer registry.
func NewManager(printers map[string]config.PrinterConfig, logger *zap.Logger) *Manager {
	return &Manager{
		printers:     printers,
		logger:       logger,
		newTransport: NewTransport,
	}
}

// resolve maps a printer name to its registry entry. A missing name or
// unknown entry is a configuration fault, not an offline condition.
func (m *Manager) resolve(name string) (config.PrinterConfig, error) {
	if name == "" {
		return config.PrinterConfig{}, ErrNotConfigured
	}
	cfg, ok := m.printers[name]
	if !ok {
		return config.PrinterConfig{}, ErrNotConfigured
	}
	return cfg, nil
}

// Probe reports whether the printer is reachable. Any failure to open
// or query the device counts as offline; a missing printer identity is
// the distinct ErrNotConfigured fault instead.
func (m *Manager) Probe(ctx context.Context, name string) (bool, error) {
	cfg, err := m.resolve(name)
	if err != nil {
		return false, err
	}

	transport, err := m.newTransport(cfg, m.logger)
	if err != nil {
		return true, nil
	}

	if err := transport.Open(ctx); err != nil {
		return true, nil
	}
	defer transport.Close()

	if err := transport.QueryStatus(ctx); err != nil {
		return true, nil
	}

	return false, nil
}

// Submit prints one payload: probe, open, begin document, begin page,
// write, then staged teardown. Teardown always runs once a session has
// been opened, with each step independently guarded so one failing
// step never blocks the next. No retry and no queueing happen here.
func (m *Manager) Submit(ctx context.Context, name string, payload render.Payload) error {
	offline, err := m.Probe(ctx, name)
	if err != nil {
		return err
	}
	if offline {
		return &OfflineError{Printer: name}
	}

	// resolve succeeded in Probe
	cfg, _ := m.resolve(name)

	transport, err := m.newTransport(cfg, m.logger)
	if err != nil {
		return &WriteError{Printer: name, Cause: err}
	}

	if err := transport.Open(ctx); err != nil {
		return &WriteError{Printer: name, Cause: err}
	}
	defer m.teardown(name, transport)

	if err := m.writeJob(ctx, transport, cfg, payload); err != nil {
		return &WriteError{Printer: name, Cause: err}
	}

	m.logger.Info("Print job submitted",
		zap.String("printer", name),
		zap.String("title", payload.Title),
		zap.Int("bytes", len(payload.Content)),
	)
	return nil
}

func (m *Manager) writeJob(ctx context.Context, transport Transport, cfg config.PrinterConfig, payload render.Payload) error {
	if err := transport.BeginDocument(payload.Title); err != nil {
		return err
	}
	if err := transport.BeginPage(); err != nil {
		return err
	}
	if err := transport.Write(ctx, payload.Content); err != nil {
		return err
	}
	return transport.Write(ctx, m.jobTail(cfg))
}

// jobTail is the trailing control sequence after the document body: a
// full cut, or the buzzer for printers running in beep-only mode.
func (m *Manager) jobTail(cfg config.PrinterConfig) []byte {
	if cfg.BeepOnly {
		return escpos.Beep(2, 4)
	}
	return escpos.Cut()
}

// teardown unwinds an open session: end page, end document, close. All
// three steps run exactly once no matter where the job failed.
func (m *Manager) teardown(name string, transport Transport) {
	if err := transport.EndPage(); err != nil {
		m.logger.Warn("End page failed during teardown",
			zap.String("printer", name), zap.Error(err))
	}
	if err := transport.EndDocument(); err != nil {
		m.logger.Warn("End document failed during teardown",
			zap.String("printer", name), zap.Error(err))
	}
	if err := transport.Close(); err != nil {
		m.logger.Warn("Close failed during teardown",
			zap.String("printer", name), zap.Error(err))
	}
}
