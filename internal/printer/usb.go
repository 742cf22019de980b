// internal/printer/usb.go
package printer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"receipt-service/internal/config"
)

// USBTransport implements Transport for USB printers via a bulk-out
// endpoint.
type USBTransport struct {
	config   config.PrinterConfig
	ctx      *gousb.Context
	device   *gousb.Device
	intf     *gousb.Interface
	intfDone func()
	outEndpt *gousb.OutEndpoint
	logger   *zap.Logger
	mutex    sync.RWMutex
	isOpen   bool
}

// NewUSBTransport creates a new USB transport
func NewUSBTransport(cfg config.PrinterConfig, logger *zap.Logger) *USBTransport {
	if cfg.Endpoint == 0 {
		cfg.Endpoint = 1
	}
	return &USBTransport{
		config: cfg,
		logger: logger.With(
			zap.String("transport", "usb"),
			zap.String("vendor_id", cfg.VendorID),
			zap.String("product_id", cfg.ProductID),
		),
	}
}

// Open opens the USB connection
func (ut *USBTransport) Open(ctx context.Context) error {
	ut.mutex.Lock()
	defer ut.mutex.Unlock()

	if ut.isOpen {
		return nil
	}

	vendorID, err := parseHexID(ut.config.VendorID)
	if err != nil {
		return fmt.Errorf("invalid vendor ID: %w", err)
	}

	productID, err := parseHexID(ut.config.ProductID)
	if err != nil {
		return fmt.Errorf("invalid product ID: %w", err)
	}

	ut.ctx = gousb.NewContext()

	device, err := ut.findAndOpenDevice(vendorID, productID)
	if err != nil {
		ut.ctx.Close()
		ut.ctx = nil
		return fmt.Errorf("failed to find USB device: %w", err)
	}

	intf, done, err := device.DefaultInterface()
	if err != nil {
		device.Close()
		ut.ctx.Close()
		ut.ctx = nil
		return fmt.Errorf("failed to claim interface: %w", err)
	}

	outEndpt, err := intf.OutEndpoint(ut.config.Endpoint)
	if err != nil {
		done()
		device.Close()
		ut.ctx.Close()
		ut.ctx = nil
		return fmt.Errorf("failed to get out endpoint: %w", err)
	}

	ut.device = device
	ut.intf = intf
	ut.intfDone = done
	ut.outEndpt = outEndpt
	ut.isOpen = true

	ut.logger.Debug("USB connection opened")
	return nil
}

// Close closes the USB connection
func (ut *USBTransport) Close() error {
	ut.mutex.Lock()
	defer ut.mutex.Unlock()

	if !ut.isOpen {
		return nil
	}

	if ut.intfDone != nil {
		ut.intfDone()
		ut.intfDone = nil
	}
	ut.intf = nil

	if ut.device != nil {
		ut.device.Close()
		ut.device = nil
	}

	if ut.ctx != nil {
		ut.ctx.Close()
		ut.ctx = nil
	}

	ut.outEndpt = nil
	ut.isOpen = false

	ut.logger.Debug("USB connection closed")
	return nil
}

// IsOpen returns whether the connection is open
func (ut *USBTransport) IsOpen() bool {
	ut.mutex.RLock()
	defer ut.mutex.RUnlock()
	return ut.isOpen && ut.device != nil && ut.outEndpt != nil
}

// QueryStatus sends a realtime status request to verify the device
// accepts data.
func (ut *USBTransport) QueryStatus(ctx context.Context) error {
	return ut.Write(ctx, statusRequest)
}

// BeginDocument marks the start of a print job
func (ut *USBTransport) BeginDocument(title string) error {
	if !ut.IsOpen() {
		return fmt.Errorf("USB connection not open")
	}
	ut.logger.Info("Print job started", zap.String("title", title))
	return nil
}

// BeginPage marks the start of a page
func (ut *USBTransport) BeginPage() error {
	if !ut.IsOpen() {
		return fmt.Errorf("USB connection not open")
	}
	return nil
}

// EndPage marks the end of a page
func (ut *USBTransport) EndPage() error {
	if !ut.IsOpen() {
		return fmt.Errorf("USB connection not open")
	}
	return nil
}

// EndDocument marks the end of a print job
func (ut *USBTransport) EndDocument() error {
	if !ut.IsOpen() {
		return fmt.Errorf("USB connection not open")
	}
	ut.logger.Info("Print job ended")
	return nil
}

// Write writes data to the USB connection
func (ut *USBTransport) Write(ctx context.Context, data []byte) error {
	ut.mutex.RLock()
	defer ut.mutex.RUnlock()

	if !ut.isOpen || ut.outEndpt == nil {
		return fmt.Errorf("USB connection not open")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	n, err := ut.outEndpt.Write(data)
	if err != nil {
		ut.logger.Error("USB write failed", zap.Error(err))
		return fmt.Errorf("failed to write to USB device: %w", err)
	}

	if n != len(data) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(data))
	}

	ut.logger.Debug("USB write completed", zap.Int("bytes", len(data)))
	return nil
}

// findAndOpenDevice finds and opens the USB device
func (ut *USBTransport) findAndOpenDevice(vendorID, productID gousb.ID) (*gousb.Device, error) {
	devices, err := ut.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == vendorID && desc.Product == productID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("USB device not found (VID: %04X, PID: %04X)", uint16(vendorID), uint16(productID))
	}

	if len(devices) > 1 {
		for i := 1; i < len(devices); i++ {
			devices[i].Close()
		}
		ut.logger.Warn("Multiple matching USB devices found, using first one")
	}

	return devices[0], nil
}

// parseHexID parses a hex ID string (0x1234 or 1234)
func parseHexID(hexStr string) (gousb.ID, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")

	id, err := strconv.ParseUint(hexStr, 16, 16)
	if err != nil {
		return 0, err
	}

	return gousb.ID(id), nil
}
