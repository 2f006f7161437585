package platform

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

const (
	eepromPageSize = 256
	sysfsOn        = "1"
	sysfsOff       = "0"
)

// SysfsDriver accesses transceivers through files exported by platform kernel modules.
type SysfsDriver struct {
	ports     map[int]SysfsPort
	activeLow bool
	resetHold time.Duration
}

func NewSysfsDriver(cfg SysfsConfig) *SysfsDriver {
	return &SysfsDriver{
		ports:     cfg.portFiles(),
		activeLow: cfg.ActiveLow,
		resetHold: cfg.ResetHold,
	}
}

func (d *SysfsDriver) port(index int) (port SysfsPort, err error) {
	port, ok := d.ports[index]
	if !ok {
		return port, fmt.Errorf("port: %w: physical port %d", errs.ErrInvalidPort, index)
	}

	return port, nil
}

// GetPresence reads the presence file, or probes the EEPROM when the platform exports none.
func (d *SysfsDriver) GetPresence(index int) (present bool, err error) {
	port, err := d.port(index)
	if err != nil {
		return false, fmt.Errorf("GetPresence: %w", err)
	}

	if lo.IsEmpty(port.Presence) {
		_, readErr := readPage(port.EEPROM, 1)
		return readErr == nil, nil
	}

	value, err := readFlag(port.Presence)
	if err != nil {
		return false, fmt.Errorf("GetPresence: %w", err)
	}

	return value != d.activeLow, nil
}

func (d *SysfsDriver) ReadEEPROM(index int) (data []byte, err error) {
	port, err := d.port(index)
	if err != nil {
		return nil, fmt.Errorf("ReadEEPROM: %w", err)
	}

	if data, err = readPage(port.EEPROM, eepromPageSize); err != nil {
		return nil, fmt.Errorf("ReadEEPROM: %w", err)
	}

	return data, nil
}

// ReadDOM returns the A2h page, or nil when the port has none.
func (d *SysfsDriver) ReadDOM(index int) (data []byte, err error) {
	port, err := d.port(index)
	if err != nil {
		return nil, fmt.Errorf("ReadDOM: %w", err)
	}

	if lo.IsEmpty(port.DOM) {
		return nil, nil
	}

	if data, err = readPage(port.DOM, eepromPageSize); err != nil {
		return nil, fmt.Errorf("ReadDOM: %w", err)
	}

	return data, nil
}

func (d *SysfsDriver) GetLowPowerMode(index int) (enabled bool, err error) {
	port, err := d.port(index)
	if err != nil {
		return false, fmt.Errorf("GetLowPowerMode: %w", err)
	}

	if lo.IsEmpty(port.LPMode) {
		return false, fmt.Errorf("GetLowPowerMode: %w", errs.ErrNotImplemented)
	}

	if enabled, err = readFlag(port.LPMode); err != nil {
		return false, fmt.Errorf("GetLowPowerMode: %w", err)
	}

	return enabled, nil
}

func (d *SysfsDriver) SetLowPowerMode(index int, enable bool) (ok bool, err error) {
	port, err := d.port(index)
	if err != nil {
		return false, fmt.Errorf("SetLowPowerMode: %w", err)
	}

	if lo.IsEmpty(port.LPMode) {
		return false, fmt.Errorf("SetLowPowerMode: %w", errs.ErrNotImplemented)
	}

	if err = writeFlag(port.LPMode, enable); err != nil {
		log.Error().Err(err).Int("port", index).Msg("SetLowPowerMode")
		return false, nil
	}

	return true, nil
}

// Reset asserts the reset line for the configured hold time and releases it.
func (d *SysfsDriver) Reset(index int) (ok bool, err error) {
	port, err := d.port(index)
	if err != nil {
		return false, fmt.Errorf("Reset: %w", err)
	}

	if lo.IsEmpty(port.Reset) {
		return false, fmt.Errorf("Reset: %w", errs.ErrNotImplemented)
	}

	if err = writeFlag(port.Reset, true); err != nil {
		log.Error().Err(err).Int("port", index).Msg("Reset: assert")
		return false, nil
	}

	time.Sleep(d.resetHold)

	if err = writeFlag(port.Reset, false); err != nil {
		log.Error().Err(err).Int("port", index).Msg("Reset: release")
		return false, nil
	}

	return true, nil
}

func readPage(path string, size int64) (data []byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readPage: %w", err)
	}
	defer file.Close()

	if data, err = io.ReadAll(io.LimitReader(file, size)); err != nil {
		return nil, fmt.Errorf("readPage: %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("readPage: %s: empty eeprom", path)
	}

	return data, nil
}

func readFlag(path string) (value bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("readFlag: %w", err)
	}

	switch strings.TrimSpace(string(data)) {
	case sysfsOn:
		return true, nil
	case sysfsOff:
		return false, nil
	default:
		return false, fmt.Errorf("readFlag: %s: unexpected value %q", path, strings.TrimSpace(string(data)))
	}
}

// writeFlag writes to an existing attribute file; sysfs attributes are never created.
func writeFlag(path string, value bool) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("writeFlag: %w", err)
	}
	defer file.Close()

	if _, err = file.WriteString(lo.Ternary(value, sysfsOn, sysfsOff)); err != nil {
		return fmt.Errorf("writeFlag: %s: %w", path, err)
	}

	return nil
}
