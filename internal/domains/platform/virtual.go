package platform

import (
	"fmt"

	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

// VirtualDriver backs platforms without pluggable optics: nothing is ever present.
type VirtualDriver struct{}

func NewVirtualDriver() *VirtualDriver {
	return &VirtualDriver{}
}

func (d *VirtualDriver) GetPresence(int) (bool, error) {
	return false, nil
}

func (d *VirtualDriver) ReadEEPROM(port int) ([]byte, error) {
	return nil, fmt.Errorf("ReadEEPROM: port %d: %w", port, errs.ErrNotPresent)
}

func (d *VirtualDriver) ReadDOM(int) ([]byte, error) {
	return nil, nil
}

func (d *VirtualDriver) GetLowPowerMode(int) (bool, error) {
	return false, fmt.Errorf("GetLowPowerMode: %w", errs.ErrNotImplemented)
}

func (d *VirtualDriver) SetLowPowerMode(int, bool) (bool, error) {
	return false, fmt.Errorf("SetLowPowerMode: %w", errs.ErrNotImplemented)
}

func (d *VirtualDriver) Reset(int) (bool, error) {
	return false, fmt.Errorf("Reset: %w", errs.ErrNotImplemented)
}
