package platform

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
	"github.com/Fivegen-LLC/sfputil/internal/domains/eeprom"
	"github.com/Fivegen-LLC/sfputil/internal/domains/porttab"
	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

type (
	// IDriver is the device half of a platform: transceiver access by physical port.
	IDriver interface {
		GetPresence(port int) (present bool, err error)
		ReadEEPROM(port int) (data []byte, err error)
		ReadDOM(port int) (data []byte, err error)
		GetLowPowerMode(port int) (enabled bool, err error)
		SetLowPowerMode(port int, enable bool) (ok bool, err error)
		Reset(port int) (ok bool, err error)
	}

	driverFactory func(descriptor Descriptor) (driver IDriver, err error)
)

var (
	drivers = map[string]driverFactory{
		constants.DriverSysfs: func(descriptor Descriptor) (IDriver, error) {
			return NewSysfsDriver(*descriptor.Sysfs), nil
		},
		constants.DriverHTTP: func(descriptor Descriptor) (IDriver, error) {
			return NewHTTPDriver(*descriptor.HTTP), nil
		},
		constants.DriverVirtual: func(Descriptor) (IDriver, error) {
			return NewVirtualDriver(), nil
		},
	}
)

// SfpUtil joins the port table with a platform driver.
type SfpUtil struct {
	*porttab.Table

	name   string
	driver IDriver
}

func NewSfpUtil(name string, table *porttab.Table, driver IDriver) *SfpUtil {
	return &SfpUtil{
		Table:  table,
		name:   name,
		driver: driver,
	}
}

// New instantiates the driver named by an already validated descriptor.
func New(descriptor Descriptor, table *porttab.Table) (sfpUtil *SfpUtil, err error) {
	factory, ok := drivers[descriptor.Driver]
	if !ok {
		return nil, fmt.Errorf("New: %w: %w: %s", errs.ErrPlatformLoad, errs.ErrUnknownDriver, descriptor.Driver)
	}

	driver, err := factory(descriptor)
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", errs.ErrPlatformLoad, err)
	}

	log.Debug().
		Str("platform", descriptor.Name).
		Str("driver", descriptor.Driver).
		Msg("New: platform driver loaded")

	return NewSfpUtil(descriptor.Name, table, driver), nil
}

// Name returns the platform name from the descriptor.
func (s *SfpUtil) Name() string {
	return s.name
}

func (s *SfpUtil) GetPresence(port int) (present bool, err error) {
	if present, err = s.driver.GetPresence(port); err != nil {
		return false, fmt.Errorf("GetPresence: %w", err)
	}

	return present, nil
}

// GetEEPROMRaw returns the identity image. Callers check presence first.
func (s *SfpUtil) GetEEPROMRaw(port int) (data []byte, err error) {
	if data, err = s.driver.ReadEEPROM(port); err != nil {
		return nil, fmt.Errorf("GetEEPROMRaw: %w", err)
	}

	return data, nil
}

// GetEEPROMDict returns the parsed EEPROM. Callers check presence first.
func (s *SfpUtil) GetEEPROMDict(port int) (record *entities.EEPROMRecord, err error) {
	idPage, err := s.driver.ReadEEPROM(port)
	if err != nil {
		return nil, fmt.Errorf("GetEEPROMDict: %w", err)
	}

	domPage, err := s.driver.ReadDOM(port)
	if err != nil {
		log.Warn().
			Err(err).
			Int("port", port).
			Msg("GetEEPROMDict: diagnostics page unavailable")
	}

	if record, err = eeprom.Decode(idPage, domPage); err != nil {
		return nil, fmt.Errorf("GetEEPROMDict: port %d: %w", port, err)
	}

	return record, nil
}

func (s *SfpUtil) GetLowPowerMode(port int) (enabled bool, err error) {
	if enabled, err = s.driver.GetLowPowerMode(port); err != nil {
		return false, fmt.Errorf("GetLowPowerMode: %w", err)
	}

	return enabled, nil
}

func (s *SfpUtil) SetLowPowerMode(port int, enable bool) (ok bool, err error) {
	if ok, err = s.driver.SetLowPowerMode(port, enable); err != nil {
		return false, fmt.Errorf("SetLowPowerMode: %w", err)
	}

	return ok, nil
}

func (s *SfpUtil) Reset(port int) (ok bool, err error) {
	if ok, err = s.driver.Reset(port); err != nil {
		return false, fmt.Errorf("Reset: %w", err)
	}

	return ok, nil
}
