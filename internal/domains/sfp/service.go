package sfp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
	"github.com/Fivegen-LLC/sfputil/internal/objects/bo"
)

type (
	// ISfpUtil is the platform capability set: port table lookups plus transceiver access.
	ISfpUtil interface {
		Prefix() string
		Logical() []string
		IsLogicalPort(name string) bool
		IsValidPort(name string) bool
		GetLogicalToPhysical(name string) (physicalPorts []int, err error)

		GetPresence(port int) (present bool, err error)
		GetEEPROMDict(port int) (record *entities.EEPROMRecord, err error)
		GetEEPROMRaw(port int) (data []byte, err error)
		GetLowPowerMode(port int) (enabled bool, err error)
		SetLowPowerMode(port int, enable bool) (ok bool, err error)
		Reset(port int) (ok bool, err error)
	}

	Service struct {
		sfpUtil ISfpUtil
	}
)

func NewService(sfpUtil ISfpUtil) *Service {
	return &Service{
		sfpUtil: sfpUtil,
	}
}

// ValidPorts returns every logical port name the platform knows.
func (s *Service) ValidPorts() []string {
	return s.sfpUtil.Logical()
}

// SelectPorts returns all logical ports when port is empty, otherwise the validated port itself.
func (s *Service) SelectPorts(port string) (ports []string, err error) {
	if port == "" {
		return s.sfpUtil.Logical(), nil
	}

	if err = s.ValidatePort(port); err != nil {
		return nil, fmt.Errorf("SelectPorts: %w", err)
	}

	return []string{port}, nil
}

// ValidatePort accepts a logical port name or a physical index present in the port table.
func (s *Service) ValidatePort(port string) error {
	if !s.sfpUtil.IsValidPort(port) {
		return fmt.Errorf("ValidatePort: %w: %s", errs.ErrInvalidPort, port)
	}

	return nil
}

// Resolve maps a logical port to its lanes in port table order.
// Identifiers without the logical prefix address a physical port directly.
func (s *Service) Resolve(port string) (lanes bo.Lanes, err error) {
	if !strings.HasPrefix(port, s.sfpUtil.Prefix()) {
		physicalPort, convErr := strconv.Atoi(port)
		if convErr != nil {
			return nil, fmt.Errorf("Resolve: %w: %s", errs.ErrInvalidPort, port)
		}

		return bo.NewLanes(port, []int{physicalPort}), nil
	}

	if !s.sfpUtil.IsLogicalPort(port) {
		return nil, fmt.Errorf("Resolve: %w: %s", errs.ErrInvalidPort, port)
	}

	physicalPorts, err := s.sfpUtil.GetLogicalToPhysical(port)
	if err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}

	if len(physicalPorts) == 0 {
		return nil, fmt.Errorf("Resolve: %w: no physical ports for %s", errs.ErrInvalidPort, port)
	}

	return bo.NewLanes(port, physicalPorts), nil
}

// FetchEEPROM reads the parsed EEPROM of every lane of port.
func (s *Service) FetchEEPROM(port string) (result []bo.LaneEEPROM, err error) {
	lanes, err := s.Resolve(port)
	if err != nil {
		return nil, fmt.Errorf("FetchEEPROM: %w", err)
	}

	for _, lane := range lanes {
		present, err := s.sfpUtil.GetPresence(lane.Physical)
		if err != nil {
			return nil, fmt.Errorf("FetchEEPROM: %s: %w", lane.DisplayName, err)
		}

		var record *entities.EEPROMRecord
		if present {
			if record, err = s.sfpUtil.GetEEPROMDict(lane.Physical); err != nil {
				return nil, fmt.Errorf("FetchEEPROM: %s: %w", lane.DisplayName, err)
			}
		}

		result = append(result, bo.LaneEEPROM{
			Lane:   lane,
			Record: record,
		})
	}

	return result, nil
}

// FetchRaw reads the unparsed identity image of every lane of port.
func (s *Service) FetchRaw(port string) (result []bo.LaneRaw, err error) {
	lanes, err := s.Resolve(port)
	if err != nil {
		return nil, fmt.Errorf("FetchRaw: %w", err)
	}

	for _, lane := range lanes {
		present, err := s.sfpUtil.GetPresence(lane.Physical)
		if err != nil {
			return nil, fmt.Errorf("FetchRaw: %s: %w", lane.DisplayName, err)
		}

		var data []byte
		if present {
			if data, err = s.sfpUtil.GetEEPROMRaw(lane.Physical); err != nil {
				return nil, fmt.Errorf("FetchRaw: %s: %w", lane.DisplayName, err)
			}
		}

		result = append(result, bo.LaneRaw{
			Lane: lane,
			Data: data,
		})
	}

	return result, nil
}

// FetchPresence reports module presence for every lane of port.
func (s *Service) FetchPresence(port string) (result []bo.LaneState, err error) {
	if result, err = s.fetchState(port, s.sfpUtil.GetPresence); err != nil {
		return nil, fmt.Errorf("FetchPresence: %w", err)
	}

	return result, nil
}

// FetchLowPowerMode reports low-power mode for every lane of port.
func (s *Service) FetchLowPowerMode(port string) (result []bo.LaneState, err error) {
	if result, err = s.fetchState(port, s.sfpUtil.GetLowPowerMode); err != nil {
		return nil, fmt.Errorf("FetchLowPowerMode: %w", err)
	}

	return result, nil
}

func (s *Service) fetchState(port string, get func(port int) (bool, error)) (result []bo.LaneState, err error) {
	lanes, err := s.Resolve(port)
	if err != nil {
		return nil, fmt.Errorf("fetchState: %w", err)
	}

	for _, lane := range lanes {
		enabled, err := get(lane.Physical)
		if err != nil {
			return nil, fmt.Errorf("fetchState: %s: %w", lane.DisplayName, err)
		}

		result = append(result, bo.LaneState{
			Lane:    lane,
			Enabled: enabled,
		})
	}

	return result, nil
}

func (s *Service) SetLowPowerMode(lane bo.Lane, enable bool) (ok bool, err error) {
	if ok, err = s.sfpUtil.SetLowPowerMode(lane.Physical, enable); err != nil {
		return false, fmt.Errorf("SetLowPowerMode: %s: %w", lane.DisplayName, err)
	}

	log.Info().
		Str("port", lane.DisplayName).
		Int("physical", lane.Physical).
		Bool("enable", enable).
		Bool("ok", ok).
		Msg("SetLowPowerMode: low-power mode changed")

	return ok, nil
}

func (s *Service) Reset(lane bo.Lane) (ok bool, err error) {
	if ok, err = s.sfpUtil.Reset(lane.Physical); err != nil {
		return false, fmt.Errorf("Reset: %s: %w", lane.DisplayName, err)
	}

	log.Info().
		Str("port", lane.DisplayName).
		Int("physical", lane.Physical).
		Bool("ok", ok).
		Msg("Reset: transceiver reset")

	return ok, nil
}
