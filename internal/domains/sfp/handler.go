package sfp

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
	"github.com/Fivegen-LLC/sfputil/internal/objects/bo"
)

const (
	notImplementedMessage = "This functionality is currently not implemented for this platform"
)

// EEPROMOptions selects ports and output format of show eeprom.
type EEPROMOptions struct {
	Port    string
	DumpDOM bool
	Oneline bool
	Raw     bool
}

type Handler struct {
	service *Service

	ifaceDataExclude []string
	domDataExclude   []string
}

func NewHandler(service *Service, ifaceDataExclude, domDataExclude []string) *Handler {
	return &Handler{
		service: service,

		ifaceDataExclude: ifaceDataExclude,
		domDataExclude:   domDataExclude,
	}
}

// reportError prints the operator message for a classified error and passes err through.
func (h *Handler) reportError(w io.Writer, port string, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidPort):
		fmt.Fprintf(w, "Error: invalid port '%s'\n\n", port)
		fmt.Fprintf(w, "Valid values for port: %s\n\n", strings.Join(h.service.ValidPorts(), ", "))
	case errors.Is(err, errs.ErrNotImplemented):
		fmt.Fprintln(w, notImplementedMessage)
	}

	log.Error().
		Err(err).
		Str("port", port).
		Msg("sfputil command failed")

	return err
}

// ShowEEPROM prints EEPROM data of one port, or of all ports when opts.Port is empty.
func (h *Handler) ShowEEPROM(w io.Writer, opts EEPROMOptions) (err error) {
	ports, err := h.service.SelectPorts(opts.Port)
	if err != nil {
		return h.reportError(w, opts.Port, fmt.Errorf("ShowEEPROM: %w", err))
	}

	for _, port := range ports {
		output, renderErr := h.renderEEPROM(port, opts)
		if renderErr != nil {
			return h.reportError(w, port, fmt.Errorf("ShowEEPROM: %w", renderErr))
		}

		fmt.Fprint(w, output)
	}

	fmt.Fprintln(w)

	return nil
}

func (h *Handler) renderEEPROM(port string, opts EEPROMOptions) (output string, err error) {
	switch {
	case opts.Raw:
		lanes, err := h.service.FetchRaw(port)
		if err != nil {
			return output, fmt.Errorf("renderEEPROM: %w", err)
		}

		return formatEEPROMRaw(lanes) + "\n", nil
	case opts.Oneline:
		lanes, err := h.service.FetchEEPROM(port)
		if err != nil {
			return output, fmt.Errorf("renderEEPROM: %w", err)
		}

		return formatEEPROMOneline(lanes, h.ifaceDataExclude, h.domDataExclude, opts.DumpDOM), nil
	default:
		lanes, err := h.service.FetchEEPROM(port)
		if err != nil {
			return output, fmt.Errorf("renderEEPROM: %w", err)
		}

		return formatEEPROMPretty(lanes, opts.DumpDOM), nil
	}
}

// ShowPresence prints a presence table for one port, or all ports when port is empty.
func (h *Handler) ShowPresence(w io.Writer, port string) (err error) {
	lanes, failedPort, err := h.collectStates(port, h.service.FetchPresence)
	if err != nil {
		return h.reportError(w, failedPort, fmt.Errorf("ShowPresence: %w", err))
	}

	fmt.Fprintln(w, formatLaneStates(presenceHeader, lanes, "Present", "Not present"))

	return nil
}

// ShowLowPowerMode prints a low-power mode table for one port, or all ports when port is empty.
func (h *Handler) ShowLowPowerMode(w io.Writer, port string) (err error) {
	lanes, failedPort, err := h.collectStates(port, h.service.FetchLowPowerMode)
	if err != nil {
		return h.reportError(w, failedPort, fmt.Errorf("ShowLowPowerMode: %w", err))
	}

	fmt.Fprintln(w, formatLaneStates(lpmodeHeader, lanes, "On", "Off"))

	return nil
}

// collectStates fetches every selected port; on failure failedPort names the port that failed.
func (h *Handler) collectStates(
	port string,
	fetch func(port string) ([]bo.LaneState, error),
) (result []bo.LaneState, failedPort string, err error) {
	ports, err := h.service.SelectPorts(port)
	if err != nil {
		return nil, port, fmt.Errorf("collectStates: %w", err)
	}

	for _, logicalPort := range ports {
		lanes, err := fetch(logicalPort)
		if err != nil {
			return nil, logicalPort, fmt.Errorf("collectStates: %w", err)
		}

		result = append(result, lanes...)
	}

	return result, "", nil
}

// SetLowPowerMode switches low-power mode on every lane of port, stopping at the first unsupported lane.
func (h *Handler) SetLowPowerMode(w io.Writer, port string, enable bool) (err error) {
	lanes, err := h.resolveValid(port)
	if err != nil {
		return h.reportError(w, port, fmt.Errorf("SetLowPowerMode: %w", err))
	}

	action := lo.Ternary(enable, "Enabling", "Disabling")
	for _, lane := range lanes {
		fmt.Fprintf(w, "%s low-power mode for port %s... ", action, lane.DisplayName)

		ok, err := h.service.SetLowPowerMode(lane, enable)
		if err != nil {
			return h.reportError(w, port, fmt.Errorf("SetLowPowerMode: %w", err))
		}

		fmt.Fprintln(w, lo.Ternary(ok, "OK", "Failed"))
	}

	return nil
}

// Reset resets every lane of port, stopping at the first unsupported lane.
func (h *Handler) Reset(w io.Writer, port string) (err error) {
	lanes, err := h.resolveValid(port)
	if err != nil {
		return h.reportError(w, port, fmt.Errorf("Reset: %w", err))
	}

	for _, lane := range lanes {
		fmt.Fprintf(w, "Resetting port %s... ", lane.DisplayName)

		ok, err := h.service.Reset(lane)
		if err != nil {
			return h.reportError(w, port, fmt.Errorf("Reset: %w", err))
		}

		fmt.Fprintln(w, lo.Ternary(ok, "OK", "Failed"))
	}

	return nil
}

func (h *Handler) resolveValid(port string) (lanes bo.Lanes, err error) {
	if err = h.service.ValidatePort(port); err != nil {
		return nil, fmt.Errorf("resolveValid: %w", err)
	}

	if lanes, err = h.service.Resolve(port); err != nil {
		return nil, fmt.Errorf("resolveValid: %w", err)
	}

	return lanes, nil
}

func (h *Handler) Version(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s version %s\n", constants.AppName, constants.AppVersion)
	return err
}
