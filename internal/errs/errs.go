package errs

import (
	"errors"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
)

var (
	ErrInvalidPort    = errors.New("invalid port")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotPresent     = errors.New("transceiver not present")
)

var (
	ErrPrivilege     = errors.New("root privileges are required")
	ErrPlatformLoad  = errors.New("platform module load failure")
	ErrPortTableLoad = errors.New("port table load failure")
)

var (
	ErrUnknownDriver = errors.New("unknown platform driver")
	ErrShortEEPROM   = errors.New("eeprom image too short")
	ErrAPIError      = errors.New("api error")
)

// ExitCode maps an error chain to the process exit code contract.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return constants.ExitCodeOK
	case errors.Is(err, ErrPrivilege):
		return constants.ExitCodePrivilege
	case errors.Is(err, ErrPlatformLoad):
		return constants.ExitCodePlatformLoad
	case errors.Is(err, ErrPortTableLoad):
		return constants.ExitCodePortTableLoad
	case errors.Is(err, ErrInvalidPort):
		return constants.ExitCodeInvalidPort
	case errors.Is(err, ErrNotImplemented):
		return constants.ExitCodeNotImplemented
	default:
		return constants.ExitCodeFailure
	}
}
