package environment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
)

type Environment struct {
	Platform
	App
	Output
}

type Platform struct {
	Name           string `validate:"required"`
	Root           string `validate:"required"`
	HwSKU          string
	NumASICs       int    `validate:"min=1"`
	PortConfigPath string `validate:"required"`
	PortPrefix     string `validate:"required"`
}

type App struct {
	LogfilePath string `validate:"required"`
	LogLevel    string `validate:"oneof=trace debug info warn error fatal panic disabled"`
}

type Output struct {
	IfaceDataExclude []string
	DOMDataExclude   []string
}

// New loads environment from SFPUTIL_* variables, falling back to machineConfPath
// for the platform identifier.
func New(machineConfPath string) (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix("SFPUTIL")
	v.AutomaticEnv()

	// platform
	e.Platform.Name = v.GetString("PLATFORM")
	if lo.IsEmpty(e.Platform.Name) {
		if e.Platform.Name, err = readMachinePlatform(machineConfPath); err != nil {
			return e, fmt.Errorf("New: %w", err)
		}
	}

	e.Platform.Root = lo.CoalesceOrEmpty(v.GetString("PLATFORM_ROOT"), constants.DefaultPlatformRoot)
	e.Platform.HwSKU = v.GetString("HWSKU")
	e.Platform.NumASICs = max(v.GetInt("NUM_ASICS"), 1)
	e.Platform.PortPrefix = lo.CoalesceOrEmpty(v.GetString("PORT_PREFIX"), constants.DefaultLogicalPortPrefix)
	e.Platform.PortConfigPath = v.GetString("PORT_CONFIG")
	if lo.IsEmpty(e.Platform.PortConfigPath) {
		e.Platform.PortConfigPath = filepath.Join(e.HwSKUDir(), constants.PortConfigFileName)
	}

	// app settings
	e.App.LogfilePath = lo.CoalesceOrEmpty(v.GetString("LOG_FILE"), constants.DefaultLogfilePath)
	e.App.LogLevel = lo.CoalesceOrEmpty(v.GetString("LOG_LEVEL"), constants.DefaultLogLevel)

	// oneline output filters
	e.Output.IfaceDataExclude = splitList(v.GetString("IFACE_EXCLUDE"), constants.DefaultIfaceDataExclude)
	e.Output.DOMDataExclude = splitList(v.GetString("DOM_EXCLUDE"), constants.DefaultDOMDataExclude)

	if err = validator.New().Struct(e); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

// PlatformDir returns the directory holding the platform's device files.
func (p Platform) PlatformDir() string {
	return filepath.Join(p.Root, p.Name)
}

// HwSKUDir returns the hardware SKU directory, or the platform directory when no SKU is set.
func (p Platform) HwSKUDir() string {
	if lo.IsEmpty(p.HwSKU) {
		return p.PlatformDir()
	}

	return filepath.Join(p.PlatformDir(), p.HwSKU)
}

// IsMultiASIC reports whether port tables are split per ASIC.
func (p Platform) IsMultiASIC() bool {
	return p.NumASICs > 1
}

func readMachinePlatform(path string) (platform string, err error) {
	if _, err = os.Stat(path); err != nil {
		return platform, fmt.Errorf("readMachinePlatform: platform is not set and %s is unavailable: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err = v.ReadInConfig(); err != nil {
		return platform, fmt.Errorf("readMachinePlatform: %w", err)
	}

	platform = v.GetString("onie_platform")
	if lo.IsEmpty(platform) {
		platform = v.GetString("aboot_platform")
	}

	if lo.IsEmpty(platform) {
		return platform, errors.New("readMachinePlatform: platform identifier not found")
	}

	return platform, nil
}

func splitList(value string, defaults []string) []string {
	if lo.IsEmpty(strings.TrimSpace(value)) {
		return append([]string(nil), defaults...)
	}

	items := lo.Map(strings.Split(value, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})

	return lo.Compact(items)
}
