package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Descriptor is the per-platform plugin file, <platform>/plugins/sfputil.yaml.
type Descriptor struct {
	Name   string       `yaml:"name" validate:"required"`
	Driver string       `yaml:"driver" validate:"required,oneof=sysfs http virtual"`
	Sysfs  *SysfsConfig `yaml:"sysfs,omitempty" validate:"required_if=Driver sysfs"`
	HTTP   *HTTPConfig  `yaml:"http,omitempty" validate:"required_if=Driver http"`
}

// SysfsConfig lists the files exported by the platform drivers for every port.
type SysfsConfig struct {
	Ports     []SysfsPort   `yaml:"ports,omitempty" validate:"dive"`
	Range     *SysfsRange   `yaml:"range,omitempty"`
	ActiveLow bool          `yaml:"activeLow"`
	ResetHold time.Duration `yaml:"resetHold"`
}

type SysfsPort struct {
	Index    int    `yaml:"index" validate:"min=0"`
	EEPROM   string `yaml:"eeprom" validate:"required"`
	DOM      string `yaml:"dom,omitempty"`
	Presence string `yaml:"presence,omitempty"`
	LPMode   string `yaml:"lpmode,omitempty"`
	Reset    string `yaml:"reset,omitempty"`
}

// SysfsRange generates ports start..end; paths may use {port} and {bus} placeholders.
type SysfsRange struct {
	Start     int    `yaml:"start" validate:"min=0"`
	End       int    `yaml:"end" validate:"gtefield=Start"`
	BusOffset int    `yaml:"busOffset"`
	EEPROM    string `yaml:"eeprom" validate:"required"`
	DOM       string `yaml:"dom,omitempty"`
	Presence  string `yaml:"presence,omitempty"`
	LPMode    string `yaml:"lpmode,omitempty"`
	Reset     string `yaml:"reset,omitempty"`
}

// HTTPConfig points at a platform management daemon.
type HTTPConfig struct {
	BaseURL string        `yaml:"baseURL" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoadDescriptor reads and validates a platform descriptor file.
func LoadDescriptor(path string) (descriptor Descriptor, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return descriptor, fmt.Errorf("LoadDescriptor: %w", err)
	}

	if err = yaml.Unmarshal(data, &descriptor); err != nil {
		return descriptor, fmt.Errorf("LoadDescriptor: failed to parse %s: %w", path, err)
	}

	if err = validator.New().Struct(descriptor); err != nil {
		return descriptor, fmt.Errorf("LoadDescriptor: %s: %w", path, err)
	}

	return descriptor, nil
}

// portFiles merges range-generated ports with explicit entries; explicit entries win.
func (c SysfsConfig) portFiles() map[int]SysfsPort {
	ports := make(map[int]SysfsPort)
	if c.Range != nil {
		for index := c.Range.Start; index <= c.Range.End; index++ {
			replacer := strings.NewReplacer(
				"{port}", strconv.Itoa(index),
				"{bus}", strconv.Itoa(index+c.Range.BusOffset),
			)
			ports[index] = SysfsPort{
				Index:    index,
				EEPROM:   replacer.Replace(c.Range.EEPROM),
				DOM:      replacer.Replace(c.Range.DOM),
				Presence: replacer.Replace(c.Range.Presence),
				LPMode:   replacer.Replace(c.Range.LPMode),
				Reset:    replacer.Replace(c.Range.Reset),
			}
		}
	}

	for _, port := range c.Ports {
		ports[port.Index] = port
	}

	return ports
}
