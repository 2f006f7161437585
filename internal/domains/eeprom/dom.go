package eeprom

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

type measurement int

const (
	measureTemperature measurement = iota
	measureVoltage
	measureBias
	measurePower
)

type threshold struct {
	offset int
	key    string
	kind   measurement
}

// SFF-8472 table 9-5, A2h bytes 0-39.
var sfpThresholds = []threshold{
	{0, "TempHighAlarm", measureTemperature},
	{2, "TempLowAlarm", measureTemperature},
	{4, "TempHighWarning", measureTemperature},
	{6, "TempLowWarning", measureTemperature},
	{8, "VccHighAlarm", measureVoltage},
	{10, "VccLowAlarm", measureVoltage},
	{12, "VccHighWarning", measureVoltage},
	{14, "VccLowWarning", measureVoltage},
	{16, "BiasHighAlarm", measureBias},
	{18, "BiasLowAlarm", measureBias},
	{20, "BiasHighWarning", measureBias},
	{22, "BiasLowWarning", measureBias},
	{24, "TXPowerHighAlarm", measurePower},
	{26, "TXPowerLowAlarm", measurePower},
	{28, "TXPowerHighWarning", measurePower},
	{30, "TXPowerLowWarning", measurePower},
	{32, "RXPowerHighAlarm", measurePower},
	{34, "RXPowerLowAlarm", measurePower},
	{36, "RXPowerHighWarning", measurePower},
	{38, "RXPowerLowWarning", measurePower},
}

// SFF-8472 table 9-11, A2h byte 110.
var sfpStatusControl = []bitName{
	{0x80, "TXDisableState"},
	{0x40, "SoftTXDisableSelect"},
	{0x20, "RS1State"},
	{0x10, "RateSelectState"},
	{0x08, "SoftRateSelect"},
	{0x04, "TXFaultState"},
	{0x02, "RXLOSState"},
	{0x01, "DataReadyBarState"},
}

func decodeSFPDOM(page []byte) (fields entities.EEPROMFields, err error) {
	if len(page) < sfpDOMMinLength {
		return nil, fmt.Errorf("decodeSFPDOM: %w: got %d bytes, need %d", errs.ErrShortEEPROM, len(page), sfpDOMMinLength)
	}

	thresholds := make(entities.EEPROMFields, len(sfpThresholds))
	for _, item := range sfpThresholds {
		thresholds[item.key] = formatMeasurement(item.kind, page[item.offset:item.offset+2])
	}

	status := make(entities.EEPROMFields, len(sfpStatusControl))
	for _, item := range sfpStatusControl {
		status[item.name] = onOff(page[110]&item.mask != 0)
	}

	return entities.EEPROMFields{
		"AwThresholds": thresholds,
		"MonitorData": entities.EEPROMFields{
			"Temperature": formatMeasurement(measureTemperature, page[96:98]),
			"Vcc":         formatMeasurement(measureVoltage, page[98:100]),
			"TXBias":      formatMeasurement(measureBias, page[100:102]),
			"TXPower":     formatMeasurement(measurePower, page[102:104]),
			"RXPower":     formatMeasurement(measurePower, page[104:106]),
		},
		"StatusControl": status,
	}, nil
}

// decodeQSFPDOM reads SFF-8636 lower page monitors for the four channels.
func decodeQSFPDOM(image []byte) entities.EEPROMFields {
	monitor := entities.EEPROMFields{
		"Temperature": formatMeasurement(measureTemperature, image[22:24]),
		"Vcc":         formatMeasurement(measureVoltage, image[26:28]),
	}

	for channel := 0; channel < 4; channel++ {
		offset := channel * 2
		monitor[fmt.Sprintf("RX%dPower", channel+1)] = formatMeasurement(measurePower, image[34+offset:36+offset])
		monitor[fmt.Sprintf("TX%dBias", channel+1)] = formatMeasurement(measureBias, image[42+offset:44+offset])
		monitor[fmt.Sprintf("TX%dPower", channel+1)] = formatMeasurement(measurePower, image[50+offset:52+offset])
	}

	return entities.EEPROMFields{
		"MonitorData": monitor,
	}
}

func formatMeasurement(kind measurement, raw []byte) string {
	value := binary.BigEndian.Uint16(raw)
	switch kind {
	case measureTemperature:
		return fmt.Sprintf("%.4fC", float64(int16(value))/256)
	case measureVoltage:
		return fmt.Sprintf("%.4fVolts", float64(value)/10000)
	case measureBias:
		return fmt.Sprintf("%.4fmA", float64(value)*0.002)
	default:
		return powerInDBm(float64(value) / 10000)
	}
}

func powerInDBm(milliwatts float64) string {
	if milliwatts <= 0 {
		return "-inf"
	}

	return fmt.Sprintf("%.4fdBm", 10*math.Log10(milliwatts))
}

func onOff(value bool) string {
	if value {
		return "On"
	}

	return "Off"
}
