package eeprom

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
)

const (
	identifierSFP      = 0x03
	identifierQSFP     = 0x0c
	identifierQSFPPlus = 0x0d
	identifierQSFP28   = 0x11
)

// SFF-8024 table 4-1.
var identifiers = map[byte]string{
	0x00: "Unknown or unspecified",
	0x01: "GBIC",
	0x02: "Module/connector soldered to motherboard",
	0x03: "SFP/SFP+/SFP28",
	0x0c: "QSFP",
	0x0d: "QSFP+ or later",
	0x11: "QSFP28 or later",
	0x18: "QSFP-DD Double Density 8X Pluggable Transceiver",
}

// SFF-8024 table 4-2.
var encodings = map[byte]string{
	0x00: "Unspecified",
	0x01: "8B/10B",
	0x02: "4B/5B",
	0x03: "NRZ",
	0x04: "Manchester",
	0x05: "SONET Scrambled",
	0x06: "64B/66B",
	0x07: "256B/257B",
	0x08: "PAM4",
}

// SFF-8024 table 4-3.
var connectors = map[byte]string{
	0x00: "Unknown or unspecified",
	0x01: "SC",
	0x07: "LC",
	0x0b: "Optical pigtail",
	0x0c: "MPO 1x12",
	0x0d: "MPO 2x16",
	0x21: "Copper pigtail",
	0x22: "RJ45",
	0x23: "No separable connector",
	0x24: "MXC 2x16",
}

// SFF-8024 table 4-4, byte 192 of QSFP upper page 00.
var extendedCompliance = map[byte]string{
	0x01: "100G AOC (Active Optical Cable) or 25GAUI C2M AOC",
	0x02: "100GBASE-SR4 or 25GBASE-SR",
	0x03: "100GBASE-LR4 or 25GBASE-LR",
	0x04: "100GBASE-ER4 or 25GBASE-ER",
	0x08: "100G ACC (Active Copper Cable) or 25GAUI C2M ACC",
	0x0b: "100GBASE-CR4 or 25GBASE-CR CA-L",
	0x18: "100G AOC or 25GAUI C2M AOC",
}

type bitName struct {
	mask byte
	name string
}

type bitNames []bitName

func (n bitNames) decode(value byte) string {
	names := lo.FilterMap(n, func(item bitName, _ int) (string, bool) {
		return item.name, value&item.mask != 0
	})

	return strings.Join(names, ", ")
}

type complianceByte struct {
	offset int
	key    string
	names  bitNames
}

var fibreChannelMedia = bitNames{
	{0x80, "Twin Axial Pair (TW)"},
	{0x40, "Twisted Pair (TP)"},
	{0x20, "Miniature Coax (MI)"},
	{0x10, "Video Coax (TV)"},
	{0x08, "Multimode, 62.5um (M6)"},
	{0x04, "Multimode, 50um (M5)"},
	{0x01, "Single Mode (SM)"},
}

var fibreChannelSpeed = bitNames{
	{0x80, "1200 MBytes/sec"},
	{0x40, "800 MBytes/sec"},
	{0x10, "400 MBytes/sec"},
	{0x04, "200 MBytes/sec"},
	{0x01, "100 MBytes/sec"},
}

// SFF-8472 table 5-3, offsets relative to A0h.
var sfpCompliance = []complianceByte{
	{3, "10GEthernetComplianceCode", bitNames{
		{0x80, "10GBASE-ER"},
		{0x40, "10GBASE-LRM"},
		{0x20, "10GBASE-LR"},
		{0x10, "10GBASE-SR"},
	}},
	{3, "InfinibandComplianceCode", bitNames{
		{0x08, "1X SX"},
		{0x04, "1X LX"},
		{0x02, "1X Copper Active"},
		{0x01, "1X Copper Passive"},
	}},
	{6, "EthernetComplianceCodes", bitNames{
		{0x80, "BASE-PX"},
		{0x40, "BASE-BX10"},
		{0x20, "100BASE-FX"},
		{0x10, "100BASE-LX/LX10"},
		{0x08, "1000BASE-T"},
		{0x04, "1000BASE-CX"},
		{0x02, "1000BASE-LX"},
		{0x01, "1000BASE-SX"},
	}},
	{8, "SFP+CableTechnology", bitNames{
		{0x08, "Active Cable"},
		{0x04, "Passive Cable"},
	}},
	{9, "FibreChannelTransmissionMedia", fibreChannelMedia},
	{10, "FibreChannelSpeed", fibreChannelSpeed},
}

// SFF-8636 table 6-17, offsets relative to the start of the image.
var qsfpCompliance = []complianceByte{
	{131, "10/40G Ethernet Compliance Code", bitNames{
		{0x40, "10GBASE-LRM"},
		{0x20, "10GBASE-LR"},
		{0x10, "10GBASE-SR"},
		{0x08, "40GBASE-CR4"},
		{0x04, "40GBASE-SR4"},
		{0x02, "40GBASE-LR4"},
		{0x01, "40G Active Cable (XLPPI)"},
	}},
	{134, "Gigabit Ethernet Compliant codes", bitNames{
		{0x08, "1000BASE-T"},
		{0x04, "1000BASE-CX"},
		{0x02, "1000BASE-LX"},
		{0x01, "1000BASE-SX"},
	}},
	{137, "Fibre Channel transmission media", fibreChannelMedia},
	{138, "Fibre Channel Speed", fibreChannelSpeed},
}

func lookup(table map[byte]string, code byte) string {
	if name, ok := table[code]; ok {
		return name
	}

	return fmt.Sprintf("Unknown (0x%02x)", code)
}

func decodeCompliance(image []byte, codes []complianceByte) entities.EEPROMFields {
	fields := make(entities.EEPROMFields)
	for _, code := range codes {
		if value := code.names.decode(image[code.offset]); lo.IsNotEmpty(value) {
			fields[code.key] = value
		}
	}

	return fields
}
