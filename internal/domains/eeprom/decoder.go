package eeprom

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

const (
	sfpIDMinLength  = 96
	sfpDOMMinLength = 112
	qsfpMinLength   = 220

	// SFF-8472 byte 92 bit 6: digital diagnostic monitoring implemented.
	sfpDiagMonitoringOffset = 92
	sfpDiagMonitoringMask   = 0x40
)

// Decode parses an identity image and, for SFP modules, the optional A2h diagnostics page.
// QSFP diagnostics are read from the lower page of the identity image.
func Decode(idPage, domPage []byte) (record *entities.EEPROMRecord, err error) {
	if len(idPage) == 0 {
		return nil, fmt.Errorf("Decode: %w: empty image", errs.ErrShortEEPROM)
	}

	switch idPage[0] {
	case identifierSFP:
		return decodeSFP(idPage, domPage)
	case identifierQSFP, identifierQSFPPlus, identifierQSFP28:
		return decodeQSFP(idPage)
	default:
		return nil, fmt.Errorf("Decode: unsupported identifier %s", lookup(identifiers, idPage[0]))
	}
}

func decodeSFP(idPage, domPage []byte) (record *entities.EEPROMRecord, err error) {
	if len(idPage) < sfpIDMinLength {
		return nil, fmt.Errorf("decodeSFP: %w: got %d bytes, need %d", errs.ErrShortEEPROM, len(idPage), sfpIDMinLength)
	}

	iface := entities.EEPROMFields{
		"type":                                 lookup(identifiers, idPage[0]),
		"ExtIdentOfTypeOfTransceiver":          sfpExtIdentifier(idPage[1]),
		"Connector":                            lookup(connectors, idPage[2]),
		"SpecificationCompliance":              decodeCompliance(idPage, sfpCompliance),
		"EncodingCodes":                        lookup(encodings, idPage[11]),
		"NominalSignallingRate(UnitsOf100Mbd)": int(idPage[12]),
		"RateIdentifier":                       int(idPage[13]),
		"LengthSMFkm-UnitsOfKm":                int(idPage[14]),
		"LengthSMF(UnitsOf100m)":               int(idPage[15]),
		"Length50um(UnitsOf10m)":               int(idPage[16]),
		"Length62.5um(UnitsOf10m)":             int(idPage[17]),
		"LengthCable(UnitsOfm)":                int(idPage[18]),
		"LengthOM3(UnitsOf10m)":                int(idPage[19]),
		"VendorName":                           asciiField(idPage[20:36]),
		"VendorOUI":                            ouiField(idPage[37:40]),
		"VendorPN":                             asciiField(idPage[40:56]),
		"VendorRev":                            asciiField(idPage[56:60]),
		"Wavelength(nm)":                       int(binary.BigEndian.Uint16(idPage[60:62])),
		"VendorSN":                             asciiField(idPage[68:84]),
		"VendorDataCode(YYYY-MM-DD Lot)":       dateCodeField(idPage[84:92]),
	}

	var dom entities.EEPROMFields
	if idPage[sfpDiagMonitoringOffset]&sfpDiagMonitoringMask != 0 && len(domPage) > 0 {
		if dom, err = decodeSFPDOM(domPage); err != nil {
			return nil, fmt.Errorf("decodeSFP: %w", err)
		}
	}

	return entities.NewEEPROMRecord(iface, dom), nil
}

func decodeQSFP(image []byte) (record *entities.EEPROMRecord, err error) {
	if len(image) < qsfpMinLength {
		return nil, fmt.Errorf("decodeQSFP: %w: got %d bytes, need %d", errs.ErrShortEEPROM, len(image), qsfpMinLength)
	}

	compliance := decodeCompliance(image, qsfpCompliance)
	if image[131]&0x80 != 0 && len(image) > 192 {
		compliance["Extended Specification Compliance"] = lookup(extendedCompliance, image[192])
	}

	iface := entities.EEPROMFields{
		"type":                                 lookup(identifiers, image[128]),
		"ExtIdentOfTypeOfTransceiver":          qsfpPowerClass(image[129]),
		"Connector":                            lookup(connectors, image[130]),
		"SpecificationCompliance":              compliance,
		"EncodingCodes":                        lookup(encodings, image[139]),
		"NominalSignallingRate(UnitsOf100Mbd)": int(image[140]),
		"LengthSMFkm-UnitsOfKm":                int(image[142]),
		"LengthOM3(UnitsOf2m)":                 int(image[143]),
		"LengthOM2(UnitsOfm)":                  int(image[144]),
		"LengthOM1(UnitsOfm)":                  int(image[145]),
		"LengthCable(UnitsOfm)":                int(image[146]),
		"VendorName":                           asciiField(image[148:164]),
		"VendorOUI":                            ouiField(image[165:168]),
		"VendorPN":                             asciiField(image[168:184]),
		"VendorRev":                            asciiField(image[184:186]),
		"Wavelength(nm)":                       fmt.Sprintf("%.2f", float64(binary.BigEndian.Uint16(image[186:188]))/20),
		"VendorSN":                             asciiField(image[196:212]),
		"VendorDataCode(YYYY-MM-DD Lot)":       dateCodeField(image[212:220]),
	}

	return entities.NewEEPROMRecord(iface, decodeQSFPDOM(image)), nil
}

func sfpExtIdentifier(code byte) string {
	if code == 0x04 {
		return "GBIC/SFP function is defined by two-wire interface ID only"
	}

	return fmt.Sprintf("GBIC definition (0x%02x)", code)
}

func qsfpPowerClass(code byte) string {
	switch code >> 6 {
	case 0:
		return "Power Level 1 Module (1.5W max.)"
	case 1:
		return "Power Level 2 Module (2.0W max.)"
	case 2:
		return "Power Level 3 Module (2.5W max.)"
	default:
		return "Power Level 4 Module (3.5W max.)"
	}
}

func asciiField(raw []byte) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}

		return r
	}, string(raw)))
}

func ouiField(raw []byte) string {
	return fmt.Sprintf("%02X-%02X-%02X", raw[0], raw[1], raw[2])
}

// dateCodeField formats the YYMMDDLL vendor date code.
func dateCodeField(raw []byte) string {
	code := asciiField(raw[:6])
	if len(code) < 6 {
		return code
	}

	return strings.TrimSpace(fmt.Sprintf("20%s-%s-%s %s", code[0:2], code[2:4], code[4:6], asciiField(raw[6:8])))
}
