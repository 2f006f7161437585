package eeprom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/sfputil/internal/domains/eeprom"
	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

func padded(value string, size int) []byte {
	raw := make([]byte, size)
	for i := range raw {
		raw[i] = ' '
	}
	copy(raw, value)

	return raw
}

func newSFPImage() []byte {
	image := make([]byte, 256)
	image[0] = 0x03
	image[1] = 0x04
	image[2] = 0x07
	image[3] = 0x10 // 10GBASE-SR
	image[11] = 0x06
	image[12] = 103
	image[16] = 8
	image[19] = 30
	copy(image[20:36], padded("ACME", 16))
	copy(image[37:40], []byte{0x00, 0x90, 0x65})
	copy(image[40:56], padded("SFP-10G-SR", 16))
	copy(image[56:60], padded("A", 4))
	image[60], image[61] = 0x03, 0x52 // 850nm
	copy(image[68:84], padded("SN1234", 16))
	copy(image[84:92], []byte("140315AB"))
	image[92] = 0x68

	return image
}

func newSFPDiagPage() []byte {
	page := make([]byte, 256)
	page[0], page[1] = 0x5a, 0x00   // 90C
	page[96], page[97] = 0x19, 0x80 // 25.5C
	page[98], page[99] = 0x80, 0xe8 // 3.3Volts
	page[100], page[101] = 0x0f, 0xa0
	page[102], page[103] = 0x27, 0x10 // 1mW
	page[110] = 0x82

	return page
}

func TestDecode_SFP(t *testing.T) {
	t.Parallel()

	record, err := eeprom.Decode(newSFPImage(), newSFPDiagPage())
	require.NoError(t, err)

	data := record.Interface.Data
	assert.Equal(t, "SFP/SFP+/SFP28", data["type"])
	assert.Equal(t, "LC", data["Connector"])
	assert.Equal(t, "64B/66B", data["EncodingCodes"])
	assert.Equal(t, 103, data["NominalSignallingRate(UnitsOf100Mbd)"])
	assert.Equal(t, "ACME", data["VendorName"])
	assert.Equal(t, "00-90-65", data["VendorOUI"])
	assert.Equal(t, "SFP-10G-SR", data["VendorPN"])
	assert.Equal(t, "SN1234", data["VendorSN"])
	assert.Equal(t, 850, data["Wavelength(nm)"])
	assert.Equal(t, "2014-03-15 AB", data["VendorDataCode(YYYY-MM-DD Lot)"])
	assert.Equal(t, entities.EEPROMFields{"10GEthernetComplianceCode": "10GBASE-SR"}, data["SpecificationCompliance"])

	dom := record.DOMData()
	require.NotNil(t, dom)

	monitor, ok := entities.AsFields(dom["MonitorData"])
	require.True(t, ok)
	assert.Equal(t, "25.5000C", monitor["Temperature"])
	assert.Equal(t, "3.3000Volts", monitor["Vcc"])
	assert.Equal(t, "8.0000mA", monitor["TXBias"])
	assert.Equal(t, "0.0000dBm", monitor["TXPower"])
	assert.Equal(t, "-inf", monitor["RXPower"])

	thresholds, ok := entities.AsFields(dom["AwThresholds"])
	require.True(t, ok)
	assert.Equal(t, "90.0000C", thresholds["TempHighAlarm"])

	status, ok := entities.AsFields(dom["StatusControl"])
	require.True(t, ok)
	assert.Equal(t, "On", status["TXDisableState"])
	assert.Equal(t, "On", status["RXLOSState"])
	assert.Equal(t, "Off", status["TXFaultState"])
}

func TestDecode_SFPWithoutDiagnostics(t *testing.T) {
	t.Parallel()

	image := newSFPImage()
	image[92] = 0x00

	record, err := eeprom.Decode(image, newSFPDiagPage())
	require.NoError(t, err)
	assert.Nil(t, record.DOM)

	record, err = eeprom.Decode(newSFPImage(), nil)
	require.NoError(t, err)
	assert.Nil(t, record.DOM)
}

func TestDecode_QSFP(t *testing.T) {
	t.Parallel()

	image := make([]byte, 256)
	image[0] = 0x11
	image[22], image[23] = 0x1e, 0x00 // 30C
	image[34], image[35] = 0x27, 0x10 // RX1 1mW
	image[128] = 0x11
	image[129] = 0xc0
	image[130] = 0x0c
	image[131] = 0x80
	image[192] = 0x02
	image[139] = 0x08
	image[140] = 255
	copy(image[148:164], padded("ACME", 16))
	copy(image[168:184], padded("QSFP-100G-SR4", 16))
	image[186], image[187] = 0x42, 0x68 // 850nm * 20
	copy(image[196:212], padded("QSN42", 16))
	copy(image[212:220], []byte("200101  "))

	record, err := eeprom.Decode(image, nil)
	require.NoError(t, err)

	data := record.Interface.Data
	assert.Equal(t, "QSFP28 or later", data["type"])
	assert.Equal(t, "Power Level 4 Module (3.5W max.)", data["ExtIdentOfTypeOfTransceiver"])
	assert.Equal(t, "MPO 1x12", data["Connector"])
	assert.Equal(t, "PAM4", data["EncodingCodes"])
	assert.Equal(t, "QSFP-100G-SR4", data["VendorPN"])
	assert.Equal(t, "850.00", data["Wavelength(nm)"])
	assert.Equal(t, "2020-01-01", data["VendorDataCode(YYYY-MM-DD Lot)"])

	compliance, ok := entities.AsFields(data["SpecificationCompliance"])
	require.True(t, ok)
	assert.Equal(t, "100GBASE-SR4 or 25GBASE-SR", compliance["Extended Specification Compliance"])

	monitor, ok := entities.AsFields(record.DOMData()["MonitorData"])
	require.True(t, ok)
	assert.Equal(t, "30.0000C", monitor["Temperature"])
	assert.Equal(t, "0.0000dBm", monitor["RX1Power"])
	assert.Equal(t, "-inf", monitor["RX4Power"])
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		idPage      []byte
		domPage     []byte
		expectedErr error
	}{
		{
			name:        "empty image",
			expectedErr: errs.ErrShortEEPROM,
		},
		{
			name:        "short sfp image",
			idPage:      []byte{0x03, 0x04, 0x07},
			expectedErr: errs.ErrShortEEPROM,
		},
		{
			name:        "short qsfp image",
			idPage:      append([]byte{0x11}, make([]byte, 127)...),
			expectedErr: errs.ErrShortEEPROM,
		},
		{
			name:   "unsupported identifier",
			idPage: make([]byte, 256),
		},
		{
			name:        "short diagnostics page",
			idPage:      newSFPImage(),
			domPage:     make([]byte, 64),
			expectedErr: errs.ErrShortEEPROM,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := eeprom.Decode(testCase.idPage, testCase.domPage)
			require.Error(t, err)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
			}
		})
	}
}
