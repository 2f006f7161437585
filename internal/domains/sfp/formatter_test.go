package sfp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/objects/bo"
)

func acmeFields() entities.EEPROMFields {
	return entities.EEPROMFields{
		"VendorName": "ACME",
		"Temp": entities.EEPROMFields{
			"High": 70,
			"Low":  -5,
		},
	}
}

func gangedLanes() bo.Lanes {
	return bo.NewLanes("Ethernet0", []int{5, 6})
}

func Test_formatRawBytes(t *testing.T) {
	t.Parallel()

	sequence := func(n int) []byte {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		return data
	}

	testTable := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "empty",
			data:     []byte{},
			expected: "",
		},
		{
			name:     "less than one row",
			data:     []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a},
			expected: "01 02 03 04 05 06 07 08  09 0a ",
		},
		{
			name:     "row break after sixteen tokens",
			data:     sequence(17),
			expected: "00 01 02 03 04 05 06 07  08 09 0a 0b 0c 0d 0e 0f  \n10 ",
		},
		{
			name:     "lowercase hex",
			data:     []byte{0xAB, 0xff},
			expected: "ab ff ",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, formatRawBytes(testCase.data))
		})
	}
}

func Test_formatRawBytes_TokenCount(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256)
	output := formatRawBytes(data)

	assert.Len(t, strings.Fields(output), 256)
	assert.Equal(t, 15, strings.Count(output, "\n"))
	for _, row := range strings.Split(output, "\n") {
		assert.Len(t, strings.Fields(row), 16)
	}
}

func Test_formatFieldsOneline(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		fields   entities.EEPROMFields
		exclude  []string
		expected []string
	}{
		{
			name:     "dotted path excluded",
			fields:   acmeFields(),
			exclude:  []string{"Temp.Low"},
			expected: []string{"Temp.High:70", "VendorName:ACME"},
		},
		{
			name:     "bare key excludes subtree",
			fields:   acmeFields(),
			exclude:  []string{"Temp"},
			expected: []string{"VendorName:ACME"},
		},
		{
			name:     "excluded key keeps following keys",
			fields:   entities.EEPROMFields{"A": 1, "B": 2, "C": 3},
			exclude:  []string{"A"},
			expected: []string{"B:2", "C:3"},
		},
		{
			name: "deep nesting accumulates path",
			fields: entities.EEPROMFields{
				"MonitorData": map[string]any{
					"Channel1": entities.EEPROMFields{"RXPower": "-2.0000dBm"},
				},
			},
			expected: []string{"MonitorData.Channel1.RXPower:-2.0000dBm"},
		},
		{
			name:     "nothing left",
			fields:   entities.EEPROMFields{"AwThresholds": entities.EEPROMFields{"TempHighAlarm": "75C"}},
			exclude:  []string{"AwThresholds"},
			expected: nil,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			exclude := make(map[string]bool)
			for _, key := range testCase.exclude {
				exclude[key] = true
			}

			assert.Equal(t, testCase.expected, formatFieldsOneline(testCase.fields, exclude, ""))
		})
	}
}

func Test_formatEEPROMPretty(t *testing.T) {
	t.Parallel()

	lanes := gangedLanes()
	record := entities.NewEEPROMRecord(acmeFields(), entities.EEPROMFields{
		"MonitorData": entities.EEPROMFields{"Temperature": "30.5000C"},
	})
	input := []bo.LaneEEPROM{
		{Lane: lanes[0], Record: record},
		{Lane: lanes[1]},
	}

	expected := "Ethernet0:1 (ganged): SFP EEPROM detected\n" +
		"\tTemp:\n" +
		"\t\tHigh: 70\n" +
		"\t\tLow: -5\n" +
		"\tVendorName: ACME\n" +
		"\n" +
		"Ethernet0:2 (ganged): SFP EEPROM not detected\n" +
		"\n"
	assert.Equal(t, expected, formatEEPROMPretty(input, false))

	expectedDOM := "Ethernet0:1 (ganged): SFP EEPROM detected\n" +
		"\tTemp:\n" +
		"\t\tHigh: 70\n" +
		"\t\tLow: -5\n" +
		"\tVendorName: ACME\n" +
		"\n" +
		"\tMonitorData:\n" +
		"\t\tTemperature: 30.5000C\n" +
		"\n" +
		"Ethernet0:2 (ganged): SFP EEPROM not detected\n" +
		"\n"
	assert.Equal(t, expectedDOM, formatEEPROMPretty(input, true))
	assert.Equal(t, acmeFields(), record.Interface.Data, "rendering keeps the record intact")
}

func Test_formatEEPROMOneline(t *testing.T) {
	t.Parallel()

	lanes := gangedLanes()
	record := entities.NewEEPROMRecord(
		entities.EEPROMFields{
			"VendorName":    "ACME",
			"EncodingCodes": "64B/66B",
			"Temp":          entities.EEPROMFields{"High": 70, "Low": -5},
		},
		entities.EEPROMFields{
			"AwThresholds": entities.EEPROMFields{"TempHighAlarm": "75.0000C"},
			"MonitorData":  entities.EEPROMFields{"Vcc": "3.3000Volts"},
		},
	)
	input := []bo.LaneEEPROM{
		{Lane: lanes[0]},
		{Lane: lanes[1], Record: record},
	}

	ifaceExclude := []string{"EncodingCodes", "Temp.Low"}
	domExclude := []string{"AwThresholds"}

	assert.Equal(t,
		"port:Ethernet0:2 (ganged),Temp.High:70,VendorName:ACME\n",
		formatEEPROMOneline(input, ifaceExclude, domExclude, false),
	)
	assert.Equal(t,
		"port:Ethernet0:2 (ganged),Temp.High:70,VendorName:ACME,MonitorData.Vcc:3.3000Volts\n",
		formatEEPROMOneline(input, ifaceExclude, domExclude, true),
	)
	assert.Empty(t, formatEEPROMOneline(input[:1], ifaceExclude, domExclude, true))
}

func Test_formatEEPROMRaw(t *testing.T) {
	t.Parallel()

	input := []bo.LaneRaw{
		{Lane: bo.Lane{Physical: 1, DisplayName: "Ethernet4"}, Data: []byte{0x03, 0x04, 0x07}},
		{Lane: bo.Lane{Physical: 2, DisplayName: "Ethernet8"}},
	}

	expected := "Ethernet4: SFP EEPROM detected\n" +
		"03 04 07 \n" +
		"\n" +
		"Ethernet8: SFP EEPROM not detected\n" +
		"\n"
	assert.Equal(t, expected, formatEEPROMRaw(input))
}

func Test_formatLaneStates(t *testing.T) {
	t.Parallel()

	lanes := gangedLanes()
	output := formatLaneStates(presenceHeader, []bo.LaneState{
		{Lane: lanes[0], Enabled: true},
		{Lane: lanes[1], Enabled: false},
	}, "Present", "Not present")

	rows := strings.Split(output, "\n")
	require.Len(t, rows, 4)
	assert.Contains(t, rows[0], "Port")
	assert.Contains(t, rows[0], "Presence")
	assert.Contains(t, rows[1], "---")
	assert.Contains(t, rows[2], "Ethernet0:1 (ganged)")
	assert.Contains(t, rows[2], "Present")
	assert.Contains(t, rows[3], "Ethernet0:2 (ganged)")
	assert.Contains(t, rows[3], "Not present")
}
