package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/sfputil/internal/domains/platform"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

type sysfsTree struct {
	root string
}

func newSysfsTree(t *testing.T) *sysfsTree {
	t.Helper()

	return &sysfsTree{root: t.TempDir()}
}

func (s *sysfsTree) write(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(s.root, name)
	require.NoError(t, os.WriteFile(path, data, 0600))

	return path
}

func (s *sysfsTree) read(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(s.root, name))
	require.NoError(t, err)

	return string(data)
}

func TestSysfsDriver_Presence(t *testing.T) {
	t.Parallel()

	tree := newSysfsTree(t)
	eepromPath := tree.write(t, "eeprom1", []byte{0x03, 0x04})

	driver := platform.NewSysfsDriver(platform.SysfsConfig{
		Ports: []platform.SysfsPort{
			{Index: 1, EEPROM: eepromPath, Presence: tree.write(t, "present1", []byte("1\n"))},
			{Index: 2, EEPROM: eepromPath, Presence: tree.write(t, "present2", []byte("0\n"))},
			{Index: 3, EEPROM: eepromPath},
			{Index: 4, EEPROM: filepath.Join(tree.root, "missing")},
			{Index: 5, EEPROM: eepromPath, Presence: tree.write(t, "present5", []byte("garbage"))},
		},
	})

	present, err := driver.GetPresence(1)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = driver.GetPresence(2)
	require.NoError(t, err)
	assert.False(t, present)

	present, err = driver.GetPresence(3)
	require.NoError(t, err)
	assert.True(t, present, "readable eeprom means present")

	present, err = driver.GetPresence(4)
	require.NoError(t, err)
	assert.False(t, present)

	_, err = driver.GetPresence(5)
	require.Error(t, err)

	_, err = driver.GetPresence(42)
	assert.ErrorIs(t, err, errs.ErrInvalidPort)
}

func TestSysfsDriver_PresenceActiveLow(t *testing.T) {
	t.Parallel()

	tree := newSysfsTree(t)
	driver := platform.NewSysfsDriver(platform.SysfsConfig{
		ActiveLow: true,
		Ports: []platform.SysfsPort{
			{Index: 0, EEPROM: tree.write(t, "eeprom", []byte{0x03}), Presence: tree.write(t, "present", []byte("0"))},
		},
	})

	present, err := driver.GetPresence(0)
	require.NoError(t, err)
	assert.True(t, present)
}

func TestSysfsDriver_ReadPages(t *testing.T) {
	t.Parallel()

	tree := newSysfsTree(t)
	image := make([]byte, 512)
	image[0] = 0x03
	image[300] = 0xff

	driver := platform.NewSysfsDriver(platform.SysfsConfig{
		Ports: []platform.SysfsPort{
			{Index: 1, EEPROM: tree.write(t, "a0", image), DOM: tree.write(t, "a2", make([]byte, 256))},
			{Index: 2, EEPROM: tree.write(t, "b0", image)},
		},
	})

	data, err := driver.ReadEEPROM(1)
	require.NoError(t, err)
	assert.Len(t, data, 256)
	assert.Equal(t, byte(0x03), data[0])

	dom, err := driver.ReadDOM(1)
	require.NoError(t, err)
	assert.Len(t, dom, 256)

	dom, err = driver.ReadDOM(2)
	require.NoError(t, err)
	assert.Nil(t, dom)
}

func TestSysfsDriver_LowPowerModeAndReset(t *testing.T) {
	t.Parallel()

	tree := newSysfsTree(t)
	eepromPath := tree.write(t, "eeprom", []byte{0x03})
	driver := platform.NewSysfsDriver(platform.SysfsConfig{
		Ports: []platform.SysfsPort{
			{
				Index:  1,
				EEPROM: eepromPath,
				LPMode: tree.write(t, "lpmode", []byte("0")),
				Reset:  tree.write(t, "reset", []byte("0")),
			},
			{Index: 2, EEPROM: eepromPath},
			{Index: 3, EEPROM: eepromPath, LPMode: filepath.Join(tree.root, "absent"), Reset: filepath.Join(tree.root, "absent")},
		},
	})

	enabled, err := driver.GetLowPowerMode(1)
	require.NoError(t, err)
	assert.False(t, enabled)

	ok, err := driver.SetLowPowerMode(1, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", tree.read(t, "lpmode"))

	enabled, err = driver.GetLowPowerMode(1)
	require.NoError(t, err)
	assert.True(t, enabled)

	ok, err = driver.Reset(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0", tree.read(t, "reset"), "reset line is released")

	_, err = driver.GetLowPowerMode(2)
	assert.ErrorIs(t, err, errs.ErrNotImplemented)

	_, err = driver.SetLowPowerMode(2, false)
	assert.ErrorIs(t, err, errs.ErrNotImplemented)

	_, err = driver.Reset(2)
	assert.ErrorIs(t, err, errs.ErrNotImplemented)

	ok, err = driver.SetLowPowerMode(3, true)
	require.NoError(t, err)
	assert.False(t, ok, "write failure is reported as a failed operation")

	ok, err = driver.Reset(3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSysfsDriver_Range(t *testing.T) {
	t.Parallel()

	tree := newSysfsTree(t)
	tree.write(t, "18-0050", []byte{0x03})
	tree.write(t, "19-0050", []byte{0x11})
	tree.write(t, "port2_present", []byte("1"))

	driver := platform.NewSysfsDriver(platform.SysfsConfig{
		Range: &platform.SysfsRange{
			Start:     1,
			End:       2,
			BusOffset: 17,
			EEPROM:    filepath.Join(tree.root, "{bus}-0050"),
			Presence:  filepath.Join(tree.root, "port{port}_present"),
		},
		Ports: []platform.SysfsPort{
			{Index: 1, EEPROM: filepath.Join(tree.root, "18-0050")},
		},
	})

	present, err := driver.GetPresence(1)
	require.NoError(t, err)
	assert.True(t, present, "explicit entry without presence file overrides the range")

	present, err = driver.GetPresence(2)
	require.NoError(t, err)
	assert.True(t, present)

	data, err := driver.ReadEEPROM(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11}, data)

	_, err = driver.ReadEEPROM(3)
	assert.ErrorIs(t, err, errs.ErrInvalidPort)
}
