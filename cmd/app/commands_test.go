package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
	"github.com/Fivegen-LLC/sfputil/internal/domains/platform"
	"github.com/Fivegen-LLC/sfputil/internal/domains/porttab"
	"github.com/Fivegen-LLC/sfputil/internal/domains/sfp"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

type testApp struct {
	*app

	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T, euid int, bootstrapErr error) *testApp {
	t.Helper()

	path := filepath.Join(t.TempDir(), "port_config.ini")
	require.NoError(t, os.WriteFile(path, []byte("# name lanes alias index\nEthernet0 1,2 eth0 1,2\nEthernet8 3 eth2 3\n"), 0600))

	table, err := porttab.Load("Ethernet", path)
	require.NoError(t, err)

	handler := sfp.NewHandler(
		sfp.NewService(platform.NewSfpUtil("x86_64-kvm_x86_64-r0", table, platform.NewVirtualDriver())),
		constants.DefaultIfaceDataExclude,
		constants.DefaultDOMDataExclude,
	)

	ta := &testApp{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	ta.app = &app{
		out:     ta.stdout,
		errOut:  ta.stderr,
		geteuid: func() int { return euid },
		bootstrap: func() (*sfp.Handler, error) {
			if bootstrapErr != nil {
				return nil, bootstrapErr
			}
			return handler, nil
		},
	}

	return ta
}

func TestApp_ExitCodes(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name         string
		args         []string
		euid         int
		bootstrapErr error
		expectedCode int
		expectedOut  string
		expectedErr  string
	}{
		{
			name:         "version",
			args:         []string{"version"},
			expectedCode: constants.ExitCodeOK,
			expectedOut:  "sfputil version 2.0\n",
		},
		{
			name:         "not root",
			args:         []string{"version"},
			euid:         1000,
			expectedCode: constants.ExitCodePrivilege,
			expectedErr:  "Root privileges are required for this operation\n",
		},
		{
			name:         "platform load failure",
			args:         []string{"show", "presence"},
			bootstrapErr: fmt.Errorf("bootstrap: %w", errs.ErrPlatformLoad),
			expectedCode: constants.ExitCodePlatformLoad,
			expectedErr:  "bootstrap: platform module load failure\n",
		},
		{
			name:         "port table load failure",
			args:         []string{"show", "presence"},
			bootstrapErr: fmt.Errorf("bootstrap: %w", errs.ErrPortTableLoad),
			expectedCode: constants.ExitCodePortTableLoad,
			expectedErr:  "bootstrap: port table load failure\n",
		},
		{
			name:         "invalid port",
			args:         []string{"show", "presence", "-p", "BadPort99"},
			expectedCode: constants.ExitCodeInvalidPort,
			expectedOut:  "Error: invalid port 'BadPort99'\n\nValid values for port: Ethernet0, Ethernet8\n\n",
		},
		{
			name:         "reset not implemented",
			args:         []string{"reset", "Ethernet0"},
			expectedCode: constants.ExitCodeNotImplemented,
			expectedOut:  "Resetting port Ethernet0:1 (ganged)... This functionality is currently not implemented for this platform\n",
		},
		{
			name:         "lpmode on not implemented",
			args:         []string{"lpmode", "on", "Ethernet8"},
			expectedCode: constants.ExitCodeNotImplemented,
			expectedOut:  "Enabling low-power mode for port Ethernet8... This functionality is currently not implemented for this platform\n",
		},
		{
			name:         "eeprom of empty cage",
			args:         []string{"show", "eeprom", "-p", "Ethernet8"},
			expectedCode: constants.ExitCodeOK,
			expectedOut:  "Ethernet8: SFP EEPROM not detected\n\n\n",
		},
		{
			name:         "oneline skips empty cages",
			args:         []string{"show", "eeprom", "-o", "-d"},
			expectedCode: constants.ExitCodeOK,
			expectedOut:  "\n",
		},
		{
			name:         "missing argument",
			args:         []string{"reset"},
			expectedCode: constants.ExitCodeFailure,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			ta := newTestApp(t, testCase.euid, testCase.bootstrapErr)
			code := ta.run(testCase.args)

			assert.Equal(t, testCase.expectedCode, code)
			if testCase.expectedOut != "" {
				assert.Equal(t, testCase.expectedOut, ta.stdout.String())
			}
			if testCase.expectedErr != "" {
				assert.Equal(t, testCase.expectedErr, ta.stderr.String())
			}
		})
	}
}

func TestApp_ShowPresence(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, 0, nil)
	require.Equal(t, constants.ExitCodeOK, ta.run([]string{"show", "presence"}))

	output := ta.stdout.String()
	assert.Contains(t, output, "Presence")
	assert.Regexp(t, `Ethernet0:1 \(ganged\)\s+Not present`, output)
	assert.Regexp(t, `Ethernet0:2 \(ganged\)\s+Not present`, output)
	assert.Regexp(t, `Ethernet8\s+Not present`, output)
}
