package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
	"github.com/Fivegen-LLC/sfputil/internal/domains/sfp"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

type app struct {
	out       io.Writer
	errOut    io.Writer
	geteuid   func() int
	bootstrap func() (handler *sfp.Handler, err error)

	handler *sfp.Handler
}

// run executes the command line and returns the process exit code.
func (a *app) run(args []string) int {
	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	code := errs.ExitCode(err)
	if code == constants.ExitCodeFailure {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
	}

	return code
}

// prepare runs before every command: privilege check, then platform and port table load.
func (a *app) prepare(*cobra.Command, []string) (err error) {
	if a.geteuid() != 0 {
		fmt.Fprintln(a.errOut, "Root privileges are required for this operation")
		return errs.ErrPrivilege
	}

	if a.handler, err = a.bootstrap(); err != nil {
		log.Error().Err(err).Msg("prepare: startup failed")
		if errors.Is(err, errs.ErrPlatformLoad) || errors.Is(err, errs.ErrPortTableLoad) {
			fmt.Fprintln(a.errOut, err)
		}

		return fmt.Errorf("prepare: %w", err)
	}

	return nil
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               constants.AppName,
		Short:             "sfputil - Command line utility for managing SFP transceivers",
		PersistentPreRunE: a.prepare,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.AddCommand(
		a.newShowCmd(),
		a.newLowPowerModeCmd(),
		a.newResetCmd(),
		a.newVersionCmd(),
	)

	return rootCmd
}

func (a *app) newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display status of SFP transceivers",
	}

	var opts sfp.EEPROMOptions
	eepromCmd := &cobra.Command{
		Use:   "eeprom",
		Short: "Display EEPROM data of SFP transceiver(s)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.ShowEEPROM(cmd.OutOrStdout(), opts)
		},
	}
	eepromCmd.Flags().StringVarP(&opts.Port, "port", "p", "", "Display SFP EEPROM data for port <port_name> only")
	eepromCmd.Flags().BoolVarP(&opts.DumpDOM, "dom", "d", false, "Also display Digital Optical Monitoring (DOM) data")
	eepromCmd.Flags().BoolVarP(&opts.Oneline, "oneline", "o", false, "Condense output for each port to a single line")
	eepromCmd.Flags().BoolVar(&opts.Raw, "raw", false, "Output raw, unformatted data")

	var presencePort string
	presenceCmd := &cobra.Command{
		Use:   "presence",
		Short: "Display presence of SFP transceiver(s)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.ShowPresence(cmd.OutOrStdout(), presencePort)
		},
	}
	presenceCmd.Flags().StringVarP(&presencePort, "port", "p", "", "Display SFP presence for port <port_name> only")

	var lpmodePort string
	lpmodeCmd := &cobra.Command{
		Use:   "lpmode",
		Short: "Display low-power mode status of SFP transceiver(s)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.ShowLowPowerMode(cmd.OutOrStdout(), lpmodePort)
		},
	}
	lpmodeCmd.Flags().StringVarP(&lpmodePort, "port", "p", "", "Display SFP low-power mode status for port <port_name> only")

	showCmd.AddCommand(eepromCmd, presenceCmd, lpmodeCmd)

	return showCmd
}

func (a *app) newLowPowerModeCmd() *cobra.Command {
	lpmodeCmd := &cobra.Command{
		Use:   "lpmode",
		Short: "Enable or disable low-power mode for SFP transceiver",
	}

	for _, enable := range []bool{true, false} {
		use, short := "off <port_name>", "Disable low-power mode for SFP transceiver"
		if enable {
			use, short = "on <port_name>", "Enable low-power mode for SFP transceiver"
		}

		lpmodeCmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.handler.SetLowPowerMode(cmd.OutOrStdout(), args[0], enable)
			},
		})
	}

	return lpmodeCmd
}

func (a *app) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <port_name>",
		Short: "Reset SFP transceiver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handler.Reset(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.Version(cmd.OutOrStdout())
		},
	}
}
