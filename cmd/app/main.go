package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/sfputil/infrastructure"
	"github.com/Fivegen-LLC/sfputil/internal/constants"
	"github.com/Fivegen-LLC/sfputil/internal/domains/sfp"
	"github.com/Fivegen-LLC/sfputil/internal/environment"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

func init() {
	// nothing but warnings reach the terminal until the log file is set up
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func main() {
	a := &app{
		out:       os.Stdout,
		errOut:    os.Stderr,
		geteuid:   os.Geteuid,
		bootstrap: bootstrap,
	}

	os.Exit(a.run(os.Args[1:]))
}

// bootstrap loads the environment, redirects logging and builds the kernel.
func bootstrap() (handler *sfp.Handler, err error) {
	env, err := environment.New(constants.MachineConfPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w: %w", errs.ErrPlatformLoad, err)
	}

	setupLogging(env.App)

	log.Info().
		Any("app", env).
		Str("version", constants.AppVersion).
		Str("log path", env.LogfilePath).
		Str("log level", env.LogLevel).
		Msg("bootstrap: environment loaded")

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return kernel.InjectSfpHandler(), nil
}

func setupLogging(cfg environment.App) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Msg("setupLogging: keeping default log level")
		level = zerolog.InfoLevel
	}

	logWriter, err := setupRollingLogFile(cfg.LogfilePath)
	if err != nil {
		log.Warn().Err(err).Msg("setupLogging: log file unavailable, logging to stderr")
		return
	}

	log.Logger = log.Output(logWriter)
	zerolog.SetGlobalLevel(level)
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    5,    // megabytes per log file
		MaxAge:     30,   // days to retain old log files
		MaxBackups: 5,    // retained log files
		Compress:   true, // gzip rotated files
	}, nil
}
