// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ConfigureLogger installs a console logger on the global zerolog logger
// writing to every stream
func ConfigureLogger(level zerolog.Level, streams ...io.Writer) {
	if len(streams) == 0 {
		streams = []io.Writer{os.Stdout}
	}
	writers := make([]io.Writer, 0, len(streams))
	for _, s := range streams {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        s,
			TimeFormat: time.RFC3339,
			NoColor:    s != os.Stdout && s != os.Stderr,
		})
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

// OpenLogFile opens path for appending, creating it if needed
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// LoggerMetadata logs the command being run with the flags the user changed
func LoggerMetadata(cmdName string, flagSet *pflag.FlagSet) {
	l := log.Debug().Str("command", cmdName)
	flagSet.Visit(func(f *pflag.Flag) {
		if f.Name == "key" {
			return
		}
		l = l.Str(f.Name, f.Value.String())
	})
	l.Msg("Running command")
}

// CommandLogger wraps a cobra PreRun that logs command metadata
func CommandLogger(cmd *cobra.Command, args []string) {
	LoggerMetadata(cmd.Name(), cmd.Flags())
}
