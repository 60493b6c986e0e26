package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel is the name of the environment variable to change the logging
// level.
const EnvLogLevel = "GLOG"

// ComponentField is the field holding the name of the component that logs.
const ComponentField = "component"

var (
	logout = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		// Format the component name
		FormatPrepare: func(e map[string]interface{}) error {
			e[ComponentField] = fmt.Sprintf("[%s]", e[ComponentField])
			return nil
		},
		// Change the order in which things appear
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			ComponentField,
			zerolog.MessageFieldName,
		},
		// Prevent the component from being printed again
		FieldsExclude: []string{ComponentField},
	}
)

// ParseLevel maps the value of the GLOG variable to a zerolog level. An empty
// or unknown value returns def.
func ParseLevel(value string, def zerolog.Level) zerolog.Level {
	switch value {
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "info":
		return zerolog.InfoLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	case "no":
		return zerolog.Disabled
	default:
		return def
	}
}

// GetLogger returns a formatted logger for the given component. Library code
// stays silent unless GLOG asks for a level.
func GetLogger(component string) zerolog.Logger {
	return NewLogger(logout, component, ParseLevel(os.Getenv(EnvLogLevel), zerolog.Disabled))
}

// GetCLILogger is GetLogger with info as the default level
func GetCLILogger(component string) zerolog.Logger {
	return NewLogger(logout, component, ParseLevel(os.Getenv(EnvLogLevel), zerolog.InfoLevel))
}

// NewLogger builds a component logger writing to w at the given level
func NewLogger(w io.Writer, component string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str(ComponentField, component).
		Logger()
}
