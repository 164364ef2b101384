package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dvcrn/nager-date-go/internal/env"
)

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
	colorWhite

	colorBold     = 1
	colorDarkGray = 90
)

var (
	once   sync.Once
	mu     sync.RWMutex
	logger *zerolog.Logger
)

// Get returns the shared logger, initializing it from the environment on first call.
func Get() *zerolog.Logger {
	once.Do(func() {
		mu.Lock()
		if logger == nil {
			logger = newLogger()
		}
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the shared logger. Programs embedding the client use it to
// route request logs into their own zerolog pipeline.
func Set(l zerolog.Logger) {
	once.Do(func() {})
	mu.Lock()
	logger = &l
	mu.Unlock()
}

func colorize(s interface{}, c int) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// newLogger builds a logger from NAGER_LOG_LEVEL and NAGER_LOG_FORMAT.
func newLogger() *zerolog.Logger {
	// a library stays quiet unless asked otherwise
	logLevel := zerolog.WarnLevel
	if levelStr, ok := env.Get("NAGER_LOG_LEVEL"); ok {
		if parsedLevel, err := zerolog.ParseLevel(strings.ToLower(levelStr)); err == nil {
			logLevel = parsedLevel
		} else {
			fmt.Fprintf(os.Stderr, "Invalid NAGER_LOG_LEVEL \"%s\"; defaulting to 'warn'\n", levelStr)
		}
	}

	var zl zerolog.Logger
	if env.GetOrDefault("NAGER_LOG_FORMAT", "console") == "json" {
		zl = newJSON()
	} else {
		zl = newConsole()
	}
	zl = zl.Level(logLevel)
	return &zl
}

// newConsole creates a human readable logger with colored levels
func newConsole() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		FormatLevel: func(i interface{}) string {
			var l string
			if ll, ok := i.(string); ok {
				switch ll {
				case "trace":
					l = colorize("TRC", colorMagenta)
				case "debug":
					l = colorize("DBG", colorYellow)
				case "info":
					l = colorize("INF", colorGreen)
				case "warn":
					l = colorize("WRN", colorRed)
				case "error":
					l = colorize("ERR", colorRed)
				default:
					l = colorize(strings.ToUpper(ll)[0:3], colorBold)
				}
			} else {
				l = strings.ToUpper(fmt.Sprintf("%s", i))[0:3]
			}
			return l
		},
	}

	return zerolog.New(output).With().Timestamp().Str("component", "nager").Logger()
}

// newJSON creates a JSON logger with UNIX timestamps
func newJSON() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", "nager").Logger()
}
