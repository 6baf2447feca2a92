package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{out: logrus.New()}

// Settings mirrors the [log] table of the configuration file.
type Settings struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      string
	// Console echoes every message to Stdout as well.
	Console bool
}

func DefaultSettings() Settings {
	return Settings{
		Filename:   "pong.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   false,
		Level:      "Info",
		Console:    true,
	}
}

type Logger struct {
	out     *logrus.Logger
	console bool
	fields  logrus.Fields
}

func (l *Logger) Init(s Settings) {
	l.InitWithWriter(s, &lumberjack.Logger{
		Filename:   s.Filename,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   s.Compress,
	})
}

// InitWithWriter configures the logger to write JSON lines to w.
func (l *Logger) InitWithWriter(s Settings, w io.Writer) {
	l.out.SetFormatter(&logrus.JSONFormatter{})
	l.out.SetOutput(w)
	l.out.SetLevel(parseLevel(s.Level))
	l.console = s.Console
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.DebugLevel
	}
}

// SetConsole turns the Stdout echo on or off. Front ends that own the
// terminal switch it off.
func (l *Logger) SetConsole(on bool) {
	l.console = on
}

func (l *Logger) Console() bool {
	return l.console
}

// With attaches a field to every later message, e.g. the match id.
func (l *Logger) With(key string, value interface{}) {
	if l.fields == nil {
		l.fields = logrus.Fields{}
	}
	l.fields[key] = value
}

func (l *Logger) entry() *logrus.Entry {
	return l.out.WithFields(l.fields)
}

func (l *Logger) echo(level, message string) {
	if l.console {
		fmt.Println(level+":", message)
	}
}

func (l *Logger) Info(message string) {
	l.entry().Info(message)
	l.echo("Info", message)
}

func (l *Logger) Error(message string) {
	l.entry().Error(message)
	l.echo("Error", message)
}

func (l *Logger) Debug(message string) {
	l.entry().Debug(message)
	if l.out.IsLevelEnabled(logrus.DebugLevel) {
		l.echo("Debug", message)
	}
}

func (l *Logger) Warn(message string) {
	l.entry().Warn(message)
	l.echo("Warn", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal", message)
	l.entry().Fatal(message)
}
