// Package logging builds the console logger the command line tools use.
package logging

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

type Options struct {
	Debug  bool
	Caller bool
	// NoColor disables ANSI colors in both the console writer and the caller
	// field.
	NoColor bool
}

// New returns a console logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: opts.NoColor,
	}

	logger := zerolog.New(out).Level(level).Hook(TimeHook{})
	if opts.Caller {
		logger = logger.Hook(CallerHook{WithColor: !opts.NoColor})
	}
	return logger
}

func hackGetCallerSkipFrameCount(e *zerolog.Event) int {
	v := reflect.ValueOf(e).Elem()
	field := v.FieldByName("skipFrame")

	if field.IsValid() {
		return int(field.Int())
	}

	return 0
}

// TimeHook stamps events with millisecond precision in UTC.
type TimeHook struct {
	Format string
}

func (t TimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	format := t.Format
	if format == "" {
		format = "2006-01-02T15:04:05.0000Z"
	}
	e.Str("time", time.Now().UTC().Format(format))
}

// CallerHook adds a "caller" field of the form pkg:file.go:line.
type CallerHook struct {
	WithColor bool
}

func (c CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(hackGetCallerSkipFrameCount(e) + 3)
	if !ok {
		return
	}

	pkg, _ := PackageAndFunc(runtime.FuncForPC(pc).Name())

	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

// PackageAndFunc splits a runtime function name such as
// "github.com/x/y/pkg.(*T).Method" into its package path and function.
func PackageAndFunc(name string) (pkg, function string) {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}

	firstDot := strings.IndexByte(name[lastSlash:], '.') + lastSlash
	if firstDot < lastSlash {
		return name, ""
	}

	pkg = name[:firstDot]
	function = name[firstDot+1:]

	return pkg, function
}

func FormatCaller(pkg, path string, line int, colorize bool) string {
	file := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		file = path[i+1:]
	}

	if colorize {
		file = color.New(color.Bold).Sprint(file)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", line)
		sep := color.New(color.Faint).Sprint(":")

		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, file, sep, num)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, file, line)
}
