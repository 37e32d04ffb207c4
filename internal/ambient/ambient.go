// Package ambient reads the host's "prefers dark" signal for terminal views.
package ambient

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/iiroan/folio/internal/exec"
	"github.com/iiroan/folio/internal/platform"
)

// EnvScheme overrides every other signal when set to "dark" or "light".
const EnvScheme = "FOLIO_COLOR_SCHEME"

// Source names where a detection came from.
type Source string

const (
	SourceEnv       Source = "env"
	SourceColorFGBG Source = "colorfgbg"
	SourceDesktop   Source = "desktop"
	SourceTerminal  Source = "terminal"
	SourceDefault   Source = "default"
)

// Detector resolves the ambient signal. The zero value is not usable; call
// NewDetector.
type Detector struct {
	getenv      func(string) string
	interactive func() bool
	probe       func() bool
	desktop     func() (dark bool, ok bool)
	logger      *log.Logger

	once       sync.Once
	probedDark bool
	probedOK   bool
	probeSrc   Source
}

// Option configures a Detector.
type Option func(*Detector)

// WithGetenv replaces os.Getenv.
func WithGetenv(fn func(string) string) Option {
	return func(d *Detector) { d.getenv = fn }
}

// WithInteractive replaces the stdout terminal check.
func WithInteractive(fn func() bool) Option {
	return func(d *Detector) { d.interactive = fn }
}

// WithTerminalProbe replaces the terminal background query.
func WithTerminalProbe(fn func() bool) Option {
	return func(d *Detector) { d.probe = fn }
}

// WithDesktopProbe replaces the desktop color scheme query.
func WithDesktopProbe(fn func() (bool, bool)) Option {
	return func(d *Detector) { d.desktop = fn }
}

// WithLogger sets the logger used for probe diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(d *Detector) { d.logger = l }
}

// NewDetector returns a detector wired to the real environment.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		getenv:      os.Getenv,
		interactive: stdoutIsTerminal,
		probe:       termenv.HasDarkBackground,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.desktop == nil {
		d.desktop = func() (bool, bool) { return queryDesktop(runtime.GOOS, d.logger) }
	}
	return d
}

// PrefersDark reports whether the host prefers a dark appearance.
func (d *Detector) PrefersDark() bool {
	dark, _ := d.Detect()
	return dark
}

// Detect reports the signal and where it came from. Environment signals are
// read on every call; the desktop and terminal probes run at most once per
// detector because they spawn processes or query the terminal.
func (d *Detector) Detect() (dark bool, source Source) {
	if dark, ok := ParseScheme(d.getenv(EnvScheme)); ok {
		return dark, SourceEnv
	}
	if dark, ok := ParseColorFGBG(d.getenv("COLORFGBG")); ok {
		return dark, SourceColorFGBG
	}

	d.once.Do(func() {
		if dark, ok := d.desktop(); ok {
			d.probedDark, d.probedOK, d.probeSrc = dark, true, SourceDesktop
			return
		}
		if d.interactive() {
			d.probedDark, d.probedOK, d.probeSrc = d.probe(), true, SourceTerminal
		}
	})
	if d.probedOK {
		return d.probedDark, d.probeSrc
	}
	return true, SourceDefault
}

// ParseScheme parses "dark" or "light" (case-insensitive).
func ParseScheme(value string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// ParseColorFGBG interprets the COLORFGBG convention ("fg;bg", sometimes with
// a middle segment). The last segment is the background palette index;
// 0-6 and 8 are dark colors.
func ParseColorFGBG(value string) (dark bool, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, false
	}
	parts := strings.Split(value, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}
	return bg < 7 || bg == 8, true
}

// ParseDesktopScheme interprets the result of the platform appearance query.
// On macOS the key only exists in dark mode, so exit status 1 means light.
// Any other failure, a timeout included, is no signal.
func ParseDesktopScheme(goos string, output string, exitCode int, err error) (dark bool, ok bool) {
	output = strings.Trim(strings.TrimSpace(output), "'\"")
	switch goos {
	case "darwin":
		if err != nil {
			if exitCode == 1 && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
				return false, true
			}
			return false, false
		}
		return strings.EqualFold(output, "dark"), true
	case "linux":
		if err != nil {
			return false, false
		}
		switch output {
		case "prefer-dark":
			return true, true
		case "prefer-light":
			return false, true
		}
	}
	return false, false
}

func queryDesktop(goos string, logger *log.Logger) (bool, bool) {
	name, args, ok := platform.AppearanceQuery(goos)
	if !ok || !exec.CheckCommand(name) {
		return false, false
	}
	opts := exec.DefaultOptions()
	opts.Logger = logger
	res := exec.Run(context.Background(), name, args, opts)
	return ParseDesktopScheme(goos, res.Stdout, res.ExitCode, res.Err)
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
