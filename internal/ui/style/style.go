// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error, etc.) rather than
// visual. When disabled, every helper returns its input unchanged.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette maps each semantic role to an ANSI 256 color number, or "bold".
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
}

// DefaultPalette uses the basic ANSI colors so it reads on dark and light
// terminals alike.
var DefaultPalette = Palette{
	Success: "2",
	Warning: "3",
	Error:   "1",
	Info:    "6",
	Muted:   "8",
	Header:  "bold",
	Prompt:  "5",
}

var (
	mu      sync.RWMutex
	enabled bool
	styles  struct {
		success, warning, err, info, muted, header, prompt lipgloss.Style
	}
)

// Init enables or disables styling. NO_COLOR and CLIK_NO_COLOR disable it
// regardless of enable.
func Init(enable bool) {
	InitPalette(enable, DefaultPalette)
}

// InitPalette is Init with a custom palette.
func InitPalette(enable bool, p Palette) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("CLIK_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force ANSI256 so output is styled even when lipgloss detects no TTY.
	lipgloss.SetColorProfile(termenv.ANSI256)

	styles.success = makeStyle(p.Success)
	styles.warning = makeStyle(p.Warning)
	styles.err = makeStyle(p.Error)
	styles.info = makeStyle(p.Info)
	styles.muted = makeStyle(p.Muted)
	styles.header = makeStyle(p.Header)
	styles.prompt = makeStyle(p.Prompt)
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(&styles.success, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(&styles.warning, text) }

// Error styles text for error messages.
func Error(text string) string { return render(&styles.err, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(&styles.info, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(&styles.muted, text) }

// Header styles section headers.
func Header(text string) string { return render(&styles.header, text) }

// Prompt styles the input prompt.
func Prompt(text string) string { return render(&styles.prompt, text) }
