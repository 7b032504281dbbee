// Package clipboard hands CSV exports to the system clipboard.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/davidpaquet/archive-browser/internal/export"
	"github.com/davidpaquet/archive-browser/internal/logging"
)

// Target is an export.Target backed by the clipboard
type Target struct {
	write    func(string) error
	lookPath func(string) (string, error)
	goos     string
}

// NewTarget creates a clipboard target
func NewTarget() *Target {
	return &Target{
		write:    clipboard.WriteAll,
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
	}
}

var _ export.Target = (*Target)(nil)

// Save copies the export text. The filename only shows up in logs.
func (t *Target) Save(filename, text string) error {
	if !clipboard.Unsupported {
		if err := t.write(text); err == nil {
			logging.Info("Export copied to clipboard", "file", filename, "bytes", len(text))
			return nil
		}
	}

	cmd, err := t.command()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: clipboard command failed: %v", export.ErrDownloadUnavailable, err)
	}

	logging.Info("Export copied to clipboard", "file", filename, "bytes", len(text), "via", cmd.Path)
	return nil
}

// Available reports whether a clipboard mechanism exists on this host
func (t *Target) Available() error {
	if !clipboard.Unsupported {
		return nil
	}
	_, err := t.command()
	return err
}

// command picks a platform clipboard tool
func (t *Target) command() (*exec.Cmd, error) {
	switch t.goos {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if t.commandExists("xclip") {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if t.commandExists("xsel") {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		if t.commandExists("wl-copy") {
			return exec.Command("wl-copy"), nil
		}
		return nil, fmt.Errorf("%w: no clipboard command found (install xclip, xsel, or wl-clipboard)", export.ErrDownloadUnavailable)
	case "windows":
		return exec.Command("clip.exe"), nil
	default:
		return nil, fmt.Errorf("%w: unsupported platform: %s", export.ErrDownloadUnavailable, t.goos)
	}
}

func (t *Target) commandExists(name string) bool {
	_, err := t.lookPath(name)
	return err == nil
}
