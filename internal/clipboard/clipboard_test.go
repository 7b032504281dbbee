package clipboard

import (
	"errors"
	"testing"

	"github.com/davidpaquet/archive-browser/internal/export"
)

func TestSaveUsesLibraryWriter(t *testing.T) {
	var copied string
	target := &Target{
		write: func(s string) error {
			copied = s
			return nil
		},
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		goos:     "linux",
	}

	err := target.Save(export.WorkLogsFilename, "A,B\n1,2")
	if err != nil {
		if errors.Is(err, export.ErrDownloadUnavailable) {
			t.Skip("clipboard unsupported on this host")
		}
		t.Fatalf("Save failed: %v", err)
	}
	if copied != "A,B\n1,2" {
		t.Errorf("copied %q", copied)
	}
}

func TestSaveWithoutAnyMechanism(t *testing.T) {
	target := &Target{
		write:    func(string) error { return errors.New("no display") },
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		goos:     "linux",
	}

	err := target.Save(export.WorkLogsFilename, "x")
	if !errors.Is(err, export.ErrDownloadUnavailable) {
		t.Errorf("expected ErrDownloadUnavailable, got %v", err)
	}
}

func TestCommandUnsupportedPlatform(t *testing.T) {
	target := &Target{
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		goos:     "plan9",
	}
	if _, err := target.command(); !errors.Is(err, export.ErrDownloadUnavailable) {
		t.Errorf("expected ErrDownloadUnavailable, got %v", err)
	}
}

func TestCommandPrefersXclip(t *testing.T) {
	target := &Target{
		lookPath: func(name string) (string, error) {
			if name == "xsel" || name == "xclip" {
				return "/usr/bin/" + name, nil
			}
			return "", errors.New("not found")
		},
		goos: "linux",
	}
	cmd, err := target.command()
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if len(cmd.Args) == 0 || cmd.Args[0] != "xclip" {
		t.Errorf("expected xclip, got %v", cmd.Args)
	}
}
