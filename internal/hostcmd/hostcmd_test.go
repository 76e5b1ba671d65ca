package hostcmd

import (
	"context"
	"errors"
	"testing"
)

func only(names map[string]string) LookPath {
	return func(name string) (string, error) {
		if p, ok := names[name]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}
}

func TestSelectOpenCommandDarwin(t *testing.T) {
	cmd, err := SelectOpenCommand("darwin", only(map[string]string{"open": "/usr/bin/open"}))
	if err != nil {
		t.Fatalf("expected command, got error: %v", err)
	}
	if cmd.Path != "/usr/bin/open" || len(cmd.Args) != 0 {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestSelectOpenCommandLinuxFallsBack(t *testing.T) {
	cmd, err := SelectOpenCommand("linux", only(map[string]string{"sensible-browser": "/usr/bin/sensible-browser"}))
	if err != nil {
		t.Fatalf("expected command, got error: %v", err)
	}
	if cmd.Path != "/usr/bin/sensible-browser" {
		t.Fatalf("expected sensible-browser, got %q", cmd.Path)
	}
}

func TestSelectOpenCommandWindowsArgs(t *testing.T) {
	cmd, err := SelectOpenCommand("windows", only(map[string]string{"rundll32": `C:\Windows\System32\rundll32.exe`}))
	if err != nil {
		t.Fatalf("expected command, got error: %v", err)
	}
	if len(cmd.Args) != 1 || cmd.Args[0] != "url.dll,FileProtocolHandler" {
		t.Fatalf("unexpected args: %#v", cmd.Args)
	}
}

func TestSelectCopyCommandLinuxPrefersWlCopy(t *testing.T) {
	cmd, err := SelectCopyCommand("linux", only(map[string]string{
		"wl-copy": "/usr/bin/wl-copy",
		"xclip":   "/usr/bin/xclip",
	}))
	if err != nil {
		t.Fatalf("expected command, got error: %v", err)
	}
	if cmd.Path != "/usr/bin/wl-copy" {
		t.Fatalf("expected wl-copy, got %q", cmd.Path)
	}
}

func TestSelectCopyCommandLinuxFallsBackToXclip(t *testing.T) {
	cmd, err := SelectCopyCommand("linux", only(map[string]string{"xclip": "/usr/bin/xclip"}))
	if err != nil {
		t.Fatalf("expected command, got error: %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "-selection" || cmd.Args[1] != "clipboard" {
		t.Fatalf("unexpected xclip args: %#v", cmd.Args)
	}
}

func TestSelectUnavailable(t *testing.T) {
	none := only(nil)
	if _, err := SelectOpenCommand("plan9", none); !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	if _, err := SelectCopyCommand("linux", none); !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestRunnerOpenRejectsNonWebURL(t *testing.T) {
	r := Runner{GOOS: "linux", LookPath: only(map[string]string{"xdg-open": "/usr/bin/xdg-open"})}
	if err := r.Open(context.Background(), "file:///etc/passwd"); err == nil {
		t.Fatalf("expected error for non-web url")
	}
}

func TestRunnerOpenWithoutTool(t *testing.T) {
	r := Runner{GOOS: "linux", LookPath: only(nil)}
	err := r.Open(context.Background(), "https://quran.com")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}
