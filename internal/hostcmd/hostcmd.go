// Package hostcmd hands URLs to the host desktop: opening them in the
// default browser and copying them to the clipboard.
package hostcmd

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var ErrToolNotFound = errors.New("host tool not found")

type Command struct {
	Path string
	Args []string
}

type LookPath func(string) (string, error)

func SelectOpenCommand(goos string, lookPath LookPath) (Command, error) {
	switch goos {
	case "darwin":
		return find(lookPath, "open")
	case "windows":
		return find(lookPath, "rundll32", "url.dll,FileProtocolHandler")
	case "linux", "freebsd", "openbsd", "netbsd":
		if cmd, err := find(lookPath, "xdg-open"); err == nil {
			return cmd, nil
		}
		return find(lookPath, "sensible-browser")
	default:
		return Command{}, ErrToolNotFound
	}
}

func SelectCopyCommand(goos string, lookPath LookPath) (Command, error) {
	switch goos {
	case "darwin":
		return find(lookPath, "pbcopy")
	case "linux":
		if cmd, err := find(lookPath, "wl-copy"); err == nil {
			return cmd, nil
		}
		return find(lookPath, "xclip", "-selection", "clipboard")
	default:
		return Command{}, ErrToolNotFound
	}
}

func find(lookPath LookPath, name string, args ...string) (Command, error) {
	path, err := lookPath(name)
	if err != nil {
		return Command{}, ErrToolNotFound
	}
	return Command{Path: path, Args: args}, nil
}

// Runner executes host commands. The zero value uses the real OS.
type Runner struct {
	GOOS     string
	LookPath LookPath
}

func (r Runner) goos() string {
	if r.GOOS == "" {
		return runtime.GOOS
	}
	return r.GOOS
}

func (r Runner) lookPath() LookPath {
	if r.LookPath == nil {
		return exec.LookPath
	}
	return r.LookPath
}

// Open launches url in the host browser and returns once the launcher exits.
func (r Runner) Open(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-web url %q", url)
	}
	cmdDef, err := SelectOpenCommand(r.goos(), r.lookPath())
	if err != nil {
		return err
	}
	args := append(append([]string{}, cmdDef.Args...), url)
	cmd := exec.CommandContext(ctx, cmdDef.Path, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open url: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (r Runner) Copy(ctx context.Context, text string) error {
	cmdDef, err := SelectCopyCommand(r.goos(), r.lookPath())
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, cmdDef.Path, cmdDef.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return fmt.Errorf("start clipboard command: %w", err)
	}
	if _, err := stdin.Write([]byte(text)); err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		return fmt.Errorf("write clipboard data: %w", err)
	}
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("clipboard command failed: %w", err)
	}
	return nil
}
