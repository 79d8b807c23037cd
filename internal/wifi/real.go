package wifi

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/strct-org/wifi-join/internal/config"
	"github.com/strct-org/wifi-join/internal/errs"
)

// JoinError is returned when networksetup does not report success.
// Status is -1 when the process could not be started at all.
type JoinError struct {
	Status int
	Output string
	Err    error
}

func (e *JoinError) Error() string {
	if e.Status < 0 {
		return fmt.Sprintf("could not run networksetup: %v", e.Err)
	}
	if e.Output != "" {
		return fmt.Sprintf("networksetup exited with status %d: %s", e.Status, e.Output)
	}
	return fmt.Sprintf("networksetup exited with status %d", e.Status)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}

// Networksetup joins networks through macOS networksetup(8).
type Networksetup struct {
	Path   string
	Logger *log.Logger
}

// Args is the argv handed to networksetup. Each value stays a single
// argument, no shell ever sees it.
func (w *Networksetup) Args(req JoinRequest) []string {
	return []string{"-setairportnetwork", req.Interface, req.SSID, req.Password}
}

func (w *Networksetup) Join(req JoinRequest) error {
	if err := req.Validate(); err != nil {
		return errs.E(OpJoin, err)
	}

	path := w.Path
	if path == "" {
		path = config.DefaultNetworksetupPath
	}
	logger := w.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Printf("[WIFI] Joining %s...", req)

	output, err := exec.Command(path, w.Args(req)...).CombinedOutput()
	if err != nil {
		joinErr := &JoinError{
			Status: -1,
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			joinErr.Status = exitErr.ExitCode()
		}
		logger.Printf("[WIFI] Join failed: %v", joinErr)
		return errs.E(OpJoin, errs.KindSystem, joinErr)
	}

	logger.Printf("[WIFI] Joined %s", req)
	return nil
}
