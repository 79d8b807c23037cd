package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/strct-org/wifi-join/internal/config"
	"github.com/strct-org/wifi-join/internal/errs"
	"github.com/strct-org/wifi-join/internal/wifi"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

const (
	OpParse errs.Op = "cli.ParseRequest"
	OpRun   errs.Op = "cli.Run"
)

const (
	successMessage = "WiFi connected successfully"
	failureMessage = "WiFi connection failed"
)

func usage(name string) string {
	return fmt.Sprintf("Usage: %s <interface> <ssid> <password>", name)
}

// paint colours msg only when w is a terminal.
func paint(w io.Writer, c color.Color, msg string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return c.Render(msg)
	}
	return msg
}

// ParseRequest turns exactly three positional arguments into a JoinRequest.
func ParseRequest(args []string) (wifi.JoinRequest, error) {
	if len(args) != 3 {
		return wifi.JoinRequest{}, errs.E(OpParse, errs.KindInvalid, fmt.Sprintf("expected 3 arguments, got %d", len(args)))
	}

	req := wifi.JoinRequest{
		Interface: args[0],
		SSID:      args[1],
		Password:  args[2],
	}
	if err := req.Validate(); err != nil {
		return wifi.JoinRequest{}, errs.E(OpParse, err)
	}
	return req, nil
}

// Run joins once and returns the process exit code. The joiner is not
// called when the arguments are unusable.
func Run(name string, args []string, joiner wifi.Joiner, stdout, stderr io.Writer) int {
	req, err := ParseRequest(args)
	if err != nil {
		if len(args) == 3 {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
		}
		fmt.Fprintln(stderr, usage(name))
		return errs.ExitCode(err)
	}

	if err := joiner.Join(req); err != nil {
		err = errs.E(OpRun, err)
		fmt.Fprintln(stderr, paint(stderr, color.FgRed, failureMessage+": "+err.Error()))
		return errs.ExitCode(err)
	}

	fmt.Fprintln(stdout, paint(stdout, color.FgGreen, successMessage))
	return ExitSuccess
}

// Main loads flags and env, builds the joiner and runs it.
func Main(name string, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cfg, rest, err := config.Load(name, args, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fmt.Fprintln(stderr, usage(name))
		return ExitFailure
	}

	return Run(name, rest, wifi.New(cfg, logger), stdout, stderr)
}
