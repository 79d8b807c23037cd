//go:generate go run go.uber.org/mock/mockgen -source=wifi.go -destination=../../mocks/mock_joiner.go -package=mocks
package wifi

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/strct-org/wifi-join/internal/config"
	"github.com/strct-org/wifi-join/internal/errs"
)

const (
	OpJoin     errs.Op = "wifi.Join"
	OpValidate errs.Op = "wifi.Validate"
)

var validate = validator.New()

// JoinRequest names the adapter and the network to associate it with.
// Password may be empty for open networks.
type JoinRequest struct {
	Interface string `validate:"required"`
	SSID      string `validate:"required"`
	Password  string
}

func (r JoinRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errs.E(OpValidate, errs.KindInvalid, err, "interface and ssid must not be empty")
	}
	return nil
}

// String keeps the password out of logs.
func (r JoinRequest) String() string {
	return fmt.Sprintf("%s -> %q", r.Interface, r.SSID)
}

type Joiner interface {
	Join(req JoinRequest) error
}

// New Factory.
func New(cfg *config.Config, logger *log.Logger) Joiner {
	if logger == nil {
		logger = log.Default()
	}

	if cfg.IsDev {
		logger.Println("[WIFI] Factory: Returning MOCK joiner")
		return &MockWiFi{Status: cfg.MockStatus, Logger: logger}
	}

	return &Networksetup{
		Path:   cfg.NetworksetupPath,
		Logger: logger,
	}
}
