package wifi

import (
	"log"

	"github.com/strct-org/wifi-join/internal/errs"
)

// MockWiFi stands in for networksetup in dev mode. A non-zero Status makes
// every join fail with that status.
type MockWiFi struct {
	Status int
	Logger *log.Logger
}

func (m *MockWiFi) Join(req JoinRequest) error {
	if err := req.Validate(); err != nil {
		return errs.E(OpJoin, err)
	}

	logger := m.Logger
	if logger == nil {
		logger = log.Default()
	}

	if m.Status != 0 {
		logger.Printf("[MOCK] Refusing to join %s (status %d)", req, m.Status)
		return errs.E(OpJoin, errs.KindSystem, &JoinError{Status: m.Status, Output: "mock failure"})
	}

	logger.Printf("[MOCK] Joined %s", req)
	return nil
}
