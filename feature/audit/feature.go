package audit

import (
	"time"

	"audit-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the audit service into the application loader.
type Feature struct {
	service *Service
}

// NewFeature creates the audit feature. client may be nil to disable
// report archiving.
func NewFeature(cfg Config, logger *zap.Logger, sessionTTL time.Duration, client storage.Client, bucket string) *Feature {
	sessions := NewSessionStore(sessionTTL)
	return &Feature{
		service: NewService(cfg, logger, sessions, client, bucket),
	}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled reports whether the feature should load. The audit feature is
// the application's reason to exist, so it is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the audit routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
