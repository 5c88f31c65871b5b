// Package rayid assigns a unique request ID (RayID) to every incoming
// request. The ID is stored in the Fiber locals under "ray_id" and echoed
// back in the X-Ray-ID response header so clients and logs can be correlated.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the Fiber locals key under which the RayID is stored.
const LocalsKey = "ray_id"

// HeaderName is the response header carrying the RayID.
const HeaderName = "X-Ray-ID"

// New returns the RayID middleware. An incoming X-Ray-ID header is honored
// so upstream proxies can propagate their own correlation IDs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
