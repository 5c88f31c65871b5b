package rayid_test

import (
	"net/http/httptest"
	"testing"

	"audit-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, resp.Header.Get(rayid.HeaderName))
}

func TestNew_HonorsIncomingID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "upstream-ray")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-ray", resp.Header.Get(rayid.HeaderName))
}
