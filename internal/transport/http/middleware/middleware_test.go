package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jpashop/internal/auditor"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditorFromHeader(t *testing.T) {
	app := fiber.New()
	app.Use(Auditor())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(auditor.FromContext(c.UserContext()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAuditor, "admin")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "admin", string(body))
}

func TestAuditorMissingHeader(t *testing.T) {
	app := fiber.New()
	app.Use(Auditor())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(auditor.FromContext(c.UserContext()))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Len(t, string(body), 36)
}

func TestRequestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/ping?x=1", fields["path"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.NotEmpty(t, fields["request_id"])
}

func TestRequestLoggerServerErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(HeaderAuditor, "ops")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "ops", entries[0].ContextMap()["auditor"])
}

func TestRequestLoggerStatusOfReturnedError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/bad", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusBadRequest, "Invalid format for parameter id")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.EqualValues(t, http.StatusBadRequest, entries[0].ContextMap()["status"])
}
