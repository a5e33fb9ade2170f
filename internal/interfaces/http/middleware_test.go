package http_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func TestRequestContext_AplicaTimeout(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestContext(50 * time.Millisecond))
	app.Get("/ctx", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)
		<-c.UserContext().Done()
		return c.SendString(c.UserContext().Err().Error())
	})

	resp, body := doRequest(t, app, http.MethodGet, "/ctx", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, context.DeadlineExceeded.Error(), string(body))
}

func TestRequestLogger_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "test", Output: &buf})))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"path":"/ok"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRequestLogger_ErrorDelAlmacen(t *testing.T) {
	var buf bytes.Buffer
	app := buildAppWith(testStores{
		categories: brokenRepo[entity.Category]{},
		vendors:    brokenRepo[entity.Vendor]{},
	}, apphttp.RequestLogger(logger.New(logger.Config{Env: "test", Output: &buf})))

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/categories", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), errStoreDown.Error())
}
