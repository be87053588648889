// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(25, 2, 10)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 3, p.TotalPages)

	// zero totals still produce a sane object
	p = BuildPagination(0, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.TotalPages)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 50)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x?page=3&limit=20", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, Paging{Page: 3, Limit: 20, Offset: 40}, got)

	resp, err = app.Test(httptest.NewRequest("GET", "/x?page=-1&limit=9999", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, Paging{Page: 1, Limit: 50, Offset: 0}, got, "limit is clamped to the max")
}

func TestJsonErrorHidesInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusInternalServerError, "connection refused to db-primary:5432")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var er ErrorResponse
	require.NoError(t, json.Unmarshal(body, &er))
	assert.False(t, er.Success)
	assert.Equal(t, "Internal server error", er.Message)
	assert.Equal(t, "INTERNAL_ERROR", er.ErrorCode)
}

func TestFromFiberErrorKeepsStatusAndMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusConflict, "already exists"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var er ErrorResponse
	require.NoError(t, json.Unmarshal(body, &er))
	assert.Equal(t, "already exists", er.Message)
	assert.Equal(t, "CONFLICT", er.ErrorCode)
}

func TestValidateStructReportsJsonFieldNames(t *testing.T) {
	type payload struct {
		RouteName string `json:"route_name" validate:"required,min=3"`
		Email     string `json:"email" validate:"omitempty,email"`
	}

	app := fiber.New()
	app.Post("/v", func(c *fiber.Ctx) error {
		handled, err := ValidateStruct(c, payload{RouteName: "", Email: "nope"})
		require.True(t, handled)
		return err
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/v", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var er ErrorResponse
	require.NoError(t, json.Unmarshal(body, &er))
	assert.Equal(t, "VALIDATION_ERROR", er.ErrorCode)

	fields := map[string]string{}
	for _, fe := range er.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "route_name")
	assert.Contains(t, fields, "email")
}
