package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/DjordjeVuckovic/html-validator/internal/dto"
	"github.com/DjordjeVuckovic/html-validator/internal/server"
	"github.com/DjordjeVuckovic/html-validator/internal/service"
	"github.com/DjordjeVuckovic/html-validator/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/html-validator/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.Validator = server.NewRequestValidator()
	NewValidationRouter(e, service.NewValidator(in_mem.NewInMemStorer())).Bind()
	return e
}

func do(e *echo.Echo, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestValidateHandler(t *testing.T) {
	e := newTestEcho()

	t.Run("valid document", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/validate?source=a.html", echo.MIMETextPlain, "<html><body></body></html>")

		require.Equal(t, http.StatusOK, rec.Code)
		var run dto.Run
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
		assert.True(t, run.Valid)
		assert.Equal(t, "a.html", run.Source)
		assert.Nil(t, run.Location)
	})

	t.Run("malformed document", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/validate", "text/html", "<ul>\n  <li>\n</ul>")

		require.Equal(t, http.StatusOK, rec.Code)
		var run dto.Run
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
		assert.False(t, run.Valid)
		assert.Equal(t, "mismatched_close", run.Issue)
		assert.Equal(t, "li", run.Expected)
		require.NotNil(t, run.Location)
		assert.Equal(t, 3, run.Location.Line)
		assert.Equal(t, "inline", run.Source)
	})

	t.Run("empty body", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/validate", echo.MIMETextPlain, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "empty_document")
	})
}

func TestValidateBatchHandler(t *testing.T) {
	e := newTestEcho()

	t.Run("mixed documents", func(t *testing.T) {
		body := `{"documents":[
			{"source":"ok.html","content":"<p></p>"},
			{"source":"bad.html","content":"<div>"},
			{"content":""}
		]}`
		rec := do(e, http.MethodPost, "/validate/batch", echo.MIMEApplicationJSON, body)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.BatchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 3)
		assert.Equal(t, 1, resp.Valid)
		assert.Equal(t, 2, resp.Invalid)

		assert.True(t, resp.Results[0].Run.Valid)
		assert.Equal(t, "unknown_tag", resp.Results[1].Run.Issue)
		assert.Nil(t, resp.Results[2].Run)
		assert.Equal(t, "inline-2", resp.Results[2].Source)
		assert.NotEmpty(t, resp.Results[2].Error)
	})

	t.Run("no documents", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/validate/batch", echo.MIMEApplicationJSON, `{"documents":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "documents must have at least 1 items")
	})

	t.Run("source too long", func(t *testing.T) {
		body := `{"documents":[{"source":"` + strings.Repeat("a", 256) + `","content":"<p></p>"}]}`
		rec := do(e, http.MethodPost, "/validate/batch", echo.MIMEApplicationJSON, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "documents[0].source must be at most 255")
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/validate/batch", echo.MIMEApplicationJSON, `{"documents":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRunHandlers(t *testing.T) {
	e := newTestEcho()

	rec := do(e, http.MethodPost, "/validate?source=first.html", echo.MIMETextPlain, "<p></p>")
	require.Equal(t, http.StatusOK, rec.Code)
	var created dto.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/validate", echo.MIMETextPlain, "<h1></h1>").Code)
	}

	t.Run("get by id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs/"+created.ID.String(), "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var run dto.Run
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
		assert.Equal(t, created.ID, run.ID)
		assert.Equal(t, "first.html", run.Source)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs/"+uuid.NewString(), "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs/not-a-uuid", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var page pagination.CursorResult[dto.Run]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Len(t, page.Items, 4)
		assert.False(t, page.HasMore)
	})

	t.Run("list pages with cursor", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs?limit=3", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var first pagination.CursorResult[dto.Run]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
		assert.Len(t, first.Items, 3)
		assert.True(t, first.HasMore)
		require.NotNil(t, first.NextCursor)

		rec = do(e, http.MethodGet, "/runs?limit=3&cursor="+*first.NextCursor, "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var second pagination.CursorResult[dto.Run]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
		assert.Len(t, second.Items, 1)
		assert.False(t, second.HasMore)
	})

	t.Run("bad cursor", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs?cursor=%25%25", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/runs?limit=-1", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
