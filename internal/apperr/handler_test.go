package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"validation", apperr.NewValidation("limit must be positive"), http.StatusBadRequest, "validation error"},
		{"input", apperr.NewEmptyDocument("request body"), http.StatusBadRequest, "empty_document"},
		{"malformed", apperr.NewOrphanClose("</p>", "p", 0), http.StatusUnprocessableEntity, "orphan_close"},
		{"not found", fmt.Errorf("run 42: %w", apperr.ErrNotFound), http.StatusNotFound, ""},
		{"http", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, ""},
		{"unhandled", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tt.title, body["title"])
		})
	}
}
