package router

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/internal/dto"
	"github.com/DjordjeVuckovic/html-validator/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RunService interface {
	Validate(ctx context.Context, source, text string) (*domain.Run, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Run, error)
	List(ctx context.Context, req pagination.CursorRequest) (*pagination.CursorResult[domain.Run], error)
}

type ValidationRouter struct {
	e   *echo.Echo
	svc RunService
}

func NewValidationRouter(e *echo.Echo, svc RunService) *ValidationRouter {
	return &ValidationRouter{
		e:   e,
		svc: svc,
	}
}

func (r *ValidationRouter) Bind() {
	r.e.POST("/validate", r.validateHandler)
	r.e.POST("/validate/batch", r.validateBatchHandler)
	r.e.GET("/runs", r.listRunsHandler)
	r.e.GET("/runs/:id", r.getRunHandler)
}

// validateHandler godoc
// @Summary Validate a document
// @Description Validates the raw request body against the tag grammar and records the run. Malformed documents return 200 with valid=false.
// @Tags validation
// @Accept plain
// @Accept html
// @Produce json
// @Param source query string false "Document name stored with the run"
// @Param document body string true "Document text"
// @Success 200 {object} dto.Run
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /validate [post]
func (r *ValidationRouter) validateHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return apperr.NewValidationWrap("failed to read request body", err)
	}

	run, err := r.svc.Validate(c.Request().Context(), c.QueryParam("source"), string(body))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromRun(*run))
}

// validateBatchHandler godoc
// @Summary Validate several documents
// @Description Every document is validated and recorded independently. Rejected documents carry an error instead of a run.
// @Tags validation
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Documents to validate"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /validate/batch [post]
func (r *ValidationRouter) validateBatchHandler(c echo.Context) error {
	var req dto.BatchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid batch request", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	resp := dto.BatchResponse{Results: make([]dto.BatchResult, 0, len(req.Documents))}

	for i, doc := range req.Documents {
		source := doc.Source
		if source == "" {
			source = domain.RunDefaultSource + "-" + strconv.Itoa(i)
		}

		run, err := r.svc.Validate(ctx, source, doc.Content)
		if err != nil {
			var ie *apperr.InputError
			if !errors.As(err, &ie) {
				return err
			}
			resp.Results = append(resp.Results, dto.BatchResult{Source: source, Error: ie.Error()})
			resp.Invalid++
			continue
		}

		out := dto.FromRun(*run)
		resp.Results = append(resp.Results, dto.BatchResult{Source: source, Run: &out})
		if run.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// getRunHandler godoc
// @Summary Get a validation run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID" format(uuid)
// @Success 200 {object} dto.Run
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /runs/{id} [get]
func (r *ValidationRouter) getRunHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid run id", err)
	}

	run, err := r.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromRun(*run))
}

// listRunsHandler godoc
// @Summary List recent validation runs
// @Description Runs are returned newest first. Pass next_cursor back as cursor to fetch the following page.
// @Tags runs
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} pagination.CursorResult[dto.Run]
// @Failure 400 {object} map[string]string
// @Router /runs [get]
func (r *ValidationRouter) listRunsHandler(c echo.Context) error {
	req := pagination.CursorRequest{Cursor: c.QueryParam("cursor")}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive integer")
		}
		req.Limit = n
	}

	page, err := r.svc.List(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pagination.MapCursorResult(page, dto.FromRun))
}
