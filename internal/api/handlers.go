package api

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"vgdash/internal/engine"
)

// Handler serves the dashboard queries. It may be created before the dataset
// is loaded; until SetTable is called every query endpoint answers 503.
type Handler struct {
	table atomic.Pointer[engine.Table]
}

func NewHandler(t *engine.Table) *Handler {
	h := &Handler{}
	if t != nil {
		h.table.Store(t)
	}
	return h
}

// SetTable installs the loaded dataset.
func (h *Handler) SetTable(t *engine.Table) {
	h.table.Store(t)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/facets", h.GetFacets)
	api.GET("/table", h.GetTable)
	api.GET("/sales", h.GetSales)
	api.GET("/distribution", h.GetDistribution)
	api.POST("/query", h.PostQuery)
}

func (h *Handler) loaded() (*engine.Table, error) {
	t := h.table.Load()
	if t == nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is loading")
	}
	return t, nil
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *Handler) GetHealth(c echo.Context) error {
	t := h.table.Load()
	if t == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{"status": "loading"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"rows":    t.Len(),
		"dataset": fmt.Sprintf("%016x", t.Fingerprint),
	})
}

func (h *Handler) GetFacets(c echo.Context) error {
	t, err := h.loaded()
	if err != nil {
		return err
	}
	return respond(c, t.Facets())
}

// table rows, paginated
func (h *Handler) GetTable(c echo.Context) error {
	t, err := h.loaded()
	if err != nil {
		return err
	}
	req, err := buildRequest(t, paramsFromQuery(c))
	if err != nil {
		return err
	}

	view := engine.Filter(t, req.Criteria)
	proj := engine.ProjectAndSort(view, req.Columns, req.BySales)

	total := len(proj.Rows)
	limit, offset := getPaginationParams(c, total)
	page := [][]any{}
	if offset < total {
		end := total
		if limit < total-offset {
			end = offset + limit
		}
		page = proj.Rows[offset:end]
	}

	return respond(c, map[string]interface{}{
		"columns": proj.Columns,
		"data":    page,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// grouped totals for the histogram
func (h *Handler) GetSales(c echo.Context) error {
	t, err := h.loaded()
	if err != nil {
		return err
	}
	req, err := buildRequest(t, paramsFromQuery(c))
	if err != nil {
		return err
	}
	totals := engine.GroupedSum(engine.Filter(t, req.Criteria), req.GroupBy)
	return respond(c, map[string]interface{}{
		"group_by": req.GroupBy,
		"data":     totals,
	})
}

// box summaries for the box plot
func (h *Handler) GetDistribution(c echo.Context) error {
	t, err := h.loaded()
	if err != nil {
		return err
	}
	req, err := buildRequest(t, paramsFromQuery(c))
	if err != nil {
		return err
	}
	boxes := engine.Distribution(engine.Filter(t, req.Criteria), req.Box)
	return respond(c, map[string]interface{}{
		"group_by": req.Box.GroupBy,
		"color_by": req.Box.ColorBy,
		"data":     boxes,
	})
}

// all three results from one JSON body
func (h *Handler) PostQuery(c echo.Context) error {
	t, err := h.loaded()
	if err != nil {
		return err
	}
	var p engine.Params
	if err := c.Bind(&p); err != nil {
		return err
	}
	req, err := buildRequest(t, p)
	if err != nil {
		return err
	}
	return respond(c, engine.Query(t, req))
}
