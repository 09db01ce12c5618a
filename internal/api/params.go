package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vgdash/internal/engine"
)

func paramsFromQuery(c echo.Context) engine.Params {
	q := c.QueryParams()
	p := engine.Params{
		Preset:    q.Get("preset"),
		StartDate: firstOf(q.Get("start_date"), q.Get("year_min")),
		EndDate:   firstOf(q.Get("end_date"), q.Get("year_max")),
		GroupBy:   q.Get("group_by"),
		ColorBy:   q.Get("color_by"),
		HoverBy:   q.Get("hover_by"),
		Columns:   engine.ParseSelection(q["columns"]),
		Sort:      q.Get("sort"),
	}
	if vals, ok := q["platform"]; ok {
		sel := engine.ParseSelection(vals)
		p.Platforms = &sel
	}
	if vals, ok := q["genre"]; ok {
		sel := engine.ParseSelection(vals)
		p.Genres = &sel
	}
	return p
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// buildRequest resolves parameters; any parse failure is the caller's fault.
func buildRequest(t *engine.Table, p engine.Params) (engine.Request, error) {
	req, err := p.Request(t)
	if err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return req, nil
}
