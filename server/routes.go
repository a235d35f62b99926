package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/score2"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up the http request handlers with Echo.
func RegisterRoutes(e *echo.Echo, service *EvaluationService) {
	e.POST("/tables", func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing file upload"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		defer f.Close()

		table, err := score2.LoadTable(f)
		if err != nil {
			return respondError(c, err)
		}
		id := service.SetTable(table)
		logrus.WithFields(logrus.Fields{"id": id, "rows": table.Len()}).Info("loaded SCORE2 matrix")
		return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "rows": table.Len()})
	})

	e.POST("/coefficients", func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing file upload"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		defer f.Close()

		coeffs, err := score2.LoadCoefficients(f)
		if err != nil {
			return respondError(c, err)
		}
		id := service.SetCoefficients(coeffs)
		logrus.WithFields(logrus.Fields{"id": id, "variables": len(coeffs)}).Info("loaded coefficient set")
		return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "variables": len(coeffs)})
	})

	e.POST("/evaluate", func(c echo.Context) error {
		req := new(EvaluationRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		}
		rec, err := service.Evaluate(req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, rec)
	})

	e.GET("/reports/:id", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad ID format for requested report"})
		}
		rec, err := service.Report(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, rec)
	})

	e.GET("/examples", func(c echo.Context) error {
		return c.JSON(http.StatusOK, service.Examples())
	})
}

// respondError maps the error taxonomy onto status codes. Everything is
// reported to the user; nothing is swallowed or retried.
func respondError(c echo.Context, err error) error {
	var (
		schemaErr  *score2.SchemaError
		dupErr     *score2.DuplicateRowError
		rangeErr   *score2.RangeError
		notImplErr *score2.NotImplementedError
	)
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &notImplErr):
		status = http.StatusNotImplemented
	case errors.As(err, &schemaErr), errors.As(err, &dupErr), errors.As(err, &rangeErr):
		status = http.StatusBadRequest
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}
