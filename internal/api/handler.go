package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/unicornpulse/internal/domain/dto"
	"github.com/guttosm/unicornpulse/internal/middleware"
	"github.com/guttosm/unicornpulse/internal/service"
)

// Handler provides HTTP handlers for the dashboard pages.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Ask the dashboard service for chart specs, options and tables
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.DashboardService): Service built over the loaded dataset.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// GetPages godoc
// @Summary      List dashboard pages
// @Description  Returns the page registry in navigation order
// @Tags         pages
// @Produce      json
// @Success      200  {array}   dto.PageResponse
// @Router       /api/v1/pages [get]
func (h *Handler) GetPages(c *gin.Context) {
	out := make([]dto.PageResponse, 0, len(service.Pages))
	for _, p := range service.Pages {
		out = append(out, dto.PageResponse{Name: p.Name, Path: p.Path, Title: p.Title})
	}
	c.JSON(http.StatusOK, out)
}

// GetOverview handles GET /api/v1/overview requests.
//
// Responses:
//   - 200 OK: The four overview figures.
//   - 504 Gateway Timeout: The request deadline expired while building them.
//   - 500 Internal Server Error: Any other failure.
//
// GetOverview godoc
// @Summary      Overview page charts
// @Description  Valuation by country, valuation by industry, valuation distribution and cumulative valuation over time
// @Tags         overview
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse     "Internal Error"
// @Failure      504  {object}  dto.ErrorResponse     "Timeout"
// @Router       /api/v1/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	ov, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, statusFor(err), "failed to build overview", err)
		return
	}

	c.JSON(http.StatusOK, dto.OverviewResponse{
		ValuationByCountry:    ov.ValuationByCountry,
		ValuationByIndustry:   ov.ValuationByIndustry,
		ValuationDistribution: ov.ValuationDistribution,
		ValuationOverTime:     ov.ValuationOverTime,
	})
}

// GetChart godoc
// @Summary      Single overview chart
// @Description  Returns one overview figure by id
// @Tags         overview
// @Produce      json
// @Param        id   path      string  true  "Chart id"  Enums(valuation-by-country, valuation-by-industry, valuation-distribution, valuation-over-time)
// @Success      200  {object}  charts.Spec        "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Unknown chart"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/charts/{id} [get]
func (h *Handler) GetChart(c *gin.Context) {
	spec, err := h.svc.Chart(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, statusFor(err), "failed to build chart", err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

// GetIndustries godoc
// @Summary      Industry dropdown options
// @Description  Distinct industries in first-seen order; the first is the default selection
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustriesResponse
// @Router       /api/v1/industries [get]
func (h *Handler) GetIndustries(c *gin.Context) {
	opts := h.svc.Industries(c.Request.Context())
	resp := dto.IndustriesResponse{Options: opts}
	if resp.Options == nil {
		resp.Options = []string{}
	}
	if len(opts) > 0 {
		resp.Default = opts[0]
	}
	c.JSON(http.StatusOK, resp)
}

// GetIndustryHistogram handles GET /api/v1/industries/histogram requests.
//
// Query Parameters:
//   - industry (string, required): Industry to filter on, as listed by /api/v1/industries.
//   - bins (int, optional): Bucket count, 1..100 (default from HISTOGRAM_BINS).
//
// Responses:
//   - 200 OK: Histogram spec.
//   - 400 Bad Request: Missing industry or bins out of range.
//   - 404 Not Found: Industry not present in the dataset.
//
// GetIndustryHistogram godoc
// @Summary      Industry valuation histogram
// @Description  Histogram of valuations for the companies of one industry
// @Tags         industries
// @Produce      json
// @Param        industry  query     string  true   "Industry"     example(Fintech)
// @Param        bins      query     int     false  "Bucket count" minimum(1) maximum(100)
// @Success      200       {object}  charts.Spec        "Success"
// @Failure      400       {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404       {object}  dto.ErrorResponse  "Unknown industry"
// @Failure      500       {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/industries/histogram [get]
func (h *Handler) GetIndustryHistogram(c *gin.Context) {
	var q dto.HistogramQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid histogram query", err)
		return
	}

	spec, err := h.svc.IndustryHistogram(c.Request.Context(), q.Industry, q.Bins)
	if err != nil {
		middleware.AbortWithError(c, statusFor(err), "failed to build histogram", err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

// GetCompanies godoc
// @Summary      Data table
// @Description  Every company as strings, columns in source order
// @Tags         companies
// @Produce      json
// @Success      200  {object}  models.Table
// @Router       /api/v1/companies [get]
func (h *Handler) GetCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Table(c.Request.Context()))
}

// ExportCompanies godoc
// @Summary      Data table as spreadsheet
// @Description  Downloads the data table as an XLSX workbook
// @Tags         companies
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/companies/export [get]
func (h *Handler) ExportCompanies(c *gin.Context) {
	buf, err := writeWorkbook(h.svc.Table(c.Request.Context()))
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to export companies", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetSummary godoc
// @Summary      Dataset summary
// @Description  Record count, total valuation, distinct countries and industries, date range
// @Tags         companies
// @Produce      json
// @Success      200  {object}  models.Summary
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context()))
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var invalid *service.InvalidCategoryError
	switch {
	case errors.As(err, &invalid), errors.Is(err, service.ErrUnknownChart):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
