package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/unicornpulse/internal/charts"
	"github.com/guttosm/unicornpulse/internal/domain/models"
)

// Overview chart identifiers, matching the widgets of the overview page.
const (
	ChartValuationByCountry    = "valuation-by-country"
	ChartValuationByIndustry   = "valuation-by-industry"
	ChartValuationDistribution = "valuation-distribution"
	ChartValuationOverTime     = "valuation-over-time"
)

// ErrUnknownChart is returned by Chart for an id outside the overview page.
var ErrUnknownChart = errors.New("unknown chart")

// Overview holds the four figures of the overview page.
type Overview struct {
	ValuationByCountry    charts.Spec
	ValuationByIndustry   charts.Spec
	ValuationDistribution charts.Spec
	ValuationOverTime     charts.Spec
}

// Page is an entry of the dashboard page registry.
type Page struct {
	Name  string
	Path  string
	Title string
}

// Pages lists the dashboard pages in navigation order.
var Pages = []Page{
	{Name: "Overview", Path: "/", Title: "Unicorn Companies Overview"},
	{Name: "Industry Valuations", Path: "/MoreInfo", Title: "Unicorn Valuations"},
}

// DashboardService turns the loaded dataset into page content.
// This decouples HTTP handlers from aggregation and chart construction.
type DashboardService interface {
	Overview(ctx context.Context) (*Overview, error)
	Chart(ctx context.Context, id string) (*charts.Spec, error)
	Industries(ctx context.Context) []string
	IndustryHistogram(ctx context.Context, industry string, bins int) (*charts.Spec, error)
	Table(ctx context.Context) models.Table
	Summary(ctx context.Context) models.Summary
}

type dashboardService struct {
	ds          *models.Dataset
	opts        charts.Options
	defaultBins int
}

// NewDashboardService wires the service to a read-only dataset.
// defaultBins is used when a histogram request does not name a bucket count.
func NewDashboardService(ds *models.Dataset, opts charts.Options, defaultBins int) DashboardService {
	if defaultBins <= 0 {
		defaultBins = charts.DefaultHistogramBuckets
	}
	return &dashboardService{ds: ds, opts: opts, defaultBins: defaultBins}
}

func (s *dashboardService) build(id string) (charts.Spec, error) {
	switch id {
	case ChartValuationByCountry:
		return charts.Bar("Total Valuation by Country", "Country", "Valuation ($B)", SumByCountry(s.ds), s.opts), nil
	case ChartValuationByIndustry:
		return charts.Bar("Valuation Distribution by Industry", "Industry", "Valuation ($B)", SumByIndustry(s.ds), s.opts), nil
	case ChartValuationDistribution:
		return charts.Violin("Valuation Distribution of Unicorns", "Valuation ($B)", ValuationDistribution(s.ds), s.opts), nil
	case ChartValuationOverTime:
		return charts.CumulativeLine(CumulativeValuationOverTime(s.ds), s.opts), nil
	default:
		return charts.Spec{}, fmt.Errorf("%w: %q", ErrUnknownChart, id)
	}
}

// Overview builds the four overview figures concurrently; the dataset is
// shared read-only and every goroutine writes its own field.
func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}
	targets := []struct {
		id  string
		dst *charts.Spec
	}{
		{ChartValuationByCountry, &out.ValuationByCountry},
		{ChartValuationByIndustry, &out.ValuationByIndustry},
		{ChartValuationDistribution, &out.ValuationDistribution},
		{ChartValuationOverTime, &out.ValuationOverTime},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spec, err := s.build(t.id)
			if err != nil {
				return err
			}
			*t.dst = spec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *dashboardService) Chart(ctx context.Context, id string) (*charts.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	spec, err := s.build(id)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Industries returns dropdown options in first-seen order; the first entry is
// the default selection.
func (s *dashboardService) Industries(_ context.Context) []string {
	return s.ds.Domain(models.FieldIndustry)
}

func (s *dashboardService) IndustryHistogram(ctx context.Context, industry string, bins int) (*charts.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filtered, err := FilterByCategory(s.ds, models.FieldIndustry, industry)
	if err != nil {
		return nil, err
	}
	if bins <= 0 {
		bins = s.defaultBins
	}
	spec := charts.Histogram("Histogram of Valuations for "+industry, ValuationDistribution(filtered), bins, s.opts)
	return &spec, nil
}

// Table renders every company as strings, columns in source header order.
func (s *dashboardService) Table(_ context.Context) models.Table {
	header := s.ds.Header()
	extra := make(map[string]int)
	for i, col := range s.ds.ExtraColumns() {
		extra[col] = i
	}

	rows := make([][]string, 0, s.ds.Len())
	s.ds.Each(func(c models.Company) {
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = cell(c, col, extra)
		}
		rows = append(rows, row)
	})

	return models.Table{Columns: header, Rows: rows}
}

func cell(c models.Company, col string, extra map[string]int) string {
	switch col {
	case models.ColCompany:
		return c.Name
	case models.ColValuation:
		return strconv.FormatFloat(c.Valuation, 'f', -1, 64)
	case models.ColDateJoined:
		return c.DateJoined.Format("2006-01-02")
	case models.ColCountry:
		return c.Country
	case models.ColCity:
		return c.City
	case models.ColIndustry:
		return c.Industry
	case models.ColInvestors:
		return c.Investors
	}
	if i, ok := extra[col]; ok && i < len(c.Extra) {
		return c.Extra[i]
	}
	return ""
}

func (s *dashboardService) Summary(_ context.Context) models.Summary {
	sum := models.Summary{
		Companies:      s.ds.Len(),
		TotalValuation: TotalValuation(s.ds),
		Countries:      len(s.ds.Domain(models.FieldCountry)),
		Industries:     len(s.ds.Domain(models.FieldIndustry)),
	}

	var first, last time.Time
	s.ds.Each(func(c models.Company) {
		if first.IsZero() || c.DateJoined.Before(first) {
			first = c.DateJoined
		}
		if c.DateJoined.After(last) {
			last = c.DateJoined
		}
	})
	if !first.IsZero() {
		sum.FirstJoined = &first
		sum.LastJoined = &last
	}
	return sum
}
