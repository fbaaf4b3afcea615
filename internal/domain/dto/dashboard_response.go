package dto

import "github.com/guttosm/unicornpulse/internal/charts"

// PageResponse describes one dashboard page.
type PageResponse struct {
	Name  string `json:"name" example:"Overview"`
	Path  string `json:"path" example:"/"`
	Title string `json:"title" example:"Unicorn Companies Overview"`
}

// OverviewResponse carries the four figures of the overview page, keyed the
// same way the page lays them out.
type OverviewResponse struct {
	ValuationByCountry    charts.Spec `json:"valuation-by-country"`
	ValuationByIndustry   charts.Spec `json:"valuation-by-industry"`
	ValuationDistribution charts.Spec `json:"valuation-distribution"`
	ValuationOverTime     charts.Spec `json:"valuation-over-time"`
}

// IndustriesResponse feeds the industry dropdown.
type IndustriesResponse struct {
	Options []string `json:"options"`
	Default string   `json:"default,omitempty" example:"Fintech"`
}

// HistogramQuery binds the query string of the industry histogram endpoint.
type HistogramQuery struct {
	Industry string `form:"industry" binding:"required"`
	Bins     int    `form:"bins" binding:"omitempty,min=1,max=100"`
}
