package charts

import (
	"fmt"

	"github.com/guttosm/unicornpulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Bar builds a category bar chart from an aggregation. Categories are laid
// out in ascending key order.
func Bar(title, xTitle, yTitle string, res models.AggregationResult, opts Options) Spec {
	keys := res.SortedKeys()
	ys := make([]float64, len(keys))
	for i, k := range keys {
		ys[i] = res[k]
	}

	return Spec{
		Kind: KindBar,
		Data: []Trace{{
			Type:   string(KindBar),
			Name:   yTitle,
			X:      keys,
			Y:      ys,
			Marker: &Marker{Color: opts.color(0)},
		}},
		Layout: opts.layout(title,
			Axis{Title: xTitle, Type: "category"},
			Axis{Title: yTitle},
		),
	}
}

// Violin builds a distribution chart with a box overlay.
func Violin(title, yTitle string, values []float64, opts Options) Spec {
	ys := append([]float64{}, values...)
	box := boxStats(ys)
	box.Visible = true

	return Spec{
		Kind: KindViolin,
		Data: []Trace{{
			Type:   string(KindViolin),
			Name:   yTitle,
			X:      []string{},
			Y:      ys,
			Marker: &Marker{Color: opts.color(0)},
			Box:    &box,
		}},
		Layout: opts.layout(title, Axis{}, Axis{Title: yTitle}),
	}
}

// CumulativeLine builds the running-total line chart.
func CumulativeLine(ts models.TimeSeries, opts Options) Spec {
	xs := make([]string, len(ts))
	ys := make([]float64, len(ts))
	for i, p := range ts {
		xs[i] = p.Date.Format(dateLayout)
		ys[i] = p.Cumulative
	}

	return Spec{
		Kind: KindLine,
		Data: []Trace{{
			Type:   "scatter",
			Name:   "Total Valuation ($B)",
			X:      xs,
			Y:      ys,
			Marker: &Marker{Color: opts.color(0)},
		}},
		Layout: opts.layout("Total Valuation Over Time",
			Axis{Title: "Date Joined", Type: "date", TickAngle: opts.TickAngle},
			Axis{Title: "Total Valuation ($B)", TickPrefix: "$", TickFormat: ",.2f"},
		),
	}
}

// Histogram counts values into bucketCount fixed-width buckets spanning the
// observed range. bucketCount <= 0 falls back to DefaultHistogramBuckets.
func Histogram(title string, values []float64, bucketCount int, opts Options) Spec {
	if bucketCount <= 0 {
		bucketCount = DefaultHistogramBuckets
	}

	bs := buckets(values, bucketCount)
	xs := make([]string, len(bs))
	ys := make([]float64, len(bs))
	for i, b := range bs {
		xs[i] = fmt.Sprintf("%.2f-%.2f", b.Lower, b.Upper)
		ys[i] = float64(b.Count)
	}

	l := opts.layout(title,
		Axis{Title: "Valuation ($B)", TickAngle: opts.TickAngle},
		Axis{Title: "Frequency"},
	)
	l.Legend = &Legend{Orientation: "h", YAnchor: "bottom", Y: 1.02, XAnchor: "right", X: 1}
	l.Width = opts.HistogramWidth
	l.Height = opts.HistogramHeight

	return Spec{
		Kind: KindHistogram,
		Data: []Trace{{
			Type:    string(KindHistogram),
			Name:    "Valuation ($B)",
			X:       xs,
			Y:       ys,
			Marker:  &Marker{Color: opts.color(0)},
			Buckets: bs,
		}},
		Layout: l,
	}
}
