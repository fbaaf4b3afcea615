package charts

// Kind identifies how a Spec is rendered.
type Kind string

const (
	KindBar       Kind = "bar"
	KindViolin    Kind = "violin"
	KindLine      Kind = "line"
	KindHistogram Kind = "histogram"
)

// Spec is a render-ready chart description. Its JSON shape follows the
// figure layout of common browser charting libraries ("data" + "layout"), so
// the dashboard can hand it over without reshaping.
//
// A Spec is built per request and owned by the caller.
type Spec struct {
	Kind   Kind    `json:"kind"`
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series. X and Y are always non-nil so an empty chart
// still serializes as empty arrays.
type Trace struct {
	Type    string    `json:"type"`
	Name    string    `json:"name,omitempty"`
	X       []string  `json:"x"`
	Y       []float64 `json:"y"`
	Marker  *Marker   `json:"marker,omitempty"`
	Box     *BoxStats `json:"box,omitempty"`
	Buckets []Bucket  `json:"buckets,omitempty"`
}

// Marker styles the points or bars of a trace.
type Marker struct {
	Color string `json:"color"`
}

// BoxStats is the box overlay drawn inside a violin.
type BoxStats struct {
	Visible bool    `json:"visible"`
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
}

// Bucket is a fixed-width histogram range. Lower is inclusive; Upper is
// exclusive except for the last bucket.
type Bucket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Layout holds titles, axes and cosmetic options.
type Layout struct {
	Title        string  `json:"title"`
	XAxis        Axis    `json:"xaxis"`
	YAxis        Axis    `json:"yaxis"`
	Margin       Margin  `json:"margin"`
	PaperBgColor string  `json:"paper_bgcolor,omitempty"`
	PlotBgColor  string  `json:"plot_bgcolor,omitempty"`
	Font         *Font   `json:"font,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	Height       int     `json:"height,omitempty"`
	Width        int     `json:"width,omitempty"`
}

// Axis configures one chart axis.
type Axis struct {
	Title      string `json:"title"`
	Type       string `json:"type,omitempty"` // "category", "date", "linear"
	TickAngle  int    `json:"tickangle,omitempty"`
	TickPrefix string `json:"tickprefix,omitempty"`
	TickFormat string `json:"tickformat,omitempty"`
}

// Margin is expressed in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Font sets the text colour.
type Font struct {
	Color string `json:"color"`
}

// Legend places the legend box.
type Legend struct {
	Orientation string  `json:"orientation"`
	YAnchor     string  `json:"yanchor"`
	Y           float64 `json:"y"`
	XAnchor     string  `json:"xanchor"`
	X           float64 `json:"x"`
}
