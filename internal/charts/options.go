package charts

// DefaultHistogramBuckets is used when a caller asks for zero or fewer buckets.
const DefaultHistogramBuckets = 10

// Default color palette for chart series.
var defaultColors = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Options carries the presentation settings threaded into every builder.
// They are configuration, never derived from data.
type Options struct {
	Margin       Margin
	PaperBgColor string
	PlotBgColor  string
	FontColor    string
	TickAngle    int
	Palette      []string

	// HistogramWidth and HistogramHeight size the industry histogram page.
	HistogramWidth  int
	HistogramHeight int
}

// DefaultOptions returns the dashboard's house style.
func DefaultOptions() Options {
	return Options{
		Margin:          Margin{L: 20, R: 20, T: 50, B: 50},
		PaperBgColor:    "rgba(255,255,255,0.8)",
		PlotBgColor:     "rgba(255,255,255,0.8)",
		FontColor:       "black",
		TickAngle:       45,
		Palette:         append([]string(nil), defaultColors...),
		HistogramWidth:  1000,
		HistogramHeight: 600,
	}
}

func (o Options) color(i int) string {
	if len(o.Palette) == 0 {
		return defaultColors[i%len(defaultColors)]
	}
	return o.Palette[i%len(o.Palette)]
}

// layout applies the shared cosmetic settings.
func (o Options) layout(title string, x, y Axis) Layout {
	l := Layout{
		Title:        title,
		XAxis:        x,
		YAxis:        y,
		Margin:       o.Margin,
		PaperBgColor: o.PaperBgColor,
		PlotBgColor:  o.PlotBgColor,
	}
	if o.FontColor != "" {
		l.Font = &Font{Color: o.FontColor}
	}
	return l
}
