package rules

import (
	"math"
	"strconv"

	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// MinColorContrast is the lowest contrast ratio between route_color and
// route_text_color accepted without a warning (WCAG AA for normal text).
const MinColorContrast = 4.5

// RouteColorContrast warns about routes whose text color is hard to read on
// their route color. Routes that leave either color out are not checked.
type RouteColorContrast struct{}

func (RouteColorContrast) Name() string { return "route_color_contrast" }

func (RouteColorContrast) Requires() []string { return []string{gtfs.RouteFile} }

func (RouteColorContrast) Validate(feed Feed, sink notice.Sink) {
	for _, r := range feed.Routes() {
		bg, ok := r.RouteColor().Get()
		if !ok {
			continue
		}
		fg, ok := r.RouteTextColor().Get()
		if !ok {
			continue
		}
		ratio, ok := contrastRatio(bg, fg)
		if ok && ratio < MinColorContrast {
			sink.AddNotice(notice.NewRouteColorContrast(gtfs.RouteFile, r.RouteID(), math.Round(ratio*100)/100))
		}
	}
}

// contrastRatio is the WCAG 2 contrast ratio of two RRGGBB colors, from 1
// to 21.
func contrastRatio(a, b string) (float64, bool) {
	la, ok := luminance(a)
	if !ok {
		return 0, false
	}
	lb, ok := luminance(b)
	if !ok {
		return 0, false
	}
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05), true
}

func luminance(hex string) (float64, bool) {
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return 0, false
	}
	channel := func(shift uint) float64 {
		c := float64((rgb>>shift)&0xff) / 255
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(16) + 0.7152*channel(8) + 0.0722*channel(0), true
}
