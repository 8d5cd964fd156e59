package submission

import "time"

// canonicalDateLayout is what the submissions endpoint accepts regardless of
// the form's display format.
const canonicalDateLayout = "2006-01-02"

// dateLayouts maps the form editor's dateFormat values to Go layouts. The
// bare names use slashes; suffixed variants change the separator.
var dateLayouts = map[string]string{
	"mdy":       "01/02/2006",
	"dmy":       "02/01/2006",
	"ymd":       "2006/01/02",
	"mdy_dash":  "01-02-2006",
	"mdy_dot":   "01.02.2006",
	"dmy_dash":  "02-01-2006",
	"dmy_dot":   "02.01.2006",
	"ymd_slash": "2006/01/02",
	"ymd_dash":  "2006-01-02",
	"ymd_dot":   "2006.01.02",
}

// relayoutDate converts a display-format date into the canonical wire format.
// Input that is already canonical passes through; input that parses under no
// known layout is returned untouched so the server can reject it with a real
// validation message.
func relayoutDate(raw, dateFormat string) string {
	layout, ok := dateLayouts[dateFormat]
	if !ok {
		layout = dateLayouts["mdy"]
	}
	if t, err := time.Parse(layout, raw); err == nil {
		return t.Format(canonicalDateLayout)
	}
	if t, err := time.Parse(canonicalDateLayout, raw); err == nil {
		return t.Format(canonicalDateLayout)
	}
	return raw
}

// DisplayDateLayout exposes the Go layout for a form dateFormat so renderers
// can hint the expected input shape.
func DisplayDateLayout(dateFormat string) string {
	if layout, ok := dateLayouts[dateFormat]; ok {
		return layout
	}
	return dateLayouts["mdy"]
}
