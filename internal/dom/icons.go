package dom

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/net/html"
)

var ErrUnknownIcon = errors.New("dom: unknown icon")

// контурные иконки 24x24; значение: список атрибутов "d" у path
var icons = map[string][]string{
	"home":       {"M3 11l9-8 9 8", "M5 10v10h14V10"},
	"tag":        {"M3 3h8l10 10-8 8L3 11z", "M7.5 7.5h.01"},
	"chart":      {"M4 20V10", "M10 20V4", "M16 20v-7", "M22 20H2"},
	"key":        {"M15 7a4 4 0 1 1-3.5 6L4 20.5V17h3v-3h3l1.5-1.5"},
	"calculator": {"M6 2h12v20H6z", "M9 6h6", "M9 11h.01", "M12 11h.01", "M15 11h.01", "M9 15h.01", "M12 15h.01", "M15 15h.01"},
	"map":        {"M9 4L3 6v14l6-2 6 2 6-2V4l-6 2z", "M9 4v14", "M15 6v14"},
	"sparkle":    {"M12 3l2 6 6 2-6 2-2 6-2-6-6-2 6-2z"},
	"bed":        {"M3 18V7", "M3 13h18v5", "M21 18v-4a3 3 0 0 0-3-3h-7v2"},
	"bath":       {"M4 12h16v3a5 5 0 0 1-5 5H9a5 5 0 0 1-5-5z", "M6 12V5a2 2 0 0 1 4 0"},
	"area":       {"M3 3h18v18H3z", "M3 9h18", "M9 21V9"},
	"pin":        {"M12 21s-7-6.5-7-12a7 7 0 0 1 14 0c0 5.5-7 12-7 12z", "M12 9h.01"},
	"phone":      {"M5 4h4l2 5-2.5 1.5a11 11 0 0 0 5 5L15 13l5 2v4a2 2 0 0 1-2 2A16 16 0 0 1 3 6a2 2 0 0 1 2-2"},
	"mail":       {"M3 5h18v14H3z", "M3 7l9 6 9-6"},
	"star":       {"M12 3l2.8 5.7 6.2.9-4.5 4.4 1.1 6.2L12 17.3 6.4 20.2l1.1-6.2L3 9.6l6.2-.9z"},
	"play":       {"M8 5v14l11-7z"},
	"chevron":    {"M9 6l6 6-6 6"},
	"check":      {"M5 12l5 5 9-10"},
	"briefcase":  {"M3 7h18v13H3z", "M8 7V4h8v3"},
}

// IconNames: доступные иконки по алфавиту
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Icon строит встроенный декоративный SVG
func Icon(name string) (*html.Node, error) {
	paths, ok := icons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	svg := &html.Node{Type: html.ElementNode, Data: "svg", Namespace: "svg"}
	Attrs(svg,
		"class", "icon icon-"+name,
		"viewBox", "0 0 24 24",
		"width", "24",
		"height", "24",
		"fill", "none",
		"stroke", "currentColor",
		"stroke-width", "2",
		"stroke-linecap", "round",
		"stroke-linejoin", "round",
		"aria-hidden", "true",
		"focusable", "false",
	)
	for _, d := range paths {
		p := &html.Node{Type: html.ElementNode, Data: "path", Namespace: "svg"}
		Attr(p, "d", d)
		svg.AppendChild(p)
	}
	return svg, nil
}
