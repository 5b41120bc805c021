package shared

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// bannerWidth is the inner width of the banner box, matching the
// historical CI output of the tools this suite replaces.
const bannerWidth = 25

// Banner renders a three-line boxed title for CI log output, with the
// title centered inside a row of '=' characters.
func Banner(title string) string {
	rule := strings.Repeat("=", bannerWidth+2)

	w := runewidth.StringWidth(title)
	if w > bannerWidth {
		title = runewidth.Truncate(title, bannerWidth, "")
		w = runewidth.StringWidth(title)
	}
	left := (bannerWidth - w) / 2
	right := bannerWidth - w - left

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("\n=")
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(title)
	b.WriteString(strings.Repeat(" ", right))
	b.WriteString("=\n")
	b.WriteString(rule)
	return b.String()
}
