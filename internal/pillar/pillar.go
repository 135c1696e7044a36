// Package pillar defines the Well-Architected pillar taxonomy: the six
// top-level categories, their source page URLs, and the best-practice
// index pages used by fetch to discover topic pages.
package pillar

import "strings"

// All lists the six pillars in canonical order. Report generation,
// evidence application, and sync all iterate in this order so output
// is deterministic.
var All = []string{
	"operational-excellence",
	"security",
	"reliability",
	"performance-efficiency",
	"cost-optimization",
	"sustainability",
}

// BaseURL is the default root of the framework documentation.
const BaseURL = "https://docs.aws.amazon.com/wellarchitected/latest/framework"

// bpPages maps a pillar to its best-practice index page and the href
// prefix its topic page links share.
var bpPages = map[string][2]string{
	"operational-excellence": {"oe-bp.html", "oe-"},
	"security":               {"sec-bp.html", "sec-"},
	"reliability":            {"rel-bp.html", "rel-"},
	"performance-efficiency": {"perf-bp.html", "perf-"},
	"cost-optimization":      {"cost-bp.html", "cost-"},
	"sustainability":         {"sus-bp.html", "sus-"},
}

// Known reports whether name is one of the six pillars.
func Known(name string) bool {
	_, ok := bpPages[name]
	return ok
}

// BPPage returns the best-practice index page and href prefix for a pillar.
func BPPage(name string) (page, hrefPrefix string) {
	v := bpPages[name]
	return v[0], v[1]
}

// PageURL returns the pillar's overview page under base.
func PageURL(base, name string) string {
	return base + "/" + name + ".html"
}

// Title renders a pillar slug as a human heading, e.g.
// "operational-excellence" -> "Operational Excellence".
func Title(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// IDPrefix derives the synthetic question-id prefix for a pillar:
// hyphens become underscores, truncated to eight characters, upper-cased.
func IDPrefix(name string) string {
	p := strings.ReplaceAll(name, "-", "_")
	if len(p) > 8 {
		p = p[:8]
	}
	return strings.ToUpper(p)
}
