package engine

import "regexp"

// Label normalization maps the questionnaire's free-text option labels onto the
// stable identifiers the risk profile table is keyed by. Rules are tried in
// declaration order; a label that matches nothing falls back to a slug of the
// lower-cased text, so normalization is total.

type labelRule struct {
	pattern *regexp.Regexp
	id      string
}

var styleRules = []labelRule{
	{regexp.MustCompile(`all[- ]?back|cornrows|weaving`), "allback_cornrows"},
	{regexp.MustCompile(`\bbox braids\b`), "box_braids"},
	{regexp.MustCompile(`million braids`), "one_million_braids"},
	{regexp.MustCompile(`micro twists`), "micro_twists"},
	{regexp.MustCompile(`ghana weaving|shuku`), "ghana_weaving"},
	{regexp.MustCompile(`weaves.*sewn|fixing`), "weaves"},
	{regexp.MustCompile(`wigs.*glue|frontal|lace`), "wigs_glue"},
	{regexp.MustCompile(`wigs.*without|closure|headband`), "wigs_no_glue"},
	{regexp.MustCompile(`crochet`), "crochet"},
	{regexp.MustCompile(`twists.*senegalese|senegalese twists|^twists\b`), "twists_senegalese"},
	{regexp.MustCompile(`dreadlocs|locs`), "dreadlocs"},
	{regexp.MustCompile(`faux locs`), "faux_locs"},
	{regexp.MustCompile(`threading|kiko|didi`), "threading_didi"},
	{regexp.MustCompile(`tight ponytails|packing gel`), "tight_ponytails"},
	{regexp.MustCompile(`natural hair`), "natural_hair"},
}

var areaRules = []labelRule{
	{regexp.MustCompile(`edge`), "edges"},
	{regexp.MustCompile(`temple`), "temples"},
	{regexp.MustCompile(`crown|top|center`), "crown"},
	{regexp.MustCompile(`nape|back of neck`), "nape"},
	{regexp.MustCompile(`patch`), "patches"},
	{regexp.MustCompile(`even thinning|all over|overall`), "overall"},
}

var slugRuns = regexp.MustCompile(`[^a-z0-9_]+`)

// NormalizeProtectiveStyles maps protective-style labels to style ids.
func NormalizeProtectiveStyles(labels []string) []string {
	return normalize(labels, styleRules)
}

// NormalizeScalpAreas maps scalp-area labels to area ids.
func NormalizeScalpAreas(labels []string) []string {
	return normalize(labels, areaRules)
}

func normalize(labels []string, rules []labelRule) []string {
	ids := make([]string, 0, len(labels))
	for _, label := range labels {
		ids = append(ids, normalizeLabel(label, rules))
	}
	return ids
}

func normalizeLabel(label string, rules []labelRule) string {
	s := lower(label)
	for _, rule := range rules {
		if rule.pattern.MatchString(s) {
			return rule.id
		}
	}
	return slugRuns.ReplaceAllString(s, "_")
}
