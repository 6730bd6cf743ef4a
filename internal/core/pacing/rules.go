package pacing

import "strings"

// KeywordRule flags a qualitative issue when any of its keywords occurs in
// the campaign notes. Rules are independent: every matching rule adds its
// points and its tag.
type KeywordRule struct {
	Keywords []string
	Points   int
	Tag      string
}

// Match reports whether notes contain one of the rule keywords, ignoring
// case.
func (r KeywordRule) Match(notes string) bool {
	notes = strings.ToLower(notes)
	for _, k := range r.Keywords {
		if strings.Contains(notes, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// DefaultRules returns the standard note scan, in evaluation order.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{Keywords: []string{"delay", "delayed", "launch"}, Points: 3, Tag: "launch/creative delay"},
		{Keywords: []string{"approval", "assets", "creative"}, Points: 2, Tag: "awaiting approval/assets"},
		{Keywords: []string{"low impressions", "inventory"}, Points: 3, Tag: "inventory/low impressions"},
		{Keywords: []string{"budget", "approval delays"}, Points: 2, Tag: "budget approval issues"},
	}
}

// scanNotes applies rules in order and returns the summed points and the
// tags of the rules that matched.
func scanNotes(rules []KeywordRule, notes string) (int, []string) {
	var (
		points int
		tags   []string
	)
	for _, r := range rules {
		if r.Match(notes) {
			points += r.Points
			tags = append(tags, r.Tag)
		}
	}
	return points, tags
}
