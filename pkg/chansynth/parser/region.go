package parser

import (
	"regexp"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// space matches the whitespace that may surround a region token, including the
// no-break and other Unicode spaces found in text extracted from PDFs.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// RegionRule maps a single-letter token to the region it restricts a channel to.
type RegionRule struct {
	Token  string
	Region models.Region
	re     *regexp.Regexp
}

func newRegionRule(token string, r models.Region) RegionRule {
	return RegionRule{
		Token:  token,
		Region: r,
		re:     regexp.MustCompile(space + regexp.QuoteMeta(token) + `(?:` + space + `|$)`),
	}
}

// Match reports whether the token occurs as a separate word in text.
func (r RegionRule) Match(text string) bool {
	return r.re.MatchString(text)
}

// Strip removes every occurrence of the token and trims the result.
func (r RegionRule) Strip(text string) string {
	return trim(r.re.ReplaceAllString(text, " "))
}

// RegionRules is the ordered region classification. The first match wins.
var RegionRules = []RegionRule{
	newRegionRule("W", models.Wallonia),
	newRegionRule("B", models.Brussels),
	newRegionRule("G", models.GermanCommunity),
}

// ClassifyRegion returns the region vector of a channel label and the label with its
// region token removed. Labels without a token apply to every region.
func ClassifyRegion(text string) (models.RegionVector, string) {
	for _, rule := range RegionRules {
		if rule.Match(text) {
			return models.OnlyRegion(rule.Region), rule.Strip(text)
		}
	}
	return models.AllRegions, trim(text)
}
