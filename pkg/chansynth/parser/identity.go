package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

var (
	// ErrProviderNotFound is returned when no known provider name occurs in a filename.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrYearNotFound is returned when a filename has no four-digit run.
	ErrYearNotFound = errors.New("year not found")
)

var yearRe = regexp.MustCompile(`\d{4}`)

// ProviderRule matches a provider by a lower-case key occurring anywhere in a filename.
type ProviderRule struct {
	Key string
}

// Match reports whether the rule applies to the lower-cased filename.
func (p ProviderRule) Match(lowerName string) bool {
	return p.Key != "" && strings.Contains(lowerName, strings.ToLower(p.Key))
}

// Name returns the display name: first letter upper-cased, the rest lower-cased.
func (p ProviderRule) Name() string {
	return capitalize(p.Key)
}

// DefaultProviders is the ordered provider vocabulary. Earlier entries win.
var DefaultProviders = []ProviderRule{
	{Key: "voo"},
	{Key: "orange"},
	{Key: "telenet"},
}

// ProviderRules builds rules from an ordered list of provider keys.
func ProviderRules(keys []string) []ProviderRule {
	rules := make([]ProviderRule, 0, len(keys))
	for _, k := range keys {
		k = strings.ToLower(trim(k))
		if k != "" {
			rules = append(rules, ProviderRule{Key: k})
		}
	}
	return rules
}

// MatchProvider returns the display name of the first rule matching filename.
func MatchProvider(filename string, rules []ProviderRule) (string, bool) {
	lower := strings.ToLower(filename)
	for _, r := range rules {
		if r.Match(lower) {
			return r.Name(), true
		}
	}
	return "", false
}

// MatchYear returns the first run of four digits in filename.
func MatchYear(filename string) (string, bool) {
	y := yearRe.FindString(filename)
	return y, y != ""
}

// ExtractIdentity derives the provider and year from a filename using DefaultProviders.
// Missing parts are left empty.
func ExtractIdentity(filename string) models.ReportIdentity {
	return ExtractIdentityWith(filename, DefaultProviders)
}

// ExtractIdentityWith is ExtractIdentity over a custom provider list.
func ExtractIdentityWith(filename string, rules []ProviderRule) models.ReportIdentity {
	var id models.ReportIdentity
	id.Provider, _ = MatchProvider(filename, rules)
	id.Year, _ = MatchYear(filename)
	return id
}

// ResolveIdentity is ExtractIdentityWith that fails when provider or year is absent.
func ResolveIdentity(filename string, rules []ProviderRule) (models.ReportIdentity, error) {
	id := ExtractIdentityWith(filename, rules)
	if id.Provider == "" {
		return id, fmt.Errorf("%w in filename %q", ErrProviderNotFound, filename)
	}
	if id.Year == "" {
		return id, fmt.Errorf("%w in filename %q", ErrYearNotFound, filename)
	}
	return id, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
