package filters

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cellar/lib/utils"
)

// Filter decides which venue areas a command works on, by area name.
type Filter interface {
	FilterName(name string) UsageType
	Decide(u UsageType) UsageType
}

func Matches(f Filter, name string) bool {
	return f.Decide(f.FilterName(name)) == Include
}

type basicFilter struct {
	match      func(string) bool
	filterType UsageType
}

func (b *basicFilter) FilterName(name string) UsageType {
	return utils.IIf(b.match(name), b.filterType, DontCare)
}

func (b *basicFilter) Decide(u UsageType) UsageType {
	switch {
	case u == DontCare && b.filterType == Exclude:
		return Include
	case u == DontCare && b.filterType == Include:
		return Exclude
	default:
		return u
	}
}

type multipleFilter struct {
	filters []Filter
}

func (m *multipleFilter) FilterName(name string) UsageType {
	result := DontCare
	for _, f := range m.filters {
		result = result.Merge(f.FilterName(name))
	}
	return result
}

// Decide excludes names no rule cared about only when there is at least one
// include rule.
func (m *multipleFilter) Decide(u UsageType) UsageType {
	if u != DontCare {
		return u
	}

	hasInclude := lo.SomeBy(m.filters, func(f Filter) bool {
		return f.Decide(DontCare) == Exclude
	})

	return utils.IIf(hasInclude, Exclude, Include)
}

// ParseFilter builds a filter from rules. A rule starting with ! excludes the
// names it matches, any other rule includes them. No rules means everything.
func ParseFilter(rules []string) (Filter, error) {
	result := &multipleFilter{}

	for _, rule := range rules {
		filterType := Include
		if strings.HasPrefix(rule, "!") {
			filterType = Exclude
			rule = rule[1:]
		}

		match, err := ParseStringFilter(rule)
		if err != nil {
			return nil, err
		}

		result.filters = append(result.filters, &basicFilter{
			match:      match,
			filterType: filterType,
		})
	}

	return result, nil
}

// ParseStringFilter creates a case insensitive matcher. Rules may be a plain
// name, a glob like "bar *" or a regexp prefixed with re:.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.TrimSpace(rule)

	if rule == "" {
		return func(s string) bool {
			return true
		}, nil

	} else if strings.HasPrefix(rule, "re:") {
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid name RE: %v", rule)
		}

		return re.MatchString, nil

	} else if strings.ContainsAny(rule, "*?[{") {
		g, err := glob.Compile(strings.ToLower(rule))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid name glob: %v", rule)
		}

		return func(s string) bool {
			return g.Match(strings.ToLower(s))
		}, nil

	} else {
		return func(s string) bool {
			return strings.EqualFold(s, rule)
		}, nil
	}
}
