package caddy65

import (
	"fmt"

	"github.com/alnah/go-caddy65/internal/rules"
)

// RuleInfo documents one rule of the catalog.
type RuleInfo struct {
	// Index is the rule's position in execution order, from zero.
	Index   int
	Name    string
	Alias   string
	Group   string
	Summary string
	Example string
}

// Rules lists the catalog in execution order.
func Rules() []RuleInfo {
	all := rules.Rules()
	out := make([]RuleInfo, len(all))
	for i, r := range all {
		out[i] = RuleInfo{
			Index:   int(r.ID),
			Name:    r.Name,
			Alias:   r.Alias,
			Group:   string(r.Group),
			Summary: r.Summary,
			Example: r.Example,
		}
	}
	return out
}

// RuleSet selects which rules run. The zero value enables nothing; start from
// AllRules or NoRules.
type RuleSet struct {
	set rules.Set
}

// AllRules returns a set with every rule enabled.
func AllRules() RuleSet {
	return RuleSet{set: rules.All()}
}

// NoRules returns an empty set.
func NoRules() RuleSet {
	return RuleSet{}
}

// Set enables or disables the named rule. Names are the kebab-case rule
// names or their camelCase aliases, in any letter case.
func (s *RuleSet) Set(name string, enabled bool) error {
	id, ok := rules.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRuleName, name)
	}
	if enabled {
		s.set = s.set.With(id)
	} else {
		s.set = s.set.Without(id)
	}
	return nil
}

// Enable turns the named rule on.
func (s *RuleSet) Enable(name string) error { return s.Set(name, true) }

// Disable turns the named rule off.
func (s *RuleSet) Disable(name string) error { return s.Set(name, false) }

// Enabled reports whether the named rule is on. Unknown names are off.
func (s RuleSet) Enabled(name string) bool {
	id, ok := rules.Lookup(name)
	return ok && s.set.Has(id)
}

// Names lists the enabled rules in execution order.
func (s RuleSet) Names() []string {
	ids := s.set.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Len is the number of enabled rules.
func (s RuleSet) Len() int {
	return len(s.set.IDs())
}
