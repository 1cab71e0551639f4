package profile

import (
	"fmt"
	"maps"
	"slices"

	"sable/internal/check"
	"sable/internal/checks"
)

// Checks builds fresh, configured instances of the enabled checks. Every run
// over a file needs its own instances, so callers invoke this per file or per
// worker.
func (p *Profile) Checks() ([]check.Check, error) {
	var keys []string
	if p.Active != nil {
		keys = p.Active
	} else {
		keys = checks.Keys()
	}
	out := make([]check.Check, 0, len(keys))
	for _, key := range keys {
		if !p.Enabled(key) {
			continue
		}
		c, err := checks.New(key)
		if err != nil {
			return nil, p.wrap(err)
		}
		if err := check.Configure(c, p.Options[key]); err != nil {
			return nil, p.wrap(err)
		}
		out = append(out, c)
	}
	for _, key := range p.mentioned() {
		if _, err := checks.New(key); err != nil {
			return nil, p.wrap(err)
		}
	}
	return out, nil
}

func (p *Profile) wrap(err error) error {
	if p.Path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", p.Path, err)
}

// mentioned lists keys named in option tables or disabled, sorted.
func (p *Profile) mentioned() []string {
	seen := make(map[string]bool, len(p.Options)+len(p.Disabled))
	for key := range p.Options {
		seen[key] = true
	}
	for key := range p.Disabled {
		seen[key] = true
	}
	return slices.Sorted(maps.Keys(seen))
}
