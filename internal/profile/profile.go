// Package profile loads the TOML rule profile: which checks run, their
// option values, excluded paths and the source encoding.
//
//	[profile]
//	name = "team"
//	encoding = "windows-1252"
//	goal = "auto"                  # auto | script | module
//	exclude = ["**/vendor/**", "*.min.js"]
//	checks = ["EqEqEq", "NewOperatorMisuse"]   # omitted: every check
//
//	[checks.NewOperatorMisuse]
//	considerJSDoc = true
//
//	[checks.WithStatement]
//	enabled = false
package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
	"golang.org/x/text/encoding/htmlindex"

	"sable/internal/parser"
)

// FileName is the profile looked up by Find.
const FileName = "sable.toml"

var (
	// ErrUnknownGoal is returned for a goal other than auto, script or module.
	ErrUnknownGoal = errors.New("unknown goal")
	// ErrUnknownEncoding is returned for a charset label x/text does not know.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrBadPattern is returned for an exclusion pattern that does not compile.
	ErrBadPattern = errors.New("invalid exclude pattern")
)

// Profile is a loaded rule profile. The zero value is not usable; start from
// Default or Load.
type Profile struct {
	Path     string
	Name     string
	Encoding string
	Goal     parser.Goal
	Exclude  []string
	// Active lists enabled check keys in profile order; nil means all.
	Active []string
	// Disabled holds keys switched off with `enabled = false`.
	Disabled map[string]bool
	// Options maps a check key to its option values in string form.
	Options map[string]map[string]string

	excludes []glob.Glob
}

// Default runs every check with default options on UTF-8 input.
func Default() *Profile {
	return &Profile{
		Name:     "default",
		Encoding: "utf-8",
		Goal:     parser.GoalAuto,
		Disabled: map[string]bool{},
		Options:  map[string]map[string]string{},
	}
}

type fileProfile struct {
	Profile struct {
		Name     string   `toml:"name"`
		Encoding string   `toml:"encoding"`
		Goal     string   `toml:"goal"`
		Exclude  []string `toml:"exclude"`
		Checks   []string `toml:"checks"`
	} `toml:"profile"`
	Checks map[string]map[string]any `toml:"checks"`
}

// Load parses the profile at path.
func Load(path string) (*Profile, error) {
	var raw fileProfile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	p := Default()
	p.Path = path
	if name := strings.TrimSpace(raw.Profile.Name); name != "" {
		p.Name = name
	}
	if enc := strings.TrimSpace(raw.Profile.Encoding); enc != "" {
		if _, err := htmlindex.Get(enc); err != nil {
			return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownEncoding, enc)
		}
		p.Encoding = enc
	}
	if p.Goal, err = ParseGoal(raw.Profile.Goal); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := p.SetExclude(raw.Profile.Exclude); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if meta.IsDefined("profile", "checks") {
		p.Active = append([]string{}, raw.Profile.Checks...)
	}
	for key, values := range raw.Checks {
		opts := make(map[string]string, len(values))
		for name, v := range values {
			if name == "enabled" {
				on, ok := v.(bool)
				if !ok {
					return nil, fmt.Errorf("%s: checks.%s.enabled must be a boolean", path, key)
				}
				if !on {
					p.Disabled[key] = true
				}
				continue
			}
			opts[name] = formatValue(v)
		}
		if len(opts) > 0 {
			p.Options[key] = opts
		}
	}
	return p, nil
}

// ParseGoal maps "", "auto", "script" and "module" to a parser goal.
func ParseGoal(s string) (parser.Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return parser.GoalAuto, nil
	case "script":
		return parser.GoalScript, nil
	case "module":
		return parser.GoalModule, nil
	}
	return parser.GoalAuto, fmt.Errorf("%w %q", ErrUnknownGoal, s)
}

// formatValue renders a TOML value the way pflag parses it back.
func formatValue(v any) string {
	switch x := v.(type) {
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = formatValue(e)
		}
		return strings.Join(parts, ",")
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// SetExclude compiles slash-separated glob patterns; `**` crosses directories.
func (p *Profile) SetExclude(patterns []string) error {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrBadPattern, pat, err)
		}
		compiled = append(compiled, g)
	}
	p.Exclude = patterns
	p.excludes = compiled
	return nil
}

// Excluded reports whether rel (relative to the analysed root) matches an
// exclusion pattern. The base name is matched too, so "*.min.js" works at
// any depth.
func (p *Profile) Excluded(rel string) bool {
	rel = filepath.ToSlash(filepath.Clean(rel))
	base := rel[strings.LastIndexByte(rel, '/')+1:]
	for _, g := range p.excludes {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// Enabled reports whether the check key runs under this profile.
func (p *Profile) Enabled(key string) bool {
	if p.Disabled[key] {
		return false
	}
	return p.Active == nil || slices.Contains(p.Active, key)
}
