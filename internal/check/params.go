package check

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
)

// ErrUnknownOption is wrapped by Configure for option names a check does not declare.
var ErrUnknownOption = errors.New("unknown option")

// Configurable checks register their options on a flag set. Options are
// plain pflag values (bool, string, int) bound to fields of the check.
type Configurable interface {
	Params(fs *pflag.FlagSet)
}

// Option describes one registered option.
type Option struct {
	Name    string
	Type    string
	Default string
	Usage   string
}

func flagSet(c Check) *pflag.FlagSet {
	fs := pflag.NewFlagSet(c.Key(), pflag.ContinueOnError)
	fs.SortFlags = true
	if p, ok := c.(Configurable); ok {
		p.Params(fs)
	}
	return fs
}

// Options lists the options of c sorted by name.
func Options(c Check) []Option {
	var out []Option
	flagSet(c).VisitAll(func(f *pflag.Flag) {
		out = append(out, Option{
			Name:    f.Name,
			Type:    f.Value.Type(),
			Default: f.DefValue,
			Usage:   f.Usage,
		})
	})
	return out
}

// Configure binds option values to c. Keys are processed in sorted order
// so the first error is deterministic.
func Configure(c Check, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	fs := flagSet(c)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if fs.Lookup(k) == nil {
			return fmt.Errorf("%s: %w %q", c.Key(), ErrUnknownOption, k)
		}
		if err := fs.Set(k, values[k]); err != nil {
			return fmt.Errorf("%s: option %q: %w", c.Key(), k, err)
		}
	}
	return nil
}
