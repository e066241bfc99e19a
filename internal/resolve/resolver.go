package resolve

import (
	"fmt"
	"regexp"

	"github.com/arwhyte/locfetch/internal/config"
)

// Resolver turns (path group, index) pairs into resource paths. Compiled
// patterns are cached per pattern source, so a group's regex is compiled
// once on first use. Not safe for concurrent use; the batch runner is
// strictly sequential.
type Resolver struct {
	compiled map[string]*regexp.Regexp
}

// New returns an empty Resolver.
func New() *Resolver {
	return &Resolver{compiled: make(map[string]*regexp.Regexp)}
}

// Path substitutes the group's replacement token for every pattern match in
// the group's template path. A pattern that matches nothing leaves the
// template unchanged; callers get the default path back as-is.
func (r *Resolver) Path(group config.PathGroup, index int) (string, error) {
	re, ok := r.compiled[group.Pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(group.Pattern)
		if err != nil {
			return "", fmt.Errorf("compile pattern %q: %w", group.Pattern, err)
		}
		r.compiled[group.Pattern] = re
	}

	return re.ReplaceAllString(group.DefaultPath, Token(group, index)), nil
}

// URL resolves the absolute resource locator for one index.
func (r *Resolver) URL(host string, group config.PathGroup, index int) (string, error) {
	path, err := r.Path(group, index)
	if err != nil {
		return "", err
	}
	return host + path, nil
}

// Token builds the replacement token: the group prefix followed by the
// zero-filled numeral.
func Token(group config.PathGroup, index int) string {
	return group.Prefix + Numeral(index, group.ZeroFill)
}

// Numeral formats index as a decimal numeral left-padded with zeros to at
// least width digits. Numerals already at or beyond the width are never
// truncated.
func Numeral(index, width int) string {
	if width <= 0 {
		return fmt.Sprintf("%d", index)
	}
	return fmt.Sprintf("%0*d", width, index)
}
