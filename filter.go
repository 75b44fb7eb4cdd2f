// Copyright 2026 the wmienum authors

package wmienum

import (
	"regexp"

	"github.com/pkg/errors"
)

// compileWhole compiles a pattern that must match the entire name, not a
// substring of it.
func compileWhole(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	return re, nil
}
