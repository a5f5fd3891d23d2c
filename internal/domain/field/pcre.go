package field

import (
	"fmt"
	"regexp"
)

// PCRE bundles the three patterns of a string/text field: Check is the
// inclusion pattern a value must match, Search and Replace define a
// presentation transform applied when the value is displayed.
type PCRE struct {
	Check   string
	Search  string
	Replace string
}

// IsEmpty reports whether no pattern is configured.
func (p PCRE) IsEmpty() bool {
	return p.Check == "" && p.Search == "" && p.Replace == ""
}

// Validate compiles every configured pattern.
func (p PCRE) Validate() error {
	for _, pattern := range []string{p.Check, p.Search} {
		if pattern == "" {
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// Matches reports whether the value satisfies the Check pattern. A field
// without a Check pattern accepts everything.
func (p PCRE) Matches(value string) (bool, error) {
	if p.Check == "" {
		return true, nil
	}
	re, err := regexp.Compile(p.Check)
	if err != nil {
		return false, fmt.Errorf("invalid check pattern %q: %w", p.Check, err)
	}
	return re.MatchString(value), nil
}

// Transform applies the Search/Replace presentation transform. The value is
// returned unchanged when no transform is configured or the pattern fails to
// compile.
func (p PCRE) Transform(value string) string {
	if p.Search == "" {
		return value
	}
	re, err := regexp.Compile(p.Search)
	if err != nil {
		return value
	}
	return re.ReplaceAllString(value, p.Replace)
}
