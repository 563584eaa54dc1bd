package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zoobzio/stmtql/internal/types"
)

const (
	// Quoted parts may not hold backslashes or single quotes.
	identPart = `(?:[A-Za-z_][A-Za-z0-9_$]*|"[^"\\']+"|\[[^\]\\']+\]|` + "`[^`\\\\']+`" + `)`
	qualified = identPart + `(?:\.` + identPart + `)*`
	columnRef = `(?:\*|` + qualified + `(?:\.\*)?)`
	funcCall  = `[A-Za-z_][A-Za-z0-9_]*\(\s*(?:(?i:DISTINCT\s+)?` + columnRef + `(?:\s*,\s*` + columnRef + `)*)?\s*\)`
)

var (
	columnRe = regexp.MustCompile(`^(?:` + columnRef + `|` + funcCall + `)$`)
	tableRe  = regexp.MustCompile(`^` + qualified + `$`)
	aliasRe  = regexp.MustCompile(`^` + identPart + `$`)
)

// Fragments that never belong inside an identifier, quoted or not.
var suspiciousPatterns = []string{";", "--", "#", "/*", "*/", "\x00", "\n", "\r"}

func hasSuspiciousPattern(s string) bool {
	for _, p := range suspiciousPatterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// IsValidIdentifier reports whether text is a column reference that may be
// interpolated into a statement: a possibly qualified name, a star, or a
// single function call over such references.
func IsValidIdentifier(text string) bool {
	return len(text) <= 256 && !hasSuspiciousPattern(text) && columnRe.MatchString(text)
}

// IsValidTableName reports whether text is a possibly schema-qualified table name.
func IsValidTableName(text string) bool {
	return len(text) <= 256 && !hasSuspiciousPattern(text) && tableRe.MatchString(text)
}

// IsValidAlias reports whether text is a single bare or quoted identifier.
func IsValidAlias(text string) bool {
	return len(text) <= 128 && !hasSuspiciousPattern(text) && aliasRe.MatchString(text)
}

// Validator checks raw fragments before they are written into a statement.
type Validator interface {
	ValidateTable(name string) error
	ValidateColumn(ref string) error
}

// SyntaxValidator accepts every syntactically legal reference.
type SyntaxValidator struct{}

// ValidateTable implements Validator.
func (SyntaxValidator) ValidateTable(name string) error {
	if !IsValidTableName(name) {
		return fmt.Errorf("%w: table %q", types.ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateColumn implements Validator.
func (SyntaxValidator) ValidateColumn(ref string) error {
	if !IsValidIdentifier(ref) {
		return fmt.Errorf("%w: column %q", types.ErrInvalidIdentifier, ref)
	}
	return nil
}

// ValidatorFunc adapts a plain predicate to Validator, applying it to table
// names and column references alike.
type ValidatorFunc func(text string) bool

// ValidateTable implements Validator.
func (f ValidatorFunc) ValidateTable(name string) error {
	if !f(name) {
		return fmt.Errorf("%w: table %q", types.ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateColumn implements Validator.
func (f ValidatorFunc) ValidateColumn(ref string) error {
	if !f(ref) {
		return fmt.Errorf("%w: column %q", types.ErrInvalidIdentifier, ref)
	}
	return nil
}

// ValidateAlias checks an alias. Aliases are never looked up in a schema.
func ValidateAlias(alias string) error {
	if !IsValidAlias(alias) {
		return fmt.Errorf("%w: alias %q", types.ErrInvalidIdentifier, alias)
	}
	return nil
}
