package render

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/stmtql/internal/types"
)

// TimeLayout is the text form used for time literals.
const TimeLayout = "2006-01-02 15:04:05.999999999"

// Literals holds the per-dialect spellings used when quoting values.
type Literals struct {
	True            string
	False           string
	EscapeBackslash bool
	// Bytes renders a blob literal; hex is already lower-case.
	Bytes func(hex string) string
	// Decorate, when set, rewrites every rendered scalar (list items included).
	Decorate func(kind types.ValueKind, literal string) string
}

// Quote renders v using the configured spellings. Lists render as a
// parenthesized, comma-separated sequence.
func (l Literals) Quote(v types.Value) (string, error) {
	if v.Kind == types.KindList {
		return l.quoteList(v.List)
	}
	s, err := l.scalar(v)
	if err != nil {
		return "", err
	}
	if l.Decorate != nil && v.Kind != types.KindNull {
		s = l.Decorate(v.Kind, s)
	}
	return s, nil
}

func (l Literals) quoteList(items []types.Value) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: empty list", types.ErrInvalidValue)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind == types.KindList {
			return "", fmt.Errorf("%w: nested lists are not supported", types.ErrInvalidValue)
		}
		s, err := l.Quote(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

func (l Literals) scalar(v types.Value) (string, error) {
	switch v.Kind {
	case types.KindNull:
		return "NULL", nil
	case types.KindString:
		return QuoteString(v.Str, l.EscapeBackslash), nil
	case types.KindInt:
		return strconv.FormatInt(v.Int, 10), nil
	case types.KindUint:
		return strconv.FormatUint(v.Uint, 10), nil
	case types.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil
	case types.KindBool:
		if v.Bool {
			return l.True, nil
		}
		return l.False, nil
	case types.KindBytes:
		if l.Bytes == nil {
			return "", fmt.Errorf("%w: blob literals are not supported", types.ErrInvalidValue)
		}
		return l.Bytes(hex.EncodeToString(v.Bytes)), nil
	case types.KindTime:
		return QuoteString(FormatTime(v.Time), false), nil
	default:
		return "", fmt.Errorf("%w: unknown kind %d", types.ErrInvalidValue, v.Kind)
	}
}

// QuoteString wraps s in single quotes, doubling embedded quotes. Dialects
// that treat backslash as an escape character also get backslashes doubled.
func QuoteString(s string, escapeBackslash bool) string {
	if escapeBackslash {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatTime renders t the way time literals are quoted.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
