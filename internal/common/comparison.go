package common

import (
	"math"
	"strconv"
	"strings"
)

// ToNumber converts a value to a float64 the way a loose comparison does.
// Text is trimmed first; empty text is zero, "Infinity" is infinite, and
// 0x/0o/0b prefixes read as unsigned integers. ok is false when the value has
// no numeric reading (absent, or text that is not a number).
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, !math.IsNaN(n)
	case string:
		return textToNumber(n)
	}
	return 0, false
}

func textToNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil || strings.Contains(s, "_") {
				return 0, false
			}
			return float64(u), true
		}
	}

	// ParseFloat also reads inf, nan and underscores, none of which are
	// numbers here.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToInt64 returns the exact value of an integer-typed value.
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

// LooseEqual treats a number and its textual form as equal: 5 == "5".
func LooseEqual(left any, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	ls, lok := left.(string)
	rs, rok := right.(string)
	if lok && rok {
		return ls == rs
	}
	if li, ok := ToInt64(left); ok {
		if ri, ok := ToInt64(right); ok {
			return li == ri
		}
	}
	l, lnum := ToNumber(left)
	r, rnum := ToNumber(right)
	return lnum && rnum && l == r
}

// StrictEqual never converts between text and numbers.
func StrictEqual(left any, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	ls, lok := left.(string)
	rs, rok := right.(string)
	if lok || rok {
		return lok && rok && ls == rs
	}
	if li, ok := ToInt64(left); ok {
		if ri, ok := ToInt64(right); ok {
			return li == ri
		}
	}
	if isNumber(left) && isNumber(right) {
		l, _ := ToNumber(left)
		r, _ := ToNumber(right)
		return l == r
	}
	return false
}

// compare orders two values. Two texts compare lexicographically, every
// other pairing numerically. ok is false when no ordering exists.
func compare(left any, right any) (int, bool) {
	ls, lok := left.(string)
	rs, rok := right.(string)
	if lok && rok {
		return strings.Compare(ls, rs), true
	}
	if li, ok := ToInt64(left); ok {
		if ri, ok := ToInt64(right); ok {
			return cmpInt64(li, ri), true
		}
	}
	l, lnum := ToNumber(left)
	r, rnum := ToNumber(right)
	if !lnum || !rnum {
		return 0, false
	}
	switch {
	case l < r:
		return -1, true
	case l > r:
		return 1, true
	}
	return 0, true
}

func LessThanComparison(left any, right any) bool {
	c, ok := compare(left, right)
	return ok && c < 0
}

func LessThanOrEqualComparison(left any, right any) bool {
	c, ok := compare(left, right)
	return ok && c <= 0
}

func GreaterThanComparison(left any, right any) bool {
	c, ok := compare(left, right)
	return ok && c > 0
}

func GreaterThanOrEqualComparison(left any, right any) bool {
	c, ok := compare(left, right)
	return ok && c >= 0
}

func cmpInt64(l, r int64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}
