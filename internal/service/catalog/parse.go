package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultResolutionM is substituted when a resolution value cannot be
// parsed; 30m is the most common LULC product resolution.
const DefaultResolutionM = 30.0

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// ParseResolution normalizes a spatial-resolution value to meters. Lists
// take their first entry, a trailing "m" is ignored, ranges like "20-30"
// resolve to the finer (first) value. Unparseable input yields
// DefaultResolutionM; this never fails.
func ParseResolution(value interface{}) float64 {
	res, ok := resolutionValue(value)
	if !ok {
		return DefaultResolutionM
	}
	return res
}

func resolutionValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case []interface{}:
		if len(v) == 0 {
			return 0, false
		}
		return resolutionValue(v[0])
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(v), "m", ""))
		if s == "" {
			return 0, false
		}
		if strings.Contains(s, "-") {
			first := strings.SplitN(s, "-", 2)[0]
			res, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
			if err != nil {
				return 0, false
			}
			return res, true
		}
		res, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return res, true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// accuracy values treated as "unknown".
var accuracySentinels = map[string]bool{
	"":             true,
	"Not informed": true,
	"Incomplete":   true,
	"N/A":          true,
}

// ParseAccuracy normalizes an overall-accuracy value to a percentage.
// Unknown sentinels and unparseable input yield 0; this never fails.
func ParseAccuracy(value interface{}) float64 {
	acc, ok := accuracyValue(value)
	if !ok {
		return 0
	}
	return acc
}

func accuracyValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		if accuracySentinels[strings.TrimSpace(v)] {
			return 0, false
		}
		s := nonNumericRe.ReplaceAllString(v, "")
		if s == "" {
			return 0, false
		}
		acc, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return acc, true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// ParseClassCount normalizes a class-count value. Anything that is not a
// plain non-negative integer yields 1.
func ParseClassCount(value interface{}) int {
	switch v := value.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return 1
		}
		return n
	case float64:
		if v >= 1 && v == float64(int(v)) {
			return int(v)
		}
		return 1
	case int:
		if v >= 1 {
			return v
		}
		return 1
	}
	return 1
}

// parseYear accepts integers and digit-only strings.
func parseYear(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		year, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return year, true
	}
	return 0, false
}
