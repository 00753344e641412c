// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"regexp"
	"strconv"
	"strings"

	"shipway/internal/domain/entity"
)

var (
	zipExactOrRangePattern = regexp.MustCompile(`^\d+(-\d+)?$`)
	zipWildcardPattern     = regexp.MustCompile(`^\d+\*$`)
)

// MatchesZipCode evaluates a shopper zip code against a rule's comma-separated
// zip specification. An empty specification matches everything. Patterns are
// OR'd: a numeric range "100-200" (inclusive), a prefix wildcard "75*", or an
// exact code. Inclusive rules apply on a match; exclusive rules apply on a miss.
func MatchesZipCode(userZipCode, ruleZipCodes string, zipCodeType entity.ZipCodeType) bool {
	if strings.TrimSpace(ruleZipCodes) == "" {
		return true
	}

	userZip := strings.TrimSpace(userZipCode)
	isMatch := false

	for _, raw := range strings.Split(ruleZipCodes, ",") {
		pattern := strings.TrimSpace(raw)

		switch {
		case strings.Contains(pattern, "-"):
			if zipInRange(userZip, pattern) {
				isMatch = true
			}

		case strings.HasSuffix(pattern, "*"):
			if strings.HasPrefix(userZip, strings.TrimSuffix(pattern, "*")) {
				isMatch = true
			}

		default:
			if pattern == userZip {
				isMatch = true
			}
		}

		if isMatch {
			break
		}
	}

	if zipCodeType == entity.ZipInclusive {
		return isMatch
	}

	return !isMatch
}

// zipInRange reports whether zip falls inside a numeric "start-end" pattern.
// Non-numeric input never matches.
func zipInRange(zip, pattern string) bool {
	bounds := strings.SplitN(pattern, "-", 2)
	if len(bounds) != 2 {
		return false
	}

	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return false
	}

	end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return false
	}

	value, err := strconv.Atoi(zip)
	if err != nil {
		return false
	}

	return value >= start && value <= end
}

// InvalidZipPatterns returns the patterns in a zip specification that are
// neither an exact code, a numeric range, nor a prefix wildcard.
func InvalidZipPatterns(ruleZipCodes string) []string {
	if strings.TrimSpace(ruleZipCodes) == "" {
		return nil
	}

	var invalid []string

	for _, raw := range strings.Split(ruleZipCodes, ",") {
		pattern := strings.TrimSpace(raw)
		if !zipExactOrRangePattern.MatchString(pattern) && !zipWildcardPattern.MatchString(pattern) {
			invalid = append(invalid, pattern)
		}
	}

	return invalid
}
