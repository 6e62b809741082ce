package scheduler

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// NormalizeEmployees trims names, drops blanks and collapses duplicates keeping first-seen order.
// Returns ErrInvalidInput if nothing is left.
func NormalizeEmployees(employees []string) ([]string, error) {
	cleaned := make([]string, 0, len(employees))
	seen := make(map[string]bool, len(employees))

	for _, name := range employees {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, name)
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: no employees provided", ErrInvalidInput)
	}

	return cleaned, nil
}

// NormalizePreferences canonicalizes raw preferences into ranked shift lists.
//
// Every employee gets an entry for all seven days. Tokens are trimmed and lower-cased;
// unknown tokens are dropped without error, and a token repeated within one day keeps
// only its first (highest) rank. When several keys trim to the same name the exact
// key wins, otherwise the lexically smallest one.
func NormalizePreferences(raw RawPreferences) Preferences {
	prefs := make(Preferences, len(raw))

	// Sorted keys keep the winner of a name collision independent of map order
	for _, emp := range slices.Sorted(maps.Keys(raw)) {
		perDay := raw[emp]
		name := strings.TrimSpace(emp)
		if name == "" {
			continue
		}
		if _, exists := prefs[name]; exists && name != emp {
			continue
		}

		prefs[name] = make(map[Day][]ShiftKind, len(Days))
		for _, day := range Days {
			prefs[name][day] = normalizeDay(perDay[day])
		}
	}

	return prefs
}

// normalizeDay converts one day's raw tokens into a ranked list of valid shift kinds
func normalizeDay(tokens RawShifts) []ShiftKind {
	ranked := make([]ShiftKind, 0, len(tokens))
	for _, token := range tokens {
		shift := ShiftKind(strings.ToLower(strings.TrimSpace(token)))
		if !shift.IsValid() {
			continue
		}
		if slices.Contains(ranked, shift) {
			continue
		}
		ranked = append(ranked, shift)
	}
	return ranked
}

// ToRaw converts normalized preferences back to the raw form, so that
// NormalizePreferences(p.ToRaw()) reproduces p
func (p Preferences) ToRaw() RawPreferences {
	raw := make(RawPreferences, len(p))
	for emp, perDay := range p {
		raw[emp] = make(map[Day]RawShifts, len(perDay))
		for day, ranked := range perDay {
			tokens := make(RawShifts, len(ranked))
			for i, shift := range ranked {
				tokens[i] = string(shift)
			}
			raw[emp][day] = tokens
		}
	}
	return raw
}
