// Package catalog holds the listing search rules and the demo catalog.
package catalog

import (
	"strings"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

// Separator is the display-only grouping character in phone numbers.
const Separator = "."

// Normalize strips every separator. Nothing else is touched, so letters or
// spaces in a query take part in the match literally.
func Normalize(s string) string {
	return strings.ReplaceAll(s, Separator, "")
}

// Matches reports whether the separator-stripped phone number contains the
// separator-stripped query.
func Matches(phoneNumber, query string) bool {
	return strings.Contains(Normalize(phoneNumber), Normalize(query))
}

// Filter keeps the listings whose number matches query, preserving order. An
// empty query returns sims unchanged.
func Filter(sims []*model.Sim, query string) []*model.Sim {
	if Normalize(query) == "" {
		return sims
	}
	out := make([]*model.Sim, 0, len(sims))
	for _, s := range sims {
		if Matches(s.PhoneNumber, query) {
			out = append(out, s)
		}
	}
	return out
}
