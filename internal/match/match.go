// Package match implements the skill lookup used by the participant
// directory and team-find suggestions: a candidate matches when at least one
// of its skill tags contains at least one query term as a case-insensitive
// substring.
package match

import (
	"strings"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
)

// Split breaks a comma-separated list into trimmed entries, dropping empties.
// Case is preserved; use Terms for search input.
func Split(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Terms normalizes a comma-separated query into lowercase search terms.
func Terms(query string) []string {
	terms := Split(query)
	for i, t := range terms {
		terms[i] = strings.ToLower(t)
	}
	return terms
}

// Skills reports whether any tag contains any term. Terms are expected to be
// lowercase already (see Terms).
func Skills(tags, terms []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}

// Participants filters ps down to those whose skills match terms, preserving
// input order.
func Participants(ps []model.Participant, terms []string) []model.Participant {
	var out []model.Participant
	for _, p := range ps {
		if Skills(p.Skills, terms) {
			out = append(out, p)
		}
	}
	return out
}
