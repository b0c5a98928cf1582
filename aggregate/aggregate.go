// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"sort"

	"github.com/danielhkuo/rankvote/models"
)

// Points awarded per rank slot.
const (
	FirstPoints  = 3
	SecondPoints = 2
	ThirdPoints  = 1
)

// Rank computes per-candidate point totals and rank counts from the given
// votes and returns the fully ordered ranking.
//
// Only eligible candidates score: all of them when includeInactive is set,
// otherwise the active ones. Vote slots naming an ineligible or unknown id
// contribute nothing. Empty input yields an empty ranking, never an error.
func Rank(candidates []models.Candidate, votes []models.Vote, includeInactive bool) []models.RankedCandidate {
	stats := make(map[string]*models.RankedCandidate, len(candidates))
	for _, c := range candidates {
		if !includeInactive && !c.Active {
			continue
		}
		stats[c.ID] = &models.RankedCandidate{CandidateID: c.ID, Label: c.Label}
	}

	for _, v := range votes {
		if s := lookup(stats, v.FirstID); s != nil {
			s.Points += FirstPoints
			s.FirstCount++
		}
		if s := lookup(stats, v.SecondID); s != nil {
			s.Points += SecondPoints
			s.SecondCount++
		}
		if s := lookup(stats, v.ThirdID); s != nil {
			s.Points += ThirdPoints
			s.ThirdCount++
		}
	}

	ranked := make([]models.RankedCandidate, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, *s)
	}

	// Lexicographic sort key; the trailing label and id comparisons make the
	// order total even when every count ties.
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.FirstCount != b.FirstCount {
			return a.FirstCount > b.FirstCount
		}
		if a.SecondCount != b.SecondCount {
			return a.SecondCount > b.SecondCount
		}
		if a.ThirdCount != b.ThirdCount {
			return a.ThirdCount > b.ThirdCount
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.CandidateID < b.CandidateID
	})

	// Ranks are positional: ties in the sort key still get distinct
	// sequential ranks, never shared ones.
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

func lookup(stats map[string]*models.RankedCandidate, id *string) *models.RankedCandidate {
	if id == nil {
		return nil
	}
	return stats[*id]
}
