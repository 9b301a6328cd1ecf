/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"math"
	"sort"
	"strings"
)

// SuggestionList filters the given valid options down to those lexically close
// enough to the (invalid) input to be worth suggesting and returns them sorted
// by their distance to the input, closest first. Options at equal distance
// keep their given order.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	type scoredOption struct {
		option   string
		distance int
	}

	var candidates []scoredOption
	inputThreshold := float64(len(input)) / 2.0
	for _, option := range options {
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2.0), 1)
		if distance := lexicalDistance(input, option); float64(distance) <= threshold {
			candidates = append(candidates, scoredOption{option, distance})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	suggestions := make([]string, len(candidates))
	for i, candidate := range candidates {
		suggestions[i] = candidate.option
	}
	return suggestions
}

// lexicalDistance returns the minimum number of edits needed to transform one
// string into the other, where an edit is an insertion, deletion or
// substitution of a single character, or a swap of two adjacent characters.
//
// As a custom alteration from Damerau-Levenshtein, a change of case counts as
// a single edit for the whole string, which surfaces mis-cased names at
// distance 1.
func lexicalDistance(aStr string, bStr string) int {
	if aStr == bStr {
		return 0
	}

	a := strings.ToLower(aStr)
	b := strings.ToLower(bStr)

	// Any case change counts as a single edit.
	if a == b {
		return 1
	}

	// Optimal string alignment over three rolling rows. The row before the
	// previous one is needed to account for adjacent swaps.
	var (
		prev2 = make([]int, len(b)+1)
		prev  = make([]int, len(b)+1)
		row   = make([]int, len(b)+1)
	)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			// Deletion, insertion, substitution.
			min := prev[j] + 1
			if insertion := row[j-1] + 1; insertion < min {
				min = insertion
			}
			if substitution := prev[j-1] + cost; substitution < min {
				min = substitution
			}

			// Adjacent swap.
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if swap := prev2[j-2] + cost; swap < min {
					min = swap
				}
			}

			row[j] = min
		}
		prev2, prev, row = prev, row, prev2
	}

	return prev[len(b)]
}
