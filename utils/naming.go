// File: utils/naming.go
package utils

import (
	"math"
	"strings"
	"unicode"
)

// NameSimilarity scores how likely two personal/business names refer to the
// same entity, between 0 (no match) and 1 (perfect match). It blends three
// signals: order-insensitive token overlap (weight 0.5), whole-string
// Levenshtein similarity (0.3) and longest-common-subsequence ratio (0.2).
// The result is rounded to 2 decimal places.
func NameSimilarity(name1, name2 string) float64 {
	n1 := normalizeName(name1)
	n2 := normalizeName(name2)

	if n1 == "" || n2 == "" {
		return 0
	}
	if n1 == n2 {
		return 1
	}

	tokens1 := strings.Fields(n1)
	tokens2 := strings.Fields(n2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0
	}

	tokenScore := tokenOverlap(tokens1, tokens2)
	maxLen := float64(max(len(n1), len(n2)))
	levScore := 1 - float64(levenshtein(n1, n2))/maxLen
	lcsScore := float64(longestCommonSubsequence(n1, n2)) / maxLen

	score := tokenScore*0.5 + levScore*0.3 + lcsScore*0.2
	return math.Round(score*100) / 100
}

// normalizeName lowercases and strips everything but letters, digits and
// single spaces.
func normalizeName(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenOverlap greedily pairs each token from the first list with its best
// unmatched counterpart in the second, counting only pairs above a 0.7
// similarity threshold.
func tokenOverlap(tokens1, tokens2 []string) float64 {
	matched := make(map[int]bool, len(tokens2))
	var total float64

	for _, t1 := range tokens1 {
		best := 0.0
		bestIdx := -1
		for j, t2 := range tokens2 {
			if matched[j] {
				continue
			}
			sim := tokenSimilarity(t1, t2)
			if sim > best && sim > 0.7 {
				best = sim
				bestIdx = j
			}
		}
		if bestIdx != -1 {
			matched[bestIdx] = true
			total += best
		}
	}

	return total / float64(max(len(tokens1), len(tokens2)))
}

func tokenSimilarity(t1, t2 string) float64 {
	if t1 == t2 {
		return 1
	}
	if len(t1) < 2 || len(t2) < 2 {
		return 0
	}
	if strings.Contains(t1, t2) || strings.Contains(t2, t1) {
		return float64(min(len(t1), len(t2))) / float64(max(len(t1), len(t2)))
	}
	return 1 - float64(levenshtein(t1, t2))/float64(max(len(t1), len(t2)))
}

// levenshtein computes classic edit distance with a two-row DP table.
func levenshtein(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

// longestCommonSubsequence returns the LCS length of two strings.
func longestCommonSubsequence(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)

	for i := 1; i <= len(r1); i++ {
		for j := 1; j <= len(r2); j++ {
			if r1[i-1] == r2[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}
	return prev[len(r2)]
}
