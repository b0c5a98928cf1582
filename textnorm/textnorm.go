// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// aliasTable maps known synonymous spellings to one preferred surface form.
// Keys are matched against the fully normalized string (exact match only),
// so entries must themselves be in post-normalization form.
var aliasTable = map[string]string{
	"パッケージング": "パッケージ",
	"パケ":      "パッケージ",
	"包装":      "パッケージ",
}

// strippedRunes are punctuation and separator characters removed from merge
// keys wherever they appear.
const strippedRunes = ",、。・~〜-_/"

// NormalizeLabel maps a candidate label to its merge key. Two labels denote
// the same candidate iff their keys are equal.
//
// The key is built by NFKC normalization (collapses full/half-width and
// combining-character variants), shifting hiragana to katakana so phonetically
// identical spellings in either script collide, stripping whitespace and
// separator punctuation, and finally applying the alias table.
//
// Total and deterministic: empty input yields an empty key.
func NormalizeLabel(label string) string {
	s := norm.NFKC.String(strings.TrimSpace(label))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = hiraToKata(r)
		if unicode.IsSpace(r) || strings.ContainsRune(strippedRunes, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	if alias, ok := aliasTable[s]; ok {
		return alias
	}
	return s
}

// hiraToKata shifts a rune from the hiragana block to its katakana
// equivalent. The blocks are offset by a fixed 0x60; anything outside
// U+3041..U+3096 passes through unchanged.
func hiraToKata(r rune) rune {
	if r >= 0x3041 && r <= 0x3096 {
		return r + 0x60
	}
	return r
}

// NormalizeVoterID canonicalizes a voter identity (e.g. an employee number)
// for duplicate detection: NFKC fold, surrounding whitespace trimmed, letters
// uppercased. Digits are kept as text so leading zeros survive.
func NormalizeVoterID(id string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFKC.String(id)))
}
