// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package textnorm derives canonical keys from free-text input.

Candidate labels are folded so that spelling variants of the same name
collide on one merge key:

  - NFKC compatibility normalization (full-width/half-width, combining marks)
  - hiragana → katakana by fixed code-point offset
  - whitespace and separator punctuation stripped anywhere in the string
  - a static alias table absorbing known synonyms (exact full-string match)

Voter identities get a lighter fold (NFKC, trim, uppercase) that never
reinterprets digits, preserving leading zeros in employee numbers.

Both functions are pure and total; they never fail and map empty input to
an empty key.
*/
package textnorm
