// Package token provides tokenization of first-order logic formula text.
//
// [Tokenize] splits formula text into parentheses, the reserved markers
// V (forall), E (exists), ^ (and), v (or), ~ (not) and = (equal), and
// symbols. It never fails: any input decomposes into some token sequence,
// which the parse package may later reject.
package token
