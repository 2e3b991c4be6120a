// Package word answers fill-state questions about the word containing
// a cell: is it complete, and where is the next empty cell.
//
// What:
//
//   - Analyze builds the ordered cell list of the containing word and
//     scans it once, reporting completeness, the empty-cell count, and
//     the cyclic next-empty cell: the first empty strictly after the
//     queried cell in word order, falling back to the first empty
//     strictly before it. The cyclic rule is what makes letter entry
//     fill the skipped blanks of a word before leaving it.
//   - AnswerComplete and FirstEmptyInClue address the same questions by
//     clue number, as the skip-ahead clue search needs.
//
// Complexity: all functions are O(L) in the word length.
package word
