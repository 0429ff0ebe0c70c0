package wordle

// BestScoring returns the candidate with the highest summed positional
// letter frequency. Ties go to the word that sorts first.
func BestScoring(lex *Lexicon, candidates *WordList) (string, error) {
	best := -1
	bestScore := -1
	for _, i := range candidates.Range {
		score := lex.Score(lex.Word(i))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", ErrEmptyCandidateSet
	}
	return lex.Word(best), nil
}

// hasDistinctLetters reports whether no letter of word repeats.
func hasDistinctLetters(word string) bool {
	var seen [256]bool
	for i := 0; i < len(word); i++ {
		if seen[word[i]] {
			return false
		}
		seen[word[i]] = true
	}
	return true
}

// OpeningGuess is the best scoring word without repeated letters.
func OpeningGuess(lex *Lexicon) (string, error) {
	return BestScoring(lex, lex.Filter(hasDistinctLetters))
}
