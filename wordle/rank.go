package wordle

import "container/heap"

// MinHeap is a generic min-heap that can store any type T.
type MinHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *MinHeap[T]) Len() int           { return len(h.data) }
func (h *MinHeap[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *MinHeap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

// Push adds an element to the heap.
func (h *MinHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

// Pop removes the highest-priority element.
func (h *MinHeap[T]) Pop() any {
	n := len(h.data)
	item := h.data[n-1]
	h.data = h.data[0 : n-1]
	return item
}

// ScoredWord is a lexicon word with its letter frequency score.
type ScoredWord struct {
	Word  string
	Score int
	index int
}

// worseFirst orders the heap so its root is the weakest of the kept words.
func worseFirst(a, b ScoredWord) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.index > b.index
}

// TopScoring returns the n best scoring words, best first, ordered the
// same way the solvers break ties. With distinctOnly, words with a
// repeated letter are skipped, as for an opening guess.
func TopScoring(lex *Lexicon, n int, distinctOnly bool) []ScoredWord {
	if n <= 0 {
		return nil
	}
	h := &MinHeap[ScoredWord]{less: worseFirst}
	for i, word := range lex.All {
		if distinctOnly && !hasDistinctLetters(word) {
			continue
		}
		item := ScoredWord{Word: word, Score: lex.Score(word), index: i}
		if h.Len() < n {
			heap.Push(h, item)
		} else if worseFirst(h.data[0], item) {
			h.data[0] = item
			heap.Fix(h, 0)
		}
	}
	ret := make([]ScoredWord, h.Len())
	for i := len(ret) - 1; i >= 0; i-- {
		ret[i] = heap.Pop(h).(ScoredWord)
	}
	return ret
}
