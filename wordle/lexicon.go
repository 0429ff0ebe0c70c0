package wordle

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// Lexicon is the sorted, deduplicated list of WordLength words a game is
// played with. A word is referred to by its index into the list.
// A Lexicon is never modified after construction and may be shared.
type Lexicon struct {
	words        []string
	stringToWord map[string]int
	letters      [WordLength][256]int // letters[0]['a'] number of words with first letter 'a'
}

// WordList is a set of lexicon indices.
type WordList bitset.BitSet

// LoadLexicon reads one word per line from path.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return NewLexicon(lines), nil
}

// NewLexicon keeps the strings that are exactly WordLength ASCII letters
// long after trimming whitespace, drops duplicates and sorts them.
func NewLexicon(lines []string) *Lexicon {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if isWord(word) {
			words = append(words, word)
		}
	}
	slices.Sort(words)
	words = slices.Compact(words)

	ret := &Lexicon{words: words}
	ret.stringToWord = make(map[string]int, len(words))
	for i, word := range words {
		ret.stringToWord[word] = i
		for pos := 0; pos < WordLength; pos++ {
			ret.letters[pos][word[pos]]++
		}
	}
	return ret
}

// isWord reports whether s is WordLength single byte letters.
func isWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

// Word returns the word at index i.
func (l *Lexicon) Word(i int) string {
	return l.words[i]
}

// Index finds a word in the lexicon.
func (l *Lexicon) Index(word string) (int, bool) {
	ret, ok := l.stringToWord[word]
	return ret, ok
}

// Words returns a copy of all words in sorted order.
func (l *Lexicon) Words() []string {
	return slices.Clone(l.words)
}

// All iterates over the words in sorted order.
func (l *Lexicon) All(yield func(i int, word string) bool) {
	for i, word := range l.words {
		if !yield(i, word) {
			return
		}
	}
}

// Frequency is the number of words with letter at pos.
func (l *Lexicon) Frequency(pos int, letter byte) int {
	if pos < 0 || pos >= WordLength {
		return 0
	}
	return l.letters[pos][letter]
}

// Score sums the positional frequency of each letter of word.
func (l *Lexicon) Score(word string) int {
	score := 0
	for pos := 0; pos < len(word) && pos < WordLength; pos++ {
		score += l.letters[pos][word[pos]]
	}
	return score
}

// Filter returns the set of words for which keep is true.
func (l *Lexicon) Filter(keep func(word string) bool) *WordList {
	ret := l.WordlistEmpty()
	for i, word := range l.words {
		if keep(word) {
			ret.Insert(i)
		}
	}
	return ret
}

func (l *Lexicon) WordlistAll() *WordList {
	wordsLen := uint(len(l.words))
	ret := bitset.New(wordsLen)
	for i := uint(0); i < wordsLen; i++ {
		ret.Set(i)
	}
	return (*WordList)(ret)
}

func (l *Lexicon) WordlistEmpty() *WordList {
	return (*WordList)(bitset.New(uint(len(l.words))))
}

// WordlistStrings materialises a WordList in lexicon order.
func (l *Lexicon) WordlistStrings(wordlist *WordList) []string {
	ret := []string{}
	for _, i := range wordlist.Range {
		ret = append(ret, l.words[i])
	}
	return ret
}

// Range iterates over the indices in ascending order.
func (wl *WordList) Range(yield func(n int, index int) bool) {
	bs := (*bitset.BitSet)(wl)
	n := 0
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if !yield(n, int(i)) {
			return
		}
		n++
	}
}

func (wl *WordList) Len() int {
	return int((*bitset.BitSet)(wl).Count())
}

func (wl *WordList) Insert(index int) {
	(*bitset.BitSet)(wl).Set(uint(index))
}

func (wl *WordList) Contains(index int) bool {
	return (*bitset.BitSet)(wl).Test(uint(index))
}

// IsSubsetOf reports whether every index in wl is also in other.
func (wl *WordList) IsSubsetOf(other *WordList) bool {
	return (*bitset.BitSet)(other).IsSuperSet((*bitset.BitSet)(wl))
}
