package vocab

import (
	"sort"
	"strconv"

	"wordalign/corpus"
)

// Vocabulary maps tokens of one language to unique integer indices,
// contiguous from 0. Built once from a training corpus and immutable after
// that.
type Vocabulary struct {
	Tokens       []string
	TokenToIndex map[string]int
}

// newVocabulary builds the lookup map for an ordered token list.
func newVocabulary(tokens []string) *Vocabulary {
	tokenToIndex := make(map[string]int, len(tokens))
	for i, token := range tokens {
		tokenToIndex[token] = i
	}
	return &Vocabulary{Tokens: tokens, TokenToIndex: tokenToIndex}
}

// Get returns the token string for a given index.
func (v *Vocabulary) Get(index int) string {
	if index < 0 || index >= len(v.Tokens) {
		return "[Unknown Token Index: " + strconv.Itoa(index) + "]"
	}
	return v.Tokens[index]
}

// GetIndex returns the index of a token, or false if the token is
// out of vocabulary.
func (v *Vocabulary) GetIndex(token string) (int, bool) {
	if index, ok := v.TokenToIndex[token]; ok {
		return index, true
	}
	return -1, false
}

// Size returns the total number of tokens in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.Tokens)
}

// Build creates one vocabulary per language from a parallel corpus.
//
// With freqCutoff <= 0 every distinct token gets the next unused index in
// first-occurrence order across the corpus scan, source and target scanned
// independently. With freqCutoff = K only the K most frequent tokens per
// language are kept, indices 0..K-1 in descending frequency; frequency ties
// break by first-occurrence order so the result is reproducible. Everything
// else is out of vocabulary.
func Build(pairs []corpus.SentencePair, freqCutoff int) (source, target *Vocabulary) {
	var src, tgt counter
	for _, sp := range pairs {
		src.add(sp.Source)
		tgt.add(sp.Target)
	}
	return newVocabulary(src.rank(freqCutoff)), newVocabulary(tgt.rank(freqCutoff))
}

// counter accumulates token frequencies while remembering first-occurrence
// order.
type counter struct {
	order []string
	count map[string]int
}

func (c *counter) add(tokens []string) {
	if c.count == nil {
		c.count = make(map[string]int)
	}
	for _, token := range tokens {
		if _, seen := c.count[token]; !seen {
			c.order = append(c.order, token)
		}
		c.count[token]++
	}
}

// rank returns the vocabulary token list. Cutoff <= 0 keeps every token in
// first-occurrence order; otherwise tokens are re-ranked by descending
// frequency (stable, so ties keep first-occurrence order) and truncated.
func (c *counter) rank(cutoff int) []string {
	tokens := make([]string, len(c.order))
	copy(tokens, c.order)
	if cutoff <= 0 {
		return tokens
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return c.count[tokens[i]] > c.count[tokens[j]]
	})
	if cutoff < len(tokens) {
		tokens = tokens[:cutoff]
	}
	return tokens
}
