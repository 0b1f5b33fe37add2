package tokenizer

import (
	"wordalign/corpus"
	"wordalign/util"
	"wordalign/vocab"
)

// TokenizedSentencePair holds vocabulary indices for a source and target
// sentence, same lengths as the token lists it was produced from. Every
// element is a valid index into the vocabulary that produced it.
type TokenizedSentencePair struct {
	Source []int32
	Target []int32
}

// Tokenize converts sentence pairs from token lists to index sequences using
// one vocabulary per language. A pair whose source or target side contains
// any out-of-vocabulary token is dropped whole: no partially mapped pair is
// ever emitted. Surviving pairs keep their relative order. The second return
// is the number of pairs dropped.
func Tokenize(pairs []corpus.SentencePair, source, target *vocab.Vocabulary) ([]TokenizedSentencePair, int) {
	result := make([]TokenizedSentencePair, 0, len(pairs))
	for _, sp := range pairs {
		tok, ok := tokenizePair(sp, source, target)
		if !ok {
			continue
		}
		result = append(result, tok)
	}
	return result, len(pairs) - len(result)
}

// TokenizeParallel is Tokenize fanned out over worker goroutines. Each
// sentence pair is independent, and output order matches Tokenize exactly.
// workers <= 1 runs serially.
func TokenizeParallel(pairs []corpus.SentencePair, source, target *vocab.Vocabulary, workers int) ([]TokenizedSentencePair, int) {
	if workers <= 1 {
		return Tokenize(pairs, source, target)
	}

	type slot struct {
		tok TokenizedSentencePair
		ok  bool
	}
	slots := make([]slot, len(pairs))
	util.ParallelFor(0, len(pairs), workers, func(i int) {
		slots[i].tok, slots[i].ok = tokenizePair(pairs[i], source, target)
	})

	result := make([]TokenizedSentencePair, 0, len(pairs))
	for _, s := range slots {
		if s.ok {
			result = append(result, s.tok)
		}
	}
	return result, len(pairs) - len(result)
}

// tokenizePair maps both sides of one sentence pair, short-circuiting on the
// first out-of-vocabulary token. Index slices are allocated at their final
// length up front since it is known before any lookup.
func tokenizePair(sp corpus.SentencePair, source, target *vocab.Vocabulary) (TokenizedSentencePair, bool) {
	src, ok := mapTokens(sp.Source, source)
	if !ok {
		return TokenizedSentencePair{}, false
	}
	tgt, ok := mapTokens(sp.Target, target)
	if !ok {
		return TokenizedSentencePair{}, false
	}
	return TokenizedSentencePair{Source: src, Target: tgt}, true
}

func mapTokens(tokens []string, v *vocab.Vocabulary) ([]int32, bool) {
	indices := make([]int32, len(tokens))
	for i, token := range tokens {
		index, ok := v.GetIndex(token)
		if !ok {
			return nil, false
		}
		indices[i] = int32(index)
	}
	return indices, true
}
