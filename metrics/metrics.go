package metrics

import (
	"errors"

	"wordalign/corpus"
)

var (
	// ErrDegenerate reports AER input whose combined denominator is zero:
	// no predicted links and no sure links anywhere. The rate is undefined
	// and must not be coerced to a number.
	ErrDegenerate = errors.New("degenerate metric input: zero combined denominator")
	// ErrLengthMismatch reports reference and predicted sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("reference and predicted lengths differ")
)

// Precision computes the numerator and denominator of alignment precision,
// summed over all sentences.
//
// Numerator: |predicted ∩ possible|. Denominator: |predicted|. The sure set
// is unioned into possible first, because the gold data does not guarantee
// sure ⊆ possible. Duplicate predicted links collapse under set semantics.
// reference and predicted must have equal length.
func Precision(reference []corpus.LabeledAlignment, predicted [][]corpus.Link) (numerator, denominator int) {
	for i, la := range reference {
		possible := toSet(la.Possible)
		for _, link := range la.Sure {
			possible[link] = struct{}{}
		}
		pred := toSet(predicted[i])
		denominator += len(pred)
		numerator += intersectionSize(pred, possible)
	}
	return numerator, denominator
}

// Recall computes the numerator and denominator of alignment recall, summed
// over all sentences.
//
// Numerator: |predicted ∩ sure|. Denominator: |sure|. reference and
// predicted must have equal length.
func Recall(reference []corpus.LabeledAlignment, predicted [][]corpus.Link) (numerator, denominator int) {
	for i, la := range reference {
		sure := toSet(la.Sure)
		pred := toSet(predicted[i])
		denominator += len(sure)
		numerator += intersectionSize(pred, sure)
	}
	return numerator, denominator
}

// AER computes the alignment error rate:
//
//	AER = 1 - (|predicted ∩ possible| + |predicted ∩ sure|) / (|predicted| + |sure|)
//
// The raw numerator and denominator sums are recombined directly; deriving
// AER from already-divided precision and recall ratios is a different
// quantity and is not what this returns. ErrDegenerate is returned when the
// combined denominator is zero, ErrLengthMismatch when the two sequences
// disagree in length.
func AER(reference []corpus.LabeledAlignment, predicted [][]corpus.Link) (float64, error) {
	if len(reference) != len(predicted) {
		return 0, ErrLengthMismatch
	}
	precNum, precDen := Precision(reference, predicted)
	recNum, recDen := Recall(reference, predicted)
	if precDen+recDen == 0 {
		return 0, ErrDegenerate
	}
	return 1 - float64(precNum+recNum)/float64(precDen+recDen), nil
}

func toSet(links []corpus.Link) map[corpus.Link]struct{} {
	set := make(map[corpus.Link]struct{}, len(links))
	for _, link := range links {
		set[link] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[corpus.Link]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for link := range a {
		if _, ok := b[link]; ok {
			n++
		}
	}
	return n
}
