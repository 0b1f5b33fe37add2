package metrics

import (
	"errors"
	"math"
	"testing"

	"wordalign/corpus"
)

func links(pairs ...[2]int) []corpus.Link {
	var out []corpus.Link
	for _, p := range pairs {
		out = append(out, corpus.Link{Source: p[0], Target: p[1]})
	}
	return out
}

func TestScoring(t *testing.T) {
	tt := []struct {
		name      string
		reference []corpus.LabeledAlignment
		predicted [][]corpus.Link
		precNum   int
		precDen   int
		recNum    int
		recDen    int
		aer       float64
	}{
		{
			name: "perfect prediction",
			reference: []corpus.LabeledAlignment{
				{Sure: links([2]int{1, 1}), Possible: links([2]int{1, 1}, [2]int{2, 2})},
			},
			predicted: [][]corpus.Link{links([2]int{1, 1}, [2]int{2, 2})},
			precNum:   2, precDen: 2,
			recNum: 1, recDen: 1,
			aer: 0.0,
		},
		{
			name: "fully wrong prediction",
			reference: []corpus.LabeledAlignment{
				{Sure: links([2]int{1, 1}), Possible: links([2]int{1, 1})},
			},
			predicted: [][]corpus.Link{links([2]int{2, 2})},
			precNum:   0, precDen: 1,
			recNum: 0, recDen: 1,
			aer: 1.0,
		},
		{
			name: "sure outside possible still counts for precision",
			reference: []corpus.LabeledAlignment{
				{Sure: links([2]int{3, 3}), Possible: links([2]int{1, 1})},
			},
			predicted: [][]corpus.Link{links([2]int{3, 3})},
			precNum:   1, precDen: 1,
			recNum: 1, recDen: 1,
			aer: 0.0,
		},
		{
			name: "duplicate predictions collapse",
			reference: []corpus.LabeledAlignment{
				{Sure: links([2]int{1, 1}), Possible: links([2]int{1, 1})},
			},
			predicted: [][]corpus.Link{links([2]int{1, 1}, [2]int{1, 1}, [2]int{1, 1})},
			precNum:   1, precDen: 1,
			recNum: 1, recDen: 1,
			aer: 0.0,
		},
		{
			name: "empty prediction contributes nothing to precision",
			reference: []corpus.LabeledAlignment{
				{Sure: links([2]int{1, 1}), Possible: links([2]int{1, 1})},
				{Sure: links([2]int{2, 2}), Possible: links([2]int{2, 2})},
			},
			predicted: [][]corpus.Link{nil, links([2]int{2, 2})},
			precNum:   1, precDen: 1,
			recNum: 1, recDen: 2,
			aer: 1.0 - 2.0/3.0,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			precNum, precDen := Precision(tc.reference, tc.predicted)
			if precNum != tc.precNum || precDen != tc.precDen {
				t.Errorf("Precision = (%d, %d), want (%d, %d)", precNum, precDen, tc.precNum, tc.precDen)
			}
			recNum, recDen := Recall(tc.reference, tc.predicted)
			if recNum != tc.recNum || recDen != tc.recDen {
				t.Errorf("Recall = (%d, %d), want (%d, %d)", recNum, recDen, tc.recNum, tc.recDen)
			}
			if precNum > precDen || recNum > recDen {
				t.Error("numerator exceeds denominator")
			}
			aer, err := AER(tc.reference, tc.predicted)
			if err != nil {
				t.Fatalf("AER: %v", err)
			}
			if math.Abs(aer-tc.aer) > 1e-12 {
				t.Errorf("AER = %v, want %v", aer, tc.aer)
			}
			if aer < 0 || aer > 1 {
				t.Errorf("AER %v outside [0, 1]", aer)
			}
		})
	}
}

// AER recombines raw numerator/denominator sums; it is not the average of the
// already-divided precision and recall ratios. With unequal denominators the
// two formulas disagree.
func TestAERIsNotAveragedRatios(t *testing.T) {
	reference := []corpus.LabeledAlignment{
		{Sure: links([2]int{1, 1}), Possible: links([2]int{1, 1})},
		{
			Sure:     links([2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
			Possible: links([2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
		},
	}
	predicted := [][]corpus.Link{
		links([2]int{1, 1}),
		links([2]int{1, 1}),
	}

	precNum, precDen := Precision(reference, predicted)
	recNum, recDen := Recall(reference, predicted)
	aer, err := AER(reference, predicted)
	if err != nil {
		t.Fatalf("AER: %v", err)
	}

	want := 1 - float64(precNum+recNum)/float64(precDen+recDen)
	if math.Abs(aer-want) > 1e-12 {
		t.Fatalf("AER = %v, want combined-sum formula %v", aer, want)
	}

	averaged := 1 - (float64(precNum)/float64(precDen)+float64(recNum)/float64(recDen))/2
	if math.Abs(aer-averaged) < 1e-9 {
		t.Fatalf("AER %v coincides with averaged-ratio formula %v; denominators %d and %d should separate them",
			aer, averaged, precDen, recDen)
	}
}

func TestAERDegenerate(t *testing.T) {
	reference := []corpus.LabeledAlignment{
		{Possible: links([2]int{1, 1})}, // possible only: no sure, nothing predicted
	}
	predicted := [][]corpus.Link{nil}
	if _, err := AER(reference, predicted); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("error = %v, want %v", err, ErrDegenerate)
	}
}

func TestAERLengthMismatch(t *testing.T) {
	reference := []corpus.LabeledAlignment{
		{Sure: links([2]int{1, 1}), Possible: links([2]int{1, 1})},
	}
	if _, err := AER(reference, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want %v", err, ErrLengthMismatch)
	}
}
