package corpus

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"wordalign/util"
)

// Link is a single word-alignment edge: a (source, target) pair of 1-based
// token positions within one sentence pair.
type Link struct {
	Source int
	Target int
}

// SentencePair holds the token lists (strings) for a source and target
// sentence. Token order is meaningful: position is the alignment index.
type SentencePair struct {
	Source []string
	Target []string
}

// LabeledAlignment holds the gold annotations for one sentence pair.
// Positions are numbered from 1. The data does NOT guarantee that Sure is a
// subset of Possible; consumers must handle that themselves.
type LabeledAlignment struct {
	Sure     []Link
	Possible []Link
}

var (
	// ErrIncompleteBlock reports a corpus block with fewer than four fields.
	ErrIncompleteBlock = errors.New("incomplete corpus block")
	// ErrMalformedPair reports an alignment pair that is not "int-int".
	ErrMalformedPair = errors.New("malformed alignment pair")
)

// Number of text fields per block: source sentence, target sentence,
// sure alignments, possible alignments, in that order.
const fieldsPerBlock = 4

// The corpus blocks are matched by position, not by tag name.
type xmlCorpus struct {
	Blocks []xmlBlock `xml:",any"`
}

type xmlBlock struct {
	Fields []xmlField `xml:",any"`
}

type xmlField struct {
	Text string `xml:",chardata"`
}

// entityRe matches an ampersand, capturing a following well-formed entity
// reference if present. Used to escape only bare ampersands.
var entityRe = regexp.MustCompile(`&(amp;|lt;|gt;|apos;|quot;|#[0-9]+;|#x[0-9a-fA-F]+;)?`)

// EscapeBareAmpersands rewrites every `&` that does not start a valid entity
// reference to `&amp;`. The gold corpora are not well-formed XML without this
// step, so it always runs before structural parsing.
func EscapeBareAmpersands(data []byte) []byte {
	return entityRe.ReplaceAllFunc(data, func(m []byte) []byte {
		if len(m) == 1 {
			return []byte("&amp;")
		}
		return m
	})
}

// Load reads and parses a gold alignment corpus file.
func Load(path string) ([]SentencePair, []LabeledAlignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	defer util.LogTimer(fmt.Sprintf("Parse %s", path)).Close()
	return Parse(data)
}

// Parse extracts sentence pairs and their labeled alignments from raw corpus
// markup. The two returned slices always have equal length, and entry i of
// each describes the same sentence.
func Parse(data []byte) ([]SentencePair, []LabeledAlignment, error) {
	var root xmlCorpus
	if err := xml.Unmarshal(EscapeBareAmpersands(data), &root); err != nil {
		return nil, nil, fmt.Errorf("failed to parse corpus markup: %w", err)
	}

	pairs := make([]SentencePair, 0, len(root.Blocks))
	alignments := make([]LabeledAlignment, 0, len(root.Blocks))
	for i, block := range root.Blocks {
		if len(block.Fields) < fieldsPerBlock {
			return nil, nil, fmt.Errorf("block %d: %w: got %d fields, want %d",
				i, ErrIncompleteBlock, len(block.Fields), fieldsPerBlock)
		}
		pairs = append(pairs, SentencePair{
			Source: splitTokens(block.Fields[0].Text),
			Target: splitTokens(block.Fields[1].Text),
		})
		sure, err := parseLinks(block.Fields[2].Text)
		if err != nil {
			return nil, nil, fmt.Errorf("block %d: sure field: %w", i, err)
		}
		possible, err := parseLinks(block.Fields[3].Text)
		if err != nil {
			return nil, nil, fmt.Errorf("block %d: possible field: %w", i, err)
		}
		alignments = append(alignments, LabeledAlignment{Sure: sure, Possible: possible})
	}
	return pairs, alignments, nil
}

// splitTokens splits sentence text on single spaces. An empty field yields an
// empty token list, never a list containing one empty token.
func splitTokens(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

// parseLinks parses a space-delimited list of "source-target" pairs such as
// "3-5". An empty field yields no links.
func parseLinks(text string) ([]Link, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, " ")
	links := make([]Link, len(parts))
	for i, part := range parts {
		link, err := parseLink(part)
		if err != nil {
			return nil, err
		}
		links[i] = link
	}
	return links, nil
}

func parseLink(s string) (Link, error) {
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return Link{}, fmt.Errorf("%w: %q", ErrMalformedPair, s)
	}
	src, err := strconv.Atoi(left)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %q: %w", ErrMalformedPair, s, err)
	}
	tgt, err := strconv.Atoi(right)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %q: %w", ErrMalformedPair, s, err)
	}
	return Link{Source: src, Target: tgt}, nil
}
