package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParsePharaoh reads predicted alignments in Pharaoh format: one line per
// sentence, each line a space-delimited list of "source-target" pairs. An
// empty line yields an empty alignment for that sentence. This is the output
// format of the usual aligners (fast_align, eflomal).
func ParsePharaoh(r io.Reader) ([][]Link, error) {
	var predicted [][]Link
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		links, err := parseLinks(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(predicted)+1, err)
		}
		predicted = append(predicted, links)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alignments: %w", err)
	}
	return predicted, nil
}

// LoadPharaoh reads a Pharaoh-format alignment file.
func LoadPharaoh(path string) ([][]Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alignments: %w", err)
	}
	defer f.Close()
	return ParsePharaoh(f)
}
