package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"wordalign/corpus"
	"wordalign/metrics"
	"wordalign/tokenizer"
	"wordalign/util"
	"wordalign/vocab"
)

// WORKERS used in parallel tokenization. 0 lets the runtime decide.
var WORKERS = 0

func init() {
	if wStr := os.Getenv("WORDALIGN_WORKERS"); wStr != "" {
		if w, err := strconv.Atoi(wStr); err == nil {
			WORKERS = w
		}
	}
}

// Options struct holds all runtime configuration.
type Options struct {
	CorpusPath    string
	PredictedPath string
	FreqCutoff    int
	Workers       int
}

func NewOptions(corpusPath, predictedPath string, freqCutoff, workers int) Options {
	options := Options{
		CorpusPath:    corpusPath,
		PredictedPath: predictedPath,
		FreqCutoff:    freqCutoff,
		Workers:       workers,
	}
	options.require(corpusPath != "", "Missing argument: --corpus <path> is required")
	return options
}

func (o Options) require(condition bool, format string, args ...interface{}) {
	if !condition {
		fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wordalign [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --corpus, -c <path>      required, path to the gold alignment corpus (XML)")
	fmt.Fprintln(w, "  --predicted, -p <path>   model output in Pharaoh format, one line per sentence;")
	fmt.Fprintln(w, "                           when given, precision/recall/AER are reported")
	fmt.Fprintln(w, "  --freq-cutoff <int>      keep only the N most frequent tokens per language,")
	fmt.Fprintln(w, "                           0 keeps everything, default 0")
	fmt.Fprintln(w, "  --workers <int>          goroutines for tokenization, 0 = GOMAXPROCS, default 0")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  wordalign --corpus test.wa.xml")
	fmt.Fprintln(w, "  wordalign --corpus test.wa.xml --predicted model.align")
}

func parseOptions(args []string) Options {
	var corpusPath string
	var predictedPath string
	freqCutoff := 0
	workers := WORKERS

	for i := 0; i < len(args); i++ {
		optionName := args[i]
		if !strings.HasPrefix(optionName, "-") {
			Options{}.require(false, "Invalid option %s", optionName)
		}

		switch optionName {
		case "--help", "-h":
			printUsage(os.Stdout)
			os.Exit(0)
		default:
			var nextArg string
			if parts := strings.SplitN(optionName, "=", 2); len(parts) == 2 {
				optionName = parts[0]
				nextArg = parts[1]
			} else {
				Options{}.require(i+1 < len(args), "Missing argument for option %s", optionName)
				nextArg = args[i+1]
				i++ // skip arg
			}

			switch optionName {
			case "--corpus", "-c":
				corpusPath = nextArg
			case "--predicted", "-p":
				predictedPath = nextArg
			case "--freq-cutoff":
				if val, err := strconv.Atoi(nextArg); err == nil {
					freqCutoff = val
				}
			case "--workers":
				if val, err := strconv.Atoi(nextArg); err == nil {
					workers = val
				}
			default:
				Options{}.require(false, "Unknown option: %s", optionName)
			}
		}
	}
	return NewOptions(corpusPath, predictedPath, freqCutoff, workers)
}

func run() {
	options := parseOptions(os.Args[1:])

	pairs, gold, err := corpus.Load(options.CorpusPath)
	if err != nil {
		log.Fatalf("Failed to load corpus %s: %v", options.CorpusPath, err)
	}

	source, target := vocab.Build(pairs, options.FreqCutoff)

	timer := util.LogTimer("Tokenize")
	tokenized, dropped := tokenizer.TokenizeParallel(pairs, source, target, options.Workers)
	timer.Close()

	fmt.Printf("sentence pairs:   %d\n", len(pairs))
	fmt.Printf("source vocab:     %d\n", source.Size())
	fmt.Printf("target vocab:     %d\n", target.Size())
	fmt.Printf("tokenized pairs:  %d (%d dropped as out-of-vocabulary)\n", len(tokenized), dropped)

	if options.PredictedPath == "" {
		return
	}

	predicted, err := corpus.LoadPharaoh(options.PredictedPath)
	if err != nil {
		log.Fatalf("Failed to load predicted alignments %s: %v", options.PredictedPath, err)
	}

	aer, err := metrics.AER(gold, predicted)
	if err != nil {
		log.Fatalf("Cannot score %s against %s: %v", options.PredictedPath, options.CorpusPath, err)
	}
	precNum, precDen := metrics.Precision(gold, predicted)
	recNum, recDen := metrics.Recall(gold, predicted)

	fmt.Printf("precision:        %d/%d = %.4f\n", precNum, precDen, ratio(precNum, precDen))
	fmt.Printf("recall:           %d/%d = %.4f\n", recNum, recDen, ratio(recNum, recDen))
	fmt.Printf("AER:              %.4f\n", aer)
}

// ratio guards the per-metric display against an empty denominator; the
// underlying numerator/denominator pairs are what get recombined for AER.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func main() {
	run()
}
