package huffman

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCompressBatch(t *testing.T) {
	inputs := []string{"AAACGT", testDNA, "G", "ACGTACGTTTTT"}
	seqs := make([]Sequence, len(inputs))
	for index, str := range inputs {
		seqs[index] = ParseSequence(str)
	}

	results, err := CompressBatch(context.Background(), seqs, BatchConfig{Workers: 2})
	if err != nil {
		t.Fatalf("CompressBatch failed: %v", err)
	}
	if len(results) != len(seqs) {
		t.Fatalf("expected %d results, got %d", len(seqs), len(results))
	}
	for index, result := range results {
		out, err := Decode(result.Stream, result.Tree)
		if err != nil {
			t.Fatalf("result %d: Decode failed: %v", index, err)
		}
		if !out.Equal(seqs[index]) {
			t.Errorf("result %d: wrong output:\n\texpect: %s\n\tactual: %s", index, seqs[index], out)
		}
		if total := result.Frequencies.Total(); total != uint64(len(seqs[index])) {
			t.Errorf("result %d: expected total %d, got %d", index, len(seqs[index]), total)
		}
	}
}

func TestCompressBatch_Error(t *testing.T) {
	seqs := []Sequence{ParseSequence("ACGT"), nil, ParseSequence("TTTT")}
	results, err := CompressBatch(context.Background(), seqs, DefaultBatchConfig())
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "sequence 1: ") {
		t.Errorf("error %q does not name the failing sequence", err)
	}
	if results != nil {
		t.Errorf("expected no results")
	}
}

func TestCompressBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompressBatch(ctx, []Sequence{ParseSequence("ACGT")}, BatchConfig{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultBatchConfig(t *testing.T) {
	if cfg := DefaultBatchConfig(); cfg.Workers <= 0 {
		t.Errorf("expected a positive worker count, got %d", cfg.Workers)
	}
}
