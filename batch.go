package huffman

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result holds everything Compress derives from one Sequence.
type Result struct {
	Frequencies FrequencyTable
	Tree        *Tree
	Codes       CodeTable
	Stream      EncodedStream
}

// Compress tabulates seq, builds its Huffman code, and encodes seq with it.
// An empty seq fails with ErrEmptyAlphabet.
func Compress(seq Sequence) (Result, error) {
	freqs := Tabulate(seq)
	tree, err := BuildTree(freqs)
	if err != nil {
		return Result{}, err
	}
	codes := tree.CodeTable()
	stream, err := Encode(seq, codes)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Frequencies: freqs,
		Tree:        tree,
		Codes:       codes,
		Stream:      stream,
	}, nil
}

// BatchConfig controls CompressBatch.
type BatchConfig struct {
	// Workers is the number of Sequences compressed at once.  Zero or
	// negative means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultBatchConfig returns a BatchConfig with every field at its default.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{}.withDefaults()
}

func (cfg BatchConfig) withDefaults() BatchConfig {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// CompressBatch runs Compress over each of seqs, up to cfg.Workers at a time.
// Results are returned in the same order as seqs.  The first failure stops
// any work not yet started and is returned with the index of its Sequence.
func CompressBatch(ctx context.Context, seqs []Sequence, cfg BatchConfig) ([]Result, error) {
	cfg = cfg.withDefaults()
	results := make([]Result, len(seqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	log.Debugf("batch: compressing %d sequences with %d workers", len(seqs), cfg.Workers)
	for index := range seqs {
		index := index
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := Compress(seqs[index])
			if err != nil {
				log.Debugf("batch: sequence %d failed: %v", index, err)
				return fmt.Errorf("sequence %d: %w", index, err)
			}
			results[index] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
