package dataset

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petewarden/magic-wand-capture/internal/augment"
	"github.com/petewarden/magic-wand-capture/internal/calc"
	"github.com/petewarden/magic-wand-capture/internal/config"
	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/io"
	"github.com/petewarden/magic-wand-capture/internal/vec"
)

func record(label string, n int, offset float64) gesture.Record {
	seq := make(gesture.Sequence, n)
	for i := range seq {
		seq[i] = gesture.Sample{offset + float64(i), offset - float64(i), offset + 9.8}
	}
	return gesture.Record{Gesture: label, Accel: seq}
}

func newFormatter(seqLength int) *Formatter {
	return &Formatter{
		SeqLength: seqLength,
		PadNoise:  calc.DefaultPadNoise,
		Labels:    NewLabelTable(config.DefaultLabels()),
		Rand:      rand.New(rand.NewSource(1)),
	}
}

func TestLabelTable(t *testing.T) {
	table := NewLabelTable(config.DefaultLabels())

	id, err := table.ID("Wing")
	require.NoError(t, err)
	assert.Equal(t, int32(0), id)

	negative, err := table.ID("negative")
	require.NoError(t, err)
	other, err := table.ID("OTHER")
	require.NoError(t, err)
	assert.Equal(t, negative, other)

	_, err = table.ID("circle")
	assert.Equal(t, ErrUnknownLabel, errors.Cause(err))

	assert.Equal(t, []string{"negative", "other", "ring", "slope", "wing"}, table.Names())
}

func TestFormat(t *testing.T) {
	records := []gesture.Record{
		record("wing", 10, 100),
		record("slope", 200, -50),
		record("ring", 128, 0),
	}
	records[2].HandLabel = "negative"

	f, err := newFormatter(128).Format(records)
	require.NoError(t, err)

	require.Equal(t, 6, f.Len)
	rows, cols := f.Features.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 128*gesture.Dim, cols)
	assert.Equal(t, []int32{0, 0, 2, 2, 3, 3}, f.Labels)

	// the gravity corrected sequence sits at the tail of the "before" row
	// and the head of the "after" row
	normalized, err := calc.RemoveGravity(records[0].Accel)
	require.NoError(t, err)
	before, after := f.Example(0), f.Example(1)
	require.Len(t, before, 128)
	for i, s := range normalized {
		for j := range s {
			assert.InDelta(t, s[j], before[118+i][j], 1e-9)
			assert.InDelta(t, s[j], after[i][j], 1e-9)
		}
	}

	// a full length record is gravity free in both variants
	for _, row := range []int{4, 5} {
		mean, err := vec.EstimateGravity(f.Example(row))
		require.NoError(t, err)
		for axis := range mean {
			assert.InDelta(t, 0, mean[axis], 1e-9)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := newFormatter(16).Format([]gesture.Record{record("circle", 10, 0)})
	assert.Equal(t, ErrUnknownLabel, errors.Cause(err))

	_, err = newFormatter(16).Format([]gesture.Record{record("wing", 0, 0)})
	assert.Equal(t, calc.ErrEmptySequence, errors.Cause(err))

	f, err := newFormatter(16).Format(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]gesture.Record{record("Wing", 10, 0), record("wing", 30, 0), record("ring", 20, 0)})
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, map[string]int{"wing": 2, "ring": 1}, s.PerLabel)
	assert.Equal(t, 10.0, s.MinLen)
	assert.Equal(t, 20.0, s.MedianLen)
	assert.Equal(t, 30.0, s.MaxLen)
	assert.Equal(t, "3 records [ring=1 wing=2] length min/median/max 10/20/30", s.String())

	assert.Equal(t, 0, Summarize(nil).Count)
}

func writeSplit(t *testing.T, dir, name string, records []gesture.Record) string {
	path := filepath.Join(dir, name)
	require.NoError(t, io.WriteRecords(path, records))
	return path
}

func TestLoadFormatWrite(t *testing.T) {
	dir := t.TempDir()
	train := []gesture.Record{record("wing", 10, 0), record("wing", 10, 5), record("ring", 10, 1)}
	valid := []gesture.Record{record("slope", 40, 0)}
	test := []gesture.Record{record("other", 140, 0), record("ring", 3, 0)}

	cfg := config.Default()
	cfg.SeqLength = 32
	loader := NewLoader(cfg, rand.New(rand.NewSource(2)))

	d, err := loader.Load(
		writeSplit(t, dir, "train", train),
		writeSplit(t, dir, "valid", valid),
		writeSplit(t, dir, "test", test),
	)
	require.NoError(t, err)

	// only the train split is augmented
	a := augment.New(cfg.Augment, rand.New(rand.NewSource(3)))
	var candidates int
	for _, rec := range train {
		candidates += len(a.Candidates(rec))
	}
	assert.Len(t, d.Train, candidates)
	assert.Equal(t, valid, d.Valid)
	assert.Equal(t, test, d.Test)

	formatted, err := loader.Format(d)
	require.NoError(t, err)
	require.Len(t, formatted, 3)
	assert.Equal(t, 2*candidates, formatted[gesture.Train].Len)
	assert.Equal(t, []int32{2, 2}, formatted[gesture.Valid].Labels)
	assert.Equal(t, []int32{3, 3, 1, 1}, formatted[gesture.Test].Labels)

	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0755))
	for _, split := range Splits {
		require.NoError(t, WriteSplit(out, split, formatted[split], cfg.SeqLength, split == gesture.Test))
	}

	features, err := io.ReadFeatures(FeaturesPath(out, gesture.Test))
	require.NoError(t, err)
	rows, cols := features.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 32*3, cols)

	labels, err := io.ReadLabels(LabelsPath(out, gesture.Test))
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 3, 1, 1}, labels)

	info, err := os.Stat(BinPath(out, gesture.Test))
	require.NoError(t, err)
	assert.Equal(t, int64(4*32*3*4), info.Size())

	_, err = os.Stat(BinPath(out, gesture.Train))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadUnknownLabelFailsFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeSplit(t, dir, "valid", []gesture.Record{record("circle", 5, 0)})

	loader := NewLoader(config.Default(), rand.New(rand.NewSource(4)))
	records, err := loader.LoadSplit(path, gesture.Valid)
	require.NoError(t, err)

	_, err = loader.Format(&Dataset{Valid: records})
	assert.Equal(t, ErrUnknownLabel, errors.Cause(err))
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(config.Default(), rand.New(rand.NewSource(5)))
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope"), "", "")
	assert.Error(t, err)
}
