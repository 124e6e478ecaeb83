package dataset

import (
	"log"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/augment"
	"github.com/petewarden/magic-wand-capture/internal/config"
	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/io"
)

// Dataset holds the records of the three splits
type Dataset struct {
	Train []gesture.Record
	Valid []gesture.Record
	Test  []gesture.Record
}

// Split returns the records of one split
func (d *Dataset) Split(s gesture.Split) []gesture.Record {
	switch s {
	case gesture.Train:
		return d.Train
	case gesture.Valid:
		return d.Valid
	case gesture.Test:
		return d.Test
	}
	return nil
}

// Splits lists the splits in processing order
var Splits = []gesture.Split{gesture.Train, gesture.Valid, gesture.Test}

// Loader reads the JSON-lines splits and formats them for training.
type Loader struct {
	augmenter *augment.Augmenter
	formatter *Formatter
}

// NewLoader builds a Loader from cfg. All randomness comes from rng.
func NewLoader(cfg *config.Config, rng *rand.Rand) *Loader {
	return &Loader{
		augmenter: augment.New(cfg.Augment, rng),
		formatter: &Formatter{
			SeqLength: cfg.SeqLength,
			PadNoise:  cfg.PadNoise,
			Labels:    NewLabelTable(cfg.Labels),
			Rand:      rng,
		},
	}
}

// Labels returns the label table used when formatting
func (l *Loader) Labels() LabelTable {
	return l.formatter.Labels
}

// LoadSplit reads the records of one split. Only the train split is augmented.
func (l *Loader) LoadSplit(path string, split gesture.Split) ([]gesture.Record, error) {
	records, err := io.ReadRecords(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s split", split)
	}

	if split == gesture.Train {
		log.Printf("[LoadSplit] %s before augmentation: %s\n", split, Summarize(records))
		records = l.augmenter.Augment(records)
	}

	log.Printf("[LoadSplit] %s_data_length: %d\n", split, len(records))
	log.Printf("[LoadSplit] %s: %s\n", split, Summarize(records))
	return records, nil
}

// Load reads all three splits
func (l *Loader) Load(trainPath, validPath, testPath string) (*Dataset, error) {
	var d Dataset
	var err error

	if d.Train, err = l.LoadSplit(trainPath, gesture.Train); err != nil {
		return nil, err
	}
	if d.Valid, err = l.LoadSplit(validPath, gesture.Valid); err != nil {
		return nil, err
	}
	if d.Test, err = l.LoadSplit(testPath, gesture.Test); err != nil {
		return nil, err
	}
	return &d, nil
}

// Format removes gravity from and pads every split
func (l *Loader) Format(d *Dataset) (map[gesture.Split]*Formatted, error) {
	out := make(map[gesture.Split]*Formatted, len(Splits))
	for _, split := range Splits {
		f, err := l.formatter.Format(d.Split(split))
		if err != nil {
			return nil, errors.Wrapf(err, "formatting %s split", split)
		}
		out[split] = f
	}
	return out, nil
}
