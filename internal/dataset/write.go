package dataset

import (
	"log"
	"path/filepath"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/io"
)

// FeaturesPath is where WriteSplit stores the features of split
func FeaturesPath(dir string, split gesture.Split) string {
	return filepath.Join(dir, string(split)+"_features.npy")
}

// LabelsPath is where WriteSplit stores the labels of split
func LabelsPath(dir string, split gesture.Split) string {
	return filepath.Join(dir, string(split)+"_labels.npy")
}

// BinPath is where WriteSplit stores the raw float32 features of split
func BinPath(dir string, split gesture.Split) string {
	return filepath.Join(dir, string(split)+"_features.bin")
}

// WriteSplit stores f as npy files in dir, and as raw float32 when withBin is set.
// Empty splits are skipped.
func WriteSplit(dir string, split gesture.Split, f *Formatted, seqLength int, withBin bool) error {
	if f.Len == 0 {
		log.Printf("[WriteSplit] %s is empty, nothing written\n", split)
		return nil
	}

	if err := io.WriteFeatures(FeaturesPath(dir, split), f.Features, seqLength, gesture.Dim); err != nil {
		return err
	}
	if err := io.WriteLabels(LabelsPath(dir, split), f.Labels); err != nil {
		return err
	}
	if withBin {
		if err := io.F64SliceToF32Bin(BinPath(dir, split), f.Features.RawMatrix().Data); err != nil {
			return err
		}
	}
	return nil
}
