package prepare

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/io"
)

// CollectCSVDir reads every raw capture laid out as
// <dir>/<label>/output_<label>_<name>.txt for the given labels.
// Negative captures are chunked, all others are split at sentinel rows.
func CollectCSVDir(dir string, labels []string, chunk int) ([]gesture.Record, error) {
	var records []gesture.Record
	for _, label := range labels {
		prefix := "output_" + label + "_"
		files, err := io.Glob(filepath.Join(dir, label, prefix+"*.txt"))
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(file), prefix), ".txt")

			rows, err := io.ReadCSVRows(file)
			if err != nil {
				return nil, err
			}

			var recs []gesture.Record
			if label == NegativeLabel {
				recs, err = ChunkCSVRecording(rows, NegativeLabel+name, chunk)
			} else {
				recs, err = SplitCSVRecording(rows, label, name)
			}
			if err != nil {
				return nil, errors.Wrapf(err, "%s", file)
			}

			log.Printf("[CollectCSVDir] %s: %d records\n", file, len(recs))
			records = append(records, recs...)
		}
	}
	return records, nil
}

// ReadGestureLogs parses every capture log matching pattern
func ReadGestureLogs(pattern string) ([]gesture.Record, error) {
	files, err := io.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var records []gesture.Record
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", file)
		}
		recs, err := ParseGestureLog(f, file)
		f.Close()
		if err != nil {
			return nil, err
		}

		log.Printf("[ReadGestureLogs] %s: %d records\n", file, len(recs))
		records = append(records, recs...)
	}
	return records, nil
}
