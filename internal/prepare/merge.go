package prepare

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/io"
)

// HandLabel is a manual correction of the label of one recording
type HandLabel struct {
	SourceID  string `json:"source_id"`
	HandLabel string `json:"hand_label"`
}

// MergeHandLabels sets HandLabel on every gesture whose source id has a correction.
// Gestures without one are returned unchanged.
func MergeHandLabels(gestures []gesture.Record, labels []HandLabel) []gesture.Record {
	idToLabel := make(map[string]string, len(labels))
	for _, l := range labels {
		idToLabel[l.SourceID] = l.HandLabel
	}

	out := make([]gesture.Record, len(gestures))
	for i, g := range gestures {
		if label, ok := idToLabel[g.SourceID]; ok {
			g.HandLabel = label
		}
		out[i] = g
	}
	return out
}

// ReadHandLabels reads hand label JSON lines from every file matching pattern
func ReadHandLabels(pattern string) ([]HandLabel, error) {
	files, err := io.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var labels []HandLabel
	for _, file := range files {
		err := io.ReadJSONLines(file, func(line []byte) error {
			var l HandLabel
			if err := json.Unmarshal(line, &l); err != nil {
				return err
			}
			if l.SourceID == "" {
				return errors.New("hand label without source_id")
			}
			labels = append(labels, l)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return labels, nil
}
