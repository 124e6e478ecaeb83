package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// Summary describes the records of one split
type Summary struct {
	Count     int
	PerLabel  map[string]int
	MinLen    float64
	MedianLen float64
	MaxLen    float64
}

// Summarize counts records per label and the spread of sequence lengths
func Summarize(records []gesture.Record) Summary {
	s := Summary{Count: len(records), PerLabel: make(map[string]int)}
	if len(records) == 0 {
		return s
	}

	lengths := make([]float64, len(records))
	for i, rec := range records {
		lengths[i] = float64(len(rec.Accel))
		s.PerLabel[strings.ToLower(rec.Label())]++
	}

	s.MinLen, _ = stats.Min(lengths)
	s.MedianLen, _ = stats.Median(lengths)
	s.MaxLen, _ = stats.Max(lengths)
	return s
}

func (s Summary) String() string {
	labels := make([]string, 0, len(s.PerLabel))
	for label := range s.PerLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%s=%d", label, s.PerLabel[label])
	}

	return fmt.Sprintf("%d records [%s] length min/median/max %g/%g/%g",
		s.Count, strings.Join(parts, " "), s.MinLen, s.MedianLen, s.MaxLen)
}
