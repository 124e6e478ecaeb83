package prepare

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

var (
	gestureRe = regexp.MustCompile(`gesture: ([a-zA-Z0-9_]+)`)
	valuesRe  = regexp.MustCompile(`x: ?([-0-9.]+).*y: ?([-0-9.]+).*z: ?([-0-9.]+)`)
)

// ParseGestureLog splits a free text capture log into one record per
// "gesture: <name>" marker, collecting the "x: .. y: .. z: .." lines after it.
// Records get the source id "<source>#<index>".
func ParseGestureLog(r io.Reader, source string) ([]gesture.Record, error) {
	var records []gesture.Record
	var current *gesture.Record

	flush := func() {
		if current == nil {
			return
		}
		current.SourceID = fmt.Sprintf("%s#%d", source, len(records))
		records = append(records, *current)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if m := gestureRe.FindStringSubmatch(line); m != nil {
			flush()
			name := m[1]
			if name == "other" {
				name = NegativeLabel
			}
			current = &gesture.Record{Gesture: name, Accel: gesture.Sequence{}}
			continue
		}

		if current == nil {
			continue
		}
		m := valuesRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var s gesture.Sample
		for i := 0; i < gesture.Dim; i++ {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s line %d", source, lineNum)
			}
			s[i] = v
		}
		current.Accel = append(current.Accel, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", source)
	}

	flush()
	return records, nil
}
