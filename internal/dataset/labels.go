package dataset

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownLabel is returned for a label missing from the label table
var ErrUnknownLabel = errors.New("unknown label")

// LabelTable maps gesture names to class ids. It is immutable once built.
type LabelTable struct {
	ids map[string]int32
}

// NewLabelTable copies names into a table keyed by lower case name
func NewLabelTable(names map[string]int) LabelTable {
	ids := make(map[string]int32, len(names))
	for name, id := range names {
		ids[strings.ToLower(name)] = int32(id)
	}
	return LabelTable{ids: ids}
}

// ID returns the class id of label, compared case insensitively
func (t LabelTable) ID(label string) (int32, error) {
	id, ok := t.ids[strings.ToLower(label)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "%q", label)
	}
	return id, nil
}

// Names returns the known names in sorted order
func (t LabelTable) Names() []string {
	names := make([]string, 0, len(t.ids))
	for name := range t.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
