package gesture

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord([]byte(`{"gesture":"wing","source_id":"a#0","accel_ms2_xyz":[[1,2,3],[4,5,6]]}`))
	require.NoError(t, err)

	assert.Equal(t, "wing", rec.Label())
	assert.Equal(t, "a#0", rec.SourceID)
	assert.Equal(t, Sequence{{1, 2, 3}, {4, 5, 6}}, rec.Accel)
}

func TestParseRecordHandLabelWins(t *testing.T) {
	rec, err := ParseRecord([]byte(`{"gesture":"wing","hand_label":"ring","accel_ms2_xyz":[[0,0,0]]}`))
	require.NoError(t, err)
	assert.Equal(t, "ring", rec.Label())
}

func TestParseRecordErrors(t *testing.T) {
	for name, line := range map[string]string{
		"malformed":    `{"gesture":"wing",`,
		"no label":     `{"accel_ms2_xyz":[[1,2,3]]}`,
		"short sample": `{"gesture":"wing","accel_ms2_xyz":[[1,2]]}`,
		"long sample":  `{"gesture":"wing","accel_ms2_xyz":[[1,2,3,4]]}`,
	} {
		_, err := ParseRecord([]byte(line))
		assert.Error(t, err, name)
	}
}

func TestRecordJSONField(t *testing.T) {
	buf, err := json.Marshal(Record{Gesture: "slope", Accel: Sequence{{1, 2, 3}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gesture":"slope","accel_ms2_xyz":[[1,2,3]]}`, string(buf))
}

func TestFlatten(t *testing.T) {
	seq := Sequence{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, seq.Flatten())

	clone := seq.Clone()
	clone[0][0] = 10
	assert.Equal(t, 1.0, seq[0][0])
}
