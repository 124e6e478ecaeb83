package prepare

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectCSVDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wing"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "negative"), 0755))

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "wing", "output_wing_hyw.txt"),
		[]byte("1,2,3\n-,-,-\n4,5,6\n"), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "negative", "output_negative_1.txt"),
		[]byte("1,2,3\n4,5,6\n7,8,9\n"), 0644))

	records, err := CollectCSVDir(dir, []string{"wing", "ring", "negative"}, 2)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "hyw", records[0].Name)
	assert.Equal(t, "wing", records[1].Gesture)
	assert.Equal(t, "negative1", records[2].Name)
	assert.Len(t, records[2].Accel, 2)
}

func TestReadGestureLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a_gesture_data.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte(captureLog), 0644))

	records, err := ReadGestureLogs(filepath.Join(dir, "*_gesture_data.txt"))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, path+"#0", records[0].SourceID)
}
