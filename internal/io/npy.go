package io

import (
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gonum/matrix/mat64"
	"github.com/kshedden/gonpy"
	"github.com/pkg/errors"
)

// WriteFeatures writes a features matrix, one flattened example per row, as
// a (rows, seqLength, dim) float64 npy array
func WriteFeatures(path string, matrix *mat64.Dense, seqLength int, dim int) error {
	rows, cols := matrix.Dims()
	if cols != seqLength*dim {
		return errors.Errorf("features have %d columns, expected %d x %d", cols, seqLength, dim)
	}

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	w.Shape = []int{rows, seqLength, dim}
	w.Version = 2
	if err := w.WriteFloat64(matrix.RawMatrix().Data); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logWritten("WriteFeatures", path)
	return nil
}

// WriteLabels writes class ids as an int32 npy vector
func WriteLabels(path string, labels []int32) error {
	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	w.Shape = []int{len(labels)}
	w.Version = 2
	if err := w.WriteInt32(labels); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logWritten("WriteLabels", path)
	return nil
}

// ReadFeatures reads a (rows, seqLength, dim) npy array back into a matrix
// with one flattened example per row
func ReadFeatures(path string) (*mat64.Dense, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	if len(r.Shape) == 0 {
		return nil, errors.Errorf("%s holds a scalar", path)
	}

	rows := r.Shape[0]
	cols := 1
	for _, n := range r.Shape[1:] {
		cols *= n
	}

	data, err := r.GetFloat64()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if rows == 0 || cols == 0 {
		return nil, errors.Errorf("%s is empty", path)
	}

	return mat64.NewDense(rows, cols, data), nil
}

// ReadLabels reads an int32 npy vector
func ReadLabels(path string) ([]int32, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	labels, err := r.GetInt32()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return labels, nil
}

func logWritten(tag string, path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("[%s] wrote %s\n", tag, path)
		return
	}
	log.Printf("[%s] wrote %s (%s)\n", tag, path, humanize.Bytes(uint64(info.Size())))
}
