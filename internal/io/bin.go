package io

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

// F64SliceToF32Bin writes a float64 slice as little endian float32 values,
// the layout of the device input buffer
func F64SliceToF32Bin(path string, slice []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer file.Close()

	narrow := make([]float32, len(slice))
	for i, v := range slice {
		narrow[i] = float32(v)
	}

	w := bufio.NewWriter(file)
	if err := binary.Write(w, binary.LittleEndian, narrow); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logWritten("F64SliceToF32Bin", path)
	return nil
}
