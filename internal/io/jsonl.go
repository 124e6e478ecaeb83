package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	stdio "io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// ReadJSONLines reads one JSON object per line from path, calling fn for each
// non-blank line. An error from fn is logged with the file and line and returned.
func ReadJSONLines(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for lineNum := 1; ; lineNum++ {
		line, readErr := r.ReadBytes('\n')
		if readErr != nil && readErr != stdio.EOF {
			return errors.Wrapf(readErr, "failed to read %s", path)
		}

		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			if err := fn(trimmed); err != nil {
				log.Printf("[ReadJSONLines] File '%s' has error in line %d '%s'\n", path, lineNum, trimmed)
				return errors.Wrapf(err, "%s:%d", path, lineNum)
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// ReadRecords reads every gesture record from a JSON-lines file
func ReadRecords(path string) ([]gesture.Record, error) {
	var records []gesture.Record
	err := ReadJSONLines(path, func(line []byte) error {
		rec, err := gesture.ParseRecord(line)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

// Glob returns the files matching pattern in lexical order
func Glob(pattern string) ([]string, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "bad pattern %s", pattern)
	}
	sort.Strings(files)
	return files, nil
}

// WriteJSONLines writes each item as one JSON line
func WriteJSONLines(path string, items []interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logWritten("WriteJSONLines", path)
	return nil
}

// WriteRecords writes gesture records as JSON lines
func WriteRecords(path string, records []gesture.Record) error {
	items := make([]interface{}, len(records))
	for i, rec := range records {
		items[i] = rec
	}
	return WriteJSONLines(path, items)
}
