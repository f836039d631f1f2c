// The MIT License (MIT)
//
// # Copyright (c) 2024 The primecount authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// journalRecord is one completed computation in the results journal.
type journalRecord struct {
	X         string  `json:"x"`
	Result    string  `json:"result"`
	Algorithm string  `json:"algorithm"`
	Threads   int     `json:"threads"`
	Seconds   float64 `json:"seconds"`
	Date      string  `json:"date"`
}

// appendJournal appends rec to the snappy-compressed JSON journal at
// path, creating the file if needed. The journal is small, so it is
// rewritten whole on every append.
func appendJournal(path string, rec journalRecord) error {
	records, err := readJournal(path)
	if err != nil {
		return err
	}
	records = append(records, rec)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrap(err, "open journal")
	}
	defer f.Close()

	w := snappy.NewBufferedWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode journal")
		}
	}
	return errors.Wrap(w.Close(), "flush journal")
}

// readJournal returns the records already stored at path; a missing file
// is an empty journal.
func readJournal(path string) ([]journalRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "open journal")
	}
	defer f.Close()

	var records []journalRecord
	dec := json.NewDecoder(snappy.NewReader(f))
	for {
		var r journalRecord
		if err := dec.Decode(&r); err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "decode journal")
		}
		records = append(records, r)
	}
	return records, nil
}
