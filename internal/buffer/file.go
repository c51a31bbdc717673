package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNoFileName = errors.New("no file name")

// Load reads newline-delimited text into a clean document. Each line loses
// its '\n' terminator and then at most one trailing '\r'.
func Load(r io.Reader) (*Document, error) {
	d := New()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimSuffix(line, []byte{'\n'})
			line = bytes.TrimSuffix(line, []byte{'\r'})
			d.rows = append(d.rows, newRow(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Open loads path and associates the document with it.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d.fileName = path
	return d, nil
}

// WriteFile truncates path to the serialized size and writes the whole
// document. It does not clear the dirty counter.
func (d *Document) WriteFile(path string) (int, error) {
	if path == "" {
		return 0, ErrNoFileName
	}
	data := d.Text()
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, err
	}
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
