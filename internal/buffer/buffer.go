package buffer

import "bytes"

// Row is one line of text. render is derived from raw and rebuilt after
// every change to raw.
type Row struct {
	raw    []byte
	render []byte
}

func newRow(raw []byte) *Row {
	r := &Row{raw: append([]byte(nil), raw...)}
	r.update()
	return r
}

func (r *Row) update() {
	r.render = expandTabs(r.raw)
}

// Raw returns the row content. Callers must not modify it.
func (r *Row) Raw() []byte { return r.raw }

// Render returns the tab-expanded row content. Callers must not modify it.
func (r *Row) Render() []byte { return r.render }

func (r *Row) Len() int { return len(r.raw) }

func (r *Row) RenderLen() int { return len(r.render) }

// RenderX maps a raw column of this row to its rendered column.
func (r *Row) RenderX(cx int) int { return RenderX(r.raw, cx) }

// CursorX maps a rendered column of this row back to a raw column.
func (r *Row) CursorX(rx int) int { return CursorX(r.raw, rx) }

// Document is the ordered set of rows being edited.
type Document struct {
	rows     []*Row
	fileName string
	dirty    int
}

func New() *Document {
	return &Document{}
}

// Len is the number of rows.
func (d *Document) Len() int { return len(d.rows) }

// Row returns row i or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

func (d *Document) FileName() string { return d.fileName }

func (d *Document) SetFileName(name string) { d.fileName = name }

// Dirty counts mutations since the last load or save.
func (d *Document) Dirty() int { return d.dirty }

func (d *Document) MarkClean() { d.dirty = 0 }

func (d *Document) InsertRow(at int, raw []byte) {
	if at < 0 {
		at = 0
	}
	if at > len(d.rows) {
		at = len(d.rows)
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = newRow(raw)
	d.dirty++
}

func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
}

func (d *Document) InsertChar(row, at int, c byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	if at < 0 {
		at = 0
	}
	if at > len(r.raw) {
		at = len(r.raw)
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[at+1:], r.raw[at:])
	r.raw[at] = c
	r.update()
	d.dirty++
}

func (d *Document) DeleteChar(row, at int) {
	r := d.Row(row)
	if r == nil || at < 0 || at >= len(r.raw) {
		return
	}
	r.raw = append(r.raw[:at], r.raw[at+1:]...)
	r.update()
	d.dirty++
}

func (d *Document) AppendBytes(row int, b []byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	r.raw = append(r.raw, b...)
	r.update()
	d.dirty++
}

// Truncate cuts row content at column at.
func (d *Document) Truncate(row, at int) {
	r := d.Row(row)
	if r == nil || at < 0 || at > len(r.raw) {
		return
	}
	r.raw = r.raw[:at:at]
	r.update()
	d.dirty++
}

// Text serializes the document with a newline after every row.
func (d *Document) Text() []byte {
	size := 0
	for _, r := range d.rows {
		size += len(r.raw) + 1
	}
	var b bytes.Buffer
	b.Grow(size)
	for _, r := range d.rows {
		b.Write(r.raw)
		b.WriteByte('\n')
	}
	return b.Bytes()
}
