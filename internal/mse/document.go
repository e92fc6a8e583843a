// Package mse builds and serializes Magic Set Editor set files.
package mse

// Entry is one value in a Document: either flat text or a nested
// document. Text and *Document are the only implementations.
type Entry interface {
	entry()
}

// Text is a flat text value. It may contain newlines, which the
// serializer turns into an indented multi-line block.
type Text string

func (Text) entry() {}

func (*Document) entry() {}

type field struct {
	key   string
	value Entry
}

// Document is an ordered sequence of key/value fields plus attached
// image blobs. Keys may repeat; insertion order is preserved and is
// the visible field order in the editor. Image order determines the
// imageN archive slot names.
type Document struct {
	fields []field
	images [][]byte
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Push appends a field.
func (d *Document) Push(key string, value Entry) {
	d.fields = append(d.fields, field{key: key, value: value})
}

// Merge appends other's fields and images after d's, preserving both
// orders.
func (d *Document) Merge(other *Document) {
	d.fields = append(d.fields, other.fields...)
	d.images = append(d.images, other.images...)
}

// AttachImage appends an image blob for the serializer to store in
// the next imageN archive slot.
func (d *Document) AttachImage(data []byte) {
	d.images = append(d.images, data)
}
