package mse

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the document as an MSE set archive: a zip container
// with a "set" stream holding the text encoding and one imageN stream
// per attached image. Output is byte-identical across platforms; line
// endings are always CRLF.
func (d *Document) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	set, err := zw.Create("set")
	if err != nil {
		return fmt.Errorf("error creating set stream: %v", err)
	}
	if err := d.encode(set, 0); err != nil {
		return err
	}
	for i, img := range d.images {
		f, err := zw.Create(fmt.Sprintf("image%d", i+1))
		if err != nil {
			return fmt.Errorf("error creating image stream: %v", err)
		}
		if _, err := f.Write(img); err != nil {
			return fmt.Errorf("error writing image%d: %v", i+1, err)
		}
	}
	return zw.Close()
}

// encode emits the indentation-delimited text encoding at the given
// depth: "key: value" for single-line text, "key:" plus an indented
// line block for text with newlines, and "key" plus an indented
// sub-document for nested trees.
func (d *Document) encode(w io.Writer, indent int) error {
	tabs := strings.Repeat("\t", indent)
	for _, f := range d.fields {
		switch v := f.value.(type) {
		case Text:
			text := string(v)
			if strings.Contains(text, "\n") {
				if _, err := fmt.Fprintf(w, "%s%s:\r\n", tabs, f.key); err != nil {
					return err
				}
				for _, line := range strings.Split(text, "\n") {
					if _, err := fmt.Fprintf(w, "%s\t%s\r\n", tabs, line); err != nil {
						return err
					}
				}
			} else {
				if _, err := fmt.Fprintf(w, "%s%s: %s\r\n", tabs, f.key, text); err != nil {
					return err
				}
			}
		case *Document:
			if _, err := fmt.Fprintf(w, "%s%s\r\n", tabs, f.key); err != nil {
				return err
			}
			if err := v.encode(w, indent+1); err != nil {
				return err
			}
		}
	}
	return nil
}
