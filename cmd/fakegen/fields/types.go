package fields

import (
	"io"

	"pkg.jsn.cam/fakegen/pkg/fakegen"
)

// Field is a named, line-oriented value generator for fixture files
type Field struct {
	Name        string
	Description string
	Gen         fakegen.Generator[string]
}

var newline = []byte("\n")

// WriteLine generates one value and writes it followed by a newline.
// It returns the number of bytes written.
func (f Field) WriteLine(w io.Writer, r fakegen.Source) (int, error) {
	v, err := f.Gen(r)
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, v)
	if err != nil {
		return n, err
	}
	m, err := w.Write(newline)
	return n + m, err
}
