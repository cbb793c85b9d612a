package pipewire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	ee2pwerrors "github.com/linuxmatters/ee2pw/internal/errors"
	"github.com/tidwall/pretty"
)

// prettyOptions lays the document out with two-space indentation. Short
// arrays such as audio.position stay on one line.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Encode renders doc as indented JSON. Struct fields keep their declared
// order and control maps are sorted by key, so equal documents always
// encode to identical bytes.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, ee2pwerrors.NewStageError("encode", "", err)
	}

	out := pretty.PrettyOptions(buf.Bytes(), prettyOptions)
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

// Write sends data to path, or to stdout when path is empty or "-".
func Write(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return ee2pwerrors.NewStageError("write", "stdout", fmt.Errorf("%w: %w", ee2pwerrors.ErrWrite, err))
		}
		return nil
	}
	return WriteFile(path, data)
}

// WriteFile writes data to a temporary file beside path and renames it into
// place, so path is either untouched or complete.
func WriteFile(path string, data []byte) error {
	fail := func(err error) error {
		return ee2pwerrors.NewStageError("write", path, fmt.Errorf("%w: %w", ee2pwerrors.ErrWrite, err))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ee2pw-*.tmp")
	if err != nil {
		return fail(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}
