package gliffy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/netgliffy/pkg/errors"
)

type document struct {
	Stage stage `json:"stage"`
}

type stage struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Children []child `json:"children"`
}

type child struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Rotation int     `json:"rotation"`
	Graphic  graphic `json:"graphic"`
}

type graphic struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

func toDocument(doc SceneDocument) document {
	out := document{Stage: stage{
		Width:    doc.Width,
		Height:   doc.Height,
		Children: make([]child, len(doc.Shapes)),
	}}
	for i, s := range doc.Shapes {
		out.Stage.Children[i] = child{
			X:        s.X,
			Y:        s.Y,
			Width:    s.Width,
			Height:   s.Height,
			Rotation: s.Rotation,
			Graphic: graphic{
				Type:        ShapeType,
				Title:       s.Title,
				Description: s.Description,
				Link:        s.Link,
			},
		}
	}
	return out
}

// Marshal encodes doc as an indented Gliffy JSON document.
func Marshal(doc SceneDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes doc as Gliffy JSON and writes it to w.
func WriteJSON(doc SceneDocument, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toDocument(doc)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a file at path. The document is fully encoded
// before the file is created, so a failed encode leaves nothing behind.
func ExportJSON(doc SceneDocument, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "encode %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", path)
	}
	return nil
}
