package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dgallion1/doccover/internal/doctree"
)

// JSONParser handles JSON snapshots.
type JSONParser struct{}

func (p *JSONParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	var tree doctree.DocTree
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tree); err != nil {
		if err == io.EOF {
			return finish(&tree, filename), nil
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return finish(&tree, filename), nil
}
