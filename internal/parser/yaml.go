package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/doccover/internal/doctree"
	"gopkg.in/yaml.v3"
)

// YAMLParser handles YAML snapshots.
type YAMLParser struct{}

func (p *YAMLParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	var tree doctree.DocTree
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tree); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return finish(&tree, filename), nil
}
