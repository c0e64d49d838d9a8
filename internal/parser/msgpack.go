package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackParser handles msgpack snapshots. Field names follow the json tags
// so the same extractor output can be emitted in either encoding.
type MsgpackParser struct{}

func (p *MsgpackParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	var tree doctree.DocTree
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&tree); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse msgpack: %w", err)
	}
	return finish(&tree, filename), nil
}

// EncodeMsgpack writes tree in the layout MsgpackParser reads.
func EncodeMsgpack(w io.Writer, tree *doctree.DocTree) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("encode msgpack: %w", err)
	}
	return nil
}
