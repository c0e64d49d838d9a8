package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/doccover/internal/doctree"
)

// Parser converts a serialized documentation snapshot into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// SupportedExtensions lists file extensions this tool can load.
var SupportedExtensions = map[string]bool{
	".json":    true,
	".yaml":    true,
	".yml":     true,
	".msgpack": true,
	".mpk":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}, nil
	case ".yaml", ".yml":
		return &YAMLParser{}, nil
	case ".msgpack", ".mpk":
		return &MsgpackParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// finish fills in the title from the filename and drops nil entries so
// downstream walkers never see them.
func finish(tree *doctree.DocTree, filename string) *doctree.DocTree {
	if tree.Title == "" {
		base := filepath.Base(filename)
		tree.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	pkgs := tree.Packages[:0]
	for _, pkg := range tree.Packages {
		if pkg == nil {
			continue
		}
		types := pkg.Types[:0]
		for _, t := range pkg.Types {
			if t != nil {
				types = append(types, t)
			}
		}
		pkg.Types = types
		pkgs = append(pkgs, pkg)
	}
	tree.Packages = pkgs
	return tree
}
