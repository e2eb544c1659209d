package modelfile

import (
	"bytes"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
)

type Patch struct {
	Data   []byte
	Format Format
}

func ReadPatch(path string) (Patch, error) {
	format, err := ParseFormat(path)
	if err != nil {
		return Patch{}, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return Patch{}, err
	}
	return Patch{Data: d, Format: format}, nil
}

func (p Patch) apply(doc []byte) ([]byte, error) {
	d, err := toJSON(p.Data, p.Format)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(bytes.TrimSpace(d), []byte("[")) {
		ops, err := jsonpatch.DecodePatch(d)
		if err != nil {
			return nil, err
		}
		return ops.Apply(doc)
	}
	return jsonpatch.MergePatch(doc, d)
}

func applyPatches(doc []byte, patches []Patch) ([]byte, error) {
	for i, p := range patches {
		var err error
		doc, err = p.apply(doc)
		if err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
	}
	return doc, nil
}
