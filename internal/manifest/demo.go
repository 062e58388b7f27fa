package manifest

import (
	"bytes"
	_ "embed"
)

//go:embed demo.yaml
var demoManifest []byte

// Demo returns the built-in reference scenario.
func Demo() *Manifest {
	m, err := Parse(bytes.NewReader(demoManifest))
	if err != nil {
		panic("manifest: built-in demo is invalid: " + err.Error())
	}
	return m
}
