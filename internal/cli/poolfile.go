package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// poolFile is the on-disk format for custom template pools:
//
//	alphabet: "23456789QWERTYUPADFGHJKZXCVBNM"  # optional
//	templates:
//	  - ABCABC
//	  - ABCDABCD
type poolFile struct {
	Alphabet  string   `yaml:"alphabet"`
	Templates []string `yaml:"templates"`
}

func loadPoolFile(path string) (poolFile, error) {
	var pf poolFile

	data, err := os.ReadFile(path)
	if err != nil {
		return pf, fmt.Errorf("read pool file: %w", err)
	}
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return pf, fmt.Errorf("parse pool file %s: %w", path, err)
	}
	if len(pf.Templates) == 0 {
		return pf, fmt.Errorf("pool file %s: no templates defined", path)
	}
	return pf, nil
}
