package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/probemap/crt"
	"github.com/gostonefire/probemap/hashfunc"
	"golang.org/x/exp/slices"
	yaml "gopkg.in/yaml.v3"
	"io"
)

const HashPolynomial = "polynomial"
const HashXXH3 = "xxh3"

var hashNames = []string{HashPolynomial, HashXXH3}

// Config - Configuration read from a YAML file
//   - KeysFile is the path to a file with one key per line
//   - InitialCapacity is the capacity each hash map is created with
//   - Techniques are the collision resolution techniques to measure, by name
//   - Hash is either "polynomial" (internal) or "xxh3"
//   - Seed is the XXH3 seed, ignored for the polynomial hash
//   - LogLevel is one of trace, debug, info, warn or error
type Config struct {
	KeysFile        string   `yaml:"keysFile"`
	InitialCapacity int      `yaml:"initialCapacity"`
	Techniques      []string `yaml:"techniques"`
	Hash            string   `yaml:"hash"`
	Seed            uint64   `yaml:"seed"`
	LogLevel        string   `yaml:"logLevel"`

	techniques []int
}

// ReadConfig - Decodes and validates a YAML configuration, filling in defaults for left out fields
func ReadConfig(r io.Reader) (conf *Config, err error) {
	c := Config{
		InitialCapacity: 11,
		Techniques:      []string{"linear", "quadratic", "double"},
		Hash:            HashPolynomial,
		LogLevel:        "info",
	}

	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err = d.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("decoding config: %w", err)
		return
	}
	err = nil

	if c.KeysFile == "" {
		err = fmt.Errorf("missing keysFile")
		return
	}
	if c.InitialCapacity <= 0 {
		err = fmt.Errorf("initialCapacity: %w", crt.InvalidCapacity{})
		return
	}
	if len(c.Techniques) == 0 {
		err = fmt.Errorf("no techniques given")
		return
	}
	if !slices.Contains(hashNames, c.Hash) {
		err = fmt.Errorf("unknown hash %q, expected one of %v", c.Hash, hashNames)
		return
	}

	for _, name := range c.Techniques {
		var t int
		if t, err = crt.Parse(name); err != nil {
			return
		}
		c.techniques = append(c.techniques, t)
	}

	conf = &c

	return
}

// HashAlgorithm - Returns the configured hash algorithm, nil selects the internal one
func (C *Config) HashAlgorithm() hashfunc.HashAlgorithm {
	if C.Hash == HashXXH3 {
		return &hashfunc.XXH3HashAlgorithm{Seed: C.Seed}
	}
	return nil
}
