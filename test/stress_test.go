//go:build stress

package test

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/probemap"
	"github.com/gostonefire/probemap/crt"
	"github.com/gostonefire/probemap/hashfunc"
	"github.com/stretchr/testify/assert"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

func createAndStoreTestdata(amount int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	key := make([]byte, 16)
	for i := 0; i < amount; i++ {
		n := 4 + rand.Intn(len(key)-4)
		for j := 0; j < n; j++ {
			key[j] = letters[rand.Intn(len(letters))]
		}
		_, err = fmt.Fprintf(f, "%s,%d\n", key[:n], rand.Int63())
		if err != nil {
			return err
		}
	}

	return nil
}

func readTestdata(fileName string, do func(key string, value int64) error) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		key, value, found := strings.Cut(strings.TrimRight(line, "\n\r"), ",")
		if !found {
			return fmt.Errorf("malformed line %q", line)
		}
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		if err = do(key, v); err != nil {
			return err
		}
	}

	return nil
}

func setTestdata(fileName string, hm *probemap.HashMap[int64], expected map[string]int64) error {
	return readTestdata(fileName, func(key string, value int64) error {
		expected[key] = value
		return hm.Put(key, value)
	})
}

func getTestdata(hm *probemap.HashMap[int64], expected map[string]int64) error {
	for key, value := range expected {
		v, ok := hm.Get(key)
		if !ok {
			return fmt.Errorf("key %q not found", key)
		}
		if v != value {
			return fmt.Errorf("wrong value for key %q", key)
		}
	}

	return nil
}

type TestCaseStressTest struct {
	crtName   string
	crt       int
	hFunc     hashfunc.HashAlgorithm
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{crtName: "LinearProbing", crt: crt.LinearProbing, nTestdata: 200000},
			{crtName: "QuadraticProbing", crt: crt.QuadraticProbing, nTestdata: 200000},
			{crtName: "DoubleHashing", crt: crt.DoubleHashing, nTestdata: 200000},
			{crtName: "DoubleHashingXXH3", crt: crt.DoubleHashing, hFunc: &hashfunc.XXH3HashAlgorithm{}, nTestdata: 200000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress and resizes for %s", test.crtName), func(t *testing.T) {
				// Prepare test data
				dir := t.TempDir()
				testdata := []string{
					filepath.Join(dir, "testdata_1.txt"),
					filepath.Join(dir, "testdata_2.txt"),
				}
				rand.Seed(123)
				for i, fileName := range testdata {
					err := createAndStoreTestdata(test.nTestdata, fileName)
					assert.NoErrorf(t, err, "create testdata %d", i+1)
				}

				// Prepare hash map
				hm, err := probemap.New[int64](11, probemap.Conf{CollisionResolutionTechnique: test.crt, HashAlgorithm: test.hFunc})
				assert.NoError(t, err, "create hash map")

				expected := make(map[string]int64)

				// Set both sets of test data, the second partly overwrites the first
				for i, fileName := range testdata {
					err = setTestdata(fileName, hm, expected)
					assert.NoErrorf(t, err, "set test set %d", i+1)
				}

				// Check
				err = getTestdata(hm, expected)
				assert.NoError(t, err, "get test data")

				stat, err := hm.Stat(true)
				assert.NoError(t, err, "get stat")
				assert.Equal(t, len(expected), stat.Records, "correct number of records")
				assert.LessOrEqual(t, stat.LoadFactor, probemap.MaxLoadFactor, "load factor within max")
				assert.Greater(t, stat.Resizes, 10, "table has grown many times")
				assert.Len(t, stat.ProbeDistribution, stat.MaxProbeLength+1, "distribution covers all probe lengths")

				var n int
				for _, c := range stat.ProbeDistribution {
					n += c
				}
				assert.Equal(t, stat.Records, n, "every record in distribution")
			})
		}
	})
}
