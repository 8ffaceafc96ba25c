// probestat loads a set of keys into one hash map per collision resolution technique and reports how well
// each technique copes with them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gostonefire/probemap"
	"github.com/gostonefire/probemap/crt"
	plog "github.com/phuslu/log"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

type result struct {
	technique string
	stat      *probemap.HashMapStat
	err       error
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args))
}

func run(stdout, stderr io.Writer, args []string) (exitCode int) {
	flags := flag.NewFlagSet("probestat", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "probestat.yaml", "path to YAML configuration file")
	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	f, err := os.Open(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "opening config: %s\n", err)
		return 1
	}
	conf, err := ReadConfig(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(stderr, "reading config %s: %s\n", *configPath, err)
		return 1
	}

	log := &plog.Logger{
		Level:      plog.ParseLevel(conf.LogLevel),
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &plog.IOWriter{Writer: stderr},
	}

	keys, err := readKeys(conf.KeysFile)
	if err != nil {
		log.Error().Err(err).Str("file", conf.KeysFile).Msg("reading keys")
		return 1
	}
	log.Info().Int("keys", len(keys)).Str("hash", conf.Hash).Msg("keys loaded")

	results := make([]result, 0, len(conf.techniques))
	for _, t := range conf.techniques {
		r := measure(conf, t, keys, log)
		if r.err != nil {
			log.Error().Err(r.err).Str("technique", r.technique).Msg("measuring failed")
			exitCode = 1
		}
		results = append(results, r)
	}

	writeReport(stdout, len(keys), results)

	return
}

// readKeys - Reads one key per line, skipping empty lines
func readKeys(fileName string) (keys []string, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	s := bufio.NewScanner(f)
	for s.Scan() {
		if k := strings.TrimSpace(s.Text()); k != "" {
			keys = append(keys, k)
		}
	}
	err = s.Err()

	return
}

// measure - Puts all keys in a new hash map using the given technique and collects its statistics
func measure(conf *Config, technique int, keys []string, log *plog.Logger) (r result) {
	r.technique, _ = crt.Name(technique)

	hm, err := probemap.New[int](conf.InitialCapacity, probemap.Conf{
		CollisionResolutionTechnique: technique,
		HashAlgorithm:                conf.HashAlgorithm(),
		Logger:                       log,
	})
	if err != nil {
		r.err = err
		return
	}

	for i, k := range keys {
		if err = hm.Put(k, i); err != nil {
			r.err = fmt.Errorf("putting key #%d: %w", i, err)
			return
		}
	}

	r.stat, r.err = hm.Stat(true)

	return
}

// writeReport - Writes one row per technique
func writeReport(w io.Writer, nKeys int, results []result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "keys read: %s\t\n", humanize.Comma(int64(nKeys)))
	fmt.Fprintln(tw, "technique\tcapacity\trecords\tload\tresizes\tmax probe\tmean probe\t")

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\tfailed: %s\t\n", r.technique, r.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%d\t%d\t%.2f\t\n",
			r.technique,
			humanize.Comma(int64(r.stat.Capacity)),
			humanize.Comma(int64(r.stat.Records)),
			r.stat.LoadFactor,
			r.stat.Resizes,
			r.stat.MaxProbeLength,
			meanProbe(r.stat.ProbeDistribution),
		)
	}

	_ = tw.Flush()
}

func meanProbe(distribution []int) float64 {
	var n, sum int
	for p, c := range distribution {
		n += c
		sum += p * c
	}
	if n == 0 {
		return 0
	}

	return float64(sum) / float64(n)
}
