package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	arg "github.com/alexflint/go-arg"

	"github.com/petewarden/magic-wand-capture/internal/config"
	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/io"
	"github.com/petewarden/magic-wand-capture/internal/prepare"
)

type csvCmd struct {
	Dir       string `arg:"required" help:"directory holding <label>/output_<label>_<name>.txt captures"`
	Labels    string `help:"comma separated label folders to read"`
	Negatives bool   `help:"add generated negative records"`
	Out       string `help:"output JSON-lines file"`
}

type logCmd struct {
	Glob       string `help:"capture logs to parse"`
	HandLabels string `help:"hand label JSON-lines files to merge, empty to skip"`
	Out        string `help:"output JSON-lines file"`
}

type negativesCmd struct {
	Out string `help:"output JSON-lines file"`
}

type mergeCmd struct {
	Gestures   string `arg:"required" help:"gesture JSON-lines file"`
	HandLabels string `arg:"required" help:"hand label JSON-lines files"`
	Out        string `arg:"required" help:"output JSON-lines file"`
}

func fail(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func write(path string, records []gesture.Record) {
	fail(os.MkdirAll(filepath.Dir(path), os.ModePerm))
	fail(io.WriteRecords(path, records))
	log.Printf("data_length: %d\n", len(records))
}

func main() {
	var args struct {
		Config    string        `help:"YAML configuration file"`
		CSV       *csvCmd       `arg:"subcommand:csv" help:"convert per subject csv captures"`
		Log       *logCmd       `arg:"subcommand:log" help:"convert free text capture logs"`
		Negatives *negativesCmd `arg:"subcommand:negatives" help:"generate synthetic negative records"`
		Merge     *mergeCmd     `arg:"subcommand:merge" help:"merge hand labels into gesture records"`
	}
	p := arg.MustParse(&args)

	cfg, err := config.Load(args.Config)
	fail(err)

	switch {
	case args.CSV != nil:
		cmd := args.CSV
		labels := "wing,ring,slope,negative"
		if cmd.Labels != "" {
			labels = cmd.Labels
		}
		out := cmd.Out
		if out == "" {
			out = "./data/complete_data"
		}

		records, err := prepare.CollectCSVDir(cmd.Dir, strings.Split(labels, ","), cfg.CSVChunk)
		fail(err)
		if cmd.Negatives {
			rng, seed := cfg.NewRand()
			log.Printf("[prepare] negatives seed %d\n", seed)
			records = append(records, prepare.GenerateNegatives(rng, cfg.Negative.Instances, cfg.Negative.Length)...)
		}
		write(out, records)

	case args.Log != nil:
		cmd := args.Log
		glob := cmd.Glob
		if glob == "" {
			glob = "gesture_data_v2/*_gesture_data.txt"
		}
		out := cmd.Out
		if out == "" {
			out = "./gesture_data_v2/all_data.json"
		}

		records, err := prepare.ReadGestureLogs(glob)
		fail(err)
		if cmd.HandLabels != "" {
			labels, err := prepare.ReadHandLabels(cmd.HandLabels)
			fail(err)
			records = prepare.MergeHandLabels(records, labels)
		}
		write(out, records)

	case args.Negatives != nil:
		out := args.Negatives.Out
		if out == "" {
			out = "./data/negative_data"
		}
		rng, seed := cfg.NewRand()
		log.Printf("[prepare] negatives seed %d\n", seed)
		write(out, prepare.GenerateNegatives(rng, cfg.Negative.Instances, cfg.Negative.Length))

	case args.Merge != nil:
		cmd := args.Merge
		gestures, err := io.ReadRecords(cmd.Gestures)
		fail(err)
		labels, err := prepare.ReadHandLabels(cmd.HandLabels)
		fail(err)
		write(cmd.Out, prepare.MergeHandLabels(gestures, labels))

	default:
		p.Fail("missing command: csv, log, negatives or merge")
	}
}
