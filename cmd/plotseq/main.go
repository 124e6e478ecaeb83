package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"

	"github.com/petewarden/magic-wand-capture/internal/io"
	"github.com/petewarden/magic-wand-capture/internal/viz"
)

func main() {
	args := struct {
		In    string `arg:"positional,required" help:"JSON-lines file"`
		Index []int  `help:"records to plot, all when empty"`
		Out   string `help:"output directory"`
	}{
		Out: "./plots",
	}
	arg.MustParse(&args)

	records, err := io.ReadRecords(args.In)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(args.Out, os.ModePerm); err != nil {
		log.Fatal(err)
	}

	indices := args.Index
	if len(indices) == 0 {
		for i := range records {
			indices = append(indices, i)
		}
	}

	for _, i := range indices {
		if i < 0 || i >= len(records) {
			log.Fatalf("[plotseq] index %d out of range, %d records\n", i, len(records))
		}
		path := filepath.Join(args.Out, fmt.Sprintf("%05d_%s.png", i, records[i].Label()))
		if err := viz.PlotSequence(records[i], path); err != nil {
			log.Printf("[plotseq] skipping record %d: %v\n", i, err)
			continue
		}
	}

	log.Printf("[plotseq] plotted %d records to %s\n", len(indices), args.Out)
}
