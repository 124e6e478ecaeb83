package main

import (
	"log"
	"os"

	arg "github.com/alexflint/go-arg"

	"github.com/petewarden/magic-wand-capture/internal/config"
	"github.com/petewarden/magic-wand-capture/internal/dataset"
)

func fail(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	args := struct {
		Train  string `arg:"required" help:"train split, one JSON record per line"`
		Valid  string `arg:"required" help:"validation split"`
		Test   string `arg:"required" help:"test split"`
		Out    string `help:"output directory for the npy files"`
		Config string `help:"YAML configuration file"`
		Bin    bool   `help:"also write raw little endian float32 features"`
	}{
		Out: "./npy",
	}
	arg.MustParse(&args)

	cfg, err := config.Load(args.Config)
	fail(err)
	fail(os.MkdirAll(args.Out, os.ModePerm))

	rng, seed := cfg.NewRand()
	log.Printf("[build] seed %d, seq_length %d\n", seed, cfg.SeqLength)

	loader := dataset.NewLoader(cfg, rng)
	log.Printf("[build] labels %v\n", loader.Labels().Names())

	log.Println("Loading...")
	d, err := loader.Load(args.Train, args.Valid, args.Test)
	fail(err)

	log.Println("Formatting...")
	formatted, err := loader.Format(d)
	fail(err)

	log.Println("Writing Results...")
	for _, split := range dataset.Splits {
		f := formatted[split]
		log.Printf("[build] %s: %d examples\n", split, f.Len)
		fail(dataset.WriteSplit(args.Out, split, f, cfg.SeqLength, args.Bin))
	}

	log.Println("Finished.")
}
