package main

import (
	"fmt"
	"log"
	"os"

	"github.com/petewarden/magic-wand-capture/internal/io"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s FEATURES.npy\n", os.Args[0])
	}
	fileName := os.Args[1]

	features, err := io.ReadFeatures(fileName)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Reading npy file complete")

	if err := io.Mat64toCSV(fileName+".csv", features); err != nil {
		log.Fatal(err)
	}

	return
}
