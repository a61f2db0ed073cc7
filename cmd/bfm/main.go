package main

import (
	"flag"
	"log"
	"os"

	"github.com/bfmach/bfm/dev"
	"github.com/bfmach/bfm/image"
	"github.com/bfmach/bfm/machine"
	"github.com/bfmach/bfm/mem"
)

func main() {
	var compose string
	var input string
	var output string
	var limit int
	var verbose bool

	flag.StringVar(&compose, "c", "", "source file to compose and run")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.IntVar(&limit, "n", 0, "Cycle limit (0 for unbounded)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compose) == 0 {
		log.Fatalf("%v: no source file (-c)", os.Args[0])
	}

	ram := &mem.Ram{}
	tape := &dev.Tape{}
	mach := machine.New(ram, tape, tape)
	mach.Verbose = verbose

	comp := &image.Composer{}
	for key, value := range mach.Defines() {
		comp.Predefine(key, value)
	}

	inf, err := os.Open(compose)
	if err != nil {
		log.Fatalf("%v: %v", compose, err)
	}
	defer inf.Close()

	img, err := comp.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compose, err)
	}

	if input == "-" {
		tape.Input = os.Stdin
	} else {
		tin, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer tin.Close()
		tape.Input = tin
	}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		tout, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer tout.Close()
		tape.Output = tout
	}

	ram.Load(img.Bytes())
	mach.Reset()

	done := mach.Run(limit)
	if !done {
		log.Fatalf("%v: not done after %v cycles", compose, mach.Cycles)
	}

	if verbose {
		log.Printf("%v: done in %v cycles", compose, mach.Cycles)
	}
}
