// Command z16sim is a Z16 instruction-set simulator: it loads a raw binary
// image, executes it, and prints a trace line per instruction followed by
// the final register dump.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/z16sim/z16sim/emu"
	"github.com/z16sim/z16sim/loader"
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <machine_code_file_name>\n", os.Args[0])
		os.Exit(1)
	}

	prog, err := loader.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	e := emu.NewEmulator()
	n := e.LoadProgram(prog.Data)
	fmt.Printf("Loaded %d bytes into memory\n", n)

	e.Run()
	e.DumpRegisters()
}
