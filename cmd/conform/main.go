// Command conform runs the cycle-level conformance corpus against the CPU
// core and reports pass/fail per case.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nes6502/cpu6502/vectors"
)

var (
	corpus  = flag.String("corpus", "", "path to a JSON test file in the vectors.Test shape; if empty, runs the built-in fixture set")
	verbose = flag.Bool("verbose", false, "print every case, not just failures")
)

func main() {
	flag.Parse()

	tests := vectors.Fixtures()
	if *corpus != "" {
		f, err := os.Open(*corpus)
		if err != nil {
			log.Fatalf("opening corpus: %v", err)
		}
		defer f.Close()
		if err := json.NewDecoder(f).Decode(&tests); err != nil {
			log.Fatalf("decoding corpus: %v", err)
		}
	}

	var failed int
	for _, tc := range tests {
		res := vectors.Run(tc)
		if !res.Passed() {
			failed++
			fmt.Printf("FAIL %s\n", tc.Name)
			for _, d := range res.StateDiff {
				fmt.Printf("  state: %s\n", d)
			}
			for _, d := range res.RAMDiff {
				fmt.Printf("  ram: %s\n", d)
			}
			for _, d := range res.CyclesDiff {
				fmt.Printf("  cycles: %s\n", d)
			}
			continue
		}
		if *verbose {
			fmt.Printf("ok   %s\n", tc.Name)
		}
	}

	fmt.Printf("%d/%d passed\n", len(tests)-failed, len(tests))
	if failed > 0 {
		os.Exit(1)
	}
}
