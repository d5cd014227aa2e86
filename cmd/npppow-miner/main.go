// Command npppow-miner iterates nonces over a fixed block template, expanding each into a number buffer and
// searching it for a solution, mirroring the reference miner's benchmark loop.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/bitsignal/npppow"
	"github.com/bitsignal/npppow/hazmat/xof"
	"github.com/bitsignal/npppow/internal/blocktemplate"
)

// sampleTemplate is the demonstration block template: a 76-byte base header (with the nonce at
// [blocktemplate.NonceOffset]) followed by a 16-byte region where a found solution is embedded before committing.
const sampleTemplate = "0707f7a4f0d605b303260816ba3f10902e1a145ac5fad3aa3af6ea44c11869dc4f853f002b2eea0000000077b206" +
	"a02ca5b1d4ce6bbfdf0acac38bded34d2dcdeef95cd20cefc12f61d5610900000000000000000000000000000000"

func main() {
	var (
		maxLeaves     = flag.Int("max-leaves", 16, "maximum tree paths probed per nonce")
		maxSolutions  = flag.Int("max-solutions", 10, "maximum solutions collected per nonce")
		startingNonce = flag.Uint("starting-nonce", uint(time.Now().UnixNano()), "first nonce to try")
		template      = flag.String("template", sampleTemplate, "hex-encoded block template")
	)
	flag.Parse()

	noncesCount := flag.Arg(0)
	if noncesCount == "" {
		fmt.Println("Usage: npppow-miner <nonces-count> [flags]")
		flag.PrintDefaults()
		return
	}

	var n int
	if _, err := fmt.Sscanf(noncesCount, "%d", &n); err != nil {
		log.Fatalf("invalid nonces-count %q: %v", noncesCount, err)
	}

	tmpl, err := blocktemplate.Parse(*template)
	if err != nil {
		log.Fatalf("parsing block template: %v", err)
	}

	log.Printf("running nonces %d-%d, leaves per nonce: %d", *startingNonce, uint(*startingNonce)+uint(n)-1, *maxLeaves)

	solver := npppow.NewSolver()
	total := 0
	start := time.Now()

	for nonce := uint32(*startingNonce); nonce < uint32(*startingNonce)+uint32(n); nonce++ {
		tmpl.SetNonce(nonce)
		numbers := xof.Expand(tmpl.Base(), npppow.InputSize)

		solutions, err := solver.Solve(numbers, *maxSolutions, *maxLeaves)
		if err != nil {
			log.Fatalf("solve: %v", err)
		}

		for _, sol := range solutions {
			tmpl.EmbedSolution(sol.Lo, sol.Hi)
			powHash := xof.Commit(tmpl.Bytes())

			valid := npppow.Verify(sol, solver.Numbers())
			fmt.Printf("Nonce: %d, Solution = %s, PoW: %s, Valid = %t\n",
				nonce, hex.EncodeToString(sol.Bytes()), hex.EncodeToString(powHash[:]), valid)
		}
		total += len(solutions)
	}

	elapsed := time.Since(start).Seconds()
	fmt.Printf("Performance: %.2f solutions per second\n", float64(total)/elapsed)
	if total > 0 {
		fmt.Printf("Nonces per solution: %.2f\n", float64(n)/float64(total))
	}
}
