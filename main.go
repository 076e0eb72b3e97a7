package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s {sim|pair} [flags]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Flags:\n")
	fmt.Fprintf(os.Stderr, "  --tfile PATH   read history from local file\n")
	fmt.Fprintf(os.Stderr, "  --url URL      download history to a local file first\n")
	fmt.Fprintf(os.Stderr, "  --start N      current (completed) round\n")
	fmt.Fprintf(os.Stderr, "  --final N      last round of the tournament (required)\n")
	fmt.Fprintf(os.Stderr, "  --sim N        number of Monte Carlo trials (default 100000)\n")
	fmt.Fprintf(os.Stderr, "  --payout N     lowest rank considered in the money, 0-based (default 0)\n")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command != "sim" && command != "pair" {
		usage()
		fail("command must be one of: sim, pair")
	}

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	var tfile, url string
	var start, final, sims, payout int
	fs.StringVar(&tfile, "tfile", "", "read history from local file")
	fs.StringVar(&url, "url", "", "download history to a local file first")
	fs.IntVar(&start, "start", 0, "current (completed) round")
	fs.IntVar(&final, "final", -1, "last round of the tournament")
	fs.IntVar(&sims, "sim", 100_000, "number of Monte Carlo trials")
	fs.IntVar(&payout, "payout", 0, "lowest rank considered in the money")
	fs.Usage = usage
	_ = fs.Parse(os.Args[2:])

	if final < 0 {
		fail("required: --final")
	}
	if (tfile == "") == (url == "") {
		fail("required: exactly one of --tfile, --url")
	}

	filename := tfile
	if url != "" {
		filename = "a.t"
		fmt.Printf("Downloading %s to %s\n", url, filename)
		if err := DownloadHistory(url, filename); err != nil {
			fail("%v", err)
		}
	} else {
		fmt.Printf("Reading from %s\n", filename)
	}

	history, err := ReadHistory(filename, start)
	if err != nil {
		fail("%v", err)
	}
	if len(history) == 0 {
		fail("history file contains no players")
	}

	standings, repeats := NewStandings(history)

	fmt.Println("Initial Standings:")
	FormatStandings(os.Stdout, standings)

	masterRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	switch command {
	case "sim":
		tally := Simulate(standings, start, final, sims, DefaultWorkers(), masterRand)
		fmt.Println("Simulation Results:")
		FormatTally(os.Stdout, standings, tally)

		forced := ForcedWinProbabilities(standings, start, final, sims, masterRand)
		FormatForcedWin(os.Stdout, forced)

	case "pair":
		cfg := OptimizerConfig{
			StartRound:         start,
			FinalRound:         final,
			Simulations:        sims,
			Workers:            DefaultWorkers(),
			LowestRankedPayout: payout,
			Hopefulness:        DefaultHopefulness,
		}
		pairings, _, _ := NextPairing(standings, repeats, cfg, masterRand)
		fmt.Println("Next Round Pairing:")
		FormatPairing(os.Stdout, standings, repeats, pairings)
	}
}
