package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// FormatStandings renders the current standings (rank, name, wins-as-games,
// spread) as a table. Grounded on dstathis-swisstools's FormatPlayers.
func FormatStandings(w io.Writer, standings Standings) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Name", "Wins", "Spread"})
	for i, st := range standings {
		table.Append([]string{
			strconv.Itoa(i + 1),
			st.Player.Name,
			fmt.Sprintf("%.1f", float64(st.Wins)/2),
			strconv.Itoa(st.Spread),
		})
	}
	table.Render()
}

// FormatTally renders the simulation result matrix: rows are players in
// current rank order, columns are places 1..P, cells are trial counts.
func FormatTally(w io.Writer, standings Standings, tally *Tally) {
	numPlayers := len(standings)
	header := make([]string, numPlayers+1)
	header[0] = "Player"
	for place := 0; place < numPlayers; place++ {
		header[place+1] = strconv.Itoa(place + 1)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, st := range standings {
		row := make([]string, numPlayers+1)
		row[0] = st.Player.Name
		for place := 0; place < numPlayers; place++ {
			row[place+1] = strconv.Itoa(tally.Get(st.Player, place))
		}
		table.Append(row)
	}
	table.Render()
}

// FormatForcedWin renders the forced-win probability table produced by C7,
// if any contenders qualified.
func FormatForcedWin(w io.Writer, results []ForcedWinResult) {
	if len(results) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Player", "Current Rank", "Forced-Win Rate"})
	for _, r := range results {
		table.Append([]string{
			r.Player.Name,
			strconv.Itoa(r.CurrentRank + 1),
			fmt.Sprintf("%.4f", r.WinRate),
		})
	}
	table.Render()
}

// FormatPairing renders the next-round pairing list with times-played
// annotations.
func FormatPairing(w io.Writer, standings Standings, repeats RepeatCounts, pairings []Pairing) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Player A", "Player B", "Times Played"})
	for _, p := range pairings {
		a := standings[p.First].Player.Name
		b := "BYE"
		timesPlayed := "-"
		if p.Second != BYE {
			b = standings[p.Second].Player.Name
			timesPlayed = strconv.Itoa(repeats.TimesPlayed(standings[p.First].Player.Index, standings[p.Second].Player.Index))
		}
		table.Append([]string{a, b, timesPlayed})
	}
	table.Render()
}
