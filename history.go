package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// historyLine matches a tournament history (.t) line:
//
//	<last_name> , <first_name_text_with_trailing_number> <opponent_indexes> ; <scores>
//
// Group 1 is the last name, group 2 the first-name text (a run of
// non-digits immediately followed by a discarded numeric rating), group 3
// the space-separated 1-based opponent indexes, group 4 the space-separated
// scores.
var historyLine = regexp.MustCompile(`^([^,]+),(\D+)\d+([^;]+);([^;]+)`)

// ReadHistory parses a tournament history file into per-player score
// sequences, truncated to the first startRound rounds. Grounded on
// original_source/sim.py's players_scores_from_tfile.
func ReadHistory(path string, startRound int) ([]PlayerScores, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history file does not exist: %s", path)
	}
	defer f.Close()

	var out []PlayerScores
	index := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ps, err := parseHistoryLine(line, index, startRound)
		if err != nil {
			return nil, err
		}
		out = append(out, ps)
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseHistoryLine(line string, index, startRound int) (PlayerScores, error) {
	m := historyLine.FindStringSubmatch(line)
	if m == nil {
		return PlayerScores{}, fmt.Errorf("match not found for %q", line)
	}

	lastName := strings.TrimSpace(m[1])
	firstName := strings.TrimSpace(m[2])
	opponentField := strings.TrimSpace(m[3])
	scoresField := strings.TrimSpace(m[4])

	opponentIndexes, err := parseIntFields(opponentField, -1)
	if err != nil {
		return PlayerScores{}, fmt.Errorf("bad opponent indexes for %q: %w", line, err)
	}
	scores, err := parseIntFields(scoresField, 0)
	if err != nil {
		return PlayerScores{}, fmt.Errorf("bad scores for %q: %w", line, err)
	}

	if startRound >= 0 && startRound < len(scores) {
		scores = scores[:startRound]
	}
	if startRound >= 0 && startRound < len(opponentIndexes) {
		opponentIndexes = opponentIndexes[:startRound]
	}

	if len(scores) != len(opponentIndexes) {
		return PlayerScores{}, fmt.Errorf("scores and opponents are not the same size for %q", line)
	}

	return PlayerScores{
		Name:            firstName + " " + lastName,
		Index:           index,
		OpponentIndexes: opponentIndexes,
		Scores:          scores,
	}, nil
}

// parseIntFields splits a space-separated list of integers. offset is
// applied to every value (opponent indexes are 1-based in the file and
// become 0-based here via offset=-1; scores use offset=0).
func parseIntFields(field string, offset int) ([]int, error) {
	parts := strings.Fields(field)
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v + offset
	}
	return out, nil
}
