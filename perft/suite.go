package perft

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/talyrond/chesscore"
)

// DepthCase is one `;D<depth> <nodes>` expectation within a suite record.
type DepthCase struct {
	Depth int
	Nodes int
}

// Record is a single suite line: a starting position plus the depths it
// should be checked at.
type Record struct {
	FEN   string
	Cases []DepthCase
}

// ParseSuite reads one record per line from r in the format
// `<fen> ;D<depth> <nodes> ;D<depth> <nodes> ...`, skipping blank lines and
// lines starting with '#'.
func ParseSuite(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("perft: line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseRecord(line string) (Record, error) {
	chunks := strings.Split(line, ";")
	if len(chunks) < 2 {
		return Record{}, fmt.Errorf("expected a FEN followed by at least one ;D<depth> <nodes> case")
	}

	rec := Record{FEN: strings.TrimSpace(chunks[0])}

	for _, chunk := range chunks[1:] {
		dc, err := parseDepthCase(chunk)
		if err != nil {
			return Record{}, err
		}
		rec.Cases = append(rec.Cases, dc)
	}

	return rec, nil
}

func parseDepthCase(chunk string) (DepthCase, error) {
	fields := strings.Fields(chunk)
	if len(fields) != 2 {
		return DepthCase{}, fmt.Errorf("malformed depth case %q", chunk)
	}
	if !strings.HasPrefix(fields[0], "D") {
		return DepthCase{}, fmt.Errorf("malformed depth marker %q", fields[0])
	}

	depth, err := strconv.Atoi(fields[0][1:])
	if err != nil {
		return DepthCase{}, fmt.Errorf("malformed depth marker %q: %w", fields[0], err)
	}
	nodes, err := strconv.Atoi(fields[1])
	if err != nil {
		return DepthCase{}, fmt.Errorf("malformed node count %q: %w", fields[1], err)
	}

	return DepthCase{Depth: depth, Nodes: nodes}, nil
}

// CaseResult reports the outcome of checking a single DepthCase.
type CaseResult struct {
	FEN     string
	Depth   int
	Want    int
	Got     int
	Elapsed time.Duration
}

// Passed reports whether the perft count matched the expected value.
func (r CaseResult) Passed() bool { return r.Want == r.Got }

// RunSuite runs every depth case in every record against gen, sequentially,
// and returns one CaseResult per case in encounter order.
func RunSuite(gen *chess.MoveGenerator, records []Record) ([]CaseResult, error) {
	var results []CaseResult

	for _, rec := range records {
		state, err := chess.ParseFEN(rec.FEN)
		if err != nil {
			return nil, fmt.Errorf("perft: bad FEN %q: %w", rec.FEN, err)
		}

		for _, dc := range rec.Cases {
			start := time.Now()
			got := Count(gen, state, dc.Depth)
			results = append(results, CaseResult{
				FEN:     rec.FEN,
				Depth:   dc.Depth,
				Want:    dc.Nodes,
				Got:     got,
				Elapsed: time.Since(start),
			})
		}
	}

	return results, nil
}
