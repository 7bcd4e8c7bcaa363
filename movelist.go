package chess

import "sort"

// maxMoves is the proven upper bound on pseudo-legal moves from any
// reachable chess position.
//
// See https://www.chessprogramming.org/Chess_Position#cite_note-2
const maxMoves = 218

// MoveScore bundles a move with a search score. Perft ignores the score
// field; it exists so MoveList can be reused by a future search layer
// without a type change.
type MoveScore struct {
	Move  Move
	Score int32
}

// MoveList is a fixed-capacity, stack-allocated buffer of scored moves.
// Its zero value is ready to use. Pushing past the 218-move capacity is a
// precondition violation (it indicates a position the proven upper bound
// says cannot exist) and panics rather than returning an error, matching
// the behavior of an out-of-range slice index in Go.
type MoveList struct {
	moves [maxMoves]MoveScore
	len   int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.len }

// IsEmpty reports whether the list holds no moves.
func (l *MoveList) IsEmpty() bool { return l.len == 0 }

// Push appends m to the end of the list.
func (l *MoveList) Push(m MoveScore) {
	l.moves[l.len] = m
	l.len++
}

// PushMove appends a move with the default zero score.
func (l *MoveList) PushMove(m Move) { l.Push(MoveScore{Move: m}) }

// Pop removes and returns the last move in the list. It reports false if
// the list is empty.
func (l *MoveList) Pop() (MoveScore, bool) {
	if l.len == 0 {
		return MoveScore{}, false
	}
	l.len--
	return l.moves[l.len], true
}

// Get returns the move at index i and reports false if i is out of range.
func (l *MoveList) Get(i int) (MoveScore, bool) {
	if i < 0 || i >= l.len {
		return MoveScore{}, false
	}
	return l.moves[i], true
}

// GetMove is a convenience wrapper around Get that discards the score.
func (l *MoveList) GetMove(i int) (Move, bool) {
	ms, ok := l.Get(i)
	return ms.Move, ok
}

// Append pushes every move from other onto the end of l.
func (l *MoveList) Append(other *MoveList) {
	for i := 0; i < other.len; i++ {
		l.Push(other.moves[i])
	}
}

// SortByScore performs an unstable sort of the list's moves by descending
// score, highest first.
func (l *MoveList) SortByScore() {
	sort.Slice(l.moves[:l.len], func(i, j int) bool {
		return l.moves[i].Score > l.moves[j].Score
	})
}

// Moves returns a slice view over the moves currently stored. The slice
// aliases the list's internal array and is only valid until the next call
// to Push or Pop.
func (l *MoveList) Moves() []MoveScore { return l.moves[:l.len] }
