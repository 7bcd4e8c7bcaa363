// Package perft implements the performance-test traversal used to validate
// the move generator: recursively enumerate legal moves to a given depth
// and count the reached leaf nodes.
package perft

import "github.com/talyrond/chesscore"

// Count walks the move-generation tree of strictly legal moves rooted at
// state to the given depth and returns the number of leaf nodes reached.
// Depth 0 counts the root itself as a single leaf, matching the standard
// perft definition.
func Count(gen *chess.MoveGenerator, state chess.BoardState, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := gen.GenerateLegalMoves(state)
	if depth == 1 {
		return moves.Len()
	}

	nodes := 0
	for i := 0; i < moves.Len(); i++ {
		ms, _ := moves.Get(i)
		next := state
		next.MakeMove(ms.Move)
		nodes += Count(gen, next, depth-1)
	}
	return nodes
}

// Divide returns, for each legal move at the root, the perft count of the
// subtree reached by playing that move to depth-1. It is the standard
// "perft divide" debugging aid for locating the branch responsible for a
// node-count mismatch.
func Divide(gen *chess.MoveGenerator, state chess.BoardState, depth int) map[string]int {
	moves := gen.GenerateLegalMoves(state)
	results := make(map[string]int, moves.Len())

	for i := 0; i < moves.Len(); i++ {
		ms, _ := moves.Get(i)
		next := state
		next.MakeMove(ms.Move)
		var count int
		if depth <= 1 {
			count = 1
		} else {
			count = Count(gen, next, depth-1)
		}
		results[ms.Move.String()] = count
	}
	return results
}
