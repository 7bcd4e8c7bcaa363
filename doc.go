/*
Package chess implements a bitboard-based chess position representation, a
pseudo-legal move generator with make-and-test legality filtering, and the
FEN codec used to build positions from text.

The package is deliberately synchronous and allocation-light: a [BitBoards]
value is 96 bytes, a [BoardState] only slightly larger, and move generation
never allocates beyond the fixed-capacity [MoveList]. Callers that need
concurrent traversal (perft workers, engine search) are expected to clone a
[BoardState] per goroutine rather than share one.
*/
package chess
