// Package align implements global pairwise alignment with linear gap and
// mismatch penalties (the Needleman-Wunsch family).
//
// Algorithm outline:
//  1. Let n = len(a), m = len(b). Allocate flat (n+1)x(m+1) score and move tables.
//  2. Initialise the edges: S[i][0] = i*gap, S[0][j] = j*gap.
//  3. For each interior cell, row by row:
//     match  = S[i-1][j-1] + (0 if a[i-1] == b[j-1] else mismatch)
//     delete = S[i-1][j]   + gap
//     insert = S[i][j-1]   + gap
//     S[i][j] = max(match, delete, insert), ties resolved Match > Delete > Insert.
//  4. Walk back from (n, m) following the recorded moves until an edge is hit,
//     then pad with the symbols left on the other sequence.
//  5. score = S[n][m].
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m), released when the call returns
//
// The engine has no error outcomes: every pair of finite sequences, including
// empty ones, yields a record. Calls share no state and may run concurrently.
package align
