// Package hashing provides position keys and duplicate position detection.
package hashing

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobristSeed fixes the random table so keys are stable across runs.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

var (
	zobristPieces [2][chess.NumKinds][numSquares]uint64
	zobristBlack  uint64
)

func init() {
	state := zobristSeed
	for c := range zobristPieces {
		for k := range zobristPieces[c] {
			for sq := range zobristPieces[c][k] {
				zobristPieces[c][k][sq] = splitmix64(&state)
			}
		}
	}
	zobristBlack = splitmix64(&state)
}

func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist key of the piece placement and
// side to move.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristPieces[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}

// WeakHash is a cheap secondary key: a weighted sum of the occupied squares.
// Two positions with the same Zobrist key but a different weak hash are
// a Zobrist collision.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			code := uint32(p.Kind) + uint32(p.Colour)*uint32(chess.NumKinds)
			hash += code * uint32(row*chess.BoardSize+col+1)
		}
	}
	return hash + uint32(board.ToMove)
}

// PositionSignature identifies a position.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores signatures by Zobrist key
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// stored is the number of signatures in hashTable
	stored int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// Signature computes the signature of board.
func Signature(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd reports whether board was seen before and records it if not.
// Once the detector is full, new positions are checked but not recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := Signature(board)
	if slices.Contains(d.hashTable[sig.Hash], sig) {
		d.duplicateCount++
		return true
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}
