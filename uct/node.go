// Package uct implements the UCT node arena and tree (spec.md C8+C9): a
// fixed-capacity, lock-free node store shared by every search worker.
// Grounded on Fuego's SgUctTree/SgUctNode
// (original_source/tags/VERSION_0_1_1/smartgame/SgUctTree.h) for the
// node layout and publication discipline, and on the pack's own MCTS
// trees (Elvenson-alphabeth/mcts/{node,tree}.go) for the Go-idiomatic
// arena shape: index-addressed nodes instead of pointer chasing.
package uct

import (
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/liushiwei/fuego/point"
)

// NullNode is the sentinel "no node" index, mirroring point.NullPoint.
const NullNode int32 = -1

// Ref identifies a node by which worker arena it lives in and its index
// within that arena: a child batch is always reserved from a single
// arena (spec.md §4.5 "createChildren"), so one arena id plus one
// starting index is enough to address any node reachable from the tree.
type Ref struct {
	Arena int32
	Index int32
}

// NullRef is the "no node" reference.
var NullRef = Ref{Arena: -1, Index: NullNode}

func packRef(r Ref) int64 {
	return int64(uint32(r.Arena))<<32 | int64(uint32(r.Index))
}

func unpackRef(packed int64) Ref {
	return Ref{Arena: int32(packed >> 32), Index: int32(packed)}
}

// sentinelSignature marks a freshly created child whose statistics have
// not yet been overwritten by a playout result or prior knowledge,
// matching SgUctNode's unspecified-signature convention (spec.md §4.5
// "createChildren": "all statistics zeroed except signature (= sentinel
// max-value)").
const sentinelSignature = ^uint64(0)

// stat is an atomically updated (sum, count) pair. The sum is kept as
// float32 bits in a uint32, following the pack's own bit-reinterpreted
// atomic float32 convention (Elvenson-alphabeth/mcts/search.go's
// minPSARatioChildren: math32.Float32bits plus atomic.StoreUint32/LoadUint32)
// rather than a mutex, matching spec.md §4.5/§8's float32 node-statistics
// requirement. Readers may observe a sum inconsistent with its count
// momentarily; spec.md §5 accepts this because sampled means over many
// visits are statistically robust, so the two fields are not combined
// for a single atomic update.
type stat struct {
	count uint64 // atomic
	sum   uint32 // atomic, stores math32.Float32bits
}

func (s *stat) add(value float32, count uint64) {
	atomic.AddUint64(&s.count, count)
	addFloat32(&s.sum, value)
}

func (s *stat) snapshot() (count uint64, sum float32) {
	count = atomic.LoadUint64(&s.count)
	sum = math32.Float32frombits(atomic.LoadUint32(&s.sum))
	return
}

func (s *stat) mean() float32 {
	count, sum := s.snapshot()
	if count == 0 {
		return 0
	}
	return sum / float32(count)
}

// addFloat32 atomically adds delta to the float32 stored at addr,
// retrying a compare-and-swap until it wins (no hardware float add, so
// this is the standard bit-pattern CAS loop).
func addFloat32(addr *uint32, delta float32) {
	for {
		old := atomic.LoadUint32(addr)
		newVal := math32.Float32frombits(old) + delta
		if atomic.CompareAndSwapUint32(addr, old, math32.Float32bits(newVal)) {
			return
		}
	}
}

// Node is one position in the UCT tree. Every field that can be
// written after construction is updated through sync/atomic; move is
// set once at construction and never written again, and signature is
// only rewritten through SetSignature.
type Node struct {
	move point.Point

	moveStats stat // (moveCount, valueSum)
	raveStats stat // RAVE accumulator
	posCount  uint64
	signature uint64

	// firstChildRef and nuChildren together publish expansion:
	// firstChildRef (packing the child batch's arena id and starting
	// index) is stored first, nuChildren last. Go's memory model gives
	// an atomic store observed by an atomic load the same
	// happens-before guarantee as release/acquire, so a reader that
	// loads nuChildren > 0 is guaranteed to see the firstChildRef store
	// that preceded it (spec.md §5 point 2).
	firstChildRef int64 // atomic, packed Ref
	nuChildren    int32 // atomic
}

func newNode(move point.Point) *Node {
	n := &Node{
		move:      move,
		signature: sentinelSignature,
	}
	atomic.StoreInt64(&n.firstChildRef, packRef(NullRef))
	return n
}

// Move returns the move this node represents.
func (n *Node) Move() point.Point { return n.move }

// HasChildren reports whether expansion has been published for n.
func (n *Node) HasChildren() bool { return atomic.LoadInt32(&n.nuChildren) > 0 }

// NumChildren returns the published child count (0 before expansion).
func (n *Node) NumChildren() int32 { return atomic.LoadInt32(&n.nuChildren) }

// FirstChild returns the arena+index reference of the first child. Only
// meaningful once HasChildren() is true.
func (n *Node) FirstChild() Ref { return unpackRef(atomic.LoadInt64(&n.firstChildRef)) }

// MoveCount is the number of times the move leading to this position
// was chosen (spec.md §4.5).
func (n *Node) MoveCount() uint64 { c, _ := n.moveStats.snapshot(); return c }

// Mean is the average game result backing this node's statistics.
func (n *Node) Mean() float32 { return n.moveStats.mean() }

// PosCount is the number of times this node was visited as a parent
// (sum of its children's MoveCount, absent prior-knowledge skew).
func (n *Node) PosCount() uint64 { return atomic.LoadUint64(&n.posCount) }

// RaveCount and RaveMean expose the RAVE accumulator.
func (n *Node) RaveCount() uint64 { c, _ := n.raveStats.snapshot(); return c }
func (n *Node) RaveMean() float32 { return n.raveStats.mean() }

// Signature is the sentinel set at construction time and never
// overwritten by this package; callers may reuse the field for their
// own disambiguation (e.g. position hash) if the sentinel is observed.
func (n *Node) Signature() uint64 { return atomic.LoadUint64(&n.signature) }

// SetSignature overwrites the sentinel with a caller-supplied value.
func (n *Node) SetSignature(v uint64) { atomic.StoreUint64(&n.signature, v) }

// copyStatsFrom overwrites n's own statistics (not its move, which was
// already set at construction) with a snapshot of old's, used by
// ApplyFilter to preserve a surviving child's accumulated statistics
// when it is relocated to a freshly reserved slot.
func (n *Node) copyStatsFrom(old *Node) {
	count, sum := old.moveStats.snapshot()
	atomic.StoreUint64(&n.moveStats.count, count)
	atomic.StoreUint32(&n.moveStats.sum, math32.Float32bits(sum))
	rCount, rSum := old.raveStats.snapshot()
	atomic.StoreUint64(&n.raveStats.count, rCount)
	atomic.StoreUint32(&n.raveStats.sum, math32.Float32bits(rSum))
	atomic.StoreUint64(&n.posCount, old.PosCount())
}

// addGameResult folds one simulation result into n's statistics
// (spec.md §4.5 "addGameResult").
func (n *Node) addGameResult(eval float32) { n.moveStats.add(eval, 1) }

// addPosCount bumps the parent visit count by delta.
func (n *Node) addPosCount(delta uint64) { atomic.AddUint64(&n.posCount, delta) }

// addRaveValue folds one RAVE sample into n's RAVE accumulator
// (spec.md §4.5 "addRaveValue").
func (n *Node) addRaveValue(eval float32) { n.raveStats.add(eval, 1) }

// initializeValue seeds n's statistics from prior knowledge: valueSum =
// v*count, moveCount = count (spec.md §4.5 "initializeValue").
func (n *Node) initializeValue(v float32, count uint64) {
	atomic.StoreUint64(&n.moveStats.count, count)
	atomic.StoreUint32(&n.moveStats.sum, math32.Float32bits(v*float32(count)))
}

// initializeRaveValue seeds n's RAVE accumulator the same way
// initializeValue seeds the move statistics (spec.md §4.5
// "initializeRaveValue").
func (n *Node) initializeRaveValue(v float32, count uint64) {
	atomic.StoreUint64(&n.raveStats.count, count)
	atomic.StoreUint32(&n.raveStats.sum, math32.Float32bits(v*float32(count)))
}

// claimingChildren is a transient nuChildren value meaning "a worker is
// publishing right now": still not HasChildren() (it is not > 0), but
// it blocks every other worker's claim attempt so only one writer ever
// touches firstChildRef.
const claimingChildren int32 = -1

// tryClaimExpansion reserves the right to publish n's children, the
// single point of contention when several workers reach an unexpanded
// node at once (spec.md §5 point 2). Only the caller for which this
// returns true may call publishChildren; every other caller must treat
// n as already being expanded by someone else and discard whatever it
// already reserved in its own arena.
func (n *Node) tryClaimExpansion() bool {
	return atomic.CompareAndSwapInt32(&n.nuChildren, 0, claimingChildren)
}

// publishChildren writes firstChildRef then nuChildren, in that order,
// completing the one ordered publication the tree performs (spec.md §5
// point 2). Must only be called by the single winner of
// tryClaimExpansion.
func (n *Node) publishChildren(ref Ref, nuChildren int32) {
	atomic.StoreInt64(&n.firstChildRef, packRef(ref))
	atomic.StoreInt32(&n.nuChildren, nuChildren)
}
