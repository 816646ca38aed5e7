package scenebuf

// Path is a path's tile-space bounding box and the base index into the
// global Tiles array for its own tile rectangle (spec ch.3, "Path").
// Invariant: X0 <= X1 and Y0 <= Y1; the path's tile row stride is X1-X0.
type Path struct {
	X0, Y0, X1, Y1 int

	// Tiles is the base index into the global Tiles array for this
	// path's tile rectangle: tile (x, y) within the bbox, x in
	// [X0,X1), y in [Y0,Y1), lives at Tiles[Tiles_base + (y-Y0)*Stride() + (x-X0)].
	Tiles int
}

// Stride returns the path's own tile-row stride, X1-X0.
func (p Path) Stride() int { return p.X1 - p.X0 }

// Tile is one tile's winding state (spec ch.3, "Tile"): the head of its
// segment list and the backdrop winding number carried in from the left
// edge. A tile is empty iff Segments == 0 && Backdrop == 0.
type Tile struct {
	// Segments is the index into the global Segments array of this
	// tile's first segment, or 0 if the tile has none.
	Segments int32

	// Backdrop is the signed winding number at the tile's left edge.
	Backdrop int32
}

// Empty reports whether the tile contributes nothing: no segments and a
// zero backdrop.
func (t Tile) Empty() bool { return t.Segments == 0 && t.Backdrop == 0 }

// Segment is one line edge clipped to a single tile (spec ch.3,
// "Segment"): an intrusive singly-linked list node, chained through Next
// (0 terminates the list, so valid segment indices are 1-based).
type Segment struct {
	OriginX, OriginY float32
	DeltaX, DeltaY   float32

	// YEdge carries the extra contribution of a half-open vertical edge
	// (see fillPath in package fine).
	YEdge float32

	// Next is the index of the next segment in this tile's list, or 0 to
	// terminate.
	Next int32
}

// Tiles is the flat global tile grid, indexed via Path.Tiles and
// Path.Stride (and, within coarse, via the bin-relative base/stride
// arithmetic of spec ch.4.1).
type Tiles []Tile

// Segments is the flat global segment pool; index 0 is reserved as the
// "no segment" sentinel, so real segments start at index 1.
type Segments []Segment

// Walk calls fn for every segment in the list headed at head, in list
// order, until the list terminates (Next == 0).
func (s Segments) Walk(head int32, fn func(Segment)) {
	for ix := head; ix != 0; {
		seg := s[ix]
		fn(seg)
		ix = seg.Next
	}
}
