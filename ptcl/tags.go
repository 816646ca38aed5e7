package ptcl

// Command tags (spec ch.6, "PTCL wire format"). Values match the upstream
// Vello PTCL encoding this core was adapted from, except CmdJump, which
// reuses tag 11 (the upstream's end-clip tag) since clipping is out of
// scope for this core and the jump indirection needs a stable slot.
const (
	CmdEnd    uint32 = 0  // terminates a tile's command stream
	CmdFill   uint32 = 1  // read (seg_ptr, backdrop); compute analytic area coverage
	CmdStroke uint32 = 2  // read (seg_ptr, half_width); compute distance-field coverage
	CmdSolid  uint32 = 3  // tile fully covered; area = 1 everywhere
	CmdColor  uint32 = 5  // read rgba; composite source-over
	CmdJump   uint32 = 11 // read absolute word offset; continue reading there
)

// Payload widths in words, tag included (spec ch.6).
const (
	widthEnd    = 1
	widthFill   = 3
	widthStroke = 3
	widthSolid  = 1
	widthColor  = 2
	widthJump   = 2
)
