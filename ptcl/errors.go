package ptcl

import "errors"

// ErrBumpOverflow is returned by Buffer.OverflowErr once a Cursor has
// needed another dynamic block after the buffer's dynamic region was
// exhausted (the Bump allocator records this as Overflowed).
var ErrBumpOverflow = errors.New("ptcl: bump allocator overflow")
