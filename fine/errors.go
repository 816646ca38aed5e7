package fine

import "errors"

// ErrUnknownTag is returned when the PTCL interpreter encounters a tag it
// does not recognize. The baseline spec leaves this undefined (ch.7);
// this implementation aborts rather than looping forever on a
// non-advancing cursor.
var ErrUnknownTag = errors.New("fine: unknown PTCL tag")

// ErrMalformedPTCL is returned when a command's cursor runs past the end
// of the PTCL buffer without encountering CmdEnd.
var ErrMalformedPTCL = errors.New("fine: command stream ran past buffer end without CmdEnd")
