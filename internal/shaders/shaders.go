// Package shaders embeds this core's reference WGSL sources. They are
// not compiled into a dispatchable pipeline anywhere in this module
// (device binding is out of scope, per hostbind's doc comment); they
// exist so hostbind's bind-group layouts have a concrete shader they
// describe, and so naga.Compile can validate them as WGSL.
package shaders

import _ "embed"

//go:embed coarse.wgsl
var CoarseWGSL string

//go:embed fine.wgsl
var FineWGSL string
