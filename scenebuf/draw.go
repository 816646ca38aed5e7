package scenebuf

// DrawTag identifies the kind of draw object a scene word describes.
type DrawTag uint32

// Draw tag values. DrawTagNop marks a lane past the end of the current
// window during coarse's streaming merge; DrawTagColor is the only
// renderable draw object this core implements (solid-color fill/stroke).
const (
	DrawTagNop   DrawTag = 0
	DrawTagColor DrawTag = 0x44
)

// DrawMonoid is the per-draw-object descriptor produced upstream (spec
// ch.3, "DrawMonoid"): which path the draw object renders, and where its
// scene/info auxiliary data lives.
type DrawMonoid struct {
	// PathIx is the index into the Paths array for this draw object.
	PathIx int

	// SceneOffset is added to Config.DrawDataBase to locate this draw
	// object's data words in Scene (e.g. packed RGBA for a color fill).
	SceneOffset int

	// InfoOffset indexes the Info array for this draw object's auxiliary
	// float data (e.g. line width, bitcast to a u32 word).
	InfoOffset int
}

// Scene is the opaque, word-addressed stream holding draw tags (at
// Config.DrawTagBase) and per-draw-object data (at Config.DrawDataBase,
// offset by DrawMonoid.SceneOffset).
type Scene []uint32

// DrawTag reads the draw tag for draw object drawobjIx, or DrawTagNop if
// drawobjIx is out of range (mirroring the coarse kernel's convention for
// lanes past the end of the current window).
func (s Scene) DrawTag(cfg Config, drawobjIx int) DrawTag {
	if drawobjIx < 0 || drawobjIx >= cfg.NDrawObj {
		return DrawTagNop
	}
	return DrawTag(s[cfg.DrawTagBase+drawobjIx])
}

// ColorRGBA reads the packed RGBA word for a DrawTagColor draw object,
// per spec ch.4.1: scene[config.drawdata_base + draw_monoid.scene_offset].
func (s Scene) ColorRGBA(cfg Config, dm DrawMonoid) uint32 {
	return s[cfg.DrawDataBase+dm.SceneOffset]
}

// Info is the per-draw-object auxiliary float buffer; a draw object's
// line width lives at Info[DrawMonoid.InfoOffset], bitcast from u32.
type Info []uint32

// LineWidth reads and bitcasts the line-width word for dm. A negative
// value means "fill"; a non-negative value is a stroke half-width source
// (see ptcl.WritePath).
func (i Info) LineWidth(dm DrawMonoid) float32 {
	return float32FromBits(i[dm.InfoOffset])
}
