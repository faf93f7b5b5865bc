package scene

// kernel is the mutable transform state of a frame. Linked frames
// share one kernel cell by pointer.
type kernel struct {
	translation Vec
	rotation    Rotation
	scaling     float64
}

// Frame is a coordinate frame: a transform kernel, an optional
// reference frame it is expressed relative to, and an optional
// constraint filtering changes. A frame either owns its kernel or,
// after LinkTo, shares another frame's.
type Frame struct {
	cell       *kernel
	link       *Frame
	backlinks  []*Frame
	ref        *Frame
	constraint Constraint
}

// NewFrame returns a world-referenced frame with an identity transform.
func NewFrame() *Frame {
	return &Frame{cell: &kernel{rotation: IdentityRotation(), scaling: 1}}
}

// Translation returns the frame's translation relative to its
// reference frame.
func (f *Frame) Translation() Vec { return f.cell.translation }

// Rotation returns the frame's rotation relative to its reference
// frame.
func (f *Frame) Rotation() Rotation { return f.cell.rotation }

// Scaling returns the frame's scale factor.
func (f *Frame) Scaling() float64 { return f.cell.scaling }

// SetTranslation replaces the translation without constraint
// filtering.
func (f *Frame) SetTranslation(t Vec) { f.cell.translation = t }

// SetRotation replaces the rotation without constraint filtering.
func (f *Frame) SetRotation(r Rotation) { f.cell.rotation = r }

// SetScaling replaces the scale factor.
func (f *Frame) SetScaling(s float64) { f.cell.scaling = s }

// Constraint returns the attached constraint, or nil.
func (f *Frame) Constraint() Constraint { return f.constraint }

// SetConstraint attaches a constraint. Pass nil to remove it.
func (f *Frame) SetConstraint(c Constraint) { f.constraint = c }

// Translate applies t after constraint filtering and returns the
// delta actually applied.
func (f *Frame) Translate(t Vec) Vec {
	if f.constraint != nil {
		t = f.constraint.FilterTranslation(t, f)
	}
	f.cell.translation = f.cell.translation.Add(t)
	return t
}

// Rotate composes r onto the frame's rotation after constraint
// filtering and returns the rotation actually applied.
func (f *Frame) Rotate(r Rotation) Rotation {
	if f.constraint != nil {
		r = f.constraint.FilterRotation(r, f)
	}
	f.cell.rotation = f.cell.rotation.Compose(r)
	return r
}

// Scale multiplies the frame's scale factor and returns the factor
// applied.
func (f *Frame) Scale(k float64) float64 {
	if k == 0 {
		return 1
	}
	f.cell.scaling *= k
	return k
}

// ReferenceFrame returns the frame this one is expressed relative to,
// or nil for a world-referenced frame.
func (f *Frame) ReferenceFrame() *Frame { return f.ref }

// SetReferenceFrame re-parents the frame. It refuses with ErrFrameLoop
// when ref is the frame itself or a descendant of it, leaving the
// prior reference unchanged.
func (f *Frame) SetReferenceFrame(ref *Frame) error {
	for a := ref; a != nil; a = a.ref {
		if a == f {
			return ErrFrameLoop
		}
	}
	f.ref = ref
	return nil
}

// Position returns the frame's position in world coordinates,
// composed through the reference chain.
func (f *Frame) Position() Vec {
	if f.ref == nil {
		return f.cell.translation
	}
	local := f.cell.translation.Scale(f.ref.Scaling())
	return f.ref.Position().Add(f.ref.Orientation().Rotate(local))
}

// Orientation returns the frame's orientation in world coordinates.
func (f *Frame) Orientation() Rotation {
	if f.ref == nil {
		return f.cell.rotation
	}
	return f.ref.Orientation().Compose(f.cell.rotation)
}

// LinkTo shares src's transform kernel: after a successful call every
// change through either frame is visible through both. It refuses when
// the frames are the same, when f already participates in a link, or
// when src already links f's kernel; prior state is unchanged on
// failure.
func (f *Frame) LinkTo(src *Frame) error {
	if src == nil || src == f {
		return ErrFrameLoop
	}
	if f.link != nil || len(f.backlinks) > 0 {
		return ErrLinked
	}
	if src.link == f {
		return ErrFrameLoop
	}
	f.cell = src.cell
	f.link = src
	src.backlinks = append(src.backlinks, f)
	return nil
}

// Unlink detaches the frame from a shared kernel, keeping a private
// copy of the current transform. A frame that is not linked is left
// untouched.
func (f *Frame) Unlink() {
	if f.link == nil {
		return
	}
	src := f.link
	for i, b := range src.backlinks {
		if b == f {
			src.backlinks = append(src.backlinks[:i], src.backlinks[i+1:]...)
			break
		}
	}
	owned := *f.cell
	f.cell = &owned
	f.link = nil
}

// IsLinked reports whether the frame shares its kernel with another.
func (f *Frame) IsLinked() bool {
	return f.link != nil || len(f.backlinks) > 0
}

// LinkedWith reports whether f and other share a kernel.
func (f *Frame) LinkedWith(other *Frame) bool {
	return other != nil && f.cell == other.cell && f != other
}
