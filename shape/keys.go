package shape

// Setting keys shared by the built-in generators.
const (
	// KeyInsetFraction shrinks each cell by a fraction of half the cell
	// size, per edge. Clamped to [0, 1].
	KeyInsetFraction = "insetFraction"
	// KeyInsetGeneratorName selects the inset generator ("fixed" or
	// "random"). Takes precedence over KeyUseRandomInset.
	KeyInsetGeneratorName = "insetGeneratorName"
	// KeyUseRandomInset is the deprecated boolean form of
	// KeyInsetGeneratorName. It is still read and written so that older
	// documents keep working.
	KeyUseRandomInset = "useRandomInset"
	// KeyRotationFraction rotates each cell by a fraction of a full turn.
	// Clamped to [0, 1].
	KeyRotationFraction = "rotationFraction"
	// KeyUseRandomRotation makes each cell sample its own rotation within
	// [0, KeyRotationFraction].
	KeyUseRandomRotation = "useRandomRotation"
	// KeyCornerRadiusFraction rounds corners by a fraction of the largest
	// possible radius. Clamped to [0, 1].
	KeyCornerRadiusFraction = "cornerRadiusFraction"
	// KeyHasInnerCorners fills concave corners between connected cells.
	KeyHasInnerCorners = "hasInnerCorners"
	// KeyInset is the absolute inset, in user units, of the run-merging
	// generators.
	KeyInset = "inset"
)
