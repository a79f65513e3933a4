// Package generator defines shared constants used by the kind generators and
// the dispatcher, so limits and probabilities are named in one place.
package generator

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry point for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate entry point.
	MethodGenerate = "Generate"
	// MethodBatch is the canonical name for the Batch and BatchKind entry points.
	MethodBatch = "Batch"
)

//-----------------------------------------------------------------------------
// Configuration Defaults
//-----------------------------------------------------------------------------

// DefaultMaximumDepth is the recursion budget of a root call.
const DefaultMaximumDepth = 5

// DefaultMaximumLength caps the members of a composite and the code units of
// a string.
const DefaultMaximumLength = 10

//-----------------------------------------------------------------------------
// Probabilities and Ranges
//-----------------------------------------------------------------------------

// ReuseProbability is the chance that a nested "any kind" request returns a
// previously generated value instead of a new one.
const ReuseProbability = 0.25

// CodeUnitLimit is the exclusive upper bound of a generated code unit.
const CodeUnitLimit = 1 << 16
