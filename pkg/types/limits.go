package types

// ============================================================================
// Parse Limits Constants
// ============================================================================
// These constants bound how much work parsing an untrusted blob may do.
// Real PKIX/CMS objects stay far below the defaults.

const (
	// MaxTreeDepthPractical is the default nesting limit. Certificates and
	// signed objects rarely exceed 16 levels.
	MaxTreeDepthPractical = 256

	// MaxTreeDepthDeep allows pathological but legal nesting.
	MaxTreeDepthDeep = 4096

	// MaxTreeDepthShallow is a conservative limit for constrained callers.
	MaxTreeDepthShallow = 64

	// MaxNodesDefault caps the number of TLV nodes produced by one parse.
	MaxNodesDefault = 1 << 20

	// MaxNodesShallow is the node cap for constrained callers.
	MaxNodesShallow = 1 << 14

	// MaxInputSize64MB is the default maximum blob size.
	MaxInputSize64MB = 64 << 20

	// MaxInputSize1GB is a relaxed maximum blob size.
	MaxInputSize1GB = 1 << 30

	// MaxInputSize1MB is a conservative maximum blob size.
	MaxInputSize1MB = 1 << 20
)

// Limits defines constraints applied while parsing a blob into a tree, to
// prevent resource exhaustion on hostile input.
type Limits struct {
	// MaxTreeDepth is the maximum nesting depth of constructed or
	// encapsulating nodes.
	MaxTreeDepth int

	// MaxNodes is the maximum number of nodes in one tree.
	MaxNodes int

	// MaxInputSize is the maximum size of the decoded blob in bytes.
	MaxInputSize int
}

// DefaultLimits returns limits that accept every real-world DER object.
func DefaultLimits() Limits {
	return Limits{
		MaxTreeDepth: MaxTreeDepthPractical,
		MaxNodes:     MaxNodesDefault,
		MaxInputSize: MaxInputSize64MB,
	}
}

// RelaxedLimits returns more permissive limits for fuzzing corpora and
// deliberately malformed inputs.
func RelaxedLimits() Limits {
	return Limits{
		MaxTreeDepth: MaxTreeDepthDeep,
		MaxNodes:     MaxNodesDefault * 4,
		MaxInputSize: MaxInputSize1GB,
	}
}

// StrictLimits returns conservative limits for constrained environments.
func StrictLimits() Limits {
	return Limits{
		MaxTreeDepth: MaxTreeDepthShallow,
		MaxNodes:     MaxNodesShallow,
		MaxInputSize: MaxInputSize1MB,
	}
}
