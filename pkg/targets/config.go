package targets

// Config controls classification and aggregation behavior.
//
// The zero value is a usable configuration: exact-match tolerance,
// hidden and deleted categories excluded, no minimum assignment.
type Config struct {
	// ToleranceMilliunits is the width of the "on target" band. A
	// category whose variance is within ±ToleranceMilliunits of its
	// monthly requirement is considered on target.
	ToleranceMilliunits int64

	// IncludeHiddenCategories includes hidden categories in aggregation
	// and ranking
	IncludeHiddenCategories bool

	// IncludeDeletedCategories includes deleted categories in aggregation
	// and ranking
	IncludeDeletedCategories bool

	// MinimumAssignmentThreshold excludes categories with less than this
	// amount assigned from aggregation and ranking
	MinimumAssignmentThreshold int64
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{}
}
