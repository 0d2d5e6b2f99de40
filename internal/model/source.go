package model

// Path represents a file system path.
type Path string

// MutantListSource describes where the mutant list lives and which column
// holds the mutant identifiers. Columns are 0-based.
type MutantListSource struct {
	Path         Path
	MutantColumn int
}

// KillMatrixSource describes a kill matrix table: one row per (mutant, test)
// pair with a kill status cell. Columns are 0-based.
type KillMatrixSource struct {
	Path         Path
	MutantColumn int
	TestColumn   int
	StatusColumn int
}

// LoadOptions controls how tabular inputs are read.
type LoadOptions struct {
	// Sanitize replaces empty cells with "0" before use.
	Sanitize bool
	// UseCache reuses previously sanitized copies when the raw file is unchanged.
	UseCache bool
	// CacheDir is where sanitized copies are kept.
	CacheDir Path
}
