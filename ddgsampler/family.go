// Package ddgsampler ties together rational, ddg, ky, rejection,
// interval, and alias into a single Construct entry point that builds
// any of the sampler families from a normalized probability vector.
package ddgsampler

import "github.com/pkg/errors"

// Family names one of the sampler constructions exercised by the
// statistical test suite: the three exact KY forms, their three
// approximate-KY (dyadic-approximation) counterparts, the three direct
// rejection forms (uniform, hash table, binary search) plus the three
// KY-over-augmented rejection forms, the two interval variants, and
// alias.
type Family int

const (
	KYEncoding Family = iota
	KYMatrix
	KYMatrixCached
	KYApproxEncoding
	KYApproxMatrix
	KYApproxMatrixCached
	RejectionUniform
	RejectionHash
	RejectionBinary
	RejectionEncoding
	RejectionMatrix
	RejectionMatrixCached
	IntervalBit
	IntervalCDF
	Alias
)

var familyNames = map[Family]string{
	KYEncoding:            "ky-encoding",
	KYMatrix:              "ky-matrix",
	KYMatrixCached:        "ky-matrix-cached",
	KYApproxEncoding:      "ky-approx-encoding",
	KYApproxMatrix:        "ky-approx-matrix",
	KYApproxMatrixCached:  "ky-approx-matrix-cached",
	RejectionUniform:      "rejection-uniform",
	RejectionHash:         "rejection-hash",
	RejectionBinary:       "rejection-binary",
	RejectionEncoding:     "rejection-encoding",
	RejectionMatrix:       "rejection-matrix",
	RejectionMatrixCached: "rejection-matrix-cached",
	IntervalBit:           "interval",
	IntervalCDF:           "interval-cdf",
	Alias:                 "alias",
}

// String returns the name used by ByName and by the CLI's --family flag.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// ByName dispatches a sampler family by its string name, for use as a
// CLI flag value or a config file entry.
func ByName(name string) (Family, error) {
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return 0, errors.Errorf("ddgsampler: unknown family %q", name)
}
