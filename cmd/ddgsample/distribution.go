package main

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseDistribution parses a comma-separated list of fractions
// ("a/b" or a bare integer) such as "0,1" or "1/7,6/7" into a vector of
// rationals. The entries are returned as written, without normalizing
// them to sum to 1.
func parseDistribution(s string) ([]*big.Rat, error) {
	fields := strings.Split(s, ",")
	p := make([]*big.Rat, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		r, ok := new(big.Rat).SetString(f)
		if !ok {
			return nil, errors.Errorf("ddgsample: invalid fraction %q in distribution", f)
		}
		p[i] = r
	}
	return p, nil
}

// normalize scales a vector of non-negative weights (not necessarily
// summing to 1) down to a probability vector.
func normalize(weights []*big.Rat) []*big.Rat {
	sum := new(big.Rat)
	for _, w := range weights {
		sum.Add(sum, w)
	}
	p := make([]*big.Rat, len(weights))
	for i, w := range weights {
		p[i] = new(big.Rat).Quo(w, sum)
	}
	return p
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "ddgsample: invalid integer %q", s)
	}
	return n, nil
}
