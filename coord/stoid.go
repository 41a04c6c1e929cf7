// SPDX-License-Identifier: MIT

package coord

import (
	"strconv"

	"github.com/vg-lib/seqgraph/core"
)

// Stoid resolves a decimal string external id by parsing it; Assign
// is a no-op since the mapping is purely syntactic.
type Stoid struct{}

func (Stoid) Resolve(external string) core.ID {
	n, err := strconv.ParseInt(external, 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return core.ID(n)
}

func (Stoid) Assign(string, core.ID) {}
