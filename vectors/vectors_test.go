package vectors

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestFixtures(t *testing.T) {
	for _, tc := range Fixtures() {
		t.Run(tc.Name, func(t *testing.T) {
			res := Run(tc)
			if !res.Passed() {
				t.Errorf("%s: state diff: %v\nram diff: %v\ncycles diff: %v\ninitial: %s", tc.Name, res.StateDiff, res.RAMDiff, res.CyclesDiff, spew.Sdump(tc.Initial))
			}
		})
	}
}
