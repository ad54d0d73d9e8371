package testutil

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/shapeval/internal/value"
)

// Snapshot is the golden-file form of a Value: its canonical rendering
// and its width-suffixed rendering, one per line.
func Snapshot(v value.Value) []byte {
	var sb strings.Builder
	sb.WriteString(v.String())
	sb.WriteByte('\n')
	sb.WriteString(value.Typed(v))
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// AssertGolden compares v's Snapshot against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
func AssertGolden(t *testing.T, name string, v value.Value) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(v))
}
