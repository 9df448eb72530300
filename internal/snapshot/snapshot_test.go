package snapshot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sparrowlang/sparrow/internal/lexer"
	"github.com/sparrowlang/sparrow/internal/snapshot"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tokens, errs := lexer.New(`var greeting = "hi"; print greeting;`).Scan()
	require.Empty(t, errs)

	data, err := snapshot.Encode(tokens)
	require.NoError(t, err)

	decoded, err := snapshot.Decode(data)
	require.NoError(t, err)

	want := snapshot.FromTokens(tokens)
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	tokens, errs := lexer.New(`1 + 2 * 3;`).Scan()
	require.Empty(t, errs)

	first, err := snapshot.Encode(tokens)
	require.NoError(t, err)
	second, err := snapshot.Encode(tokens)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
