package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	vitoprogrock "github.com/vito/progrock"
	"go.trai.ch/primes/internal/adapters/telemetry/progrock"
)

func TestRecorder_RecordAndComplete(t *testing.T) {
	rec := progrock.NewRecorder(vitoprogrock.NewTape())

	_, vtx := rec.Record(context.Background(), "sieve to 1000")
	require.NotNil(t, vtx)

	vtx.Complete(nil)
	require.NoError(t, rec.Close())
}
