package memory

import (
	"context"
	"testing"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	loaded, err := store.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	state := domain.ReportState{Report: domain.Report{
		ID:         "r-1",
		Operations: []domain.Operation{{ID: "op-1", Name: "Raporty"}},
	}}
	require.NoError(t, store.Save(ctx, "ns", state))

	state.Report.Operations[0].Name = "changed after save"

	loaded, err = store.Load(ctx, "ns")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Raporty", loaded.Report.Operations[0].Name)

	loaded.Report.Operations[0].Name = "changed after load"
	again, err := store.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "Raporty", again.Report.Operations[0].Name)

	other, err := store.Load(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, other)
}
