package ports

import (
	"context"
	"testing"
	"time"

	"github.com/roost-chat/roost/pkg/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunComponentStoreContract runs a suite of tests verifying that a
// ComponentStore implementation adheres to the interface contract.
// TTL expiry semantics are adapter-specific and tested per adapter.
func RunComponentStoreContract(t *testing.T, store ComponentStore) {
	ctx := context.Background()
	customID := "contract-" + time.Now().Format("20060102150405.000")

	record := PendingModal{
		CustomID: customID,
		Data: component.ModalCallbackData{
			CustomID: customID,
			Title:    "Contract",
			Components: []component.ActionRow{
				component.NewActionRow(component.TextInput{
					Type:     component.TypeTextInput,
					CustomID: "field",
					Style:    component.TextInputShort,
					Label:    "Field",
				}),
			},
		},
		Persistent: true,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, customID, record, 0)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, customID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.CustomID, loaded.CustomID)
		assert.Equal(t, record.Data.Title, loaded.Data.Title)
		assert.True(t, loaded.Persistent)
		require.Len(t, loaded.Data.Components, 1)
		require.Len(t, loaded.Data.Components[0].Components, 1)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		updated := record
		updated.Data.Title = "Renamed"
		require.NoError(t, store.Save(ctx, customID, updated, 0))

		loaded, err := store.Load(ctx, customID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", loaded.Data.Title)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+customID)
		assert.ErrorIs(t, err, ErrComponentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, customID, record, 0))
		require.NoError(t, store.Delete(ctx, customID))

		_, err := store.Load(ctx, customID)
		assert.ErrorIs(t, err, ErrComponentNotFound, "Load after Delete should return ErrComponentNotFound")

		assert.NoError(t, store.Delete(ctx, customID), "deleting an unknown ID should not error")
	})

	t.Run("List", func(t *testing.T) {
		other := record
		other.CustomID = customID + "-b"
		require.NoError(t, store.Save(ctx, customID, record, 0))
		require.NoError(t, store.Save(ctx, other.CustomID, other, 0))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, customID)
		assert.Contains(t, ids, other.CustomID)

		require.NoError(t, store.Delete(ctx, customID))
		require.NoError(t, store.Delete(ctx, other.CustomID))
	})
}
