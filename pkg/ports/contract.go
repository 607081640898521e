package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractResult(sum int) *domain.Result {
	return &domain.Result{
		InitialTape: "1+1",
		Transitions: []domain.TraceEntry{
			{State: domain.Q0, Head: 1, Read: '1', Write: '1', Direction: domain.Right, NextState: domain.Q0, TapeSnapshot: "1+1"},
		},
		FinalTape:  "1+1",
		Steps:      1,
		Status:     domain.StatusAccepted,
		FinalState: domain.Q5,
		Head:       3,
		Sum:        sum,
		MaxSteps:   10,
	}
}

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		res := contractResult(2)

		err := store.Save(ctx, key, res)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, res, loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Loaded copy is isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, contractResult(2)))

		first, err := store.Load(ctx, key)
		require.NoError(t, err)
		first.Transitions[0].Head = 99
		first.Sum = 99

		second, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Transitions[0].Head)
		assert.Equal(t, 2, second.Sum)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, contractResult(2)))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		k1 := key + "-1"
		k2 := key + "-2"
		_ = store.Save(ctx, k1, contractResult(1))
		_ = store.Save(ctx, k2, contractResult(2))

		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
	})
}
