package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	"github.com/KirkDiggler/sheet-api/internal/entities/dice"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/repositories/session"
)

func TestInMemoryRepository(t *testing.T) {
	repo := session.NewInMemory(nil)
	ctx := context.Background()

	sess := &session.Session{
		Owner:     testOwner,
		Character: character.Default(),
	}
	sess.Rolls.Add(dice.Roll{ID: "roll_1", Kind: dice.KindD6, Result: 4})

	_, err := repo.Save(ctx, session.SaveInput{Session: sess})
	require.NoError(t, err)

	got, err := repo.Get(ctx, session.GetInput{Owner: testOwner})
	require.NoError(t, err)
	assert.Equal(t, character.Default(), got.Session.Character)
	require.Len(t, got.Session.Rolls, 1)

	_, err = repo.Delete(ctx, session.DeleteInput{Owner: testOwner})
	require.NoError(t, err)

	_, err = repo.Get(ctx, session.GetInput{Owner: testOwner})
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemoryRepositoryCopies(t *testing.T) {
	repo := session.NewInMemory(nil)
	ctx := context.Background()

	sess := &session.Session{Owner: testOwner, Character: character.Default()}
	_, err := repo.Save(ctx, session.SaveInput{Session: sess})
	require.NoError(t, err)

	// Mutating the caller's copy after save must not affect the store
	sess.Character.Name = "Mutated"

	got, err := repo.Get(ctx, session.GetInput{Owner: testOwner})
	require.NoError(t, err)
	assert.Equal(t, "Ralina Biggins", got.Session.Character.Name)

	// Mutating a returned copy must not affect the store either
	got.Session.Character.Name = "Also Mutated"

	again, err := repo.Get(ctx, session.GetInput{Owner: testOwner})
	require.NoError(t, err)
	assert.Equal(t, "Ralina Biggins", again.Session.Character.Name)
}
