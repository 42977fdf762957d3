package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzformation/algopascal/internal/i18n"
	"github.com/dzformation/algopascal/internal/store"
	"github.com/dzformation/algopascal/internal/testutil"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	catalog, err := i18n.Load()
	require.NoError(t, err)
	users, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = users.Close() })
	return NewEngine(catalog, users, testutil.NewTestLogger(t)), users
}

func TestEngine_StartNewUserAsksForLanguage(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	reply, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "amina")
	assert.Contains(t, reply.Buttons, "English")
	assert.Contains(t, reply.Buttons, "Français")
	assert.Contains(t, reply.Buttons, "العربية")
}

func TestEngine_StartKnownUserShowsMenu(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	reply, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Welcome back")
	assert.Contains(t, reply.Buttons, "Convert Number")
}

func TestEngine_LanguageChoicePersists(t *testing.T) {
	e, users := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)

	reply, err := e.Handle(ctx, 1, "amina", "en", "Français")
	require.NoError(t, err)
	assert.Contains(t, reply.Buttons, "Conversion d'un nombre")

	u, err := users.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "fr", u.Language)

	// Subsequent replies come back in French regardless of hints.
	reply, err = e.Handle(ctx, 1, "amina", "en", "/cancel")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "annulée")
}

func TestEngine_ConvertNumberFlow(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "English")
	require.NoError(t, err)

	reply, err := e.Handle(ctx, 1, "amina", "en", "Convert Number")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "decimal number")

	reply, err = e.Handle(ctx, 1, "amina", "en", "10")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Binary (1/0): 1010")
	assert.Contains(t, reply.Text, "Hexadecimal (0/15): A")
}

func TestEngine_InvalidNumberKeepsState(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "English")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "Convert Number")
	require.NoError(t, err)

	reply, err := e.Handle(ctx, 1, "amina", "en", "not a number")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Could not parse")

	// Still awaiting a number.
	reply, err = e.Handle(ctx, 1, "amina", "en", "-42")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Binary (1/0): -101010")
}

func TestEngine_DetectFlow(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "English")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "Detect Number")
	require.NoError(t, err)

	reply, err := e.Handle(ctx, 1, "amina", "en", "0b1010")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Detected base: Binary (1/0)")
	assert.Contains(t, reply.Text, "Decimal (0/9): 10")
}

func TestEngine_ExpressionFlow(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "English")
	require.NoError(t, err)
	_, err = e.Handle(ctx, 1, "amina", "en", "Algo & Pascal")
	require.NoError(t, err)

	reply, err := e.Handle(ctx, 1, "amina", "en", "SOM = A + B")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Algo Calcul;")
	assert.Contains(t, reply.Text, "program Calcul;")
	assert.Contains(t, reply.Text, "SOM := A + B;")
}

func TestEngine_AdminOverview(t *testing.T) {
	e, users := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Handle(ctx, 1, "amina", "en", "/start")
	require.NoError(t, err)

	reply, err := e.Handle(ctx, 1, "amina", "en", "/users")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "restricted")

	require.NoError(t, users.AddAdmin(ctx, 1))
	reply, err = e.Handle(ctx, 1, "amina", "en", "/users")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Registered users: 1")
	assert.Contains(t, reply.Text, "@amina")
}
