package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/kvstore"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against kv and returns stdout and stderr.
func run(t *testing.T, kv domain.KeyValueStore, stdin string, args ...string) (string, string, error) {
	t.Helper()
	clock := testutils.FixedClock()
	open := func(ctx context.Context) (*portfolio.Store, func() error, error) {
		return portfolio.Open(ctx, kv, portfolio.WithClock(clock)), func() error { return nil }, nil
	}
	root := NewRootCmd(open)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func reopen(kv domain.KeyValueStore) *portfolio.Store {
	return portfolio.Open(context.Background(), kv)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, kvstore.NewMemoryStore(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "Folio CLI v0.1.0\n", out)
}

func TestBlocksCommands(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	out, _, err := run(t, kv, "", "blocks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Minha Missão")
	assert.Contains(t, out, "4x1")

	out, _, err = run(t, kv, "", "blocks", "add", "link")
	require.NoError(t, err)
	assert.Contains(t, out, "Added link block")
	blocks := reopen(kv).Blocks()
	require.Len(t, blocks, 6)
	added := blocks[5].ID

	_, _, err = run(t, kv, "", "blocks", "add", "video")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	out, _, err = run(t, kv, "", "blocks", "move", "1", "earlier")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing moved")

	_, _, err = run(t, kv, "", "blocks", "move", added, "earlier")
	require.NoError(t, err)
	assert.Equal(t, added, reopen(kv).Blocks()[4].ID)

	out, _, err = run(t, kv, "", "blocks", "resize", added, "height", "grow")
	require.NoError(t, err)
	assert.Contains(t, out, "is now 1x2")

	_, _, err = run(t, kv, "", "blocks", "resize", "nope", "height", "grow")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlocksDelete_Prompts(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	out, errOut, err := run(t, kv, "n\n", "blocks", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, portfolio.PromptDeleteBlock+" [y/N]")
	assert.Contains(t, out, "Cancelled")
	assert.Len(t, reopen(kv).Blocks(), 5)

	_, _, err = run(t, kv, "", "blocks", "delete", "2")
	require.NoError(t, err)
	assert.Len(t, reopen(kv).Blocks(), 5, "EOF counts as no")

	out, _, err = run(t, kv, "y\n", "blocks", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted block 2")
	assert.Len(t, reopen(kv).Blocks(), 4)

	out, errOut, err = run(t, kv, "", "blocks", "delete", "3", "--yes")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Deleted block 3")
}

func TestProfileCommands(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	out, _, err := run(t, kv, "", "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "instagramHandle")
	assert.Contains(t, out, "rjefferxz")

	_, _, err = run(t, kv, "", "profile", "set", "role", "Diretor")
	require.NoError(t, err)
	assert.Equal(t, "Diretor", reopen(kv).Profile().Role)

	_, _, err = run(t, kv, "", "profile", "set", "age", "30")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestVisitorsCommands(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	out, _, err := run(t, kv, "", "visitors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sem novos registros.")

	v, err := reopen(kv).RecordVisitor(context.Background(), "ana")
	require.NoError(t, err)

	out, _, err = run(t, kv, "", "visitors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "@ana")

	out, _, err = run(t, kv, "", "visitors", "delete", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "No visitor missing")

	out, _, err = run(t, kv, "", "visitors", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Len(t, reopen(kv).Visitors(), 1)

	out, _, err = run(t, kv, "", "visitors", "delete", v.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted visitor")
	assert.Empty(t, reopen(kv).Visitors())

	_, err = reopen(kv).RecordVisitor(context.Background(), "bia")
	require.NoError(t, err)
	out, _, err = run(t, kv, "sim\n", "visitors", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Visitor log cleared")
	assert.Empty(t, reopen(kv).Visitors())
}

func TestExport(t *testing.T) {
	out, _, err := run(t, kvstore.NewMemoryStore(), "", "export")
	require.NoError(t, err)

	var doc domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Blocks, 5)
	assert.Equal(t, "Robinho", doc.Profile.Name)
}
