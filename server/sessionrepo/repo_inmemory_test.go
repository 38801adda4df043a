package sessionrepo_test

import (
	"testing"
	"time"

	"github.com/larkapps/holistics-embed/server/sessionrepo"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo(t *testing.T) {
	repo := sessionrepo.NewInMemoryRepo()

	session := sessionrepo.Session{
		ID:        "sid-1",
		CreatedAt: time.Now(),
		Values:    map[string]string{"k": "v"},
	}

	t.Run("upsert and get", func(t *testing.T) {
		require.NoError(t, repo.Upsert("sid-1", session))

		got, err := repo.Get("sid-1")
		require.NoError(t, err)
		require.Equal(t, "sid-1", got.ID)
		require.Equal(t, "v", got.Values["k"])
	})

	t.Run("get unknown session", func(t *testing.T) {
		_, err := repo.Get("missing")
		require.Error(t, err)
	})

	t.Run("empty session id rejected", func(t *testing.T) {
		require.Error(t, repo.Upsert("", session))
		_, err := repo.Get("")
		require.Error(t, err)
		require.Error(t, repo.Delete(""))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("sid-1"))
		_, err := repo.Get("sid-1")
		require.Error(t, err)

		// deleting again is not an error
		require.NoError(t, repo.Delete("sid-1"))
	})
}
