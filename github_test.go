package loginwith_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loginwith/loginwith"
)

// fakeFetcher serves canned bodies by URL, or a global error.
type fakeFetcher struct {
	bodies map[string]string
	errs   map[string]error
	calls  []string
}

func (f *fakeFetcher) Get(_ context.Context, rawurl, _ string) ([]byte, error) {
	f.calls = append(f.calls, rawurl)
	if err, ok := f.errs[rawurl]; ok {
		return nil, err
	}
	body, ok := f.bodies[rawurl]
	if !ok {
		return nil, errors.New("fakeFetcher: no body for " + rawurl)
	}
	return []byte(body), nil
}

const (
	ghUserURL   = "https://api.github.com/user"
	ghEmailsURL = "https://api.github.com/user/emails"
)

func TestGitHub_FetchUser(t *testing.T) {
	t.Parallel()

	profileWithEmail := `{"id":42,"login":"octocat","name":"Octo Cat","email":"public@example.com","avatar_url":"https://example.com/octo.png"}`
	profileNoEmail := `{"id":42,"login":"octocat","name":"Octo Cat","email":"","avatar_url":"https://example.com/octo.png"}`

	t.Run("public email needs no second request", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{bodies: map[string]string{ghUserURL: profileWithEmail}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Equal(t, "public@example.com", user.Email)
		require.Equal(t, []string{ghUserURL}, f.calls)
	})

	t.Run("primary verified email preferred", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{bodies: map[string]string{
			ghUserURL: profileNoEmail,
			ghEmailsURL: `[
				{"email":"old@example.com","primary":false,"verified":true},
				{"email":"main@example.com","primary":true,"verified":true}
			]`,
		}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Equal(t, "main@example.com", user.Email)
	})

	t.Run("any verified email as fallback", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{bodies: map[string]string{
			ghUserURL: profileNoEmail,
			ghEmailsURL: `[
				{"email":"hidden@example.com","primary":true,"verified":false},
				{"email":"ok@example.com","primary":false,"verified":true}
			]`,
		}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Equal(t, "ok@example.com", user.Email)
	})

	t.Run("no verified email resolves empty", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{bodies: map[string]string{
			ghUserURL:   profileNoEmail,
			ghEmailsURL: `[{"email":"hidden@example.com","primary":true,"verified":false}]`,
		}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Empty(t, user.Email)
	})

	t.Run("email lookup failure is absorbed", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{
			bodies: map[string]string{ghUserURL: profileNoEmail},
			errs:   map[string]error{ghEmailsURL: errors.New("boom")},
		}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Empty(t, user.Email)
		require.Equal(t, []string{ghUserURL, ghEmailsURL}, f.calls)
	})

	t.Run("profile failure is not absorbed", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{errs: map[string]error{ghUserURL: errors.New("boom")}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.Error(t, err)
		require.Nil(t, user)
	})

	t.Run("numeric id is stringified and login backs the name", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{bodies: map[string]string{
			ghUserURL: `{"id":583231,"login":"octocat","name":"","email":"x@example.com"}`,
		}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Equal(t, "583231", user.ID)
		require.Equal(t, "octocat", user.Name)
		require.Equal(t, "github", user.Provider)
	})

	t.Run("raw profile is retained", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{bodies: map[string]string{ghUserURL: profileWithEmail}}

		user, err := loginwith.GitHub{}.FetchUser(context.Background(), f, "tok")
		require.NoError(t, err)
		require.Equal(t, "octocat", user.Raw["login"])
		require.Equal(t, float64(42), user.Raw["id"])
	})
}
