package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/numberguess/internal/api"
	"github.com/mcoot/numberguess/internal/cli"
	"github.com/mcoot/numberguess/internal/factory"
	"github.com/mcoot/numberguess/internal/services/game"
)

func startServer(t *testing.T) (*httptest.Server, *factory.TestApp) {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		PlayerService: app.PlayerService,
		BotService:    app.BotService,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, app
}

func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", serverURL, "--output", "json"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func runPlayer(t *testing.T, serverURL string, args ...string) cli.Player {
	t.Helper()

	output, err := run(t, serverURL, args...)
	require.NoError(t, err, "output: %s", output)

	var p cli.Player
	require.NoError(t, json.Unmarshal([]byte(output), &p))
	return p
}

func TestHealthCommand(t *testing.T) {
	srv, _ := startServer(t)

	output, err := run(t, srv.URL, "health")
	require.NoError(t, err)

	var result cli.HealthResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestPlayerCommands(t *testing.T) {
	srv, _ := startServer(t)

	created := runPlayer(t, srv.URL, "player", "create", "--name", "Ana")
	assert.Equal(t, uint64(0), created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, uint64(7), created.AttemptsLeft)

	got := runPlayer(t, srv.URL, "player", "get", "0")
	assert.Equal(t, created, got)

	scored := runPlayer(t, srv.URL, "player", "score", "0", "--score", "25")
	assert.Equal(t, uint64(25), scored.Score)

	removed := runPlayer(t, srv.URL, "player", "delete", "0")
	assert.Equal(t, uint64(25), removed.Score)

	_, err := run(t, srv.URL, "player", "get", "0")
	var apiErr *cli.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "PLAYER_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "A player with id=0 not found", apiErr.Message)
}

func TestGuessCommand(t *testing.T) {
	srv, app := startServer(t)
	app.MockRandom.QueueIntn(40)

	runPlayer(t, srv.URL, "player", "create", "--name", "Ana")

	miss := runPlayer(t, srv.URL, "guess", "0", "10")
	assert.Equal(t, game.ClueHigher, miss.Clue)
	assert.Equal(t, uint64(6), miss.AttemptsLeft)

	win := runPlayer(t, srv.URL, "guess", "0", "40")
	assert.Equal(t, game.ClueWon, win.Clue)
	assert.Equal(t, uint64(10), win.Score)
}

func TestArgumentValidation(t *testing.T) {
	srv, _ := startServer(t)

	_, err := run(t, srv.URL, "player", "get", "abc")
	assert.Error(t, err)

	_, err = run(t, srv.URL, "guess", "0", "-3")
	assert.Error(t, err)

	_, err = run(t, srv.URL, "guess", "0")
	assert.Error(t, err)
}

func TestTextOutput(t *testing.T) {
	srv, _ := startServer(t)

	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server", srv.URL, "player", "create", "--name", "Ana"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Player: Ana (0)\nScore: 0\nAttempts left: 7\n", out.String())
}

func TestAutoplayCommand(t *testing.T) {
	srv, app := startServer(t)
	app.MockRandom.QueueIntn(50)

	runPlayer(t, srv.URL, "player", "create", "--name", "Ana")

	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server", srv.URL, "autoplay", "0"})
	require.NoError(t, cmd.Execute())

	want := "1. guessed 50: won\nPlayer: Ana (0)\nScore: 10\nAttempts left: 7\nClue: " + game.ClueWon + "\n"
	assert.Equal(t, want, out.String())
}
