package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/numberguess/internal/model"
)

func TestProjectCopiesVisibleFields(t *testing.T) {
	p := model.NewPlayer(8, "Ana", time.Now())
	p.Score = 20
	p.AttemptsLeft = 3
	p.SecretNumber = 61

	pub := Project(p, "higher")

	assert.Equal(t, PublicPlayer{
		ID:           8,
		Name:         "Ana",
		Score:        20,
		AttemptsLeft: 3,
		Clue:         "higher",
	}, pub)
}

func TestProjectHidesSecretAndTimestamps(t *testing.T) {
	p := model.NewPlayer(8, "Ana", time.Now())
	p.SecretNumber = 61
	p.Touch(time.Now())

	data, err := json.Marshal(Project(p, ""))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "secret_number")
	assert.NotContains(t, fields, "created_at")
	assert.NotContains(t, fields, "updated_at")
	assert.Equal(t, "", fields["clue"])
}
