package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCommand_Table(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("options")
	require.NoError(t, err)
	assert.Contains(t, stdout, "genres")
	assert.Contains(t, stdout, "All Genres")
	assert.Contains(t, stdout, "authors")
	assert.Contains(t, stdout, "All Authors")
	assert.Contains(t, stdout, "Ursula K. Le Guin")
}

func TestOptionsCommand_GenresJSONKeepsOrder(t *testing.T) {
	home := setupHome(t)
	data := writeFile(t, home, "catalog.yaml", smallDataset)

	stdout, _, err := executeCommand("options", "genres", "--data", data, "--json")
	require.NoError(t, err)

	var payload map[string][]optionJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, []optionJSON{
		{ID: "any", Label: "All Genres"},
		{ID: "g1", Label: "Science Fiction"},
		{ID: "g2", Label: "Drama"},
	}, payload["genres"])
	assert.NotContains(t, payload, "authors")
}

func TestOptionsCommand_RejectsUnknownKind(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("options", "shelves")
	require.Error(t, err)
}
