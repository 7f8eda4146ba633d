package webhook

import (
	"errors"
	"testing"

	domainerrors "github.com/Tomas-vilte/PRSummoner/internal/domain/errors"
	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_CommentEvent(t *testing.T) {
	// Arrange
	payload := []byte(`{
		"action": "created",
		"comment": {"body": "/summon summary"},
		"issue": {"number": 7},
		"repository": {"name": "demo", "owner": {"login": "tomas"}},
		"installation": {"id": 42}
	}`)

	// Act
	event, err := Classify(payload)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.EventComment, event.Kind)
	assert.Equal(t, "tomas", event.Owner)
	assert.Equal(t, "demo", event.Repo)
	assert.Equal(t, 7, event.Number)
	assert.Equal(t, int64(42), event.InstallationID)
	assert.Equal(t, "/summon summary", event.CommentBody)
}

func TestClassify_CommentWinsOverPullRequest(t *testing.T) {
	// Un payload con comentario no vacío es EventComment aunque también
	// traiga un pull_request con acción de ciclo de vida.
	payload := []byte(`{
		"action": "opened",
		"comment": {"body": "buen cambio"},
		"pull_request": {"number": 3},
		"repository": {"name": "demo", "owner": {"login": "tomas"}},
		"installation": {"id": 42}
	}`)

	event, err := Classify(payload)

	require.NoError(t, err)
	assert.Equal(t, models.EventComment, event.Kind)
	assert.Equal(t, 3, event.Number)
}

func TestClassify_PullRequestEvent(t *testing.T) {
	for _, action := range []string{"opened", "synchronize"} {
		t.Run(action, func(t *testing.T) {
			payload := []byte(`{
				"action": "` + action + `",
				"pull_request": {"number": 12, "diff_url": "https://example.com/12.diff"},
				"repository": {"name": "demo", "owner": {"login": "tomas"}},
				"installation": {"id": 42}
			}`)

			event, err := Classify(payload)

			require.NoError(t, err)
			assert.Equal(t, models.EventPullRequest, event.Kind)
			assert.Equal(t, 12, event.Number)
			assert.Equal(t, int64(42), event.InstallationID)
		})
	}
}

func TestClassify_UnhandledEvents(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "acción que no interesa",
			payload: `{"action": "closed", "pull_request": {"number": 12}, "repository": {"name": "demo", "owner": {"login": "tomas"}}, "installation": {"id": 42}}`,
		},
		{
			name:    "sin pull_request ni comentario",
			payload: `{"action": "opened"}`,
		},
		{
			name:    "comentario con cuerpo vacío",
			payload: `{"comment": {"body": ""}, "action": "created"}`,
		},
		{
			name:    "payload vacío",
			payload: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := Classify([]byte(tt.payload))

			require.NoError(t, err)
			assert.Equal(t, models.EventUnhandled, event.Kind)
		})
	}
}

func TestClassify_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "comentario sin repositorio",
			payload: `{"comment": {"body": "hola"}, "issue": {"number": 7}, "installation": {"id": 42}}`,
		},
		{
			name:    "comentario sin número de issue",
			payload: `{"comment": {"body": "hola"}, "repository": {"name": "demo", "owner": {"login": "tomas"}}, "installation": {"id": 42}}`,
		},
		{
			name:    "PR sin instalación",
			payload: `{"action": "opened", "pull_request": {"number": 12}, "repository": {"name": "demo", "owner": {"login": "tomas"}}}`,
		},
		{
			name:    "PR sin número",
			payload: `{"action": "opened", "pull_request": {}, "repository": {"name": "demo", "owner": {"login": "tomas"}}, "installation": {"id": 42}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify([]byte(tt.payload))

			require.Error(t, err)
			var classErr *domainerrors.ClassificationError
			assert.True(t, errors.As(err, &classErr))
		})
	}
}

func TestClassify_InvalidJSON(t *testing.T) {
	_, err := Classify([]byte(`{no es json`))

	assert.Error(t, err)
}
