package webhook

import (
	"encoding/json"
	"fmt"

	domainerrors "github.com/Tomas-vilte/PRSummoner/internal/domain/errors"
	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
)

// Acciones de PR que disparan el pipeline de ciclo de vida.
const (
	actionOpened      = "opened"
	actionSynchronize = "synchronize"
)

// Classify clasifica un payload crudo de webhook en exactamente una variante
// de InboundEvent. Las reglas se evalúan en orden y gana la primera:
//
//  1. Si hay un comentario con cuerpo no vacío, es EventComment, sin importar
//     qué otros campos estén presentes.
//  2. Si hay un pull_request y la acción es opened o synchronize, es
//     EventPullRequest.
//  3. Cualquier otra cosa es EventUnhandled.
//
// Es clasificación pura: no hace I/O ni efectos. Un payload que matchea una
// variante pero no trae los campos que la identifican produce un
// ClassificationError.
func Classify(payload []byte) (models.InboundEvent, error) {
	var p Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.InboundEvent{}, fmt.Errorf("no se pudo decodificar el payload: %w", err)
	}

	if p.Comment != nil && p.Comment.Body != "" {
		return classifyComment(p)
	}

	if p.PullRequest != nil && (p.Action == actionOpened || p.Action == actionSynchronize) {
		return classifyPullRequest(p)
	}

	return models.InboundEvent{Kind: models.EventUnhandled}, nil
}

func classifyComment(p Payload) (models.InboundEvent, error) {
	owner, repo, installation, err := identity(p)
	if err != nil {
		return models.InboundEvent{}, err
	}

	// Los comentarios llegan como issue_comment: el número vive en issue,
	// incluso cuando el issue es un PR.
	number := 0
	switch {
	case p.Issue != nil && p.Issue.Number > 0:
		number = p.Issue.Number
	case p.PullRequest != nil && p.PullRequest.Number > 0:
		number = p.PullRequest.Number
	default:
		return models.InboundEvent{}, domainerrors.NewClassificationError("issue.number")
	}

	return models.InboundEvent{
		Kind:           models.EventComment,
		Owner:          owner,
		Repo:           repo,
		Number:         number,
		InstallationID: installation,
		CommentBody:    p.Comment.Body,
	}, nil
}

func classifyPullRequest(p Payload) (models.InboundEvent, error) {
	owner, repo, installation, err := identity(p)
	if err != nil {
		return models.InboundEvent{}, err
	}

	if p.PullRequest.Number <= 0 {
		return models.InboundEvent{}, domainerrors.NewClassificationError("pull_request.number")
	}

	return models.InboundEvent{
		Kind:           models.EventPullRequest,
		Owner:          owner,
		Repo:           repo,
		Number:         p.PullRequest.Number,
		InstallationID: installation,
	}, nil
}

func identity(p Payload) (owner, repo string, installation int64, err error) {
	if p.Repository == nil || p.Repository.Owner.Login == "" {
		return "", "", 0, domainerrors.NewClassificationError("repository.owner.login")
	}
	if p.Repository.Name == "" {
		return "", "", 0, domainerrors.NewClassificationError("repository.name")
	}
	if p.Installation == nil || p.Installation.ID == 0 {
		return "", "", 0, domainerrors.NewClassificationError("installation.id")
	}
	return p.Repository.Owner.Login, p.Repository.Name, p.Installation.ID, nil
}
