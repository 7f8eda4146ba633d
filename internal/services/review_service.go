package services

import (
	"context"

	domainerrors "github.com/Tomas-vilte/PRSummoner/internal/domain/errors"
	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
	"github.com/Tomas-vilte/PRSummoner/internal/domain/ports"
	"github.com/Tomas-vilte/PRSummoner/internal/i18n"
	"github.com/Tomas-vilte/PRSummoner/internal/infrastructure/ai"
	"github.com/Tomas-vilte/PRSummoner/internal/logger"
	"github.com/Tomas-vilte/PRSummoner/internal/services/command"
	"github.com/Tomas-vilte/PRSummoner/internal/services/extract"
	"github.com/Tomas-vilte/PRSummoner/internal/services/routing"
)

// ReviewService es el pipeline completo de una entrega: abre la sesión,
// genera el análisis, extrae los campos y aplica las escrituras en orden.
// No guarda estado entre entregas.
type ReviewService struct {
	sessions ports.SessionFactory
	aiClient ports.Completer
	selector *routing.ModelSelector
	trans    *i18n.Translations
	lang     string
}

func NewReviewService(sessions ports.SessionFactory, aiClient ports.Completer, trans *i18n.Translations, lang string) *ReviewService {
	return &ReviewService{
		sessions: sessions,
		aiClient: aiClient,
		selector: routing.NewModelSelector(),
		trans:    trans,
		lang:     lang,
	}
}

// HandleEvent despacha un evento ya clasificado por el pipeline que le
// corresponde. El error de retorno es solo para el log del boundary: la
// entrega se reconoce igual.
func (s *ReviewService) HandleEvent(ctx context.Context, event models.InboundEvent) error {
	ctx = logger.With(ctx, "owner", event.Owner, "repo", event.Repo, "number", event.Number)

	switch event.Kind {
	case models.EventPullRequest:
		// La tarea implícita del ciclo de vida es summary.
		return s.runCommand(ctx, event, models.CommandSummary, true)
	case models.EventComment:
		return s.handleComment(ctx, event)
	default:
		return nil
	}
}

func (s *ReviewService) handleComment(ctx context.Context, event models.InboundEvent) error {
	invocation := command.Parse(event.CommentBody)

	switch invocation.Kind {
	case models.InvocationNone:
		// Un comentario cualquiera: cero escrituras.
		return nil

	case models.InvocationUsage:
		client, err := s.sessions.Session(ctx, event.InstallationID, event.Owner, event.Repo)
		if err != nil {
			return err
		}
		usage := s.trans.GetMessage("comment.usage", 0, nil)
		return client.PostComment(ctx, event.Number, usage)

	default:
		if invocation.Command == models.CommandUnknown {
			client, err := s.sessions.Session(ctx, event.InstallationID, event.Owner, event.Repo)
			if err != nil {
				return err
			}
			msg := s.trans.GetMessage("comment.unknown_command", 0, map[string]interface{}{
				"Token": invocation.RawToken,
			})
			return client.PostComment(ctx, event.Number, msg)
		}
		return s.runCommand(ctx, event, invocation.Command, false)
	}
}

// runCommand ejecuta las cuatro etapas para un comando concreto. Un fallo de
// generación omite todos los efectos: no hay nada que publicar.
func (s *ReviewService) runCommand(ctx context.Context, event models.InboundEvent, cmd models.Command, lifecycle bool) error {
	client, err := s.sessions.Session(ctx, event.InstallationID, event.Owner, event.Repo)
	if err != nil {
		return err
	}

	diff, err := client.FetchDiff(ctx, event.Number)
	if err != nil {
		return err
	}

	profile := s.selector.ProfileFor(cmd)
	logger.Debug(ctx, "modelo seleccionado",
		"command", cmd.String(),
		"model", profile.Model,
		"rationale", s.trans.GetMessage(s.selector.GetRationale(profile), 0, nil))

	prompt := ai.BuildPrompt(s.lang, cmd, diff)
	text, err := s.aiClient.Complete(ctx, profile, prompt)
	if err != nil {
		return domainerrors.NewGenerationError(cmd.String(), err)
	}

	plan := s.buildPlan(text, cmd, lifecycle)
	s.executePlan(ctx, client, event.Number, plan)
	return nil
}

// buildPlan arma la secuencia de escrituras según el contexto que disparó el
// comando. La extracción solo corre para los pasos que el contexto permite;
// título y etiquetas son independientes entre sí.
func (s *ReviewService) buildPlan(text string, cmd models.Command, lifecycle bool) models.ActionPlan {
	plan := models.ActionPlan{
		Comment: s.trans.GetMessage("comment.wrapper", 0, map[string]interface{}{
			"Body": text,
		}),
	}

	if lifecycle || cmd == models.CommandLabels || cmd == models.CommandSummary {
		plan.Labels = extract.Labels(text)
	}
	if lifecycle || cmd == models.CommandSummary || cmd == models.CommandTitle {
		plan.Title, plan.HasTitle = extract.Title(text)
	}

	return plan
}

// executePlan aplica las escrituras en orden fijo: comentario, etiquetas,
// título. Los pasos están aislados: un fallo se loguea y no aborta a los
// siguientes. El comentario es el entregable mínimo; título y etiquetas son
// mejoras.
func (s *ReviewService) executePlan(ctx context.Context, client ports.PlatformClient, number int, plan models.ActionPlan) {
	if err := client.PostComment(ctx, number, plan.Comment); err != nil {
		logger.Error(ctx, "no se pudo publicar el comentario", domainerrors.NewPlatformActionError("post_comment", err))
	}

	if len(plan.Labels) > 0 {
		if err := client.AddLabels(ctx, number, plan.Labels); err != nil {
			logger.Error(ctx, "no se pudieron agregar las etiquetas", domainerrors.NewPlatformActionError("add_labels", err))
		}
	}

	if plan.HasTitle {
		if err := client.SetTitle(ctx, number, plan.Title); err != nil {
			logger.Error(ctx, "no se pudo actualizar el título", domainerrors.NewPlatformActionError("set_title", err))
		}
	}
}
