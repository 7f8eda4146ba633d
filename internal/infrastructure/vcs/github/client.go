package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/ports"
	"github.com/Tomas-vilte/PRSummoner/internal/i18n"
	"github.com/google/go-github/v80/github"
)

var _ ports.PlatformClient = (*Client)(nil)

// Interfaces angostas sobre los services de go-github, para poder inyectar
// mocks en los tests.
type PullRequestsService interface {
	Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error)
	GetRaw(ctx context.Context, owner, repo string, number int, opts github.RawOptions) (string, *github.Response, error)
}

type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

// Client es la capacidad ligada a un repositorio: publica comentarios,
// agrega etiquetas, edita títulos y trae el diff. Las credenciales quedan
// detrás del http.Client con el que se construyó.
type Client struct {
	prService     PullRequestsService
	issuesService IssuesService
	owner         string
	repo          string
	trans         *i18n.Translations
}

func NewClient(gh *github.Client, owner, repo string, trans *i18n.Translations) *Client {
	return &Client{
		prService:     gh.PullRequests,
		issuesService: gh.Issues,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// NewClientWithServices permite inyectar los services directamente (tests).
func NewClientWithServices(prService PullRequestsService, issuesService IssuesService, owner, repo string, trans *i18n.Translations) *Client {
	return &Client{
		prService:     prService,
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func (c *Client) PostComment(ctx context.Context, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}

	_, _, err := c.issuesService.CreateComment(ctx, c.owner, c.repo, number, comment)
	if err != nil {
		return fmt.Errorf("%s: %w", c.trans.GetMessage("error.post_comment", 0, map[string]interface{}{
			"pr_number": number,
		}), err)
	}
	return nil
}

func (c *Client) AddLabels(ctx context.Context, number int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	_, _, err := c.issuesService.AddLabelsToIssue(ctx, c.owner, c.repo, number, labels)
	if err != nil {
		return fmt.Errorf("%s: %w", c.trans.GetMessage("error.add_labels", 0, map[string]interface{}{
			"pr_number": number,
		}), err)
	}
	return nil
}

func (c *Client) SetTitle(ctx context.Context, number int, title string) error {
	pr := &github.PullRequest{Title: github.Ptr(title)}

	_, resp, err := c.prService.Edit(ctx, c.owner, c.repo, number, pr)
	if err != nil {
		// 403: la instalación no tiene permiso de escritura sobre el PR.
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%s\n\n%s",
				c.trans.GetMessage("error.insufficient_permissions", 0, map[string]interface{}{
					"pr_number": number,
					"owner":     c.owner,
					"repo":      c.repo,
				}),
				c.trans.GetMessage("error.token_scopes_help", 0, nil))
		}
		return fmt.Errorf("%s: %w", c.trans.GetMessage("error.set_title", 0, map[string]interface{}{
			"pr_number": number,
		}), err)
	}
	return nil
}

func (c *Client) FetchDiff(ctx context.Context, number int) (string, error) {
	diff, _, err := c.prService.GetRaw(ctx, c.owner, c.repo, number, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.trans.GetMessage("error.get_diff", 0, map[string]interface{}{
			"pr_number": number,
		}), err)
	}
	return diff, nil
}
