package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/PRSummoner/internal/config"
	"github.com/Tomas-vilte/PRSummoner/internal/domain/ports"
	"github.com/Tomas-vilte/PRSummoner/internal/i18n"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.SessionFactory = (*SessionFactory)(nil)

// SessionFactory intercambia las credenciales de la App por un token de
// instalación y devuelve la capacidad ligada a owner/repo. El intercambio
// ocurre una sola vez por entrega; los callers reciben el Client y no vuelven
// a tocar credenciales.
type SessionFactory struct {
	cfg   *config.Config
	trans *i18n.Translations
}

func NewSessionFactory(cfg *config.Config, trans *i18n.Translations) *SessionFactory {
	return &SessionFactory{cfg: cfg, trans: trans}
}

func (f *SessionFactory) Session(ctx context.Context, installationID int64, owner, repo string) (ports.PlatformClient, error) {
	httpClient, err := f.httpClient(ctx, installationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.trans.GetMessage("error.session", 0, map[string]interface{}{
			"InstallationID": installationID,
		}), err)
	}

	gh := github.NewClient(httpClient)
	return NewClient(gh, owner, repo, f.trans), nil
}

func (f *SessionFactory) httpClient(ctx context.Context, installationID int64) (*http.Client, error) {
	// Token estático para desarrollo local, sin App instalada.
	if f.cfg.GithubToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: f.cfg.GithubToken})
		return oauth2.NewClient(ctx, ts), nil
	}

	itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, f.cfg.GithubAppID, installationID, f.cfg.PrivateKeyPath)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: itr}, nil
}
