package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/PRSummoner/internal/api"
	cfg "github.com/Tomas-vilte/PRSummoner/internal/config"
	"github.com/Tomas-vilte/PRSummoner/internal/i18n"
	"github.com/Tomas-vilte/PRSummoner/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/PRSummoner/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/PRSummoner/internal/logger"
	"github.com/Tomas-vilte/PRSummoner/internal/services"
	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "pr-summoner",
		Usage: "Bot de webhooks que analiza Pull Requests con IA",
		Commands: []*cli.Command{
			newServeCommand(),
		},
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Levanta el servidor de webhooks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Ruta al archivo de configuración JSON",
			},
			&cli.StringFlag{
				Name:  "locales",
				Value: "locales",
				Usage: "Directorio con archivos de traducción",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
			},
			&cli.BoolFlag{
				Name: "debug",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Log coloreado para consola",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"), cmd.Bool("pretty"))

			configPath := cmd.String("config")
			if configPath == "" {
				homeDir, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
				}
				configPath = homeDir
			}

			conf, err := cfg.LoadConfig(configPath)
			if err != nil {
				return err
			}

			translations, err := i18n.NewTranslations(conf.Language, cmd.String("locales"))
			if err != nil {
				return fmt.Errorf("error al cargar las traducciones: %w", err)
			}

			completer, err := gemini.NewGeminiCompleter(ctx, conf.GeminiAPIKey, translations)
			if err != nil {
				return err
			}
			defer func() {
				if err := completer.Close(); err != nil {
					logger.Warn(ctx, "no se pudo cerrar el cliente de IA", "error", err)
				}
			}()

			sessions := github.NewSessionFactory(conf, translations)
			reviews := services.NewReviewService(sessions, completer, translations, conf.Language)
			handler := api.NewWebhookHandler(reviews)

			logger.Info(ctx, "servidor escuchando", "port", conf.Port)
			return api.NewServer(conf.Port, handler).Start()
		},
	}
}
