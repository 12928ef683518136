// cmd/seeddemo/main.go: Carga clientes y sitios turísticos de demostración
// en la API remota, autenticándose con una cuenta existente.
// Uso: SEED_EMAIL=... SEED_PASSWORD=... go run ./cmd/seeddemo
package main

import (
	"context"
	"os"
	"time"

	"exploraneiva/internal/config"
	"exploraneiva/internal/infra"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
	"exploraneiva/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var demoClients = []model.Client{
	{Status: true, DocumentType: model.DocumentTypeCC, DocumentNumber: "1075234567", FullName: "María Fernanda Díaz",
		BirthDate: "1992-08-21", Email: "mfdiaz@example.com", Phone: "3124567890"},
	{Status: true, DocumentType: model.DocumentTypeCE, DocumentNumber: "5567123", FullName: "Jean Pierre Lambert",
		BirthDate: "1980-02-11", Email: "jplambert@example.com", Phone: "3019876543"},
	{Status: true, DocumentType: model.DocumentTypePP, DocumentNumber: "48812345", FullName: "Sofía Cárdenas Vega",
		BirthDate: "2001-11-30", Email: "sofia.cardenas@example.com", Phone: "3157778899"},
}

var demoSites = []model.TouristSite{
	{Status: true, Title: "Desierto de la Tatacoa", Type: model.SiteTypePlace, Location: "Villavieja, Huila",
		Description: "Bosque seco tropical con observatorio astronómico.", Schedule: "Todos los días",
		ImageURL: "https://example.com/tatacoa.jpg", Price: decimal.NewFromInt(80000), Contact: "3100000001"},
	{Status: true, Title: "Parque Arqueológico de San Agustín", Type: model.SiteTypePark, Location: "San Agustín, Huila",
		Description: "Estatuaria precolombina, patrimonio de la humanidad.", Schedule: "8:00 - 16:00",
		ImageURL: "https://example.com/san-agustin.jpg", Price: decimal.NewFromInt(50000), Contact: "3100000002"},
	{Status: true, Title: "Museo Arqueológico Regional", Type: model.SiteTypeMuseum, Location: "Neiva, Huila",
		Description: "Colección de piezas de las culturas del alto Magdalena.", Schedule: "9:00 - 17:00",
		ImageURL: "https://example.com/museo.jpg", Price: decimal.Zero, Contact: "3100000003"},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	email, password := os.Getenv("SEED_EMAIL"), os.Getenv("SEED_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("SEED_EMAIL y SEED_PASSWORD son requeridos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gw := infra.NewGateway(cfg.APIBaseURL, cfg.APITimeout)
	var auth model.AuthToken
	if err := gw.Post(ctx, "/auth/login", map[string]string{"email": email, "password": password}, &auth); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}
	ctx = session.NewContext(ctx, session.Session{UserID: auth.User.ID, Email: auth.User.Email, APIToken: auth.Token})

	clients := service.NewClientService(gw)
	for _, c := range demoClients {
		saved, err := clients.Create(ctx, c)
		if err != nil {
			log.Error().Err(err).Str("client", c.FullName).Msg("client not created")
			continue
		}
		log.Info().Int64("id", saved.ID).Str("client", saved.FullName).Msg("client created")
	}

	sites := service.NewTouristSiteService(gw)
	for _, s := range demoSites {
		saved, err := sites.Create(ctx, s)
		if err != nil {
			log.Error().Err(err).Str("site", s.Title).Msg("site not created")
			continue
		}
		log.Info().Int64("id", saved.ID).Str("site", saved.Title).Msg("site created")
	}
}
