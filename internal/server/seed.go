package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// SeedDemo loads a small demo dataset on an empty database: a handful of
// players, today's three puzzles, and a default admin. Idempotent: does
// nothing once any puzzle exists.
func SeedDemo(ctx context.Context, logger *slog.Logger, store Store, admin AdminStore) error {
	existing, err := store.ListPuzzles(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range demoPlayers() {
		if err := store.UpsertPlayer(ctx, p); err != nil {
			return err
		}
	}

	today := time.Now().UTC().Format("2006-01-02")
	for kind, data := range map[string]any{
		KindCareer: demoCareerPuzzle(),
		KindGrid:   demoGridPuzzle(),
		KindLineup: demoLineupPuzzle(),
	} {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if _, err := store.CreatePuzzle(ctx, kind, today, raw); err != nil {
			return err
		}
	}

	// bcrypt of "admin"; replace before exposing the admin surface.
	const demoHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err := admin.CreateAdmin(ctx, "admin@example.com", demoHash); err != nil {
		return err
	}

	logger.Info("demo data seeded", "date", today)
	return nil
}

func demoPlayers() []PlayerImport {
	return []PlayerImport{
		{
			ID: "vinicius-junior", Name: "Vinícius Júnior",
			NationalityCodes: []string{"BR"}, BirthYear: 2000, PositionCategory: "forward",
			Clubs: []string{"Flamengo", "Real Madrid"},
			Stats: map[string]int{"goals": 110, "champions_league_titles": 2, "la_liga_titles": 3},
		},
		{
			ID: "neymar", Name: "Neymar",
			NationalityCodes: []string{"BR"}, BirthYear: 1992, PositionCategory: "forward",
			Clubs: []string{"Santos", "Barcelona", "Paris Saint-Germain", "Al-Hilal"},
			Stats: map[string]int{"goals": 300, "champions_league_titles": 1, "la_liga_titles": 2},
		},
		{
			ID: "luka-modric", Name: "Luka Modrić",
			NationalityCodes: []string{"HR"}, BirthYear: 1985, PositionCategory: "midfielder",
			Clubs: []string{"Dinamo Zagreb", "Tottenham Hotspur", "Real Madrid"},
			Stats: map[string]int{"goals": 80, "champions_league_titles": 6, "ballon_dor": 1},
		},
		{
			ID: "mohamed-salah", Name: "Mohamed Salah",
			NationalityCodes: []string{"EG"}, BirthYear: 1992, PositionCategory: "forward",
			Clubs: []string{"Basel", "Chelsea", "Fiorentina", "Roma", "Liverpool"},
			Stats: map[string]int{"goals": 250, "champions_league_titles": 1, "premier_league_titles": 2},
		},
		{
			ID: "virgil-van-dijk", Name: "Virgil van Dijk",
			NationalityCodes: []string{"NL"}, BirthYear: 1991, PositionCategory: "defender",
			Clubs: []string{"Groningen", "Celtic", "Southampton", "Liverpool"},
			Stats: map[string]int{"goals": 40, "champions_league_titles": 1, "premier_league_titles": 2},
		},
		{
			ID: "kevin-de-bruyne", Name: "Kevin De Bruyne",
			NationalityCodes: []string{"BE"}, BirthYear: 1991, PositionCategory: "midfielder",
			Clubs: []string{"Genk", "Chelsea", "Wolfsburg", "Manchester City", "Napoli"},
			Stats: map[string]int{"goals": 100, "champions_league_titles": 1, "premier_league_titles": 6},
		},
		{
			ID: "zlatan-ibrahimovic", Name: "Zlatan Ibrahimović",
			NationalityCodes: []string{"SE"}, BirthYear: 1981, PositionCategory: "forward",
			Clubs: []string{"Malmö FF", "Ajax", "Juventus", "Inter Milan", "Barcelona", "AC Milan", "Paris Saint-Germain", "Manchester United", "LA Galaxy"},
			Stats: map[string]int{"goals": 570, "la_liga_titles": 1},
		},
		{
			ID: "kylian-mbappe", Name: "Kylian Mbappé",
			NationalityCodes: []string{"FR"}, BirthYear: 1998, PositionCategory: "forward",
			Clubs: []string{"Monaco", "Paris Saint-Germain", "Real Madrid"},
			Stats: map[string]int{"goals": 350, "world_cup_titles": 1, "la_liga_titles": 1},
		},
	}
}

func demoCareerPuzzle() map[string]any {
	return map[string]any{
		"answer": "Zlatan Ibrahimović",
		"careerSteps": []map[string]any{
			{"kind": "club", "label": "Malmö FF", "period": "1999-2001", "endYear": 2001},
			{"kind": "club", "label": "Ajax", "period": "2001-2004", "endYear": 2004},
			{"kind": "club", "label": "Juventus", "period": "2004-2006", "endYear": 2006},
			{"kind": "club", "label": "Inter Milan", "period": "2006-2009", "endYear": 2009},
			{"kind": "club", "label": "Barcelona", "period": "2009-2011", "endYear": 2011},
			{"kind": "loan", "label": "AC Milan", "period": "2010-2011", "endYear": 2011},
			{"kind": "club", "label": "Paris Saint-Germain", "period": "2012-2016", "endYear": 2016},
			{"kind": "club", "label": "Manchester United", "period": "2016-2018", "endYear": 2018},
		},
	}
}

func demoGridPuzzle() map[string]any {
	return map[string]any{
		"xAxis": []map[string]string{
			{"kind": "club", "label": "Real Madrid"},
			{"kind": "club", "label": "Liverpool"},
			{"kind": "club", "label": "Paris Saint-Germain"},
		},
		"yAxis": []map[string]string{
			{"kind": "nation", "label": "Brazil"},
			{"kind": "trophy", "label": "Champions League"},
			{"kind": "stat", "label": "100+ Goals"},
		},
	}
}

func demoLineupPuzzle() map[string]any {
	slot := func(pos string, x, y float64, name, display string, hidden bool) map[string]any {
		return map[string]any{
			"positionKey": pos,
			"coordinates": map[string]float64{"x": x, "y": y},
			"fullName":    name,
			"displayName": display,
			"isHidden":    hidden,
		}
	}
	return map[string]any{
		"slots": []map[string]any{
			slot("GK", 50, 5, "Alisson Becker", "Alisson", false),
			slot("RB", 85, 25, "Trent Alexander-Arnold", "Alexander-Arnold", true),
			slot("RCB", 62, 20, "Joel Matip", "Matip", true),
			slot("LCB", 38, 20, "Virgil van Dijk", "Van Dijk", false),
			slot("LB", 15, 25, "Andrew Robertson", "Robertson", true),
			slot("RCM", 70, 45, "Jordan Henderson", "Henderson", true),
			slot("CDM", 50, 40, "Fabinho", "Fabinho", true),
			slot("LCM", 30, 45, "Georginio Wijnaldum", "Wijnaldum", true),
			slot("RW", 80, 70, "Mohamed Salah", "Salah", false),
			slot("ST", 50, 75, "Roberto Firmino", "Firmino", true),
			slot("LW", 20, 70, "Sadio Mané", "Mané", true),
		},
	}
}
