// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/service"
)

// starterCatalog はカタログが空のときに投入する単語
var starterCatalog = []model.PostWordRequest{
	{Term: "abandon", Definition: "見捨てる、放棄する", PartOfSpeech: "verb", Example: "They had to abandon the ship.", Difficulty: 2},
	{Term: "brief", Definition: "短い、簡潔な", PartOfSpeech: "adjective", Example: "Keep your answer brief.", Difficulty: 1},
	{Term: "candid", Definition: "率直な", PartOfSpeech: "adjective", Example: "She gave a candid opinion.", Difficulty: 3},
	{Term: "diligent", Definition: "勤勉な", PartOfSpeech: "adjective", Example: "He is a diligent student.", Difficulty: 2},
	{Term: "eloquent", Definition: "雄弁な", PartOfSpeech: "adjective", Example: "An eloquent speech moved the crowd.", Difficulty: 4},
	{Term: "fragile", Definition: "壊れやすい", PartOfSpeech: "adjective", Example: "Handle the glass carefully; it is fragile.", Difficulty: 1},
	{Term: "gratitude", Definition: "感謝", PartOfSpeech: "noun", Example: "She expressed her gratitude.", Difficulty: 2},
	{Term: "harbor", Definition: "港、(感情を)抱く", PartOfSpeech: "noun", Example: "The boats returned to the harbor.", Difficulty: 2},
	{Term: "inevitable", Definition: "避けられない", PartOfSpeech: "adjective", Example: "Change is inevitable.", Difficulty: 3},
	{Term: "meticulous", Definition: "細心の", PartOfSpeech: "adjective", Example: "He kept meticulous records.", Difficulty: 5},
	{Term: "resilient", Definition: "回復力のある", PartOfSpeech: "adjective", Example: "Children are often resilient.", Difficulty: 4},
	{Term: "ubiquitous", Definition: "至る所にある", PartOfSpeech: "adjective", Example: "Smartphones are ubiquitous.", Difficulty: 5},
}

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configDir); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	wordRepo := repository.NewGormWordRepository()
	count, err := wordRepo.Count(ctx, db)
	if err != nil {
		logger.Error("Error counting words", slog.Any("error", err))
		os.Exit(1)
	}
	if count > 0 {
		logger.Info("Catalog already has words, skipping seed", slog.Int64("count", count))
		return
	}

	wordService := service.NewWordService(db, wordRepo, repository.NewGormProgressRepository(), repository.NewGormStarredWordRepository())
	inserted := 0
	for i := range starterCatalog {
		if _, err := wordService.CreateWord(ctx, &starterCatalog[i]); err != nil {
			logger.Warn("Skipping word", slog.String("term", starterCatalog[i].Term), slog.Any("error", err))
			continue
		}
		inserted++
	}
	logger.Info("Seed completed", slog.Int("inserted", inserted))
}
