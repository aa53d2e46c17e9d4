package app

import (
	"context"
	"log"

	"github.com/biofact005-rgb/neetquiz/internal/config"
	bot_delivery "github.com/biofact005-rgb/neetquiz/internal/delivery/bot"
	http_content "github.com/biofact005-rgb/neetquiz/internal/delivery/http/content"
	http_init "github.com/biofact005-rgb/neetquiz/internal/delivery/http/init"
	http_leaderboard "github.com/biofact005-rgb/neetquiz/internal/delivery/http/leaderboard"
	http_progress "github.com/biofact005-rgb/neetquiz/internal/delivery/http/progress"
	ws_battle "github.com/biofact005-rgb/neetquiz/internal/delivery/ws/battle"
	infra_pg_init "github.com/biofact005-rgb/neetquiz/internal/infra/postgres/init"
	infra_postgres_question "github.com/biofact005-rgb/neetquiz/internal/infra/postgres/question"
	infra_postgres_scorelog "github.com/biofact005-rgb/neetquiz/internal/infra/postgres/scorelog"
	infra_postgres_user "github.com/biofact005-rgb/neetquiz/internal/infra/postgres/user"
	infra_cache "github.com/biofact005-rgb/neetquiz/internal/infra/redis/cache"
	infra_redis_init "github.com/biofact005-rgb/neetquiz/internal/infra/redis/init"
	usecase_battle "github.com/biofact005-rgb/neetquiz/internal/usecase/battle"
	usecase_content "github.com/biofact005-rgb/neetquiz/internal/usecase/content"
	usecase_leaderboard "github.com/biofact005-rgb/neetquiz/internal/usecase/leaderboard"
	usecase_progress "github.com/biofact005-rgb/neetquiz/internal/usecase/progress"
)

func Go(cfg *config.Config) {

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	userRepository := infra_postgres_user.New(pgConn)
	questionRepository := infra_postgres_question.New(pgConn)
	scoreLogRepository := infra_postgres_scorelog.New(pgConn)
	leaderboardCache := infra_cache.New(redisConn, "leaderboard")

	contentUC := usecase_content.New(questionRepository)
	progressUC := usecase_progress.New(userRepository, scoreLogRepository)
	leaderboardUC := usecase_leaderboard.New(userRepository, scoreLogRepository, leaderboardCache)

	hub := ws_battle.NewHub()
	registry := usecase_battle.NewRegistry()
	battleUC := usecase_battle.New(
		registry,
		questionRepository,
		scoreLogRepository,
		hub,
		cfg.Battle.Topic,
		cfg.Battle.QuestionCount,
	)
	battleUC.StartSweeper(context.Background(), cfg.Battle.SweepInterval, cfg.Battle.RoomTTL)

	if cfg.TelegramBot.Token != "" {
		tgBot, err := bot_delivery.New(cfg.TelegramBot, contentUC)
		if err != nil {
			log.Fatalf("failed to start telegram bot: %v", err)
		}
		go tgBot.Start()
	} else {
		log.Println("BOT_TOKEN undefined, telegram bot disabled")
	}

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_content.New(contentUC, cfg.TelegramBot.AdminID))
	controllerPool.Add(http_progress.New(progressUC))
	controllerPool.Add(http_leaderboard.New(leaderboardUC))
	controllerPool.Add(ws_battle.NewController(battleUC, registry, hub, cfg.TelegramBot.WebAppURL))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
