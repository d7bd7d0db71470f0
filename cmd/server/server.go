package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/catalog"
	"github.com/KirkDiggler/rpg-quest/internal/encounter"
	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/handlers/rpg/v1alpha1"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/random"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/battlesession"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/gamestate"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG Quest gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	registerServerFlags(serverCmd.Flags())
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{Password: cfg.RedisPassword})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // shutting down
	}()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	gameService, battleService, err := buildServices(cfg, redisClient)
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GameService:   gameService,
		BattleService: battleService,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterGameServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port, "redis_addr", cfg.RedisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildServices wires repositories, the battle machine and both orchestrators.
func buildServices(cfg *serverConfig, redisClient redis.Client) (game.Service, battle.Service, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	rules := engine.DefaultRules()
	rules.LevelCap = cfg.LevelCap

	source := random.NewDiceSource(dice.DefaultRoller)

	gameRepo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game repository: %w", err)
	}
	sessionRepo, err := battlesession.NewRedis(&battlesession.RedisConfig{
		Client: redisClient,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create battle repository: %w", err)
	}

	machine, err := battlemachine.NewMachine(&battlemachine.Config{
		Items:             cat,
		Random:            source,
		Rules:             rules,
		VictoryExperience: cfg.VictoryExperience,
		FleeChance:        battlemachine.DefaultFleeChance,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create battle machine: %w", err)
	}

	eventBus := events.NewBus()
	subscribeBattleLog(eventBus)

	battleService, err := battle.NewOrchestrator(&battle.Config{
		GameRepo:    gameRepo,
		SessionRepo: sessionRepo,
		Machine:     machine,
		Enemies:     cat,
		IDGenerator: idgen.NewUUID("battle"),
		EventBus:    eventBus,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	selector, err := encounter.NewSelector(&encounter.Config{
		Enemies: cat.Enemies(),
		Random:  source,
		Chance:  cfg.EncounterChance,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create encounter selector: %w", err)
	}

	gameService, err := game.NewOrchestrator(&game.Config{
		GameRepo:    gameRepo,
		Battles:     battleService,
		Catalog:     cat,
		Encounters:  selector,
		IDGenerator: idgen.NewUUID("game"),
		Rules:       rules,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	return gameService, battleService, nil
}

// subscribeBattleLog logs every battle event published on the bus.
func subscribeBattleLog(bus events.EventBus) {
	for _, eventType := range battle.EventTypes() {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			battleID, _ := e.Context().Get(battle.EventKeyBattleID)
			message, _ := e.Context().Get(battle.EventKeyMessage)
			slog.DebugContext(ctx, "battle event",
				"event_type", e.Type(),
				"battle_id", battleID,
				"game_id", e.Source().GetID(),
				"message", message,
			)
			return nil
		})
	}
}

// interceptorLogger adapts slog to the grpc middleware logger.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
