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

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/content"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/combat"
	diceservice "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/dice"
	rewardservice "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/reward"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/clock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/idgen"
	redisclient "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/redis"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/combatsession"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/diceinventory"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/discovery"
	rewardrepo "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/reward"
)

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the quest combat gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
}

// services holds the fully wired orchestrator layer. Transport handlers
// attach to these once the public proto surface lands.
// TODO: register gRPC handlers for combat, dice, and reward services
type services struct {
	Dice   diceservice.Service
	Reward rewardservice.Service
	Combat combat.Service
}

func buildServices() (*services, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	sessionRepo, err := combatsession.NewRedisRepository(&combatsession.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	discoveryRepo, err := discovery.NewRedisRepository(&discovery.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery repository: %w", err)
	}
	inventoryRepo, err := diceinventory.NewRedisRepository(&diceinventory.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice inventory repository: %w", err)
	}
	rewardRepo, err := rewardrepo.NewRedisRepository(&rewardrepo.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create reward repository: %w", err)
	}

	// In-memory roster until the account service client is wired in.
	rosterClient := roster.NewInMemoryClient()
	realClock := clock.New()

	diceOrch, err := diceservice.NewOrchestrator(&diceservice.Config{
		InventoryRepo: inventoryRepo,
		Roster:        rosterClient,
		Clock:         realClock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	rewardOrch, err := rewardservice.NewOrchestrator(&rewardservice.Config{
		RewardRepo:  rewardRepo,
		Roster:      rosterClient,
		DiceService: diceOrch,
		Clock:       realClock,
		IDGenerator: idgen.NewUUID("reward"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reward orchestrator: %w", err)
	}

	combatOrch, err := combat.NewOrchestrator(&combat.Config{
		SessionRepo:   sessionRepo,
		DiscoveryRepo: discoveryRepo,
		DiceService:   diceOrch,
		RewardService: rewardOrch,
		Roster:        rosterClient,
		Catalog:       content.New(),
		DiceRoller:    dice.DefaultRoller,
		EventBus:      events.NewBus(),
		Clock:         realClock,
		IDGenerator:   idgen.NewUUID("combat"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	return &services{
		Dice:   diceOrch,
		Reward: rewardOrch,
		Combat: combatOrch,
	}, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	svcs, err := buildServices()
	if err != nil {
		return err
	}

	slog.Info("Services initialized",
		"redis_addr", redisAddr,
		"dice", svcs.Dice != nil,
		"reward", svcs.Reward != nil,
		"combat", svcs.Combat != nil,
	)

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("questcombat.CombatService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("questcombat.DiceService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("questcombat.RewardService", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
