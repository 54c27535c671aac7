package main

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/citizenchain/citizenauth/adapters/events"
	"github.com/citizenchain/citizenauth/adapters/qr"
	"github.com/citizenchain/citizenauth/adapters/store"
	"github.com/citizenchain/citizenauth/adapters/tokenizer"
	"github.com/citizenchain/citizenauth/adapters/verifier"
	"github.com/citizenchain/citizenauth/config"
	"github.com/citizenchain/citizenauth/logging"
	"github.com/citizenchain/citizenauth/ports"
	"github.com/citizenchain/citizenauth/registry"
	"github.com/citizenchain/citizenauth/service"
	transport "github.com/citizenchain/citizenauth/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("citizenauth stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	protocol, err := cfg.Auth.Protocol()
	if err != nil {
		return err
	}

	signKey, err := loadSigningKey(cfg.Auth.SigningKeyFile, logger)
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.NeedsRedis() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to reach Redis: %w", err)
		}
	}

	opts := []service.Option{service.WithLogger(logger)}

	var replay ports.ReplayStore = store.NewMemoryStore()
	if cfg.Replay.Backend == config.ReplayRedis {
		replay = store.NewRedisStore(redisClient)
	}
	opts = append(opts, service.WithReplayStore(replay, cfg.Replay.TTL))

	if cfg.Events.Enabled {
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			watermill.NewSlogLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("failed to create Redis publisher: %w", err)
		}
		defer publisher.Close()

		opts = append(opts, service.WithEventPublisher(events.NewWatermillPublisher(publisher)))
	}

	var sigVerifier ports.SignatureVerifier = verifier.NewLocal()
	if cfg.Verifier.Mode == config.VerifierRemote {
		sigVerifier = verifier.NewRemote(cfg.Verifier.URL, cfg.Verifier.Timeout)
	}

	loginService, err := service.NewLoginService(protocol, registry.Default(), sigVerifier, service.NewSessionHolder(), opts...)
	if err != nil {
		return err
	}

	var renderer ports.QRRenderer
	if cfg.QR.Enabled {
		var chain []ports.QRRenderer
		if cfg.QR.RemoteURL != "" {
			chain = append(chain, qr.NewRemote(cfg.QR.RemoteURL, cfg.QR.Size, cfg.QR.Timeout))
		}
		chain = append(chain, qr.NewLocal(cfg.QR.Size))
		renderer = qr.NewFallback(logger, chain...)
	}

	gin.SetMode(gin.ReleaseMode)
	handlers := transport.NewAuthHandlers(loginService, tokenizer.NewJWTTokenizer(signKey), renderer, cfg.Auth.AccessTTL, logger)
	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: transport.SetupRouter(handlers, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			"addr", server.Addr,
			"protocol", string(protocol.Variant),
			"replay", cfg.Replay.Backend,
			"verifier", cfg.Verifier.Mode,
			"organizations", registry.Default().Len(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func loadSigningKey(path string, logger *slog.Logger) (*ecdsa.PrivateKey, error) {
	if path == "" {
		logger.Warn("AUTH_SIGNING_KEY_FILE not set, generating an ephemeral signing key")
		return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	}

	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}
	key, err := jwt.ParseECPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}
	return key, nil
}
