package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"moosage/config"
	"moosage/internal/admin"
	"moosage/internal/domain/service"
	"moosage/internal/infra/auth"
	logs "moosage/internal/infra/log"
	"moosage/internal/infra/persistence/jsonstore"
	"moosage/internal/infra/session"
	"moosage/internal/usecase/impl"
	"moosage/internal/validation"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "moosagectl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	// Logs go to stderr so command output stays parseable.
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	bucket, err := jsonstore.OpenBucket(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer bucket.Close()

	users := jsonstore.NewUserStore(bucket, cfg.Storage.UsersKey, logger)
	activity := jsonstore.NewActivityStore(bucket, cfg.Storage.ActivityKey, cfg.Worker.MaxEvents, logger)

	app := &admin.App{
		Auth: impl.NewAuthService(impl.AuthServiceParams{
			UserRepo:  users,
			Sessions:  session.NewRegistry(),
			Hasher:    auth.NewBcryptHasher(),
			Validator: validation.New(),
			Logger:    logger,
		}),
		Users:    users,
		Moosages: jsonstore.NewMoosageStore(bucket, cfg.Storage.MoosagesKey, users, service.NewRealClock(), logger),
		Activity: impl.NewActivityService(impl.ActivityServiceParams{ActivityRepo: activity, Logger: logger}),
		APILive:  admin.HealthProbe(healthURL(cfg), time.Second),
	}

	return admin.NewRootCommand(app).ExecuteContext(ctx)
}

func healthURL(cfg *config.Config) string {
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.HTTP.Port)) + "/health"
}
