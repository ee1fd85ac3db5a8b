package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/dvpn-contract/internal/attestor"
	"github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/dvpn-contract/rpc/rewardtoken"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "dvpn-attestor",
		Usage: "Reports bandwidth usage to the dVPN settlement contract",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "Path to a .env file with " + attestor.EnvPrefix + "_* variables",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return c.Build()
}

func run(c *cli.Context) error {
	cfg, err := attestor.LoadConfig(c.String("env"))
	if err != nil {
		return err
	}

	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	contractHash, err := cfg.ContractHash()
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}
	authority, err := cfg.AuthorityHash()
	if err != nil {
		return fmt.Errorf("authority: %w", err)
	}

	acc, err := attestor.OpenAccount(cfg.WalletPath, cfg.WalletAddress, cfg.WalletPassword)
	if err != nil {
		return err
	}

	rpc, err := rpcclient.New(c.Context, cfg.RPCEndpoint, rpcclient.Options{
		DialTimeout:    cfg.DialTimeout,
		RequestTimeout: cfg.DialTimeout,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}
	defer rpc.Close()

	if err := rpc.Init(); err != nil {
		return fmt.Errorf("RPC client init: %w", err)
	}

	act, err := actor.NewSimple(rpc, acc)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	svc := attestor.New(attestor.Prm{
		Logger:   log,
		Contract: contractHash,
		Ledger:   dvpn.New(act, contractHash),
		Invoker:  act,
		Waiter:   act,
		Tokens: func(asset util.Uint160) attestor.TokenReader {
			return rewardtoken.NewReader(act, asset)
		},
		Key:       acc.PrivateKey(),
		Authority: authority,
		Retry:     cfg.Retry(),
	})

	log = log.With(zap.String("attestor", acc.Address))

	pc, err := svc.Config()
	switch {
	case err != nil:
		log.Warn("can't read protocol config", zap.Error(err))
	case !pc.Attestor.Equals(svc.Attestor()):
		log.Warn("account is not the configured attestor, usage reports will be rejected",
			zap.Stringer("configured", pc.Attestor))
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving HTTP API", zap.String("address", cfg.ListenAddress))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server: %w", err)
	case <-c.Context.Done():
	}

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}
