package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"roost/internal/cmd/flags"
	"roost/internal/config"
	"roost/pkg/clicfg"
)

const VERSION = "0.1.0"

var (
	ErrUsage         = errors.New("usage error")
	ErrUnknownAuthor = errors.New("unknown author")
)

var cmd = &cli.Command{
	Name:    "roost",
	Usage:   "Roost reconciles a downloaded media archive into a queryable post store",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		return ctx, initLogger(c.String("log-level"))
	},
	Flags: []cli.Flag{
		flags.LogLevel,
	},
	Commands: []*cli.Command{
		scanCmd,
		postsCmd,
		watchCmd,
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command, services ...pal.ServiceDef) error {
	cfg := config.Config{}
	if err := clicfg.Bind(c, &cfg); err != nil {
		return err
	}
	services = append(services, pal.Provide(&cfg))

	return pal.New(services...).
		InjectSlog().
		InitTimeout(5*time.Second).
		HealthCheckTimeout(1*time.Second).
		ShutdownTimeout(10*time.Second).
		Run(ctx, syscall.SIGINT, syscall.SIGTERM)
}
