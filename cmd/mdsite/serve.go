package main

import (
	"context"
	"fmt"
	"net"

	"github.com/alnah/go-mdsite/internal/preview"
)

// runServe builds the site (unless --no-build) and serves the output
// directory until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, positional)
	}

	cfg, err := loadConfig(&flags.build)
	if err != nil {
		return err
	}
	if flags.addr != "" {
		cfg.Serve.Addr = flags.addr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if !flags.noBuild {
		if _, err := buildSite(ctx, cfg, &flags.build, env); err != nil {
			return err
		}
	}

	log := env.Logger(flags.build.common)
	srv, err := preview.NewServer(cfg.Output.Dir, log)
	if err != nil {
		return err
	}

	return srv.Run(ctx, cfg.Serve.Addr, func(addr net.Addr) {
		if !flags.build.common.quiet {
			fmt.Fprintf(env.Stdout, "Serving %s on http://%s\n", cfg.Output.Dir, addr)
		}
	})
}
