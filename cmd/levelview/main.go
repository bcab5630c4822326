// Command levelview serves a live terminal preview of a generated level
// over SSH.
//
//	levelview -layout moba -sprite hero.bmp
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gliderlabs/ssh"

	"github.com/bvbgame/pixart"
	"github.com/bvbgame/pixart/level"
)

const spriteHeight = 40

func main() {
	var (
		addr       = flag.String("addr", ":2222", "listen address")
		hostKey    = flag.String("hostkey", "levelview_host_key", "host key file, created if missing")
		layoutName = flag.String("layout", "moba", "level layout: parking or moba")
		spritePath = flag.String("sprite", "", "optional BMP sprite drawn at each spawn point")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	pixart.SetLogger(logger)

	layout, err := level.ParseLayout(*layoutName)
	if err != nil {
		logger.Error("bad layout", "err", err)
		os.Exit(2)
	}
	if err := ensureHostKey(*hostKey); err != nil {
		logger.Error("host key", "path", *hostKey, "err", err)
		os.Exit(1)
	}

	exp := level.NewExport(layout)
	exp.Init()

	var sprite *pixart.Sprite
	if *spritePath != "" {
		sprite, err = pixart.LoadSpriteFile(*spritePath, pixart.WithTargetHeight(spriteHeight))
		if err != nil {
			// The preview still works without the sprite.
			logger.Warn("sprite skipped", "path", *spritePath, "err", err)
		}
	}

	v := newViewer(exp, sprite, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("levelview listening", "addr", *addr, "layout", layout.String())
	if err := serve(ctx, *addr, *hostKey, v); err != nil {
		logger.Error("ssh server", "err", err)
		os.Exit(1)
	}
}

// serve runs the SSH server until ctx is cancelled.
func serve(ctx context.Context, addr, hostKey string, v *viewer) error {
	srv := &ssh.Server{
		Addr:    addr,
		Handler: v.handle,
	}
	if err := srv.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// ensureHostKey writes a new ed25519 key to path unless a file exists.
func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
