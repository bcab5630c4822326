package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gliderlabs/ssh"

	"github.com/bvbgame/pixart"
	"github.com/bvbgame/pixart/internal/ansi"
	"github.com/bvbgame/pixart/level"
)

// viewer renders one shared, read-only frame to every session.
type viewer struct {
	frame  *pixart.Pixmap
	title  string
	logger *slog.Logger
}

// newViewer composes the frame once: the exported level with sprite, if
// any, standing on each spawn point. The top spawn is drawn selected.
func newViewer(exp *level.Export, sprite *pixart.Sprite, logger *slog.Logger) *viewer {
	frame := exp.Pixmap()
	if sprite != nil {
		geo := level.NewGeometry(exp.Width(), exp.Height())
		var pls []pixart.Placement
		for i, b := range geo.Bases() {
			pls = append(pls, pixart.Placement{
				Sprite:   sprite,
				AnchorX:  b.X,
				AnchorY:  b.Y,
				Selected: i == 0,
			})
		}
		c := pixart.NewComposer()
		frame = c.Compose(frame, pls...)
		st := c.CacheStats()
		logger.Debug("frame composed", "placements", len(pls),
			"variants", st.Variants, "hits", st.Hits, "misses", st.Misses)
	}
	return &viewer{
		frame:  frame,
		title:  fmt.Sprintf("%s %dx%d  q quits", exp.Layout(), exp.Width(), exp.Height()),
		logger: logger,
	}
}

func (v *viewer) handle(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "levelview: a PTY is required, connect with ssh -t")
		return
	}

	log := v.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
	log.Info("session started")
	defer log.Info("session ended")

	if _, err := io.WriteString(sess, ansi.EnableAltScreen()+ansi.HideCursor()); err != nil {
		log.Debug("write failed", "err", err)
		return
	}
	defer func() {
		// The client may already have disconnected.
		_, _ = io.WriteString(sess, ansi.ShowCursor()+ansi.DisableAltScreen())
	}()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil || wantsQuit(buf[:n]) {
				return
			}
		}
	}()

	if err := v.draw(sess, ptyReq.Window.Width, ptyReq.Window.Height); err != nil {
		log.Debug("write failed", "err", err)
		return
	}
	for {
		select {
		case <-quit:
			return
		case <-sess.Context().Done():
			return
		case win, ok := <-winCh:
			if !ok {
				return
			}
			log.Debug("window resized", "cols", win.Width, "rows", win.Height)
			if err := v.draw(sess, win.Width, win.Height); err != nil {
				log.Debug("write failed", "err", err)
				return
			}
		}
	}
}

// draw writes the frame fitted to a cols × rows terminal, keeping the last
// row for the title.
func (v *viewer) draw(w io.Writer, cols, rows int) error {
	_, err := io.WriteString(w, v.screen(cols, rows))
	return err
}

func (v *viewer) screen(cols, rows int) string {
	c, r := ansi.Fit(v.frame.Width(), v.frame.Height(), cols, max(rows-1, 1))
	return ansi.ClearScreen() + ansi.Home() + ansi.Render(v.frame, c, r) + v.title
}

// wantsQuit reports whether input contains q, Q or Ctrl-C.
func wantsQuit(input []byte) bool {
	for _, b := range input {
		switch b {
		case 'q', 'Q', 3:
			return true
		}
	}
	return false
}
