package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// listenCmd is a LISTEN/UNLISTEN statement waiting to be executed by the
// receive loop, which is the sole goroutine touching the pgx connection.
type listenCmd struct {
	sql    string
	result chan error
}

// Listener holds a dedicated PostgreSQL connection in LISTEN mode and
// dispatches received notifications to the local ConnectionManager.
//
// LISTEN/UNLISTEN statements are funneled through cmdCh into the receive
// loop rather than executed directly, because pgx connections reject
// concurrent use: an Exec racing WaitForNotification fails with
// "conn busy".
type Listener struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex
	manager    *ConnectionManager
	channels   map[string]bool // channels currently in LISTEN mode
	channelsMu sync.RWMutex

	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}

	logger *slog.Logger
}

// NewListener creates a NOTIFY listener. connString is the database DSN;
// the listener opens its own connection rather than borrowing from the
// pool, since a pooled connection cannot sit in LISTEN mode.
func NewListener(connString string, manager *ConnectionManager) *Listener {
	return &Listener{
		connString: connString,
		manager:    manager,
		channels:   make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
		logger:     slog.Default().With("component", "events.listener"),
	}
}

// Start opens the dedicated connection and begins receiving notifications.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	l.logger.Info("notify listener started")
	return nil
}

// Stop shuts down the receive loop and closes the dedicated connection.
func (l *Listener) Stop(ctx context.Context) error {
	if !l.running.CompareAndSwap(true, false) {
		return nil
	}

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		select {
		case <-l.loopDone:
		case <-ctx.Done():
		}
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		err := l.conn.Close(ctx)
		l.conn = nil
		return err
	}
	return nil
}

// Subscribe puts a channel into LISTEN mode on the dedicated connection.
func (l *Listener) Subscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	if l.channels[channel] {
		l.channelsMu.Unlock()
		return nil
	}
	l.channelsMu.Unlock()

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.submit(ctx, "LISTEN "+sanitized); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
	}

	l.channelsMu.Lock()
	l.channels[channel] = true
	l.channelsMu.Unlock()
	l.logger.Debug("subscribed to notify channel", "channel", channel)
	return nil
}

// Unsubscribe takes a channel out of LISTEN mode.
func (l *Listener) Unsubscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	if !l.channels[channel] {
		l.channelsMu.Unlock()
		return nil
	}
	l.channelsMu.Unlock()

	if !l.running.Load() {
		return nil
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.submit(ctx, "UNLISTEN "+sanitized); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", sanitized, err)
	}

	l.channelsMu.Lock()
	delete(l.channels, channel)
	l.channelsMu.Unlock()
	return nil
}

// submit hands a statement to the receive loop and waits for its result.
func (l *Listener) submit(ctx context.Context, sql string) error {
	cmd := listenCmd{sql: sql, result: make(chan error, 1)}

	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop waits for notifications and dispatches them to the
// ConnectionManager. It alternates between short WaitForNotification
// windows and draining cmdCh, so LISTEN/UNLISTEN requests never block for
// long and never race the wait.
func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCommands(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // window elapsed, go back for pending commands
			}
			l.logger.Error("notify receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCommands executes every queued LISTEN/UNLISTEN on the connection.
func (l *Listener) drainCommands(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect replaces a dead connection and restores every LISTEN the
// manager still needs. Backs off briefly so a down database is not hammered.
func (l *Listener) reconnect(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(time.Second):
	}

	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		l.logger.Error("notify reconnect failed", "error", err)
		return
	}

	l.channelsMu.RLock()
	channels := make([]string, 0, len(l.channels))
	for ch := range l.channels {
		channels = append(channels, ch)
	}
	l.channelsMu.RUnlock()

	for _, ch := range channels {
		sanitized := pgx.Identifier{ch}.Sanitize()
		if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
			l.logger.Error("failed to restore LISTEN after reconnect",
				"channel", ch, "error", err)
			_ = conn.Close(ctx)
			return
		}
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.logger.Info("notify listener reconnected", "channels", len(channels))
}
