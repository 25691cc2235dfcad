package market

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

// Tick is one live price update from the stream.
type Tick struct {
	Symbol     string
	Price      float64
	Change24h  float64 // Percent vs the rolling 24h open
	ReceivedAt time.Time
}

// StreamConfig configures the live quote stream.
type StreamConfig struct {
	URL           string        // Combined stream endpoint (e.g. wss://stream.binance.com:9443/stream)
	Symbols       []string      // Exchange symbols (e.g. BTCUSDT)
	ReadTimeout   time.Duration // Max silence before the connection counts as stale
	ReconnectBase time.Duration // Base wait before reconnecting
	ReconnectMax  time.Duration // Cap for the reconnect backoff
	MaxReconnects int           // Consecutive failed reconnects before giving up
	BufferSize    int           // Tick channel buffer size
}

// DefaultStreamConfig returns sensible defaults.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		ReadTimeout:   3 * time.Minute, // Binance pings roughly every 3 minutes
		ReconnectBase: time.Second,
		ReconnectMax:  time.Minute,
		MaxReconnects: 10,
		BufferSize:    100,
	}
}

// Stream follows miniTicker updates for a symbol set over the Binance
// combined WebSocket stream.
type Stream struct {
	cfg    StreamConfig
	logger *slog.Logger
	ticks  chan Tick
}

// NewStream creates a Stream. A nil logger falls back to slog.Default.
func NewStream(cfg StreamConfig, logger *slog.Logger) *Stream {
	def := DefaultStreamConfig()
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.ReconnectBase <= 0 {
		cfg.ReconnectBase = def.ReconnectBase
	}
	if cfg.ReconnectMax <= 0 {
		cfg.ReconnectMax = def.ReconnectMax
	}
	if cfg.MaxReconnects <= 0 {
		cfg.MaxReconnects = def.MaxReconnects
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Stream{
		cfg:    cfg,
		logger: logger,
		ticks:  make(chan Tick, cfg.BufferSize),
	}
}

// Ticks returns the update channel. It closes when Run returns.
func (s *Stream) Ticks() <-chan Tick {
	return s.ticks
}

// Run connects and reads until ctx is canceled, reconnecting with
// exponential backoff and jitter. It returns ctx.Err on cancellation
// and a terminal error once MaxReconnects consecutive attempts fail.
func (s *Stream) Run(ctx context.Context) error {
	defer close(s.ticks)

	wait := s.cfg.ReconnectBase
	attempts := 0

	for {
		delivered, err := s.readOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if delivered {
			// The connection worked; start the backoff over.
			wait = s.cfg.ReconnectBase
			attempts = 0
		}

		attempts++
		if attempts > s.cfg.MaxReconnects {
			return fmt.Errorf("giving up after %d reconnect attempts: %w", s.cfg.MaxReconnects, err)
		}

		// Add jitter: wait * (0.5 to 1.5)
		jitter := wait/2 + time.Duration(rand.Int64N(int64(wait)))
		s.logger.Warn("stream disconnected",
			"err", err,
			"reconnect_in", jitter,
			"attempt", attempts,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(jitter):
		}

		wait *= 2
		if wait > s.cfg.ReconnectMax {
			wait = s.cfg.ReconnectMax
		}
	}
}

// streamURL builds the combined-stream URL: lowercase symbols joined
// as <sym>@miniTicker parts.
func (s *Stream) streamURL() string {
	parts := make([]string, 0, len(s.cfg.Symbols))
	for _, sym := range s.cfg.Symbols {
		parts = append(parts, strings.ToLower(sym)+"@miniTicker")
	}
	return s.cfg.URL + "?streams=" + strings.Join(parts, "/")
}

// readOnce dials, then reads until the connection drops or ctx is
// canceled. delivered reports whether at least one tick was parsed, so
// the caller can reset its backoff.
func (s *Stream) readOnce(ctx context.Context) (delivered bool, err error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, s.streamURL(), nil)
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	// Unblock ReadMessage on cancellation.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			conn.Close()
		case <-done:
		}
	}()

	resetDeadline := func() {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}
	resetDeadline()

	// The server pings periodically; answer and treat it as liveness.
	conn.SetPingHandler(func(data string) error {
		resetDeadline()
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})
	conn.SetPongHandler(func(string) error {
		resetDeadline()
		return nil
	})

	s.logger.Info("stream connected",
		"url", s.cfg.URL,
		"symbols", strings.Join(s.cfg.Symbols, ","),
	)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return delivered, ctx.Err()
			}
			return delivered, err
		}
		resetDeadline()

		tick, ok := parseTick(data)
		if !ok {
			continue
		}
		delivered = true

		select {
		case s.ticks <- tick:
		case <-ctx.Done():
			return delivered, ctx.Err()
		default:
			s.logger.Warn("tick buffer full, dropping update", "symbol", tick.Symbol)
		}
	}
}

// combinedFrame is the combined-stream envelope.
type combinedFrame struct {
	Stream string     `json:"stream"`
	Data   miniTicker `json:"data"`
}

// miniTicker is the 24hrMiniTicker payload. Prices arrive as strings.
type miniTicker struct {
	Event  string `json:"e"`
	Symbol string `json:"s"`
	Close  string `json:"c"`
	Open   string `json:"o"`
}

func parseTick(data []byte) (Tick, bool) {
	var frame combinedFrame
	if err := jsoniter.Unmarshal(data, &frame); err != nil {
		return Tick{}, false
	}
	if frame.Data.Event != "24hrMiniTicker" {
		return Tick{}, false
	}

	price, err := strconv.ParseFloat(frame.Data.Close, 64)
	if err != nil {
		return Tick{}, false
	}

	tick := Tick{
		Symbol:     frame.Data.Symbol,
		Price:      price,
		ReceivedAt: time.Now(),
	}
	if open, err := strconv.ParseFloat(frame.Data.Open, 64); err == nil && open != 0 {
		tick.Change24h = (price - open) / open * 100
	}

	return tick, true
}
