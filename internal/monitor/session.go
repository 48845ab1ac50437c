package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/bgcheck/internal/alert"
	"github.com/five82/bgcheck/internal/chart"
	"github.com/five82/bgcheck/internal/glucose"
	"github.com/five82/bgcheck/internal/history"
	"github.com/five82/bgcheck/internal/metrics"
	"github.com/five82/bgcheck/internal/source"
)

const (
	// DefaultInterval is the time between live fetches.
	DefaultInterval = 300 * time.Second
	// DefaultDroppedThreshold is the number of back-to-back missing readings
	// that raises an alert.
	DefaultDroppedThreshold = 2
)

// Phase is the loop state exposed to the render collaborator.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseUpdating
	PhaseAlerting
)

func (p Phase) String() string {
	switch p {
	case PhaseFetching:
		return "fetching"
	case PhaseUpdating:
		return "updating"
	case PhaseAlerting:
		return "alerting"
	default:
		return "idle"
	}
}

// Options configures a Session.
type Options struct {
	Source source.Source
	Player alert.Player

	// Interval between fetches. Zero fetches on every tick.
	Interval         time.Duration
	HistorySize      int
	DroppedThreshold int
	ChartWidth       int
	ChartHeight      int
	Logger           *zap.Logger
	Metrics          *metrics.Metrics
}

// Update describes the outcome of one Tick.
type Update struct {
	Fetched  bool
	Reading  glucose.Reading
	Severity glucose.Severity
	Alert    bool
	Reason   string

	// FetchErr is the non-fatal error that turned the reading into Missing.
	FetchErr error
}

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Started            bool
	Reading            glucose.Reading
	Severity           glucose.Severity
	Countdown          int
	Readings           []glucose.Reading
	Segments           []chart.Segment
	Phase              Phase
	ConsecutiveMissing int
	LastUpdate         time.Time
	LastError          error
}

// Session is the polling loop state. It is not safe for concurrent use; the
// render loop owns it.
type Session struct {
	src       source.Source
	player    alert.Player
	interval  time.Duration
	threshold int
	chartW    int
	chartH    int
	logger    *zap.Logger
	metrics   *metrics.Metrics

	buffer     *history.Buffer
	firstRun   bool
	missing    int
	countdown  int
	lastUpdate time.Time
	lastErr    error
	phase      Phase
}

// New creates a session that has not fetched yet.
func New(opts Options) *Session {
	if opts.Player == nil {
		opts.Player = alert.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Interval < 0 {
		opts.Interval = 0
	}
	if opts.DroppedThreshold <= 0 {
		opts.DroppedThreshold = DefaultDroppedThreshold
	}
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = chart.DefaultChartWidth
	}
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = chart.DefaultChartHeight
	}
	return &Session{
		src:       opts.Source,
		player:    opts.Player,
		interval:  opts.Interval,
		threshold: opts.DroppedThreshold,
		chartW:    opts.ChartWidth,
		chartH:    opts.ChartHeight,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		buffer:    history.NewBuffer(opts.HistorySize),
		firstRun:  true,
		countdown: intervalSeconds(opts.Interval),
	}
}

// Due reports whether Tick at now would fetch.
func (s *Session) Due(now time.Time) bool {
	return s.firstRun || now.Sub(s.lastUpdate) >= s.interval
}

// Tick fetches and records a reading when one is due. The only errors
// returned are credential failures and context cancellation; both end the
// session.
func (s *Session) Tick(ctx context.Context, now time.Time) (Update, error) {
	if !s.Due(now) {
		return Update{}, nil
	}
	if s.src == nil {
		return Update{}, errors.New("monitor: no reading source")
	}

	if s.firstRun {
		s.firstRun = false
		s.missing = 0
		s.player.Startup()
		s.logger.Info("session started", zap.Duration("interval", s.interval), zap.Int("history_size", s.buffer.Cap()))
	}

	s.phase = PhaseFetching
	start := time.Now()
	r, err := s.src.Fetch(ctx)
	s.metrics.ObserveFetch(time.Since(start).Seconds())

	var fetchErr error
	if err != nil {
		s.phase = PhaseIdle
		if errors.Is(err, source.ErrCredentials) {
			s.logger.Error("credentials rejected", zap.Error(err))
			return Update{}, fmt.Errorf("fetch reading: %w", err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Update{}, ctxErr
		}
		s.logger.Warn("fetch failed, recording missing reading", zap.Error(err))
		s.metrics.RecordFetchError()
		fetchErr = err
		r = glucose.Missing
	}

	u := s.record(r, now)
	u.FetchErr = fetchErr
	s.lastErr = fetchErr
	return u, nil
}

func (s *Session) record(r glucose.Reading, now time.Time) Update {
	s.phase = PhaseUpdating
	u := Update{Fetched: true, Reading: r, Severity: glucose.Classify(r)}

	if r.IsMissing() {
		s.missing++
		if s.missing >= s.threshold {
			u.Alert, u.Reason = true, metrics.ReasonDropped
		}
	} else {
		s.missing = 0
		if u.Severity == glucose.Bad {
			u.Alert, u.Reason = true, metrics.ReasonBadReading
		}
	}
	s.buffer.Append(r)

	if u.Alert {
		s.phase = PhaseAlerting
		s.player.Critical()
		s.metrics.RecordAlert(u.Reason)
		s.logger.Warn("critical alert",
			zap.String("reason", u.Reason),
			zap.Stringer("reading", r),
			zap.Int("consecutive_missing", s.missing),
		)
	} else {
		s.phase = PhaseIdle
	}

	s.countdown = intervalSeconds(s.interval)
	s.lastUpdate = now
	s.metrics.RecordReading(r)
	s.metrics.SetConsecutiveMissing(s.missing)

	s.logger.Info("reading updated",
		zap.Time("at", now),
		zap.Stringer("reading", r),
		zap.Stringer("severity", u.Severity),
		zap.String("readings", glucose.FormatList(s.buffer.Snapshot())),
	)
	return u
}

// Elapse advances the visible countdown by one frame.
func (s *Session) Elapse() {
	s.countdown--
}

// Frame describes the current state for rendering.
func (s *Session) Frame() Frame {
	readings := s.buffer.Snapshot()
	last := s.buffer.Last()
	return Frame{
		Started:            !s.firstRun,
		Reading:            last,
		Severity:           glucose.Classify(last),
		Countdown:          s.countdown,
		Readings:           readings,
		Segments:           chart.Project(readings, s.chartW, s.chartH),
		Phase:              s.phase,
		ConsecutiveMissing: s.missing,
		LastUpdate:         s.lastUpdate,
		LastError:          s.lastErr,
	}
}

// Readings returns the buffer contents, oldest first.
func (s *Session) Readings() []glucose.Reading {
	return s.buffer.Snapshot()
}

// Interval returns the configured fetch interval.
func (s *Session) Interval() time.Duration {
	return s.interval
}

func intervalSeconds(d time.Duration) int {
	return int(d / time.Second)
}
