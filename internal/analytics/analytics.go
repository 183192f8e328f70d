// Package analytics persists fire-and-forget game events. Nothing in here is
// allowed to fail loudly: a missing or broken database degrades to in-memory
// tallies and the game never notices.
package analytics

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chirpquiz/internal/quiz"
)

// Event is one persisted game event row.
type Event struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Kind      string `gorm:"index"`
	Mode      string `gorm:"index"`
	Region    string
	Score     int
	Rounds    int
}

// Open opens (or creates) the SQLite event store at path and migrates the
// schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if err := db.AutoMigrate(&Event{}); err != nil {
		return nil, fmt.Errorf("migrate analytics db: %w", err)
	}
	return db, nil
}

// Recorder consumes game events and writes them to the store. db may be nil;
// events are then only tallied in memory.
type Recorder struct {
	db      *gorm.DB
	metrics *Metrics
	log     *zap.SugaredLogger

	mu     sync.Mutex
	memory map[string]int64
}

// NewRecorder builds a recorder. metrics and log may be nil.
func NewRecorder(db *gorm.DB, metrics *Metrics, log *zap.SugaredLogger) *Recorder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Recorder{
		db:      db,
		metrics: metrics,
		log:     log,
		memory:  make(map[string]int64),
	}
}

// Run drains the event channel until it is closed. Call on its own goroutine.
func (r *Recorder) Run(ch <-chan quiz.GameEvent) {
	for ev := range ch {
		r.Record(ev)
	}
}

// Record tallies and persists a single event. Storage errors are logged and
// swallowed.
func (r *Recorder) Record(ev quiz.GameEvent) {
	if r.metrics != nil {
		r.metrics.observe(ev)
	}
	r.mu.Lock()
	r.memory[tallyKey(ev.Kind, string(ev.Mode))]++
	r.mu.Unlock()
	if r.db == nil {
		return
	}
	row := Event{
		CreatedAt: ev.At,
		Kind:      ev.Kind,
		Mode:      string(ev.Mode),
		Region:    ev.Region,
		Score:     ev.Score,
		Rounds:    ev.Rounds,
	}
	if err := r.db.Create(&row).Error; err != nil {
		r.log.Warnw("analytics write failed", "kind", ev.Kind, "error", err)
	}
}

func tallyKey(kind, mode string) string {
	return kind + "|" + mode
}

// ModeStats summarizes play counts for one mode.
type ModeStats struct {
	Mode      string `json:"mode"`
	Started   int64  `json:"started"`
	Completed int64  `json:"completed"`
}

// Stats is the payload behind the stats endpoint.
type Stats struct {
	GamesStarted   int64       `json:"gamesStarted"`
	GamesCompleted int64       `json:"gamesCompleted"`
	ByMode         []ModeStats `json:"byMode"`
}

// Stats summarizes recorded events. With no database it reports the
// in-memory tallies of the current process.
func (r *Recorder) Stats() Stats {
	if r.db == nil {
		return r.memoryStats()
	}
	var out Stats
	if err := r.db.Model(&Event{}).Where("kind = ?", quiz.EventGameStarted).Count(&out.GamesStarted).Error; err != nil {
		r.log.Warnw("analytics stats query failed", "error", err)
		return r.memoryStats()
	}
	if err := r.db.Model(&Event{}).Where("kind = ?", quiz.EventGameCompleted).Count(&out.GamesCompleted).Error; err != nil {
		r.log.Warnw("analytics stats query failed", "error", err)
		return r.memoryStats()
	}
	type row struct {
		Kind  string
		Mode  string
		Games int64
	}
	var rows []row
	err := r.db.Model(&Event{}).
		Select("kind, mode, count(*) as games").
		Group("kind").Group("mode").
		Order("mode").
		Scan(&rows).Error
	if err != nil {
		r.log.Warnw("analytics stats query failed", "error", err)
		return r.memoryStats()
	}
	byMode := make(map[string]*ModeStats)
	order := make([]string, 0, len(rows))
	for _, rr := range rows {
		ms, ok := byMode[rr.Mode]
		if !ok {
			ms = &ModeStats{Mode: rr.Mode}
			byMode[rr.Mode] = ms
			order = append(order, rr.Mode)
		}
		switch rr.Kind {
		case quiz.EventGameStarted:
			ms.Started = rr.Games
		case quiz.EventGameCompleted:
			ms.Completed = rr.Games
		}
	}
	for _, mode := range order {
		out.ByMode = append(out.ByMode, *byMode[mode])
	}
	return out
}

func (r *Recorder) memoryStats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out Stats
	byMode := make(map[string]*ModeStats)
	var order []string
	for _, mode := range quiz.Modes() {
		m := string(mode)
		started := r.memory[tallyKey(quiz.EventGameStarted, m)]
		completed := r.memory[tallyKey(quiz.EventGameCompleted, m)]
		if started == 0 && completed == 0 {
			continue
		}
		byMode[m] = &ModeStats{Mode: m, Started: started, Completed: completed}
		order = append(order, m)
		out.GamesStarted += started
		out.GamesCompleted += completed
	}
	for _, m := range order {
		out.ByMode = append(out.ByMode, *byMode[m])
	}
	return out
}
