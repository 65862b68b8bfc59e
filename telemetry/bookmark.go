package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkCloseCall     BookmarkType = "close_call"
	BookmarkSwarm         BookmarkType = "swarm"
	BookmarkStaminaCrisis BookmarkType = "stamina_crisis"
	BookmarkWakeSurge     BookmarkType = "wake_surge"
)

// Bookmark marks a window worth looking at when reviewing a run.
type Bookmark struct {
	Session     int          `csv:"session"`
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark(log *slog.Logger) {
	log.Info("bookmark",
		"session", b.Session,
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkThresholds tunes when bookmarks fire.
type BookmarkThresholds struct {
	CloseCallDist float64 // nearest-worm p10 below this is a close call
	SwarmWorms    float64 // mean active worms at or above this is a swarm
	CrisisStamina float64 // stamina p10 below this is a crisis
}

// BookmarkDetector detects interesting moments in a session.
type BookmarkDetector struct {
	thresholds BookmarkThresholds

	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// Edge triggers, so a long crisis reports once
	inCrisis bool
	inSwarm  bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int, th BookmarkThresholds) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		thresholds:  th,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Reset forgets history, for a new session.
func (bd *BookmarkDetector) Reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.inCrisis = false
	bd.inSwarm = false
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkCloseCall(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSwarm(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStaminaCrisis(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkWakeSurge(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkCloseCall fires when a worm came near without catching the player.
func (bd *BookmarkDetector) checkCloseCall(stats WindowStats) *Bookmark {
	if stats.ActiveWormMean == 0 || stats.Collisions > 0 {
		return nil
	}
	if stats.NearestP10 >= bd.thresholds.CloseCallDist {
		return nil
	}
	return &Bookmark{
		Session:     stats.Session,
		Type:        BookmarkCloseCall,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Nearest worm p10 %.0f units", stats.NearestP10),
	}
}

func (bd *BookmarkDetector) checkSwarm(stats WindowStats) *Bookmark {
	swarming := stats.ActiveWormMean >= bd.thresholds.SwarmWorms
	defer func() { bd.inSwarm = swarming }()
	if !swarming || bd.inSwarm {
		return nil
	}
	return &Bookmark{
		Session:     stats.Session,
		Type:        BookmarkSwarm,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%.1f worms active on average", stats.ActiveWormMean),
	}
}

func (bd *BookmarkDetector) checkStaminaCrisis(stats WindowStats) *Bookmark {
	crisis := stats.StaminaP10 < bd.thresholds.CrisisStamina
	defer func() { bd.inCrisis = crisis }()
	if !crisis || bd.inCrisis {
		return nil
	}
	return &Bookmark{
		Session:     stats.Session,
		Type:        BookmarkStaminaCrisis,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Stamina p10 fell to %.1f", stats.StaminaP10),
	}
}

// checkWakeSurge fires when activations exceed twice the rolling average.
func (bd *BookmarkDetector) checkWakeSurge(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 2 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Activations
	}
	avg := float64(total) / float64(len(history))

	if stats.Activations < 3 || float64(stats.Activations) <= avg*2.0 {
		return nil
	}
	return &Bookmark{
		Session:     stats.Session,
		Type:        BookmarkWakeSurge,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d activations vs %.1f average", stats.Activations, avg),
	}
}
