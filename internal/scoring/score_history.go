package scoring

import (
	"sort"
	"time"
)

// ScoreHistory holds the finished games of one difficulty plus the game in
// progress.
type ScoreHistory struct {
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
	CurrentScore   *ScoreHistoryEntry
	Attempts       int
}

// ScoreHistoryEntry is the record of a single game.
type ScoreHistoryEntry struct {
	Difficulty string
	Score      int
	Length     int
	Outcome    string
	Timestamp  time.Time
}

// GetHighScoreEntry returns the best finished game, or nil before the first one.
func (sh ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N entries, the current game included,
// sorted by score.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	entriesCopy := make([]ScoreHistoryEntry, 0, len(sh.Entries)+1)
	entriesCopy = append(entriesCopy, sh.Entries...)
	if sh.CurrentScore != nil {
		entriesCopy = append(entriesCopy, *sh.CurrentScore)
	}

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if the current score beats every finished game.
func (sh ScoreHistory) GotHighScore() bool {
	if sh.CurrentScore == nil {
		return false
	}
	if sh.HighScoreEntry == nil {
		return sh.CurrentScore.Score > 0
	}
	return sh.CurrentScore.Score > sh.HighScoreEntry.Score
}
