// Package scoring keeps the score of the game in progress, the timed power-up
// multiplier and the session's high score history.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Outcomes recorded for a finished game.
const (
	OutcomeCollision = "collision"
	OutcomeBoardFull = "board full"
)

// Scoring manages the score of one game. A new Scoring is created per game;
// the storage carries finished games, and with them the high score, across
// restarts.
type Scoring struct {
	// public
	CurrentScore     int
	FoodEaten        int
	PowerUpsTaken    int
	Multiplier       int
	MultiplierExpiry time.Duration // simulated time; meaningful while Multiplier > 1
	// private
	storage              ScoreStorage
	history              ScoreHistory
	difficulty           string
	difficultyMultiplier float64
	basePoints           int
	highScore            int
	finished             bool
}

// InitScoring creates the score keeper for a new game at the given difficulty.
// It loads the finished games of that difficulty from storage; carried is a
// high score known to the caller that storage may not hold.
func InitScoring(difficulty string, difficultyMultiplier float64, basePoints int, carried int, storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		Multiplier:           1,
		storage:              storage,
		difficulty:           difficulty,
		difficultyMultiplier: difficultyMultiplier,
		basePoints:           basePoints,
		highScore:            carried,
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load score history: %w", err)
	}

	filteredEntries := []ScoreHistoryEntry{}
	for _, entry := range allEntries {
		if entry.Difficulty == difficulty {
			filteredEntries = append(filteredEntries, entry)
		}
	}

	sort.SliceStable(filteredEntries, func(i, j int) bool {
		return filteredEntries[i].Score > filteredEntries[j].Score
	})

	s.history.Entries = filteredEntries
	s.history.Attempts = len(filteredEntries)
	if len(filteredEntries) > 0 {
		s.history.HighScoreEntry = &filteredEntries[0]
		s.highScore = max(s.highScore, filteredEntries[0].Score)
	}

	s.history.CurrentScore = &ScoreHistoryEntry{
		Difficulty: difficulty,
	}

	return s, nil
}

// FoodPoints is what the next food is worth:
// floor(base * power-up multiplier * difficulty multiplier).
func (s *Scoring) FoodPoints() int {
	return int(math.Floor(float64(s.basePoints*s.Multiplier) * s.difficultyMultiplier))
}

// ScoreFood adds the points for one food and returns them.
func (s *Scoring) ScoreFood() int {
	points := s.FoodPoints()
	s.CurrentScore += points
	s.FoodEaten++
	s.history.CurrentScore.Score = s.CurrentScore
	return points
}

// ApplyMultiplier multiplies the power-up multiplier by factor until
// now+duration. A second pickup stacks and restarts the deadline.
func (s *Scoring) ApplyMultiplier(factor int, now, duration time.Duration) {
	s.Multiplier *= factor
	s.MultiplierExpiry = now + duration
	s.PowerUpsTaken++
}

// CountPowerUp records a pickup that does not touch the score.
func (s *Scoring) CountPowerUp() {
	s.PowerUpsTaken++
}

// ExpireMultiplier drops the multiplier back to 1 once its deadline passed.
// It reports whether it did.
func (s *Scoring) ExpireMultiplier(now time.Duration) bool {
	if s.Multiplier == 1 || now < s.MultiplierExpiry {
		return false
	}
	s.Multiplier = 1
	s.MultiplierExpiry = 0
	return true
}

// MultiplierRemaining is the simulated time left on the multiplier.
func (s *Scoring) MultiplierRemaining(now time.Duration) time.Duration {
	if s.Multiplier == 1 {
		return 0
	}
	return max(s.MultiplierExpiry-now, 0)
}

// Finish closes the game: it updates the high score and saves the entry. It
// is a no-op after the first call.
func (s *Scoring) Finish(outcome string, length int, at time.Time) error {
	if s.finished {
		return nil
	}
	s.finished = true

	s.history.CurrentScore.Score = s.CurrentScore
	s.history.CurrentScore.Length = length
	s.history.CurrentScore.Outcome = outcome
	s.history.CurrentScore.Timestamp = at
	s.highScore = max(s.highScore, s.CurrentScore)

	return s.SaveEntries()
}

// Finished reports whether Finish was called.
func (s *Scoring) Finished() bool {
	return s.finished
}

// SaveEntries appends the current game to the stored entries.
func (s *Scoring) SaveEntries() error {
	if s.history.CurrentScore == nil {
		return nil
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load scores for saving: %w", err)
	}
	allEntries = append(allEntries, *s.history.CurrentScore)

	if err := s.storage.SaveAll(allEntries); err != nil {
		return fmt.Errorf("could not save scores: %w", err)
	}
	return nil
}

// HighScore is the best score of the session, the current game included once
// it finished.
func (s *Scoring) HighScore() int {
	return s.highScore
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetHighScoreEntry() *ScoreHistoryEntry {
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts
}

func (s *Scoring) GotHighScore() bool {
	return s.history.GotHighScore()
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}
