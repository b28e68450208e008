package game

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/logger"
	"github.com/redchainhq/redchain/internal/models"
	"github.com/redchainhq/redchain/internal/storage"
	"github.com/redchainhq/redchain/internal/utils"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrThemeNotFound = errors.New("theme not found")
	ErrThemeLocked   = errors.New("theme is locked")
	ErrEmptyTitle    = errors.New("habit title cannot be empty")
)

// Store owns the authoritative GameState and is the single mutation surface.
// Every operation takes the mutex, applies one whole transition, persists
// write-through, and releases; user intents and the rollover tick can never
// interleave a read-modify-write.
//
// Persistence is best-effort: when a save fails the in-memory state stays
// authoritative for the session and the failure is kept for the caller to
// surface.
type Store struct {
	mu    sync.Mutex
	state models.GameState
	doc   storage.Document
	vault storage.BlobStore

	saveErr error
}

// Open loads the persisted document and normalizes it.
func Open(doc storage.Document, vault storage.BlobStore) (*Store, error) {
	state, err := doc.Load()
	if err != nil {
		return nil, err
	}
	Normalize(&state)
	return &Store{state: state, doc: doc, vault: vault}, nil
}

// NewFromState wraps an already-built state (fresh init, tests).
func NewFromState(state models.GameState, doc storage.Document, vault storage.BlobStore) *Store {
	Normalize(&state)
	return &Store{state: state, doc: doc, vault: vault}
}

// Normalize repairs a loaded document in place: missing fields from older
// versions get defaults, the theme catalog is merged by ID (new catalog
// entries appear, unlock flags survive), the rank index is re-derived from
// XP, and the active theme is forced back onto an unlocked one.
func Normalize(state *models.GameState) {
	if state.Habits == nil {
		state.Habits = []models.Habit{}
	}
	for i := range state.Habits {
		if state.Habits[i].CompletedDays == nil {
			state.Habits[i].CompletedDays = []string{}
		}
	}
	if state.ProofLog == nil {
		state.ProofLog = []models.Proof{}
	}

	merged := models.DefaultGameState().Themes
	for i := range merged {
		if prev := state.FindTheme(merged[i].ID); prev != nil && prev.Unlocked {
			merged[i].Unlocked = true
		}
	}
	state.Themes = merged

	if state.Stats.Points < 0 {
		state.Stats.Points = 0
	}
	if state.Stats.TotalXP < 0 {
		state.Stats.TotalXP = 0
	}
	state.Stats.RankIndex = RankForXP(state.Stats.TotalXP)

	active := state.FindTheme(state.ActiveThemeID)
	if active == nil || !active.Unlocked {
		state.ActiveThemeID = constants.DefaultThemeID
	}
}

// persist writes the current state through to durable storage. Failures are
// logged and remembered, never fatal.
func (s *Store) persist() {
	if err := s.doc.Save(s.state); err != nil {
		logger.Warn("failed to persist game state; in-memory state remains authoritative", "error", err)
		s.saveErr = err
		return
	}
	s.saveErr = nil
}

// SaveErr reports whether the most recent transition failed to persist.
func (s *Store) SaveErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// State returns a snapshot of the current state for read-only views.
func (s *Store) State() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AddHabit creates a habit and prepends it to the collection.
func (s *Store) AddHabit(title string, now time.Time) (models.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Habit{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habit := models.Habit{
		ID:            uuid.New().String(),
		Title:         title,
		CompletedDays: []string{},
		CreatedAt:     now,
	}
	s.state.Habits = append([]models.Habit{habit}, s.state.Habits...)
	s.persist()
	return habit, nil
}

// DeleteHabit removes the habit and cascades to its proof records and their
// vault blobs. Blob deletion is best-effort; an orphaned blob is accepted.
func (s *Store) DeleteHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.FindHabit(id) == nil {
		return ErrHabitNotFound
	}

	habits := s.state.Habits[:0:0]
	for _, h := range s.state.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	s.state.Habits = habits

	var doomed []string
	proofs := s.state.ProofLog[:0:0]
	for _, p := range s.state.ProofLog {
		if p.HabitID == id {
			doomed = append(doomed, p.ID)
			continue
		}
		proofs = append(proofs, p)
	}
	s.state.ProofLog = proofs
	s.persist()

	for _, proofID := range doomed {
		if err := s.vault.Delete(proofID); err != nil {
			logger.Warn("failed to delete proof blob", "proof", proofID, "error", err)
		}
	}
	return nil
}

// CompletionResult reports the outcome of RecordCompletion.
type CompletionResult struct {
	Proof   models.Proof
	Awarded bool // false when the habit was already completed today

	// VaultErr is set when the proof image could not be stored. The
	// completion is still recorded; the caller may offer a retry.
	VaultErr error
}

// RecordCompletion marks the habit complete for the given instant's day.
// Idempotent per day: a second call is a full no-op awarding nothing and
// creating no second proof. The image write and the state mutation hit two
// separate stores with no cross-store transaction; an image failure never
// blocks the completion.
func (s *Store) RecordCompletion(habitID string, image []byte, now time.Time) (CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit := s.state.FindHabit(habitID)
	if habit == nil {
		return CompletionResult{}, ErrHabitNotFound
	}

	today := utils.DateKey(now)
	if habit.CompletedOn(today) {
		return CompletionResult{Awarded: false}, nil
	}

	proof := models.Proof{
		ID:      fmt.Sprintf("proof_%d", now.UnixMilli()),
		HabitID: habitID,
		Date:    now,
	}

	var vaultErr error
	if len(image) > 0 {
		if vaultErr = s.vault.Put(proof.ID, image); vaultErr != nil {
			logger.Warn("failed to store proof image", "proof", proof.ID, "error", vaultErr)
		}
	}

	habit.CompletedDays = append(habit.CompletedDays, today)
	s.state.ProofLog = append([]models.Proof{proof}, s.state.ProofLog...)
	s.state.Stats = ApplyCompletion(s.state.Stats)
	s.persist()

	return CompletionResult{Proof: proof, Awarded: true, VaultErr: vaultErr}, nil
}

// ThemeResult reports the outcome of UnlockTheme.
type ThemeResult struct {
	Theme     models.ColorTheme
	Purchased bool // false when already unlocked or points < cost
	Points    int  // balance after the attempt
}

// UnlockTheme spends points to unlock a theme. The check and the deduction
// happen against the same snapshot under the store lock, so a double spend
// cannot slip through concurrent intents.
func (s *Store) UnlockTheme(id string) (ThemeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := s.state.FindTheme(id)
	if theme == nil {
		return ThemeResult{}, ErrThemeNotFound
	}

	stats, updated, ok := PurchaseTheme(s.state.Stats, *theme)
	if !ok {
		return ThemeResult{Theme: *theme, Purchased: false, Points: s.state.Stats.Points}, nil
	}

	s.state.Stats = stats
	*theme = updated
	s.persist()
	return ThemeResult{Theme: updated, Purchased: true, Points: stats.Points}, nil
}

// SelectTheme makes an already-unlocked theme active.
func (s *Store) SelectTheme(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := s.state.FindTheme(id)
	if theme == nil {
		return ErrThemeNotFound
	}
	if !theme.Unlocked {
		return ErrThemeLocked
	}
	s.state.ActiveThemeID = id
	s.persist()
	return nil
}

// Reset replaces the whole GameState with fresh defaults. The last check date
// is seeded to today so the next rollover cannot apply a spurious penalty.
// Existing proof blobs are deleted best-effort before the log is dropped.
// The confirmation phrase is checked at the CLI boundary; by the time this
// runs the decision is final.
func (s *Store) Reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.state.ProofLog {
		if err := s.vault.Delete(p.ID); err != nil {
			logger.Warn("failed to delete proof blob during reset", "proof", p.ID, "error", err)
		}
	}

	state := models.DefaultGameState()
	state.LastCheckDate = utils.DateKey(now)
	s.state = state
	s.persist()
}

// ProofImage fetches the stored image for a proof, nil when absent.
func (s *Store) ProofImage(proofID string) ([]byte, error) {
	return s.vault.Get(proofID)
}
