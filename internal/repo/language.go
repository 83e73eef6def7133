package repo

import (
	"context"
	"log/slog"
	"sync"
)

// LanguageRepo holds the active interface language code and persists it to
// its own slot. The validity predicate is injected so the repo does not
// depend on the translation tables; anything the predicate rejects, garbage
// in storage included, falls back to the configured default.
type LanguageRepo struct {
	slots    Slots
	log      *slog.Logger
	fallback string
	valid    func(code string) bool

	mu   sync.Mutex
	code string
}

// NewLanguageRepo constructs the repo. Call Load before first use.
func NewLanguageRepo(slots Slots, log *slog.Logger, fallback string, valid func(string) bool) *LanguageRepo {
	return &LanguageRepo{slots: slots, log: log, fallback: fallback, valid: valid, code: fallback}
}

// Load reads the persisted language code. Absence, read errors, and
// unsupported codes all yield the fallback, never an error.
func (r *LanguageRepo) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.code = r.fallback

	stored, ok, err := r.slots.Read(ctx, SlotLanguage)
	if err != nil {
		r.log.Warn("failed to load language preference", "error", err)
		return
	}
	if ok && r.valid(stored) {
		r.code = stored
	}
}

// Code returns the active language code.
func (r *LanguageRepo) Code() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// Set activates and persists a language code. The caller is responsible for
// validating the code first; write failures are logged, not returned.
func (r *LanguageRepo) Set(ctx context.Context, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.code = code
	if err := r.slots.Write(ctx, SlotLanguage, code); err != nil {
		r.log.Error("failed to persist language preference", "error", err)
	}
}
