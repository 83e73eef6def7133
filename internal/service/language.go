package service

import (
	"context"
	"fmt"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
	"github.com/jyvais/backend/internal/repo"
)

// LanguageService exposes the active interface language.
type LanguageService struct {
	langs *repo.LanguageRepo
}

// NewLanguageService constructs a LanguageService backed by the provided repo.
func NewLanguageService(langs *repo.LanguageRepo) *LanguageService {
	return &LanguageService{langs: langs}
}

// Code returns the active language code.
func (s *LanguageService) Code() string {
	return s.langs.Code()
}

// Set activates and persists a language. Only exact supported codes are
// accepted; fuzzy matching is for reads, not writes.
func (s *LanguageService) Set(ctx context.Context, code string) error {
	if !i18n.Supported(code) {
		return fmt.Errorf("service.LanguageService.Set: %w: unsupported language %q", domain.ErrValidation, code)
	}
	s.langs.Set(ctx, code)
	return nil
}
