package i18n

import (
	"context"
	"strings"

	"prolink/database"
	"prolink/models"
	"prolink/utils"
)

const baseLanguage = "en"

// TranslationService is the localization boundary: an opaque read-only
// lookup of label trees by language code, unrelated to entity storage
// semantics.
type TranslationService interface {
	// Translations returns the label tree for the language tag's primary
	// subtag, falling back to the base language when no bundle exists.
	Translations(ctx context.Context, lang string) (map[string]any, error)
}

// DefaultTranslationService reads bundles from the translations
// collection.
type DefaultTranslationService struct {
	col *database.Collection
}

func NewDefaultTranslationService(store *database.Store) (*DefaultTranslationService, error) {
	col, err := store.Resolve(database.EntityTranslations)
	if err != nil {
		return nil, err
	}
	return &DefaultTranslationService{col: col}, nil
}

func (s *DefaultTranslationService) Translations(ctx context.Context, lang string) (map[string]any, error) {
	primary := strings.SplitN(lang, "-", 2)[0]
	for _, key := range []string{primary, baseLanguage} {
		doc, err := s.col.FindOne(ctx, func(d any) bool {
			b, ok := d.(models.TranslationBundle)
			return ok && b.Lang == key
		})
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc.(models.TranslationBundle).Labels, nil
		}
	}
	return nil, utils.NotFoundError("no translation bundle for language " + lang)
}
