package mock

import "github.com/fwojciec/litdoc"

var _ litdoc.LanguageService = (*LanguageService)(nil)

// LanguageService is a mock implementation of litdoc.LanguageService.
type LanguageService struct {
	FindLanguageFn func(ext string) (*litdoc.Language, error)
	LanguagesFn    func() []*litdoc.Language
}

func (s *LanguageService) FindLanguage(ext string) (*litdoc.Language, error) {
	return s.FindLanguageFn(ext)
}

func (s *LanguageService) Languages() []*litdoc.Language {
	return s.LanguagesFn()
}
