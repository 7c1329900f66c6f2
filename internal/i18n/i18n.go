// Package i18n provides internationalization support for the portfolio service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

// supported lists the locales with messages; the first one is the fallback.
var supported = []language.Tag{language.English, language.Portuguese, language.Dutch}

var matcher = language.NewMatcher(supported)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the shared translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the best supported locale from the Accept-Language header.
func GetLocale(c *gin.Context) string {
	return MatchLocale(c.GetHeader(AcceptLanguageHeader))
}

// MatchLocale matches an Accept-Language value against the supported locales.
func MatchLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supported[index].Base()
	return base.String()
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.invalid_credentials":     "Invalid username or password",
			"error.api_key_required":        "API key is required",
			"error.invalid_api_key":         "Invalid API key",
			"error.forbidden":               "Forbidden",
			"error.not_found":               "Not found",
			"error.unknown_collection":      "Unknown collection",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.validation.page_size":    "page_size: must be a positive integer",
			"error.validation.page":         "page: must be a non-negative integer",
			"error.validation.search_query": "q: a search query is required",
			"error.invalid_token":           "Invalid or expired token",
			"error.token_required":          "Authentication token is required",
			"error.timeout":                 "The request took too long",
			"error.unavailable":             "Content is temporarily unavailable",
			"error.invalid_content":         "Content failed validation",

			"success.cache_cleared": "Cache cleared",
			"success.cache_evicted": "Cache entry evicted",
		},
		"pt": {
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.unauthorized":            "Não autorizado",
			"error.invalid_credentials":     "Usuário ou senha inválidos",
			"error.api_key_required":        "Chave de API é obrigatória",
			"error.invalid_api_key":         "Chave de API inválida",
			"error.forbidden":               "Proibido",
			"error.not_found":               "Não encontrado",
			"error.unknown_collection":      "Coleção desconhecida",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.validation.page_size":    "page_size: deve ser um inteiro positivo",
			"error.validation.page":         "page: deve ser um inteiro não negativo",
			"error.validation.search_query": "q: o termo de busca é obrigatório",
			"error.invalid_token":           "Token inválido ou expirado",
			"error.token_required":          "Token de autenticação é obrigatório",
			"error.timeout":                 "A requisição demorou demais",
			"error.unavailable":             "Conteúdo temporariamente indisponível",
			"error.invalid_content":         "O conteúdo falhou na validação",

			"success.cache_cleared": "Cache limpo",
			"success.cache_evicted": "Entrada do cache removida",
		},
		"nl": {
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.unauthorized":            "Niet geautoriseerd",
			"error.invalid_credentials":     "Ongeldige gebruikersnaam of wachtwoord",
			"error.api_key_required":        "API-sleutel is vereist",
			"error.invalid_api_key":         "Ongeldige API-sleutel",
			"error.forbidden":               "Verboden",
			"error.not_found":               "Niet gevonden",
			"error.unknown_collection":      "Onbekende collectie",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.validation.page_size":    "page_size: moet een positief geheel getal zijn",
			"error.validation.page":         "page: moet een niet-negatief geheel getal zijn",
			"error.validation.search_query": "q: een zoekopdracht is vereist",
			"error.invalid_token":           "Ongeldig of verlopen token",
			"error.token_required":          "Authenticatietoken is vereist",
			"error.timeout":                 "Het verzoek duurde te lang",
			"error.unavailable":             "Inhoud is tijdelijk niet beschikbaar",
			"error.invalid_content":         "Inhoud is niet geldig",

			"success.cache_cleared": "Cache geleegd",
			"success.cache_evicted": "Cache-item verwijderd",
		},
	}
}
