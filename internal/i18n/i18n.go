// Package i18n translates the user-facing messages of the API into English,
// Italian and Portuguese, picking the locale from Accept-Language.
package i18n

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client asks for nothing we support.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator maps message keys to text per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: getDefaultMessages()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has messages.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale, then in DefaultLocale,
// and finally the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the supported language with the highest q-value in the
// request's Accept-Language header. Regions are ignored ("it-IT" is "it"),
// ties keep header order and q=0 entries are refused.
func GetLocale(c *gin.Context) string {
	return NegotiateLocale(c.GetHeader(AcceptLanguageHeader), GetTranslator())
}

type langPref struct {
	lang string
	q    float64
}

// NegotiateLocale resolves an Accept-Language value against t.
func NegotiateLocale(header string, t *Translator) string {
	if header == "" {
		return DefaultLocale
	}

	var prefs []langPref
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(fields[0]))
		if idx := strings.IndexByte(lang, '-'); idx > 0 {
			lang = lang[:idx]
		}
		if lang == "" {
			continue
		}

		q := 1.0
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if v, ok := strings.CutPrefix(param, "q="); ok {
				if parsed, err := strconv.ParseFloat(v, 64); err == nil {
					q = parsed
				}
			}
		}
		if q > 0 {
			prefs = append(prefs, langPref{lang: lang, q: q})
		}
	}

	sort.SliceStable(prefs, func(i, j int) bool { return prefs[i].q > prefs[j].q })
	for _, p := range prefs {
		if t.Supports(p.lang) {
			return p.lang
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.recipe_not_found":       "Recipe not found",
			"error.slot_full":              "This meal already has the maximum number of recipes",
			"error.recipe_not_in_slot":     "The recipe is not planned for this meal",
			"error.invalid_day":            "Unknown day of the week",
			"error.invalid_slot":           "Unknown meal, use breakfast, lunch or dinner",
			"error.validation.recipe":      "recipe: is required",
			"error.price_reload_failed":    "The price list could not be reloaded",
			"error.price_reload_suspended": "Price reloads are paused after repeated failures, try again later",
			"error.catalog_not_loaded":     "The recipe catalog is not loaded",
			"error.route_not_found":        "No endpoint matches this path",

			"success.recipe_assigned":   "Recipe added to the plan",
			"success.recipe_unassigned": "Recipe removed from the plan",
			"success.plan_cleared":      "Plan cleared",
			"success.prices_reloaded":   "Prices reloaded",
		},
		"it": {
			"error.invalid_request_body":   "Corpo della richiesta non valido",
			"error.internal_error":         "Si è verificato un errore imprevisto",
			"error.rate_limit_exceeded":    "Troppe richieste, riprova più tardi",
			"error.recipe_not_found":       "Ricetta non trovata",
			"error.slot_full":              "Questo pasto ha già il numero massimo di ricette",
			"error.recipe_not_in_slot":     "La ricetta non è pianificata per questo pasto",
			"error.invalid_day":            "Giorno della settimana sconosciuto",
			"error.invalid_slot":           "Pasto sconosciuto, usa colazione, pranzo o cena",
			"error.validation.recipe":      "recipe: campo obbligatorio",
			"error.price_reload_failed":    "Impossibile ricaricare il listino prezzi",
			"error.price_reload_suspended": "Ricaricamento prezzi sospeso dopo errori ripetuti, riprova più tardi",
			"error.catalog_not_loaded":     "Il ricettario non è caricato",
			"error.route_not_found":        "Nessun endpoint corrisponde a questo percorso",

			"success.recipe_assigned":   "Ricetta aggiunta al piano",
			"success.recipe_unassigned": "Ricetta rimossa dal piano",
			"success.plan_cleared":      "Piano svuotato",
			"success.prices_reloaded":   "Prezzi ricaricati",
		},
		"pt": {
			"error.invalid_request_body":   "Corpo da requisição inválido",
			"error.internal_error":         "Ocorreu um erro inesperado",
			"error.rate_limit_exceeded":    "Muitas requisições, tente novamente mais tarde",
			"error.recipe_not_found":       "Receita não encontrada",
			"error.slot_full":              "Esta refeição já tem o número máximo de receitas",
			"error.recipe_not_in_slot":     "A receita não está planejada para esta refeição",
			"error.invalid_day":            "Dia da semana desconhecido",
			"error.invalid_slot":           "Refeição desconhecida, use breakfast, lunch ou dinner",
			"error.validation.recipe":      "recipe: é obrigatório",
			"error.price_reload_failed":    "Não foi possível recarregar a lista de preços",
			"error.price_reload_suspended": "Recarga de preços suspensa após falhas repetidas, tente novamente mais tarde",
			"error.catalog_not_loaded":     "O catálogo de receitas não está carregado",
			"error.route_not_found":        "Nenhum endpoint corresponde a este caminho",

			"success.recipe_assigned":   "Receita adicionada ao plano",
			"success.recipe_unassigned": "Receita removida do plano",
			"success.plan_cleared":      "Plano limpo",
			"success.prices_reloaded":   "Preços recarregados",
		},
	}
}
