package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Shared(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{"english", ErrKeySlotFull, "en", "This meal already has the maximum number of recipes"},
		{"italian", ErrKeySlotFull, "it", "Questo pasto ha già il numero massimo di ricette"},
		{"portuguese", ErrKeySlotFull, "pt", "Esta refeição já tem o número máximo de receitas"},
		{"empty locale", ErrKeySlotFull, "", "This meal already has the maximum number of recipes"},
		{"unsupported locale", ErrKeySlotFull, "fr", "This meal already has the maximum number of recipes"},
		{"unknown key", "error.unknown", "it", "error.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestNegotiateLocale(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		header   string
		expected string
	}{
		{"", DefaultLocale},
		{"it", "it"},
		{"it-IT,it;q=0.9", "it"},
		{"PT-br", "pt"},
		{"en-US,en;q=0.9,pt;q=0.8", "en"},
		{"pt;q=0.4,it;q=0.8", "it"},
		{"nl,de;q=0.9,it;q=0.5", "it"},
		{"it;q=0,pt;q=0.1", "pt"},
		{"it;q=abc", "it"},
		{"nl", DefaultLocale},
		{" , ;q=1", DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.expected, NegotiateLocale(tt.header, translator))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/plan", nil)
	assert.Equal(t, DefaultLocale, GetLocale(c))

	c.Request.Header.Set(AcceptLanguageHeader, "de-DE,pt-BR;q=0.7")
	assert.Equal(t, "pt", GetLocale(c))
}

func TestTranslator_AllLocalesHaveEveryKey(t *testing.T) {
	messages := getDefaultMessages()
	for locale, m := range messages {
		assert.Len(t, m, len(messages[DefaultLocale]), "locale %s", locale)
		for key := range messages[DefaultLocale] {
			_, ok := m[key]
			assert.True(t, ok, "%s missing in %s", key, locale)
		}
	}
}

func TestKeysAreTranslated(t *testing.T) {
	translator := NewTranslator()
	keys := []string{
		ErrKeyInvalidRequestBody, ErrKeyInternalError, ErrKeyRateLimitExceeded,
		ErrKeyRecipeNotFound, ErrKeySlotFull, ErrKeyRecipeNotInSlot,
		ErrKeyInvalidDay, ErrKeyInvalidSlot, ErrKeyValidationRecipe,
		ErrKeyPriceReloadFailed, ErrKeyPriceReloadSuspended, ErrKeyCatalogNotLoaded, ErrKeyRouteNotFound,
		SuccessKeyRecipeAssigned, SuccessKeyRecipeUnassigned, SuccessKeyPlanCleared, SuccessKeyPricesReloaded,
	}
	for _, key := range keys {
		assert.NotEqual(t, key, translator.Translate(key, DefaultLocale), key)
	}
}
