package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventaris/internal/i18n"
)

func TestResolve(t *testing.T) {
	catalog := i18n.NewCatalog("en-US")

	assert.Equal(t, "en-US", catalog.Resolve(""))
	assert.Equal(t, "en-US", catalog.Resolve(";;;"))
	assert.Equal(t, "en-US", catalog.Resolve("fr-FR"))
	assert.Equal(t, "pt-BR", catalog.Resolve("pt-BR"))
	assert.Equal(t, "pt-BR", catalog.Resolve("pt"))
	assert.Equal(t, "es-ES", catalog.Resolve("es"))
	assert.Equal(t, "pt-BR", catalog.Resolve("de, pt;q=0.8, en;q=0.5"))
}

func TestResolveQualityOrdering(t *testing.T) {
	catalog := i18n.NewCatalog("en-US")

	assert.Equal(t, "es-ES", catalog.Resolve("es-ES;q=0.9, pt-BR;q=0.4"))
}

func TestNewCatalogUnsupportedDefault(t *testing.T) {
	catalog := i18n.NewCatalog("xx-XX")

	assert.Equal(t, "en-US", catalog.Resolve(""))
}

func TestMessage(t *testing.T) {
	catalog := i18n.NewCatalog("en-US")

	assert.Equal(t, "Product Not Found", catalog.Message("en-US", "error.title.product.not.found"))
	assert.Equal(t, "Produto Não Encontrado", catalog.Message("pt-BR", "error.title.product.not.found"))
	assert.Equal(t, "Producto No Encontrado", catalog.Message("es-ES", "error.title.product.not.found"))
}

func TestMessageFallsBackToDefaultLocale(t *testing.T) {
	catalog := i18n.NewCatalog("en-US")

	assert.Equal(t, "Product Not Found", catalog.Message("fr-FR", "error.title.product.not.found"))
}

func TestMessageUnknownKeyReturnsKey(t *testing.T) {
	catalog := i18n.NewCatalog("en-US")

	assert.Equal(t, "no.such.key", catalog.Message("en-US", "no.such.key"))
}

func TestMessageWithArgs(t *testing.T) {
	catalog := i18n.NewCatalog("en-US")

	assert.Equal(t, "parameter 'minPrice' has an invalid value",
		catalog.Message("en-US", "malformed.parameter", "minPrice"))
}
