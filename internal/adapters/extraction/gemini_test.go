package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func geminiStub(t *testing.T, status int, modelText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		// The request must carry a text part and an inline image part.
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		contents := req["contents"].([]any)
		parts := contents[0].(map[string]any)["parts"].([]any)
		require.Len(t, parts, 2)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": modelText}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestGeminiExtractor_ParsesFencedJSON(t *testing.T) {
	modelText := "```json\n" + `{
		"ruc": "20510556594",
		"razon_social": "Distribuidora Sol SAC",
		"direccion": "Av. Brasil 500, Lima",
		"fecha_emision": "05/03/2024",
		"tipo_comprobante": "factura",
		"serie": "F001",
		"numero": "0001234",
		"base_imponible": "29.66",
		"igv": 5.34,
		"total": "35.00",
		"moneda": "PEN",
		"items": [
			{"descripcion": "Gaseosa 3L", "cantidad": 2, "precio_unitario": "8.50", "total": "17.00"},
			{"descripcion": "Galletas", "cantidad": "6", "precio_unitario": 3, "total": 18}
		]
	}` + "\n```"

	srv := geminiStub(t, http.StatusOK, modelText)
	defer srv.Close()

	extractor := NewGeminiExtractor("test-key", "gemini-flash-latest").WithBaseURL(srv.URL)
	got, err := extractor.ExtractReceipt(context.Background(), domain.KindPurchase, []byte("fake-jpeg"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, domain.KindPurchase, got.Kind)
	assert.Equal(t, "20510556594", got.RUC)
	assert.Equal(t, "Distribuidora Sol SAC", got.RazonSocial)
	assert.Equal(t, "05/03/2024", got.FechaEmision)
	assert.Equal(t, "F001", got.Serie)
	assert.True(t, got.BaseImponible.Equal(mustDecimal(t, "29.66")))
	assert.True(t, got.IGV.Equal(mustDecimal(t, "5.34")))
	assert.True(t, got.Total.Equal(mustDecimal(t, "35.00")))
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Gaseosa 3L", got.Items[0].Descripcion)
	assert.True(t, got.Items[1].Cantidad.Equal(mustDecimal(t, "6")))
}

func TestGeminiExtractor_MissingNumericsAreZero(t *testing.T) {
	modelText := `{"ruc": "10456789012", "razon_social": "Bodega Rosa", "fecha_emision": "", "total": null}`
	srv := geminiStub(t, http.StatusOK, modelText)
	defer srv.Close()

	extractor := NewGeminiExtractor("test-key", "gemini-flash-latest").WithBaseURL(srv.URL)
	got, err := extractor.ExtractReceipt(context.Background(), domain.KindSale, []byte("fake"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, domain.KindSale, got.Kind)
	assert.True(t, got.Total.IsZero())
	assert.True(t, got.IGV.IsZero())
	assert.True(t, got.BaseImponible.IsZero())
	assert.Empty(t, got.FechaEmision)
}

func TestGeminiExtractor_MalformedText(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, "lo siento, no puedo leer este documento")
	defer srv.Close()

	extractor := NewGeminiExtractor("test-key", "gemini-flash-latest").WithBaseURL(srv.URL)
	_, err := extractor.ExtractReceipt(context.Background(), domain.KindPurchase, []byte("fake"), "image/jpeg")
	assert.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestGeminiExtractor_UpstreamError(t *testing.T) {
	srv := geminiStub(t, http.StatusInternalServerError, "")
	defer srv.Close()

	extractor := NewGeminiExtractor("test-key", "gemini-flash-latest").WithBaseURL(srv.URL)
	_, err := extractor.ExtractReceipt(context.Background(), domain.KindPurchase, []byte("fake"), "image/jpeg")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestCleanModelJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanModelJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanModelJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanModelJSON(`  {"a":1}  `))
}
