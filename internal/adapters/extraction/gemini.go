// Package extraction reads structured receipt data out of photographed
// Peruvian tax documents using the Gemini generateContent REST API.
package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/core/ports"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Claves exactas the model is instructed to return. Keeping them in one place
// keeps the prompt and the response decoder in sync.
const purchasePrompt = `Analiza este documento tributario peruano (Factura o Boleta de Venta) recibido por una COMPRA.
Extrae y devuelve SOLO este JSON con estas claves exactas:
{
    "ruc": "El RUC del emisor (ej: 20510556594)",
    "razon_social": "La razon social del emisor",
    "direccion": "La direccion del emisor (o cadena vacia)",
    "fecha_emision": "La fecha de emision (DD/MM/YYYY)",
    "tipo_comprobante": "factura o boleta",
    "serie": "La serie del comprobante (ej: F001)",
    "numero": "El numero del comprobante",
    "base_imponible": "El monto gravado sin IGV (numero decimal)",
    "igv": "El monto del IGV (numero decimal)",
    "total": "El monto total (numero decimal)",
    "moneda": "PEN o USD",
    "items": [{"descripcion": "...", "cantidad": 0, "precio_unitario": 0, "total": 0}]
}
Si un campo no aparece en el documento usa cadena vacia o 0.`

const salePrompt = `Analiza este documento tributario peruano (Factura o Boleta de Venta) emitido por una VENTA.
Extrae y devuelve SOLO este JSON con estas claves exactas:
{
    "ruc": "El RUC o DNI del cliente (o cadena vacia)",
    "razon_social": "El nombre o razon social del cliente (o cadena vacia)",
    "direccion": "La direccion del cliente (o cadena vacia)",
    "fecha_emision": "La fecha de emision (DD/MM/YYYY)",
    "tipo_comprobante": "factura o boleta",
    "serie": "La serie del comprobante (ej: B001)",
    "numero": "El numero del comprobante",
    "base_imponible": "El monto gravado sin IGV (numero decimal)",
    "igv": "El monto del IGV (numero decimal)",
    "total": "El monto total (numero decimal)",
    "moneda": "PEN o USD",
    "items": [{"descripcion": "...", "cantidad": 0, "precio_unitario": 0, "total": 0}]
}
Si un campo no aparece en el documento usa cadena vacia o 0.`

// GeminiExtractor calls the Gemini multimodal API over plain HTTP. One
// attempt per scan; retry policy belongs to the caller.
type GeminiExtractor struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ ports.ReceiptExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor creates an extractor for the given API key and model
// name (e.g. "gemini-flash-latest").
func NewGeminiExtractor(apiKey, model string) *GeminiExtractor {
	return &GeminiExtractor{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

// WithBaseURL points the extractor at a different endpoint. Used by tests.
func (g *GeminiExtractor) WithBaseURL(baseURL string) *GeminiExtractor {
	g.baseURL = strings.TrimSuffix(baseURL, "/")
	return g
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobPart `json:"inline_data,omitempty"`
}

type geminiBlobPart struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// wireReceipt is the JSON shape the prompt asks for. Numeric fields arrive as
// either JSON numbers or quoted strings depending on the model's mood, so
// everything decodes through flexNumber.
type wireReceipt struct {
	RUC             string     `json:"ruc"`
	RazonSocial     string     `json:"razon_social"`
	Direccion       string     `json:"direccion"`
	FechaEmision    string     `json:"fecha_emision"`
	TipoComprobante string     `json:"tipo_comprobante"`
	Serie           string     `json:"serie"`
	Numero          string     `json:"numero"`
	BaseImponible   flexNumber `json:"base_imponible"`
	IGV             flexNumber `json:"igv"`
	Total           flexNumber `json:"total"`
	Moneda          string     `json:"moneda"`
	Items           []wireItem `json:"items"`
}

type wireItem struct {
	Descripcion    string     `json:"descripcion"`
	Cantidad       flexNumber `json:"cantidad"`
	PrecioUnitario flexNumber `json:"precio_unitario"`
	Total          flexNumber `json:"total"`
}

// flexNumber decodes a JSON number, a numeric string, or null into a decimal,
// treating anything unparseable as zero.
type flexNumber struct {
	decimal.Decimal
}

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		f.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		f.Decimal = decimal.Zero
		return nil
	}
	f.Decimal = d
	return nil
}

func (g *GeminiExtractor) ExtractReceipt(ctx context.Context, kind domain.ReceiptKind, image []byte, mimeType string) (*domain.ExtractedReceipt, error) {
	prompt := purchasePrompt
	if kind == domain.KindSale {
		prompt = salePrompt
	}

	reqBody := generateContentRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: prompt},
				{InlineData: &geminiBlobPart{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w: %s", apperrors.ErrUpstreamUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction response: %w", apperrors.ErrUpstreamUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction service returned status %d: %w", resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	var gcResp generateContentResponse
	if err := json.Unmarshal(body, &gcResp); err != nil {
		return nil, fmt.Errorf("unreadable extraction envelope: %w", apperrors.ErrMalformedResponse)
	}
	if len(gcResp.Candidates) == 0 || len(gcResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("extraction returned no candidates: %w", apperrors.ErrMalformedResponse)
	}

	text := cleanModelJSON(gcResp.Candidates[0].Content.Parts[0].Text)
	var wire wireReceipt
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("extraction text is not the expected JSON (%q): %w", truncate(text, 120), apperrors.ErrMalformedResponse)
	}

	extracted := &domain.ExtractedReceipt{
		Kind:            kind,
		RUC:             wire.RUC,
		RazonSocial:     wire.RazonSocial,
		Direccion:       wire.Direccion,
		FechaEmision:    wire.FechaEmision,
		TipoComprobante: wire.TipoComprobante,
		Serie:           wire.Serie,
		Numero:          wire.Numero,
		BaseImponible:   wire.BaseImponible.Decimal,
		IGV:             wire.IGV.Decimal,
		Total:           wire.Total.Decimal,
		Moneda:          wire.Moneda,
	}
	for _, it := range wire.Items {
		extracted.Items = append(extracted.Items, domain.ExtractedItem{
			Descripcion:    it.Descripcion,
			Cantidad:       it.Cantidad.Decimal,
			PrecioUnitario: it.PrecioUnitario.Decimal,
			Total:          it.Total.Decimal,
		})
	}
	return extracted, nil
}

// cleanModelJSON strips the markdown code fences the model sometimes wraps
// around its JSON even when asked for application/json.
func cleanModelJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
