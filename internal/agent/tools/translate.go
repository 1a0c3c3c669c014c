package tools

import (
	"context"
	"fmt"
	"time"

	"fulano-assistant/internal/agent"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// Translator translates text into a target language and reports the detected source language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (translated, source string, err error)
}

// GoogleTranslator is a Translator backed by the Cloud Translation v2 API.
type GoogleTranslator struct {
	svc *translate.Service
}

// NewGoogleTranslator creates a Translation API client authenticated with an API key.
func NewGoogleTranslator(ctx context.Context, apiKey string, opts ...option.ClientOption) (*GoogleTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: Google Translate", ErrMissingAPIKey)
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate service: %w", err)
	}
	return &GoogleTranslator{svc: svc}, nil
}

// NewGoogleTranslatorFromCredentialsJSON creates a Translation API client authenticated
// as the service account described by credentialsJSON.
func NewGoogleTranslatorFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts ...option.ClientOption) (*GoogleTranslator, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, translate.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	opts = append([]option.ClientOption{option.WithTokenSource(jwtConfig.TokenSource(ctx))}, opts...)
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate service: %w", err)
	}
	return &GoogleTranslator{svc: svc}, nil
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, target string) (string, string, error) {
	resp, err := g.svc.Translations.List([]string{text}, target).Format("text").Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("translate: %w", stripURL(err))
	}
	if len(resp.Translations) == 0 {
		return "", "", ErrEmptyTranslation
	}
	tr := resp.Translations[0]
	return tr.TranslatedText, tr.DetectedSourceLanguage, nil
}

// TranslateTool translates text for the LLM. A nil translator makes every call fail with ErrTranslateDisabled.
type TranslateTool struct {
	translator    Translator
	defaultTarget string
	timeout       time.Duration
}

func NewTranslateTool(translator Translator, defaultTarget string, timeout time.Duration) *TranslateTool {
	if defaultTarget == "" {
		defaultTarget = "en"
	}
	return &TranslateTool{translator: translator, defaultTarget: defaultTarget, timeout: timeout}
}

func (t *TranslateTool) Name() agent.ToolName {
	return NameTranslate
}

func (t *TranslateTool) Description() string {
	return "Traduce un texto a otro idioma. Por defecto traduce al inglés."
}

func (t *TranslateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to translate",
				"minLength":   1,
			},
			"target": map[string]interface{}{
				"type":        "string",
				"description": "ISO 639-1 target language code, e.g. 'en', 'pt'",
			},
		},
		"required": []string{"text"},
	}
}

func (t *TranslateTool) Timeout() time.Duration {
	return t.timeout
}

type TranslateInput struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

func (t *TranslateTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	if t.translator == nil {
		return nil, ErrTranslateDisabled
	}

	var input TranslateInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}
	target := input.Target
	if target == "" {
		target = t.defaultTarget
	}

	translated, source, err := t.translator.Translate(ctx, input.Text, target)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"translated_text": translated,
		"source":          source,
		"target":          target,
	}, nil
}

var (
	_ agent.Tool = (*TranslateTool)(nil)
	_ Translator = (*GoogleTranslator)(nil)
)
