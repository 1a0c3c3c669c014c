package tools

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"fulano-assistant/config"
	"fulano-assistant/internal/agent"
	pkgLog "fulano-assistant/pkg/log"
)

// Set groups the tools built from configuration so local handlers can reuse their helpers.
type Set struct {
	Time      *CurrentTimeTool
	Calculate *CalculateTool
	Exchange  *ExchangeRateTool
	Weather   *WeatherTool
	News      *NewsTool
	Translate *TranslateTool
	Pokemon   *PokemonTool
}

// All returns the tools in registration order.
func (s Set) All() []agent.Tool {
	return []agent.Tool{s.Time, s.Calculate, s.Exchange, s.Weather, s.News, s.Translate, s.Pokemon}
}

// NewSet builds every tool from cfg. Translation is left disabled when neither an API key
// nor a service account credentials file is configured.
func NewSet(ctx context.Context, cfg config.ToolsConfig, client *http.Client, l pkgLog.Logger) Set {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	translator, err := newTranslator(ctx, cfg)
	if err != nil {
		l.Warnf(ctx, "%s: translation disabled: %v", LogPrefixRegister, err)
	}

	return Set{
		Time:      NewCurrentTimeTool(cfg.Timezone, cfg.Timeout),
		Calculate: NewCalculateTool(cfg.Timeout),
		Exchange:  NewExchangeRateTool(client, cfg.ExchangeRateURL, cfg.BaseCurrency, cfg.QuoteCurrency, cfg.Timeout, l),
		Weather:   NewWeatherTool(client, cfg.WeatherURL, cfg.OpenWeatherAPIKey, cfg.DefaultCity, cfg.Timeout, l),
		News:      NewNewsTool(client, cfg.NewsURL, cfg.GNewsAPIKey, cfg.NewsCountry, cfg.NewsLanguage, cfg.Timeout, l),
		Translate: NewTranslateTool(translator, cfg.TranslateTarget, cfg.Timeout),
		Pokemon:   NewPokemonTool(client, cfg.PokeAPIURL, cfg.Timeout, l),
	}
}

// RegisterAll registers every tool of the set.
func (s Set) RegisterAll(registry *agent.ToolRegistry) error {
	for _, tool := range s.All() {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// newTranslator prefers the API key over service account credentials. (nil, nil) means not configured.
func newTranslator(ctx context.Context, cfg config.ToolsConfig) (Translator, error) {
	var (
		gt  *GoogleTranslator
		err error
	)
	switch {
	case cfg.TranslateAPIKey != "":
		gt, err = NewGoogleTranslator(ctx, cfg.TranslateAPIKey)
	case cfg.TranslateCredentialsFile != "":
		var data []byte
		data, err = os.ReadFile(cfg.TranslateCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		gt, err = NewGoogleTranslatorFromCredentialsJSON(ctx, data)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gt, nil
}
