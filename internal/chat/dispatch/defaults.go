package dispatch

import (
	"fmt"
	"strconv"

	"fulano-assistant/internal/agent/tools"
	"fulano-assistant/internal/intent"
	pkgLog "fulano-assistant/pkg/log"
)

// Options tunes the default computation handlers.
type Options struct {
	CityExtractor       tools.Extractor
	ExpressionExtractor tools.Extractor
}

// NewDefault binds every intent of corpus that has responses to a Canned handler,
// and the clock, arithmetic, currency and weather intents to their tools.
func NewDefault(corpus []intent.Intent, invoker Invoker, opts Options, l pkgLog.Logger) (*Table, error) {
	if invoker == nil {
		return nil, ErrMissingRegistry
	}
	if opts.CityExtractor == nil {
		opts.CityExtractor = tools.NewCityExtractor("")
	}
	if opts.ExpressionExtractor == nil {
		opts.ExpressionExtractor = tools.ExpressionExtractor{}
	}

	t := NewTable()
	for _, in := range corpus {
		if len(in.Responses) == 0 {
			continue
		}
		h, err := NewCanned(in.Responses)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in.Name, err)
		}
		if err := t.Register(in.Name, h); err != nil {
			return nil, err
		}
	}

	computations := []struct {
		label   intent.Label
		handler *Compute
	}{
		{intent.LabelHora, NewCompute(invoker, tools.NameCurrentTime, nil, renderTime, "", l)},
		{intent.LabelCalculo, NewCompute(invoker, tools.NameCalculate, extractArg(opts.ExpressionExtractor, "expression", false), renderCalculation, ApologyNoExpression, l)},
		{intent.LabelTasaCambio, NewCompute(invoker, tools.NameExchangeRate, nil, renderExchangeRate, "", l)},
		{intent.LabelClima, NewCompute(invoker, tools.NameWeather, extractArg(opts.CityExtractor, "city", true), renderWeather, "", l)},
	}
	for _, c := range computations {
		if err := t.Register(c.label, c.handler); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// extractArg turns an Extractor into an ArgsFunc. With useFallback the extractor's fallback value is sent.
func extractArg(ex tools.Extractor, key string, useFallback bool) ArgsFunc {
	return func(text string) (map[string]interface{}, bool) {
		value, ok := ex.Extract(text)
		if !ok && (!useFallback || value == "") {
			return nil, false
		}
		return map[string]interface{}{key: value}, true
	}
}

func renderTime(p map[string]interface{}) (string, bool) {
	clock, ok := p["time"].(string)
	if !ok || len(clock) < 5 {
		return "", false
	}
	return fmt.Sprintf(TemplateTime, clock[:5]), true
}

func renderCalculation(p map[string]interface{}) (string, bool) {
	result, ok := p["result"].(string)
	if !ok || result == "" {
		return "", false
	}
	return fmt.Sprintf(TemplateCalculation, result), true
}

func renderExchangeRate(p map[string]interface{}) (string, bool) {
	base, okBase := p["base"].(string)
	target, okTarget := p["target"].(string)
	rate, okRate := p["rate"].(float64)
	if !okBase || !okTarget || !okRate {
		return "", false
	}
	return fmt.Sprintf(TemplateExchangeRate, base, strconv.FormatFloat(rate, 'f', 2, 64), target), true
}

func renderWeather(p map[string]interface{}) (string, bool) {
	city, okCity := p["city"].(string)
	temp, okTemp := p["temperature_c"].(float64)
	if !okCity || !okTemp {
		return "", false
	}
	degrees := strconv.FormatFloat(temp, 'f', 1, 64)
	if desc, _ := p["description"].(string); desc != "" {
		return fmt.Sprintf(TemplateWeather, city, degrees, desc), true
	}
	return fmt.Sprintf(TemplateWeatherShort, city, degrees), true
}
