package tools

import "fulano-assistant/internal/agent"

// Tool names exposed to the LLM and to local handlers.
const (
	NameCurrentTime  agent.ToolName = "get_current_time"
	NameCalculate    agent.ToolName = "calculate"
	NameExchangeRate agent.ToolName = "get_exchange_rate"
	NameWeather      agent.ToolName = "get_weather"
	NameNews         agent.ToolName = "get_news"
	NameTranslate    agent.ToolName = "translate_text"
	NamePokemon      agent.ToolName = "get_pokemon_info"
)

// Log prefixes
const (
	LogPrefixRegister = "internal.agent.tools.RegisterDefaults"
	LogPrefixWeather  = "internal.agent.tools.WeatherTool.Execute"
	LogPrefixNews     = "internal.agent.tools.NewsTool.Execute"
	LogPrefixExchange = "internal.agent.tools.ExchangeRateTool.Execute"
	LogPrefixPokemon  = "internal.agent.tools.PokemonTool.Execute"
)

// exactFloatLimit is 2^53, past which float64 no longer holds every integer.
const exactFloatLimit = 1 << 53

const (
	defaultTimezone  = "America/Bogota"
	defaultCity      = "Bogotá"
	defaultBase      = "USD"
	defaultQuote     = "COP"
	defaultNewsMax   = 5
	maxNewsArticles  = 10
	timeLayout       = "15:04:05"
	dateLayout       = "2006-01-02"
	maxErrorBodySize = 512
)

// KnownCities is the default city list for the weather extractor.
var KnownCities = []string{"Bogotá", "Medellín", "Cali", "Barranquilla", "Caracas", "Maracaibo"}
