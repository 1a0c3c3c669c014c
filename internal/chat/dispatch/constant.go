package dispatch

// Log prefixes
const (
	LogPrefixCompute = "internal.chat.dispatch.Compute.Handle"
)

// Response templates
const (
	TemplateTime         = "Son las %s, mi pana."
	TemplateCalculation  = "Eso da %s. ¡Qué fino!"
	TemplateExchangeRate = "Ahorita 1 %s está en %s %s."
	TemplateWeather      = "En %s hay %s °C y %s."
	TemplateWeatherShort = "En %s hay %s °C."
)

// Apologies
const (
	ApologyTool          = "Uy, mi pana, no pude conseguir ese dato ahorita. Intenta de nuevo en un ratico."
	ApologyNoExpression  = "Chamo, no encontré ninguna cuenta en tu mensaje. Prueba con algo como 'cuánto es 8 * 8'."
	ApologyUnexpectedOut = "Epa, algo salió raro con ese cálculo. ¿Me lo repites?"
)
