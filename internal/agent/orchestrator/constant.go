package orchestrator

// Log prefixes
const (
	LogPrefixRespond = "internal.agent.orchestrator.Respond"
)

// Time context template
const (
	TimeContextTemplate = `

[CONTEXTO DEL SISTEMA - fecha y hora actuales]
- Hoy: %s (%s)
- Hora: %s
- Mañana: %s
- Zona horaria: %s

Si el usuario habla de "hoy" o "mañana", usa estas fechas sin preguntarle.`
)

// Log messages
const (
	LogMsgRoundTrip        = "%s: tool round trip %d/%d: %s"
	LogMsgToolFailed       = "%s: tool %s failed: %s"
	LogMsgToolLimitReached = "%s: LLM requested %s after %d tool call(s), limit reached"
)

// Configuration
const (
	DefaultMaxToolCalls = 1
	DefaultTimezone     = "America/Bogota"
)
