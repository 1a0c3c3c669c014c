package chat

// MaxMessageLength bounds a user utterance, in runes.
const MaxMessageLength = 4000

// Fixed replies of the delegated path.
const (
	ApologyLLM     = "Disculpa, mi pana, tuve un problema procesando tu mensaje. ¿Lo intentamos de nuevo?"
	FallbackNoText = "Lo siento, no tengo una respuesta para eso ahorita."
)

// ReplyBlankMessage answers a message with nothing but whitespace.
const ReplyBlankMessage = "¿Y entonces, mi pana? Escríbeme algo y te echo una mano."
