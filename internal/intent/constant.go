package intent

const (
	LabelSaludo         Label = "saludo"
	LabelDespedida      Label = "despedida"
	LabelQuienEres      Label = "quien_eres"
	LabelAgradecimiento Label = "agradecimiento"
	LabelComoEstas      Label = "como_estas"
	LabelChiste         Label = "chiste"
	LabelChalequeo      Label = "chalequeo"
	LabelArepa          Label = "arepa"
	LabelLadillado      Label = "ladillado"
	LabelHambre         Label = "hambre"
	LabelHora           Label = "hora"
	LabelCalculo        Label = "calculo"
	LabelTasaCambio     Label = "tasa_cambio"
	LabelClima          Label = "clima"
)

// DefaultSoftmaxScale sharpens the softmax over per-intent similarities.
const DefaultSoftmaxScale = 8.0

// numberToken replaces every all-digit token so amounts do not fragment the vocabulary.
const numberToken = "#num"
