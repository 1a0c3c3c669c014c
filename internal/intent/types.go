package intent

// Label names an intent.
type Label string

// Intent is one category of user utterance. Responses is empty for intents answered by a computation.
type Intent struct {
	Name      Label
	Examples  []string
	Responses []string
}

// Result is the arg-max label of a prediction and its probability.
type Result struct {
	Label      Label
	Confidence float64
}

// Classifier predicts the intent of an utterance. Implementations are safe for concurrent use.
type Classifier interface {
	Predict(text string) Result
}
