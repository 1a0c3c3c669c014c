package usecase

import (
	"context"

	"fulano-assistant/internal/chat"
)

// Classify runs the CLASSIFY step alone. Nothing is stored and no handler runs.
func (uc *implUseCase) Classify(ctx context.Context, message string) (chat.ClassifyOutput, error) {
	text, err := normalizeMessage(message)
	if err != nil {
		return chat.ClassifyOutput{}, err
	}

	result := uc.classifier.Predict(text)
	return chat.ClassifyOutput{
		Intent:     string(result.Label),
		Confidence: result.Confidence,
		Route:      uc.route(result),
	}, nil
}
