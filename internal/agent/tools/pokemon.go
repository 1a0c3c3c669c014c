package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulano-assistant/internal/agent"
	pkgLog "fulano-assistant/pkg/log"
)

// PokemonTool reads basic Pokémon data from PokeAPI.
type PokemonTool struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	l       pkgLog.Logger
}

func NewPokemonTool(client *http.Client, baseURL string, timeout time.Duration, l pkgLog.Logger) *PokemonTool {
	return &PokemonTool{client: client, baseURL: baseURL, timeout: timeout, l: l}
}

func (t *PokemonTool) Name() agent.ToolName {
	return NamePokemon
}

func (t *PokemonTool) Description() string {
	return "Obtiene información básica de un Pokémon: altura, peso, experiencia base y tipos."
}

func (t *PokemonTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Pokémon name, e.g. 'pikachu'",
				"minLength":   1,
			},
		},
		"required": []string{"name"},
	}
}

func (t *PokemonTool) Timeout() time.Duration {
	return t.timeout
}

type PokemonInput struct {
	Name string `json:"name"`
}

type pokemonResponse struct {
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Types          []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

func (t *PokemonTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input PokemonInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(input.Name))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", agent.ErrInvalidArguments)
	}

	var resp pokemonResponse
	if err := getJSON(ctx, t.client, "pokeapi", joinPath(t.baseURL, "pokemon", name), nil, &resp); err != nil {
		t.l.Warnf(ctx, "%s: name=%s: %v", LogPrefixPokemon, name, err)
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("pokemon %q %w", name, ErrNotFound)
		}
		return nil, err
	}

	types := make([]string, 0, len(resp.Types))
	for _, tp := range resp.Types {
		types = append(types, tp.Type.Name)
	}

	return map[string]interface{}{
		"name":            resp.Name,
		"height":          resp.Height,
		"weight":          resp.Weight,
		"base_experience": resp.BaseExperience,
		"types":           types,
	}, nil
}

var _ agent.Tool = (*PokemonTool)(nil)
