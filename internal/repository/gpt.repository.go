package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ayush6624/go-chatgpt"
	"github.com/cenkalti/backoff/v4"
)

const (
	gptCallTimeout = 60 * time.Second
	gptMaxRetries  = 3
)

type ScoreSentimentInput struct {
	SectorID  string
	Payload   string // the unit's current prompt payload, opaque to us
	Headlines []string
}

type SelectAssetsInput struct {
	SectorID  string
	Sentiment float64
	Scenario  string
	Budget    float64
	Payload   string
	Universe  []string
}

type AssetSelection struct {
	Weights   map[string]float64 `json:"weights"`
	Rationale string             `json:"rationale"`
	RiskLevel string             `json:"risk_level"`
}

type RevisePayloadInput struct {
	UnitID         string
	CurrentPayload string
	// Mistakes summarizes recent incorrect predictions for the failing
	// version. Knowledge carries harvested insight payloads verbatim.
	Mistakes  []string
	Knowledge []string
	Accuracy  float64
}

// GptRepository is the AI collaborator boundary: scoring raw sentiment,
// selecting assets within a sector, and proposing revised prompt payloads
// during evolution. Payload semantics belong to the collaborator; the core
// only moves them around.
type GptRepository interface {
	ScoreSentiment(ctx context.Context, in ScoreSentimentInput) (float64, error)
	SelectAssets(ctx context.Context, in SelectAssetsInput) (*AssetSelection, error)
	RevisePayload(ctx context.Context, in RevisePayloadInput) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptRepositoryHandler) send(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gptCallTimeout)
	defer cancel()

	var content string
	operation := func() error {
		response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
			Model: chatgpt.GPT4,
			Messages: []chatgpt.ChatMessage{
				{
					Role:    chatgpt.ChatGPTModelRoleSystem,
					Content: system,
				},
				{
					Role:    chatgpt.ChatGPTModelRoleUser,
					Content: user,
				},
			},
		})
		if err != nil {
			return err
		}
		if len(response.Choices) == 0 {
			return fmt.Errorf("gpt response contained no choices")
		}
		content = response.Choices[0].Message.Content
		return nil
	}

	err := backoff.Retry(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), gptMaxRetries), ctx),
	)
	if err != nil {
		return "", fmt.Errorf("gpt call failed: %w", err)
	}

	return content, nil
}

func (h gptRepositoryHandler) ScoreSentiment(ctx context.Context, in ScoreSentimentInput) (float64, error) {
	user := fmt.Sprintf(
		"Sector: %s\n\nHeadlines:\n- %s\n\nRespond with a single number between -1.0 and 1.0.",
		in.SectorID,
		strings.Join(in.Headlines, "\n- "),
	)

	content, err := h.send(ctx, in.Payload, user)
	if err != nil {
		return 0, err
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sentiment score %q: %w", content, err)
	}

	return score, nil
}

func (h gptRepositoryHandler) SelectAssets(ctx context.Context, in SelectAssetsInput) (*AssetSelection, error) {
	user := fmt.Sprintf(
		`Sector: %s
Sentiment: %.2f
Scenario: %s
Budget: %.2f
Universe: %s

Distribute the budget across tickers from the universe. Return ONLY valid JSON:
{"weights": {"TICKER": 0.0}, "rationale": "...", "risk_level": "low|medium|high"}
Weights must sum to at most 1.0.`,
		in.SectorID, in.Sentiment, in.Scenario, in.Budget, strings.Join(in.Universe, ", "),
	)

	content, err := h.send(ctx, in.Payload, user)
	if err != nil {
		return nil, err
	}

	selection := AssetSelection{}
	if err := json.Unmarshal([]byte(content), &selection); err != nil {
		return nil, fmt.Errorf("failed to parse asset selection %q: %w", content, err)
	}

	return &selection, nil
}

func (h gptRepositoryHandler) RevisePayload(ctx context.Context, in RevisePayloadInput) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The following prompt is scoring %.0f%% accuracy and needs revision.\n\n", in.Accuracy*100)
	fmt.Fprintf(&sb, "Current prompt:\n%s\n\n", in.CurrentPayload)
	if len(in.Mistakes) > 0 {
		fmt.Fprintf(&sb, "Recent incorrect predictions:\n- %s\n\n", strings.Join(in.Mistakes, "\n- "))
	}
	if len(in.Knowledge) > 0 {
		fmt.Fprintf(&sb, "Additional context:\n- %s\n\n", strings.Join(in.Knowledge, "\n- "))
	}
	sb.WriteString("Return only the revised prompt text, no commentary.")

	system := "You improve prompts for a financial sentiment analysis system. Keep the output a drop-in replacement for the current prompt."

	content, err := h.send(ctx, system, sb.String())
	if err != nil {
		return "", err
	}

	revised := strings.TrimSpace(content)
	if revised == "" {
		return "", fmt.Errorf("gpt returned an empty revision for unit %s", in.UnitID)
	}

	return revised, nil
}
