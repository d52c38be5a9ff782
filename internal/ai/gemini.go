package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	// planModel runs in JSON response mode for trip generation; chatModel stays
	// in plain text mode for the assistant.
	planModel *genai.GenerativeModel
	chatModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	planModel := client.GenerativeModel("gemini-2.0-flash")
	planModel.ResponseMIMEType = "application/json"
	planModel.SetTemperature(0.4)

	chatModel := client.GenerativeModel("gemini-2.0-flash")
	chatModel.SetTemperature(0.7)

	return &GeminiProvider{
		client:    client,
		planModel: planModel,
		chatModel: chatModel,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateTrip performs one generation call and decodes the reply into a TripPlan.
func (p *GeminiProvider) GenerateTrip(ctx context.Context, req TripRequest) (*TripPlan, error) {
	system, user := BuildTripPrompt(req)

	// Gemini supports SystemInstruction, but appending the instruction directly to
	// the prompt keeps the schema and the request bound in a single part.
	fullPrompt := fmt.Sprintf("%s\n\n%s", system, user)

	resp, err := p.planModel.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	text := candidateText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyModelResponse
	}

	// JSON response mode can still wrap output in fences on this transport;
	// strip them before the strict decode.
	return DecodeTripPlan(cleanJSONString(text))
}

// Chat replays the prior window as a Gemini chat session and sends the last
// user message.
func (p *GeminiProvider) Chat(ctx context.Context, history []Message) (string, error) {
	if len(history) == 0 {
		return "", ErrEmptyModelResponse
	}

	session := p.chatModel.StartChat()
	for _, m := range history[:len(history)-1] {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	text := candidateText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyModelResponse
	}
	return text, nil
}

// candidateText extracts the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
