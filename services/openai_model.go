package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"academyqa/models"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModel runs extraction through an OpenAI-compatible chat completion API.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIModel requires an API key and checks that the model exists.
func NewOpenAIModel(ctx context.Context, baseURL, apiKey, model string, httpClient *http.Client) (*OpenAIModel, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key not set")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = httpClient
	client := openai.NewClientWithConfig(cfg)

	if _, err := client.GetModel(ctx, model); err != nil {
		return nil, fmt.Errorf("openai model %s not available: %w", model, err)
	}

	return &OpenAIModel{client: client, model: model}, nil
}

func (o *OpenAIModel) Answer(ctx context.Context, question, passage string) (*models.ModelAnswer, error) {
	resp, err := o.client.CreateChatCompletion(ctx, o.chatRequest(question, passage))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	ans := spanAnswer(resp.Choices[0].Message.Content, passage)
	if ans.Text == "" {
		return nil, errors.New("openai returned an empty answer")
	}
	return ans, nil
}

// extractionTemperature is near zero rather than zero: the client omits a zero
// temperature and the server would fall back to its default of 1.
const extractionTemperature = 1e-6

func (o *OpenAIModel) chatRequest(question, passage string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionInstructions},
			{Role: openai.ChatMessageRoleUser, Content: extractionPrompt(question, passage)},
		},
		Temperature: extractionTemperature,
		MaxTokens:   128,
	}
}
