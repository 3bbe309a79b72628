package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"academyqa/models"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

const defaultOllamaModel = "llama3.2"

// OllamaModel asks a local Ollama model to copy the answering span out of the
// passage, then locates that span.
type OllamaModel struct {
	client *api.Client
	model  string
}

// NewOllamaModel connects to host (OLLAMA_HOST when empty) and checks that the
// model is available there.
func NewOllamaModel(ctx context.Context, host, model string, httpClient *http.Client) (*OllamaModel, error) {
	hostURL := envconfig.Host()
	if host != "" {
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
		}
		hostURL = u
	}
	if model == "" {
		model = defaultOllamaModel
	}

	client := api.NewClient(hostURL, httpClient)
	if _, err := client.Show(ctx, &api.ShowRequest{Model: model}); err != nil {
		return nil, fmt.Errorf("ollama model %s not available at %s: %w", model, hostURL, err)
	}

	return &OllamaModel{client: client, model: model}, nil
}

func (o *OllamaModel) Answer(ctx context.Context, question, passage string) (*models.ModelAnswer, error) {
	stream := false
	req := api.GenerateRequest{
		Model:  o.model,
		System: extractionInstructions,
		Prompt: extractionPrompt(question, passage),
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": 0,
			"num_predict": 128,
		},
	}

	var responseBuilder strings.Builder
	err := o.client.Generate(ctx, &req, func(resp api.GenerateResponse) error {
		_, err := responseBuilder.WriteString(resp.Response)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	ans := spanAnswer(responseBuilder.String(), passage)
	if ans.Text == "" {
		return nil, errors.New("ollama returned an empty answer")
	}
	return ans, nil
}
