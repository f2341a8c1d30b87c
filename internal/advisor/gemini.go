package advisor

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	logx "github.com/nstore-core/server/pkg/logger"
)

// GeminiConfig describes the Gemini-backed chat model, sourced from the
// environment.
type GeminiConfig struct {
	APIKey      string  `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL     string  `envconfig:"GEMINI_BASE_URL"`
	Model       string  `envconfig:"ADVISOR_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"ADVISOR_MAX_TOKENS" default:"1024"`
	Temperature float32 `envconfig:"ADVISOR_TEMPERATURE" default:"0.4"`
}

// NewGeminiChatModel builds the production chat model for the advisor.
func NewGeminiChatModel(ctx context.Context, cfg GeminiConfig) (*gemini.ChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating advisor chat model")
		return nil, fmt.Errorf("error creating advisor chat model: %w", err)
	}
	return chatModel, nil
}
