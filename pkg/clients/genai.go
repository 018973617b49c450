package clients

import (
	"context"

	config "github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/genai"
)

func NewGenAIClient(ctx context.Context, cfg *config.GeminiCfg) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return client, nil
}
