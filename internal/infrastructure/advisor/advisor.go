package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
	"google.golang.org/genai"
)

// systemInstruction задаёт роль ассистента магазина. Ответы в BDT (৳/TK),
// допускаются английский и бенгальский.
const systemInstruction = `You are a helpful and charismatic AI shopping assistant for "হঠাৎ পাওয়া" (Hothat Pawa), based in Bangladesh.
Your goal is to help users find the best products from our catalog.
All prices are in Bangladeshi Taka (BDT/TK). Use the symbol ৳ or the word "TK" when referring to money.
If a user uploads an image, analyze it and see if it matches any of our products or if we have similar alternatives.
If a user asks about external market comparisons or trending news, use the Google Search tool.
Always be polite, concise, and professional. You can speak in both English and Bengali as per user preference.
If you suggest a product, mention why it fits the user's needs.`

// emptyResponseText возвращается, когда модель ответила пустым текстом.
const emptyResponseText = "দুঃখিত, আমি আপনার অনুরোধটি প্রসেস করতে পারছি না।"

// GeminiAdvisor отвечает на вопросы покупателей через Gemini API с
// включённым Google Search grounding.
type GeminiAdvisor struct {
	client *genai.Client
	cfg    *cfg.GeminiCfg
	logger logger.Logger
}

func NewGeminiAdvisor(client *genai.Client, cfg *cfg.GeminiCfg, logger logger.Logger) *GeminiAdvisor {
	return &GeminiAdvisor{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Advise выполняет один ход диалога: история, снимок каталога и вопрос
// пользователя уходят в модель единым запросом. Повторов нет — при ошибке
// вызывающая сторона подставляет собственный запасной ответ.
func (g *GeminiAdvisor) Advise(ctx context.Context, req *usecase.AdviseReq) (*usecase.AdviseRes, error) {
	const op = "GeminiAdvisor.Advise"

	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	contents, err := g.buildContents(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, config)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	text := resp.Text()
	if text == "" {
		g.logger.Warnf("%s: model returned empty text", op)
		text = emptyResponseText
	}

	return usecase.NewAdviseRes(text, extractSources(resp)), nil
}

// buildContents собирает историю и текущий ход в contents запроса.
func (g *GeminiAdvisor) buildContents(req *usecase.AdviseReq) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	productContext, err := json.Marshal(req.Products)
	if err != nil {
		return nil, fmt.Errorf("marshal product snapshot: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf("Current available products in store: %s\n\nUser Question: %s", productContext, req.Prompt)),
	}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MimeType))
	}

	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	return contents, nil
}

// extractSources вытаскивает источники grounding из ответа модели.
func extractSources(resp *genai.GenerateContentResponse) []domain.Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	chunks := resp.Candidates[0].GroundingMetadata.GroundingChunks
	sources := make([]domain.Source, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, domain.Source{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}

	return sources
}
