package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/jask/blogview/internal/post"
)

const generateTimeout = 60 * time.Second

// GeminiGenerator writes posts with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator for model using apiKey.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// GeneratePosts asks the model for a JSON array of posts.
// Timeout: 60s; no retry.
func (g *GeminiGenerator) GeneratePosts(ctx context.Context, req GenerateRequest) ([]post.GeneratedPostData, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("generate request: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(req)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.9),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}
	return DecodePosts(resp.Text(), req.Count)
}

// Prompt builds the instruction sent to the model.
func Prompt(req GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d short, distinct blog posts about %q.\n", req.Count, req.Theme)
	b.WriteString("Respond with only a JSON array. Each element has the keys:\n")
	b.WriteString(`- "title": a catchy title` + "\n")
	b.WriteString(`- "summary": one or two sentences for a preview card` + "\n")
	b.WriteString(`- "content": the full post in Markdown, with headings and a list, 200-400 words` + "\n")
	b.WriteString(`- "imageTheme": one or two words describing a cover photo` + "\n")
	return b.String()
}
