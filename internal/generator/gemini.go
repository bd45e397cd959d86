package generator

import (
	"context"
	"fmt"
	"strings"

	"travelkart/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// geminiGenerator implements Generator against the Gemini API with a JSON
// response schema, so the model is constrained to the expected shape before
// Normalize re-validates it.
type geminiGenerator struct {
	client   *genai.Client
	model    string
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewGeminiGenerator creates a Gemini-backed bundle generator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, logger zerolog.Logger) (Generator, error) {
	logger = logger.With().Str("component", "gemini-generator").Logger()

	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is missing")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error().Err(err).Msg("failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info().Str("model", modelName).Msg("Gemini generator initialised")

	return &geminiGenerator{
		client:   client,
		model:    modelName,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// Generate calls the completion model and normalizes its JSON response.
func (g *geminiGenerator) Generate(ctx context.Context, prefs model.Preferences) (*model.GeneratedBundle, error) {
	gm := g.client.GenerativeModel(g.model)
	gm.ResponseMIMEType = "application/json"
	gm.ResponseSchema = bundleSchema()

	prompt := buildPrompt(prefs)

	g.logger.Debug().
		Str("destination", prefs.Destination).
		Str("companions", prefs.Companions).
		Strs("interests", prefs.Interests).
		Msg("requesting bundle generation")

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Error().Err(err).Msg("generation request failed")
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generation returned no content")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("generation returned unexpected part type %T", resp.Candidates[0].Content.Parts[0])
	}

	bundle, err := Normalize([]byte(text), g.validate, g.logger)
	if err != nil {
		g.logger.Warn().Err(err).Msg("generated bundle rejected by normalization")
		return nil, err
	}

	g.logger.Info().
		Str("title", bundle.Title).
		Int("product_count", len(bundle.Products)).
		Msg("bundle generated successfully")

	return bundle, nil
}

// Close releases the underlying API client.
func (g *geminiGenerator) Close() error {
	return g.client.Close()
}

func buildPrompt(prefs model.Preferences) string {
	return fmt.Sprintf(`Create a personalized travel bundle for a trip to %s.
Companions: %s.
Interests: %s.

Generate 5 distinct travel activities/products.

CRITICAL REQUIREMENT:
- Exactly ONE product must be "Open Dated". Set 'isOpenDated' to true.
- Other 4 products are date-specific.
- Each product must have at least 2 distinct 'options' (e.g., Ticket Types).
  Examples: "Standard Entry", "Express Pass", "VIP Access", "Guided Tour".
  Unit names should be relevant (e.g., "Adult", "Pax", "Group").

The output must be a JSON object containing:
1. 'title': Bundle name.
2. 'reason': Why it fits.
3. 'products': Array of 5 products with:
   - 'title', 'description', 'badge', 'rating', 'reviewCount', 'isOpenDated'
   - 'price': Base price (cheapest option).
   - 'options': Array of options, each having 'title', 'price', 'unitName'.`,
		prefs.Destination, prefs.Companions, strings.Join(prefs.Interests, ", "))
}

func bundleSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":  {Type: genai.TypeString},
			"reason": {Type: genai.TypeString},
			"products": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"price":       {Type: genai.TypeNumber},
						"badge":       {Type: genai.TypeString},
						"rating":      {Type: genai.TypeNumber},
						"reviewCount": {Type: genai.TypeInteger},
						"isOpenDated": {Type: genai.TypeBoolean},
						"options": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"title":    {Type: genai.TypeString},
									"price":    {Type: genai.TypeNumber},
									"unitName": {Type: genai.TypeString},
								},
								Required: []string{"title", "price", "unitName"},
							},
						},
					},
					Required: []string{"title", "description", "price", "badge", "rating", "reviewCount", "isOpenDated", "options"},
				},
			},
		},
		Required: []string{"title", "reason", "products"},
	}
}
