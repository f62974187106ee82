package services

import (
	"context"
	"fmt"

	"github.com/Ayash-Bera/rag-gateway/internal/models"
)

// PlaceholderContext stands in for retrieved passages until a vector store is attached.
const PlaceholderContext = "This is a dummy context retrieved from the vector store."

// Retriever finds context relevant to a query for a given learner profile.
type Retriever interface {
	Retrieve(ctx context.Context, query string, profile models.Profile) (string, error)
}

// Generator turns a query and its retrieved context into the answer text.
type Generator interface {
	Generate(ctx context.Context, query, retrieved string, profile models.Profile) (string, error)
}

// PlaceholderRetriever always returns PlaceholderContext.
type PlaceholderRetriever struct{}

func (PlaceholderRetriever) Retrieve(_ context.Context, _ string, _ models.Profile) (string, error) {
	return PlaceholderContext, nil
}

// TemplateGenerator interpolates the query and context into a fixed sentence.
type TemplateGenerator struct{}

func (TemplateGenerator) Generate(_ context.Context, query, retrieved string, _ models.Profile) (string, error) {
	return fmt.Sprintf("Personalized response for your query: '%s' using context: '%s'", query, retrieved), nil
}
