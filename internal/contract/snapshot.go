// Package contract holds the read models handed from the service layer to
// the presentation layer.
package contract

import (
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/quote"
)

// QuoteSnapshot is everything a view needs to render the current session.
// It is recomputed from scratch on every request and shares no mutable
// state with the session that produced it.
type QuoteSnapshot struct {
	Config    domain.ProjectConfig `json:"config"`
	Catalog   []domain.Product     `json:"catalog"`
	Current   domain.Product       `json:"current_product"`
	Available []domain.Product     `json:"available_products"`
	Result    domain.QuoteResult   `json:"quote"`
	Summary   quote.Summary        `json:"summary"`
}

