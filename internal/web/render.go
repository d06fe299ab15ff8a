// Package web renders the storefront pages. Markup is plain html/template,
// embedded in the binary so the Lambda deployment needs no extra files
// beyond the image assets.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/belizemerch/storefront/internal/catalog"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Assets are the fixed decorative images referenced by the pages.
var Assets = map[string]string{
	"flag":     "/img/flag-belize.png",
	"belizeit": "/img/belizeit-logo.png",
	"crest":    "/img/belize-1981-crest.png",
	"hand":     "/img/belize-handprint.png",
}

// Renderer renders the storefront and confirmation pages.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

type storePageData struct {
	Assets         map[string]string
	ProductsJSON   template.JS
	CategoriesJSON template.JS
	StripeEnabled  bool
}

// StorePage writes the full storefront page with the catalog embedded as
// JSON for the client cart script.
func (r *Renderer) StorePage(w io.Writer, products []catalog.Product, stripeEnabled bool) error {
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	categoriesJSON, err := json.Marshal(catalog.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	return r.t.ExecuteTemplate(w, "store.html.tmpl", storePageData{
		Assets:         Assets,
		ProductsJSON:   template.JS(productsJSON),
		CategoriesJSON: template.JS(categoriesJSON),
		StripeEnabled:  stripeEnabled,
	})
}

// SuccessPage writes the order confirmation page.
func (r *Renderer) SuccessPage(w io.Writer) error {
	return r.t.ExecuteTemplate(w, "success.html.tmpl", nil)
}
