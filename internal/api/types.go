package api

import (
	"strconv"
	"strings"
)

// SearchRequest is the body posted to the fashion search endpoint.
type SearchRequest struct {
	Image        string `json:"image"`
	ClothingType string `json:"clothingType"`
}

// TryonRequest is the body posted to the virtual try-on endpoint.
type TryonRequest struct {
	PersonImage  string `json:"personImage"`
	ClothesImage string `json:"clothesImage"`
}

// SearchResult is a single matched product. Order is decided by the server.
type SearchResult struct {
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	ImageURL   string  `json:"image_url"`
	ProductURL string  `json:"product_url"`
	MatchScore float64 `json:"match_score"`
}

// SearchResponse is returned by a successful search.
type SearchResponse struct {
	SearchID int64          `json:"searchId"`
	Results  []SearchResult `json:"results"`
	ImageURL string         `json:"imageUrl"`
}

// TryonResponse is returned by a successful try-on.
type TryonResponse struct {
	TryonID         int64  `json:"tryonId"`
	PersonImageURL  string `json:"personImageUrl"`
	ClothesImageURL string `json:"clothesImageUrl"`
	ResultImageURL  string `json:"resultImageUrl"`
	Status          string `json:"status"`
}

// ErrorResponse is the optional JSON body of a non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MatchBadge renders the match score as shown on result cards, e.g. "98%".
func (r SearchResult) MatchBadge() string {
	return strconv.FormatFloat(r.MatchScore, 'f', -1, 64) + "%"
}

var currencySymbols = map[string]string{
	"RUB": "₽",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// DisplayPrice renders the price with grouped thousands and a currency
// symbol, e.g. "89 990 ₽".
func (r SearchResult) DisplayPrice() string {
	amount := strconv.FormatFloat(r.Price, 'f', -1, 64)
	whole, frac, hasFrac := strings.Cut(amount, ".")

	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String()
	if hasFrac {
		out += "." + frac
	}
	if negative {
		out = "-" + out
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if symbol, ok := currencySymbols[currency]; ok {
		return out + " " + symbol
	}
	if currency == "" {
		return out
	}
	return out + " " + currency
}
