package market

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxPageBytes = 1 << 20

// Resolve picks the average bean price per ton for this run. When a
// quote page is configured it is scraped once, best-effort; anything
// going wrong falls back to the configured price. The result is fixed
// for the process lifetime.
func Resolve(pageURL, selector string, fallback float64) float64 {
	if pageURL == "" {
		return fallback
	}
	v, err := fetchPrice(pageURL, selector)
	if err != nil {
		log.Printf("[price] %v - using configured price %.2f", err, fallback)
		return fallback
	}
	if v <= 0 {
		log.Printf("[price] scraped price %.2f not positive - using configured price %.2f", v, fallback)
		return fallback
	}
	log.Printf("[price] R$ %.2f/ton from %s", v, pageURL)
	return v
}

func fetchPrice(pageURL, selector string) (float64, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(pageURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price page status %d", resp.StatusCode)
	}

	limited := io.LimitedReader{R: resp.Body, N: maxPageBytes}
	doc, err := goquery.NewDocumentFromReader(&limited)
	if err != nil {
		return 0, err
	}
	txt := strings.TrimSpace(doc.Find(selector).First().Text())
	if txt == "" {
		return 0, fmt.Errorf("selector %q matched nothing on %s", selector, pageURL)
	}
	return parseAmount(txt)
}

// parseAmount reads quotes like "R$ 3.000,50" or plain "3000.50".
func parseAmount(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, fmt.Errorf("no number in %q", raw)
	}
	if strings.Contains(s, ",") {
		// Brazilian format: dots group thousands, comma marks decimals
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return v, nil
}
