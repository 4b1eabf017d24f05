package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ImageScraper finds catalog photos for products that were imported without
// any. DuckDuckGo's image JSON endpoint is tried first, Google Images as a
// fallback.
type ImageScraper struct {
	client *http.Client
}

func NewImageScraper() *ImageScraper {
	return &ImageScraper{client: &http.Client{Timeout: 20 * time.Second}}
}

// SearchImages builds a query from brand, SKU and name. Industrial part
// numbers are distinctive enough that the SKU alone usually matches the
// vendor's own product photos.
func (s *ImageScraper) SearchImages(ctx context.Context, name, brand, sku string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = 4
	}
	if maxResults > 20 {
		maxResults = 20
	}
	query := buildQuery(name, brand, sku)

	images, err := s.searchDuckDuckGo(ctx, query, maxResults)
	if err == nil && len(images) > 0 {
		log.Info().Str("query", query).Int("found", len(images)).Msg("images found on duckduckgo")
		return images, nil
	}
	log.Warn().Err(err).Str("query", query).Msg("duckduckgo failed, trying google images")

	images, err = s.searchGoogleImages(ctx, query, maxResults)
	if err == nil && len(images) > 0 {
		log.Info().Str("query", query).Int("found", len(images)).Msg("images found on google")
		return images, nil
	}
	return nil, fmt.Errorf("no images found for %q: %w", query, err)
}

func buildQuery(name, brand, sku string) string {
	parts := []string{}
	if brand = strings.TrimSpace(brand); brand != "" {
		parts = append(parts, brand)
	}
	if sku = strings.TrimSpace(sku); sku != "" {
		parts = append(parts, sku)
	}
	if len(parts) == 0 {
		parts = append(parts, name)
	}
	parts = append(parts, "industrial automation")
	return strings.Join(parts, " ")
}

var vqdPattern = regexp.MustCompile(`vqd="([^"]+)"`)

func (s *ImageScraper) searchDuckDuckGo(ctx context.Context, query string, maxResults int) ([]string, error) {
	searchURL := fmt.Sprintf("https://duckduckgo.com/?q=%s&iax=images&ia=images", url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUA)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// the image results are loaded dynamically; the page embeds a vqd token
	// needed for the JSON endpoint
	matches := vqdPattern.FindStringSubmatch(string(body))
	if len(matches) < 2 {
		return nil, fmt.Errorf("vqd token not found")
	}

	jsURL := fmt.Sprintf("https://duckduckgo.com/i.js?q=%s&vqd=%s&o=json&p=1&s=0", url.QueryEscape(query), url.QueryEscape(matches[1]))
	req2, err := http.NewRequestWithContext(ctx, http.MethodGet, jsURL, nil)
	if err != nil {
		return nil, err
	}
	req2.Header.Set("User-Agent", browserUA)
	req2.Header.Set("Referer", searchURL)

	resp2, err := s.client.Do(req2)
	if err != nil {
		return nil, err
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", resp2.StatusCode)
	}

	var result struct {
		Results []struct {
			Image     string `json:"image"`
			Thumbnail string `json:"thumbnail"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}

	const minSize = 300
	images := []string{}
	for _, img := range result.Results {
		if img.Width < minSize || img.Height < minSize {
			continue
		}
		u := img.Image
		if u == "" {
			u = img.Thumbnail
		}
		if u != "" && strings.HasPrefix(u, "http") {
			images = append(images, u)
			if len(images) >= maxResults {
				break
			}
		}
	}
	return images, nil
}

var embeddedImagePattern = regexp.MustCompile(`"(https?://[^"]+\.(?:jpg|jpeg|png|webp)[^"]*)"`)

func (s *ImageScraper) searchGoogleImages(ctx context.Context, query string, maxResults int) ([]string, error) {
	searchURL := fmt.Sprintf("https://www.google.com/search?tbm=isch&q=%s&safe=active", url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	images := []string{}
	keep := func(u string) bool {
		lu := strings.ToLower(u)
		return !strings.Contains(lu, "logo") && !strings.Contains(lu, "icon") && !strings.Contains(u, "gstatic.com")
	}

	doc.Find("img[data-src], img[src]").Each(func(_ int, sel *goquery.Selection) {
		if len(images) >= maxResults {
			return
		}
		u, ok := sel.Attr("data-src")
		if !ok || !strings.HasPrefix(u, "http") {
			u, _ = sel.Attr("src")
		}
		if strings.HasPrefix(u, "http") && keep(u) {
			images = append(images, u)
		}
	})

	// full-size URLs live in the embedded JSON, not the <img> tags
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		if len(images) >= maxResults {
			return
		}
		for _, match := range embeddedImagePattern.FindAllStringSubmatch(sel.Text(), -1) {
			if len(images) >= maxResults {
				break
			}
			if keep(match[1]) {
				images = append(images, match[1])
			}
		}
	})

	seen := map[string]bool{}
	unique := []string{}
	for _, img := range images {
		if !seen[img] {
			seen[img] = true
			unique = append(unique, img)
			if len(unique) >= maxResults {
				break
			}
		}
	}
	return unique, nil
}
