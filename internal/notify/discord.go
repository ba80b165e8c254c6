package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pawmart/pawmart/internal/metrics"
	"github.com/pawmart/pawmart/pkg/orderform"
	domain "github.com/pawmart/pawmart/pkg/types"
)

const (
	colorPurple = 0x9333EA // pets
	colorGreen  = 0x22C55E // free adoption
	colorBlue   = 0x3B82F6 // supplies

	maxEmbeds = 10
)

// DiscordNotifier implements ListingAlerter via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	listingURL string // fmt pattern with one %s for the listing ID, optional
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithListingURL links each embed to a listing page. pattern receives the
// listing ID, e.g. "https://pawmart.example.com/listing/%s".
func WithListingURL(pattern string) DiscordOption {
	return func(d *DiscordNotifier) {
		d.listingURL = pattern
	}
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// SendListing announces a single listing.
func (d *DiscordNotifier) SendListing(ctx context.Context, l *domain.Listing) error {
	return d.post(ctx, discordWebhookPayload{
		Embeds: []discordEmbed{d.buildEmbed(l)},
	})
}

// SendBatch announces several listings in one message. Discord accepts at
// most ten embeds, so the rest are summarised.
func (d *DiscordNotifier) SendBatch(
	ctx context.Context,
	listings []domain.Listing,
	scope string,
) error {
	if len(listings) == 0 {
		return nil
	}

	limit := min(len(listings), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, d.buildEmbed(&listings[i]))
	}

	if len(listings) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more new listings in %s", len(listings)-maxEmbeds, scope),
			Color:       colorBlue,
			Description: "Run `pawmart listings list` for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func (d *DiscordNotifier) buildEmbed(l *domain.Listing) discordEmbed {
	title := "New listing: " + l.Name
	if l.IsPet() {
		title = "Up for adoption: " + l.Name
	}

	embed := discordEmbed{
		Title:       title,
		Color:       categoryColor(l),
		Description: l.Description,
		Fields: []discordEmbedField{
			{Name: "Category", Value: l.Category, Inline: true},
			{Name: "Price", Value: orderform.DetailPriceLabel(l), Inline: true},
			{Name: "Location", Value: l.Location, Inline: true},
		},
	}
	if d.listingURL != "" && l.ID != "" {
		embed.URL = fmt.Sprintf(d.listingURL, l.ID)
	}
	if l.Image != "" {
		embed.Thumbnail = &discordThumbnail{URL: l.Image}
	}
	return embed
}

func categoryColor(l *domain.Listing) int {
	switch {
	case l.IsFreeAdoption():
		return colorGreen
	case l.IsPet():
		return colorPurple
	default:
		return colorBlue
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) (err error) {
	start := time.Now()
	defer func() {
		metrics.AlertDuration.Observe(time.Since(start).Seconds())
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.AlertsSentTotal.WithLabelValues(result).Inc()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
