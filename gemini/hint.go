// Package gemini implements the optional hint capability using Google
// Gemini: given a page's noisy candidate lists, it asks the model which
// podcast and episode the page is actually about.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/fwojciec/castmatch"
)

const model = "gemini-2.5-flash"

// Ensure HintService implements castmatch.HintService at compile time.
var _ castmatch.HintService = (*HintService)(nil)

// HintService implements castmatch.HintService using Google Gemini.
type HintService struct {
	client *genai.Client
}

// NewHintService creates a new HintService.
func NewHintService(client *genai.Client) *HintService {
	return &HintService{client: client}
}

// Infer asks the model to pick the podcast name and episode title from the
// page's candidate lists. Returns nil when the page carries no candidates
// or the model finds nothing.
func (s *HintService) Infer(ctx context.Context, page *castmatch.PageContext) (*castmatch.Hint, error) {
	if page == nil {
		return nil, castmatch.Errorf(castmatch.EINVALID, "page context required")
	}
	if len(page.EpisodeTitles) == 0 && len(page.PodcastTitles) == 0 {
		return nil, nil
	}

	prompt := BuildUserPrompt(page)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, castmatch.Errorf(castmatch.EINTERNAL, "gemini returned nil result")
	}

	var hint castmatch.Hint
	if err := json.Unmarshal([]byte(result.Text()), &hint); err != nil {
		return nil, castmatch.Errorf(castmatch.EINTERNAL, "gemini returned malformed hint: %v", err)
	}

	hint.PodcastName = strings.TrimSpace(hint.PodcastName)
	hint.EpisodeTitle = strings.TrimSpace(hint.EpisodeTitle)
	if hint.PodcastName == "" && hint.EpisodeTitle == "" {
		return nil, nil
	}
	return &hint, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls. The
// response is constrained to a JSON object matching castmatch.Hint.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You identify podcast episodes from scraped web page metadata. Given candidate titles, pick the podcast name and the episode title the page is about. Use empty strings for anything you cannot determine. Never invent names that do not appear in the candidates.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"podcastName":  {Type: genai.TypeString},
				"episodeTitle": {Type: genai.TypeString},
			},
		},
	}
}

// BuildUserPrompt renders the page's candidate lists for the model.
func BuildUserPrompt(page *castmatch.PageContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<page url=%q>\n", page.PageURL)
	writeList(&sb, "episode-title-candidates", page.EpisodeTitles)
	writeList(&sb, "podcast-title-candidates", page.PodcastTitles)
	writeList(&sb, "feed-urls", page.FeedURLs)
	sb.WriteString("</page>\n\n")
	sb.WriteString("Which podcast and episode is this page about?")
	return sb.String()
}

func writeList(sb *strings.Builder, tag string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(sb, "<%s>\n", tag)
	for _, v := range values {
		fmt.Fprintf(sb, "- %s\n", v)
	}
	fmt.Fprintf(sb, "</%s>\n", tag)
}
