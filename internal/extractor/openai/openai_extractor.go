package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/extractor"
	"jobdesk/internal/port"
)

const apiBaseURL = "https://api.openai.com/v1"

// Extractor implements port.ResumeExtractor using the OpenAI API. PDF
// resumes go through the Files + Responses APIs; normalized images go
// through a single vision chat completion.
type Extractor struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewExtractor creates an OpenAI-based resume extractor. The API key is a
// precondition: construction fails without one.
func NewExtractor(cfg *config.ExtractorConfig) (*Extractor, error) {
	return newExtractor(cfg, apiBaseURL)
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API
// base URL (for testing).
func NewExtractorWithEndpoint(cfg *config.ExtractorConfig, baseURL string) (*Extractor, error) {
	return newExtractor(cfg, baseURL)
}

func newExtractor(cfg *config.ExtractorConfig, baseURL string) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (e *Extractor) Supports(kind port.ArtifactKind) bool {
	return kind == port.ArtifactFile || kind == port.ArtifactImage
}

func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	if e.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	switch input.Kind {
	case port.ArtifactFile:
		return e.extractFromFile(ctx, input)
	case port.ArtifactImage:
		return e.extractFromImage(ctx, input)
	default:
		return nil, fmt.Errorf("unsupported artifact kind: %s", input.Kind)
	}
}

// extractFromFile uploads the raw document once as a file resource, then
// references it from a single responses-API call.
func (e *Extractor) extractFromFile(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	fileID, err := e.uploadFile(ctx, input.FileBytes)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	prompt := extractor.BuildResumePrompt(input.Job)

	reqBody := map[string]interface{}{
		"model": e.model,
		"input": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "input_file", "file_id": fileID},
					{"type": "input_text", "text": prompt},
				},
			},
		},
	}

	respBody, err := e.postJSON(ctx, e.baseURL+"/responses", reqBody)
	if err != nil {
		return nil, err
	}

	var resp responsesAPIResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	text := resp.outputText()
	if text == "" {
		return nil, fmt.Errorf("empty response from API: no output text")
	}

	return &port.ExtractOutput{
		RawText:    text,
		TokensUsed: resp.Usage.TotalTokens,
		ModelUsed:  e.model,
		PromptUsed: prompt,
	}, nil
}

// extractFromImage embeds the image inline as base64 data in a single
// vision chat completion.
func (e *Extractor) extractFromImage(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	prompt := extractor.BuildImagePrompt()

	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)
	dataURI := fmt.Sprintf("data:%s;base64,%s", input.ContentType, encoded)

	reqBody := map[string]interface{}{
		"model":      e.model,
		"max_tokens": 1000,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]interface{}{"url": dataURI}},
				},
			},
		},
	}

	respBody, err := e.postJSON(ctx, e.baseURL+"/chat/completions", reqBody)
	if err != nil {
		return nil, err
	}

	var resp chatAPIResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	return &port.ExtractOutput{
		RawText:    resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
		ModelUsed:  e.model,
		PromptUsed: prompt,
	}, nil
}

// uploadFile posts the document bytes to the Files API with purpose
// user_data and returns the created file resource id.
func (e *Extractor) uploadFile(ctx context.Context, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("purpose", "user_data"); err != nil {
		return "", fmt.Errorf("writing purpose field: %w", err)
	}
	part, err := writer.CreateFormFile("file", "resume.pdf")
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("writing file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/files", &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", e.apiError(resp, respBody)
	}

	var file struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &file); err != nil {
		return "", fmt.Errorf("unmarshaling file response: %w", err)
	}
	if file.ID == "" {
		return "", fmt.Errorf("file upload returned no id")
	}
	return file.ID, nil
}

func (e *Extractor) postJSON(ctx context.Context, url string, reqBody interface{}) ([]byte, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, e.apiError(resp, respBody)
	}
	return respBody, nil
}

func (e *Extractor) apiError(resp *http.Response, body []byte) error {
	baseErr := fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(body))
	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := extractor.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
		return extractor.NewRateLimitError("openai", baseErr, retryAfter)
	}
	return baseErr
}

// responsesAPIResponse models the Responses API output.
type responsesAPIResponse struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// outputText returns the convenience output_text field when present,
// otherwise the first output_text content block of the first message.
func (r *responsesAPIResponse) outputText() string {
	if r.OutputText != "" {
		return r.OutputText
	}
	for _, out := range r.Output {
		if out.Type != "message" {
			continue
		}
		for _, c := range out.Content {
			if c.Type == "output_text" && c.Text != "" {
				return c.Text
			}
		}
	}
	return ""
}

// chatAPIResponse models the Chat Completions API response.
type chatAPIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

var _ port.ResumeExtractor = (*Extractor)(nil)
