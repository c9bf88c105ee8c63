// Package openai implements the text and image generator on top of the
// OpenAI API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	DefaultModel      = "gpt-4o-mini"
	DefaultImageModel = openai.CreateImageModelDallE3
)

type Config struct {
	Debug      bool
	Token      string
	Model      string
	ImageModel string
	// BaseURL overrides the API endpoint, for compatible servers.
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	client     *openai.Client
	debug      bool
	model      string
	imageModel string
}

func New(cfg *Config) *Client {
	c := openai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		c.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	c.HTTPClient = &http.Client{Timeout: timeout}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	return &Client{
		client:     openai.NewClientWithConfig(c),
		debug:      cfg.Debug,
		model:      model,
		imageModel: imageModel,
	}
}

func (c *Client) log(format string, args ...any) {
	if !c.debug {
		return
	}
	zap.S().Debugf(format, args...)
}

// Text sends the prompt as a single user message and returns the reply.
func (c *Client) Text(ctx context.Context, prompt string) (string, error) {
	c.log("openai: chat request (%s, %d chars)", c.model, len(prompt))
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: couldn't create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices in response")
	}
	out := resp.Choices[0].Message.Content
	c.log("openai: chat response (%d chars)", len(out))
	return out, nil
}

// Image generates one picture and returns it as a base64 png data URL.
// Ratio is a "w:h" aspect ratio, size a "1K", "2K" or "4K" class.
func (c *Client) Image(ctx context.Context, prompt, ratio, size string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.imageModel,
		N:              1,
		Size:           imageSize(ratio),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	}
	if c.imageModel == openai.CreateImageModelDallE3 {
		req.Quality = imageQuality(size)
	}
	c.log("openai: image request (%s, %s, %s)", c.imageModel, req.Size, req.Quality)
	resp, err := c.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: couldn't create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", errors.New("openai: no image in response")
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

// imageSize picks the closest supported size for an aspect ratio.
func imageSize(ratio string) string {
	w, h, ok := parseRatio(ratio)
	switch {
	case !ok, w == h:
		return openai.CreateImageSize1024x1024
	case w > h:
		return openai.CreateImageSize1792x1024
	default:
		return openai.CreateImageSize1024x1792
	}
}

func imageQuality(size string) string {
	switch strings.ToUpper(size) {
	case "2K", "4K":
		return openai.CreateImageQualityHD
	}
	return openai.CreateImageQualityStandard
}

func parseRatio(ratio string) (int, int, bool) {
	a, b, ok := strings.Cut(ratio, ":")
	if !ok {
		return 0, 0, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil || w <= 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
