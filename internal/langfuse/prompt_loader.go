package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PromptConfig describes which managed prompt to fetch from Langfuse.
type PromptConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	// Name is the prompt name in Langfuse prompt management.
	Name string
	// Label selects a prompt version (e.g. "production"). Empty uses the latest.
	Label string
}

// ErrPromptUnavailable indicates the prompt could not be fetched,
// either because Langfuse is not configured or the request failed.
var ErrPromptUnavailable = errors.New("langfuse prompt unavailable")

// LoadPrompt fetches a managed prompt from the Langfuse prompt API.
// Callers are expected to fall back to a built-in prompt on error.
func LoadPrompt(ctx context.Context, cfg PromptConfig) (string, error) {
	if cfg.Name == "" {
		return "", fmt.Errorf("%w: no prompt name configured", ErrPromptUnavailable)
	}
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", fmt.Errorf("%w: missing Langfuse credentials", ErrPromptUnavailable)
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL: %v", ErrPromptUnavailable, err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.Name)
	if cfg.Label != "" {
		query := parsed.Query()
		query.Set("label", cfg.Label)
		parsed.RawQuery = query.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPromptUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPromptUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: prompt API returned %d: %s", ErrPromptUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrPromptUnavailable, err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("%w: parse text prompt: %v", ErrPromptUnavailable, err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("%w: parse chat prompt: %v", ErrPromptUnavailable, err)
		}
		return flattenChatMessages(messages), nil
	default:
		return "", fmt.Errorf("%w: unsupported prompt type %q", ErrPromptUnavailable, promptResp.Type)
	}
}

type chatPromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// flattenChatMessages joins a chat-style prompt into a single system prompt.
func flattenChatMessages(messages []chatPromptMessage) string {
	var builder strings.Builder
	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		builder.WriteString(strings.ToUpper(role))
		builder.WriteString(": ")
		builder.WriteString(msg.Content)
	}
	return builder.String()
}
