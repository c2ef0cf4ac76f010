package api

import "context"

// ChatRequest is one user message to the AI tutor.
type ChatRequest struct {
	Message    string `json:"message"`
	Language   string `json:"language,omitempty"`
	GradeLevel string `json:"grade_level,omitempty"`
}

// ChatResponse is the tutor's reply. Model selection happens server-side.
type ChatResponse struct {
	Response   string `json:"response"`
	GradeLevel string `json:"grade_level"`
	ModelUsed  string `json:"model_used"`
}

// Chat sends a message to the AI tutor and returns its reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.post(ctx, "/ai-tutor/chat", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
