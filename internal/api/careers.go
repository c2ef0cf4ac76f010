package api

import (
	"context"
	"net/url"
)

// Career is one career path from the guidance catalogue.
type Career struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Industry       string   `json:"industry"`
	Category       string   `json:"category"`
	AvgSalaryRange string   `json:"avg_salary_range"`
	RequiredSkills []string `json:"required_skills"`
}

// CareerFilter narrows the career listing. Zero fields are not applied.
type CareerFilter struct {
	Industry string
	Category string
	Language string
}

// Careers lists career paths, optionally filtered and translated.
func (c *Client) Careers(ctx context.Context, filter CareerFilter) ([]Career, error) {
	q := url.Values{}
	if filter.Industry != "" {
		q.Set("industry", filter.Industry)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Language != "" {
		q.Set("language", filter.Language)
	}

	var out struct {
		Careers []Career `json:"careers"`
		Total   int      `json:"total"`
	}
	if err := c.get(ctx, "/careers/careers", q, &out); err != nil {
		return nil, err
	}
	return out.Careers, nil
}

// Languages returns the supported career-guidance languages, code to name.
func (c *Client) Languages(ctx context.Context) (map[string]string, error) {
	var out struct {
		Languages map[string]string `json:"languages"`
	}
	if err := c.get(ctx, "/careers/languages", nil, &out); err != nil {
		return nil, err
	}
	return out.Languages, nil
}
