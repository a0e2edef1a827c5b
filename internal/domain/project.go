package domain

import (
	"strings"
	"time"
)

// Project is a portfolio project. Technologies is a free comma-separated list.
type Project struct {
	ID           string    `json:"id"`
	PageID       string    `json:"pageId"`
	Title        Localized `json:"title" validate:"dive,keys,oneof=fr en,endkeys,max=200"`
	Description  Localized `json:"description" validate:"dive,keys,oneof=fr en,endkeys,omitempty"`
	Technologies string    `json:"technologies" validate:"max=300"`
	GithubURL    string    `json:"githubUrl" validate:"omitempty,http_url,max=200"`
	LiveURL      string    `json:"liveUrl" validate:"omitempty,http_url,max=200"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p Project) Validate() error {
	return validateStruct(p)
}

// TechnologyList splits Technologies on commas, trimming blanks.
func (p Project) TechnologyList() []string {
	var out []string
	for _, t := range strings.Split(p.Technologies, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
