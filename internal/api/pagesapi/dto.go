package pagesapi

import (
	"artistpages/internal/domain/pages"
	"artistpages/internal/service"
)

type SaveRequest struct {
	UserEmail string       `json:"userEmail"`
	PageData  *pages.Draft `json:"pageData"`
}

type SaveResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Page    pages.Draft `json:"page"`
}

type LoadResponse struct {
	Success bool        `json:"success"`
	Page    pages.Draft `json:"page"`
}

type ListResponse struct {
	Success bool                  `json:"success"`
	Pages   []service.PageSummary `json:"pages"`
	Total   int                   `json:"total"`
}
