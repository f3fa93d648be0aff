package service

import (
	"context"
	"strings"

	"artistpages/internal/domain/pages"
)

// Public returns the projection of a published page. Unpublished pages are
// reported as not found.
func (s *PageService) Public(ctx context.Context, slug string) (pages.View, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !pages.ValidSlug(slug) {
		return pages.View{}, ErrNotFound
	}

	var page pages.Page
	err := withChildren(s.db.WithContext(ctx).Model(&pages.Page{})).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&page).Error
	if err != nil {
		return pages.View{}, translate(err)
	}

	view, err := pages.Project(page, pages.ProjectOptions{RootDomain: s.rootDomain})
	if err != nil {
		return pages.View{}, translate(err)
	}
	return view, nil
}
