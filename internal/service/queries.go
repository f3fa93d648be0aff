package service

import (
	"artistpages/internal/domain/pages"
	"artistpages/internal/domain/users"

	"gorm.io/gorm"
)

func userPagesQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&pages.Page{}).Where("user_id = ?", userID)
}

func bySortIndex(db *gorm.DB) *gorm.DB {
	return db.Order("sort_index ASC")
}

// withChildren preloads the seven collections. Social links have no stored
// order and are sorted by platform after loading.
func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Links", bySortIndex).
		Preload("SocialLinks").
		Preload("CustomButtons", bySortIndex).
		Preload("FeaturedItems", bySortIndex).
		Preload("Tracks", bySortIndex).
		Preload("Events", bySortIndex).
		Preload("FullSets", bySortIndex)
}

func findUser(db *gorm.DB, email string) (*users.User, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var user users.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func slugTaken(db *gorm.DB, slug, exceptPageID string) (bool, error) {
	q := db.Model(&pages.Page{}).Where("slug = ?", slug)
	if exceptPageID != "" {
		q = q.Where("id <> ?", exceptPageID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

type pageCount struct {
	PageID string
	N      int64
}

func countByPage(db *gorm.DB, model interface{}, pageIDs []string) (map[string]int64, error) {
	var rows []pageCount
	err := db.Model(model).
		Select("page_id, count(*) AS n").
		Where("page_id IN ?", pageIDs).
		Group("page_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.PageID] = r.N
	}
	return out, nil
}
