package news

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryTransfer Category = "transfer"
	CategoryMatch    Category = "match"
	CategoryPlayer   Category = "player"
	CategoryTeam     Category = "team"
	CategoryGeneral  Category = "general"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTransfer, CategoryMatch, CategoryPlayer, CategoryTeam, CategoryGeneral:
		return true
	}
	return false
}

type Article struct {
	ID          string
	Title       string
	Slug        string
	Content     string
	Summary     string
	CoverImage  string
	Category    Category
	IsPublished bool
	Views       int64
	Tags        []string
	AuthorID    string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a Article) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("news id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("news title is required")
	}
	if a.Slug == "" {
		return fmt.Errorf("news slug is required")
	}
	if strings.TrimSpace(a.Content) == "" {
		return fmt.Errorf("news content is required")
	}
	if !a.Category.Valid() {
		return fmt.Errorf("news category %q is invalid", a.Category)
	}
	if a.Views < 0 {
		return fmt.Errorf("news views must not be negative")
	}
	return nil
}

// Publish marks the article public, stamping PublishedAt the first time.
func (a *Article) Publish(now time.Time) {
	a.IsPublished = true
	if a.PublishedAt == nil {
		at := now.UTC()
		a.PublishedAt = &at
	}
}

type Patch struct {
	Title       *string
	Content     *string
	Summary     *string
	CoverImage  *string
	Category    *Category
	IsPublished *bool
	Tags        *[]string
}

func (p Patch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Summary != nil {
		a.Summary = *p.Summary
	}
	if p.CoverImage != nil {
		a.CoverImage = *p.CoverImage
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
	if p.Tags != nil {
		a.Tags = append([]string(nil), (*p.Tags)...)
	}
}
