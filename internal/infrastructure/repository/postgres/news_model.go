package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/football-portal/internal/domain/news"
)

var newsColumns = []string{
	"id", "title", "slug", "content", "summary", "cover_image", "category",
	"is_published", "views", "tags", "author_id", "published_at", "created_at", "updated_at",
}

type newsTableModel struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Content     string         `db:"content"`
	Summary     string         `db:"summary"`
	CoverImage  string         `db:"cover_image"`
	Category    string         `db:"category"`
	IsPublished bool           `db:"is_published"`
	Views       int64          `db:"views"`
	Tags        pq.StringArray `db:"tags"`
	AuthorID    *string        `db:"author_id"`
	PublishedAt *time.Time     `db:"published_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func newNewsTableModel(a news.Article) newsTableModel {
	tags := pq.StringArray(a.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}
	return newsTableModel{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Summary:     a.Summary,
		CoverImage:  a.CoverImage,
		Category:    string(a.Category),
		IsPublished: a.IsPublished,
		Views:       a.Views,
		Tags:        tags,
		AuthorID:    nullableString(a.AuthorID),
		PublishedAt: copyTime(a.PublishedAt),
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	}
}

func (m newsTableModel) toDomain() news.Article {
	return news.Article{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Summary:     m.Summary,
		CoverImage:  m.CoverImage,
		Category:    news.Category(m.Category),
		IsPublished: m.IsPublished,
		Views:       m.Views,
		Tags:        append([]string{}, m.Tags...),
		AuthorID:    stringValue(m.AuthorID),
		PublishedAt: copyTime(m.PublishedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
