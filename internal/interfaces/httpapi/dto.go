package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/feed"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/domain/player"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/domain/transfer"
	"github.com/riskibarqy/football-portal/internal/domain/user"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

type feedListDTO[T any] struct {
	Source  feed.Source `json:"source"`
	Message string      `json:"message,omitempty"`
	Items   []T         `json:"items"`
}

type feedItemDTO[T any] struct {
	Source  feed.Source `json:"source"`
	Message string      `json:"message,omitempty"`
	Item    T           `json:"item"`
}

type feedTableDTO struct {
	Source  feed.Source         `json:"source"`
	Message string              `json:"message,omitempty"`
	Table   feed.StandingsTable `json:"table"`
}

func feedListToDTO[T any](r feed.Result[[]T]) feedListDTO[T] {
	items := r.Data
	if items == nil {
		items = []T{}
	}
	return feedListDTO[T]{Source: r.Source, Message: r.Message, Items: items}
}

func feedItemToDTO[T any](r feed.Result[T]) feedItemDTO[T] {
	return feedItemDTO[T]{Source: r.Source, Message: r.Message, Item: r.Data}
}

func feedTableToDTO(r feed.Result[feed.StandingsTable]) feedTableDTO {
	table := r.Data
	if table.Standings == nil {
		table.Standings = []feed.StandingRow{}
	}
	return feedTableDTO{Source: r.Source, Message: r.Message, Table: table}
}

// Dates without a time component travel as YYYY-MM-DD.
func parseDateField(field, raw string) (time.Time, error) {
	v, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", usecase.ErrInvalidInput, field)
	}
	return v, nil
}

func formatDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.DateOnly)
}

type authRegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

type authLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type competitionDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Logo       string    `json:"logo"`
	Country    string    `json:"country"`
	Type       string    `json:"type"`
	Season     string    `json:"season"`
	IsActive   bool      `json:"isActive"`
	ExternalID int64     `json:"externalId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		Logo:       c.Logo,
		Country:    c.Country,
		Type:       string(c.Type),
		Season:     c.Season,
		IsActive:   c.IsActive,
		ExternalID: c.ExternalID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type competitionCreateRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Slug       string `json:"slug" validate:"omitempty,max=150"`
	Logo       string `json:"logo" validate:"omitempty,max=500"`
	Country    string `json:"country" validate:"required,max=100"`
	Type       string `json:"type" validate:"omitempty,oneof=league cup international"`
	Season     string `json:"season" validate:"required,max=20"`
	IsActive   *bool  `json:"isActive"`
	ExternalID int64  `json:"externalId" validate:"gte=0"`
}

func (r competitionCreateRequest) toDomain() competition.Competition {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return competition.Competition{
		Name:       r.Name,
		Slug:       r.Slug,
		Logo:       r.Logo,
		Country:    r.Country,
		Type:       competition.Type(r.Type),
		Season:     r.Season,
		IsActive:   active,
		ExternalID: r.ExternalID,
	}
}

type competitionUpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=150"`
	Slug       *string `json:"slug" validate:"omitempty,min=1,max=150"`
	Logo       *string `json:"logo" validate:"omitempty,max=500"`
	Country    *string `json:"country" validate:"omitempty,min=1,max=100"`
	Type       *string `json:"type" validate:"omitempty,oneof=league cup international"`
	Season     *string `json:"season" validate:"omitempty,min=1,max=20"`
	IsActive   *bool   `json:"isActive"`
	ExternalID *int64  `json:"externalId" validate:"omitempty,gte=0"`
}

func (r competitionUpdateRequest) toPatch() competition.Patch {
	p := competition.Patch{
		Name:       r.Name,
		Slug:       r.Slug,
		Logo:       r.Logo,
		Country:    r.Country,
		Season:     r.Season,
		IsActive:   r.IsActive,
		ExternalID: r.ExternalID,
	}
	if r.Type != nil {
		t := competition.Type(*r.Type)
		p.Type = &t
	}
	return p
}

type teamDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ShortName     string    `json:"shortName"`
	Logo          string    `json:"logo"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	Stadium       string    `json:"stadium"`
	Founded       int       `json:"founded,omitempty"`
	Colors        string    `json:"colors"`
	CompetitionID string    `json:"competitionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:            t.ID,
		Name:          t.Name,
		ShortName:     t.ShortName,
		Logo:          t.Logo,
		Country:       t.Country,
		City:          t.City,
		Stadium:       t.Stadium,
		Founded:       t.Founded,
		Colors:        t.Colors,
		CompetitionID: t.CompetitionID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type teamCreateRequest struct {
	Name          string `json:"name" validate:"required,max=150"`
	ShortName     string `json:"shortName" validate:"required,max=10"`
	Logo          string `json:"logo" validate:"omitempty,max=500"`
	Country       string `json:"country" validate:"omitempty,max=100"`
	City          string `json:"city" validate:"omitempty,max=100"`
	Stadium       string `json:"stadium" validate:"omitempty,max=150"`
	Founded       int    `json:"founded" validate:"gte=0,lte=2100"`
	Colors        string `json:"colors" validate:"omitempty,max=100"`
	CompetitionID string `json:"competitionId"`
}

func (r teamCreateRequest) toDomain() team.Team {
	return team.Team{
		Name:          r.Name,
		ShortName:     r.ShortName,
		Logo:          r.Logo,
		Country:       r.Country,
		City:          r.City,
		Stadium:       r.Stadium,
		Founded:       r.Founded,
		Colors:        r.Colors,
		CompetitionID: r.CompetitionID,
	}
}

type teamUpdateRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=150"`
	ShortName     *string `json:"shortName" validate:"omitempty,min=1,max=10"`
	Logo          *string `json:"logo" validate:"omitempty,max=500"`
	Country       *string `json:"country" validate:"omitempty,max=100"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	Stadium       *string `json:"stadium" validate:"omitempty,max=150"`
	Founded       *int    `json:"founded" validate:"omitempty,gte=0,lte=2100"`
	Colors        *string `json:"colors" validate:"omitempty,max=100"`
	CompetitionID *string `json:"competitionId"`
}

func (r teamUpdateRequest) toPatch() team.Patch {
	return team.Patch{
		Name:          r.Name,
		ShortName:     r.ShortName,
		Logo:          r.Logo,
		Country:       r.Country,
		City:          r.City,
		Stadium:       r.Stadium,
		Founded:       r.Founded,
		Colors:        r.Colors,
		CompetitionID: r.CompetitionID,
	}
}

type playerDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	FirstName     string    `json:"firstName,omitempty"`
	LastName      string    `json:"lastName,omitempty"`
	Photo         string    `json:"photo"`
	DateOfBirth   string    `json:"dateOfBirth,omitempty"`
	Nationality   string    `json:"nationality"`
	Position      string    `json:"position"`
	Number        int       `json:"number"`
	MarketValue   int64     `json:"marketValue"`
	Height        int       `json:"height,omitempty"`
	Weight        int       `json:"weight,omitempty"`
	PreferredFoot string    `json:"preferredFoot,omitempty"`
	TeamID        string    `json:"teamId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		Name:          p.Name,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Photo:         p.Photo,
		DateOfBirth:   formatDate(p.DateOfBirth),
		Nationality:   p.Nationality,
		Position:      string(p.Position),
		Number:        p.Number,
		MarketValue:   p.MarketValue,
		Height:        p.Height,
		Weight:        p.Weight,
		PreferredFoot: string(p.PreferredFoot),
		TeamID:        p.TeamID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type playerCreateRequest struct {
	Name          string `json:"name" validate:"omitempty,max=150"`
	FirstName     string `json:"firstName" validate:"omitempty,max=100"`
	LastName      string `json:"lastName" validate:"omitempty,max=100"`
	Photo         string `json:"photo" validate:"omitempty,max=500"`
	DateOfBirth   string `json:"dateOfBirth"`
	Nationality   string `json:"nationality" validate:"omitempty,max=100"`
	Position      string `json:"position" validate:"required,oneof=goalkeeper defender midfielder forward"`
	Number        int    `json:"number" validate:"gte=0,lte=99"`
	MarketValue   int64  `json:"marketValue" validate:"gte=0"`
	Height        int    `json:"height" validate:"gte=0,lte=250"`
	Weight        int    `json:"weight" validate:"gte=0,lte=200"`
	PreferredFoot string `json:"preferredFoot" validate:"omitempty,oneof=left right both"`
	TeamID        string `json:"teamId"`
}

func (r playerCreateRequest) toDomain() (player.Player, error) {
	p := player.Player{
		Name:          r.Name,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Photo:         r.Photo,
		Nationality:   r.Nationality,
		Position:      player.Position(r.Position),
		Number:        r.Number,
		MarketValue:   r.MarketValue,
		Height:        r.Height,
		Weight:        r.Weight,
		PreferredFoot: player.Foot(r.PreferredFoot),
		TeamID:        r.TeamID,
	}
	if r.DateOfBirth != "" {
		dob, err := parseDateField("dateOfBirth", r.DateOfBirth)
		if err != nil {
			return player.Player{}, err
		}
		p.DateOfBirth = &dob
	}
	return p, nil
}

type playerUpdateRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=150"`
	FirstName     *string `json:"firstName" validate:"omitempty,max=100"`
	LastName      *string `json:"lastName" validate:"omitempty,max=100"`
	Photo         *string `json:"photo" validate:"omitempty,max=500"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Nationality   *string `json:"nationality" validate:"omitempty,max=100"`
	Position      *string `json:"position" validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
	Number        *int    `json:"number" validate:"omitempty,gte=0,lte=99"`
	MarketValue   *int64  `json:"marketValue" validate:"omitempty,gte=0"`
	Height        *int    `json:"height" validate:"omitempty,gte=0,lte=250"`
	Weight        *int    `json:"weight" validate:"omitempty,gte=0,lte=200"`
	PreferredFoot *string `json:"preferredFoot" validate:"omitempty,oneof=left right both"`
	TeamID        *string `json:"teamId"`
}

func (r playerUpdateRequest) toPatch() (player.Patch, error) {
	p := player.Patch{
		Name:        r.Name,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Photo:       r.Photo,
		Nationality: r.Nationality,
		Number:      r.Number,
		MarketValue: r.MarketValue,
		Height:      r.Height,
		Weight:      r.Weight,
		TeamID:      r.TeamID,
	}
	if r.Position != nil {
		pos := player.Position(*r.Position)
		p.Position = &pos
	}
	if r.PreferredFoot != nil {
		foot := player.Foot(*r.PreferredFoot)
		p.PreferredFoot = &foot
	}
	if r.DateOfBirth != nil {
		dob, err := parseDateField("dateOfBirth", *r.DateOfBirth)
		if err != nil {
			return player.Patch{}, err
		}
		p.DateOfBirth = &dob
	}
	return p, nil
}

type matchDTO struct {
	ID            string    `json:"id"`
	MatchDate     time.Time `json:"matchDate"`
	HomeScore     *int      `json:"homeScore"`
	AwayScore     *int      `json:"awayScore"`
	Status        string    `json:"status"`
	Round         string    `json:"round,omitempty"`
	Venue         string    `json:"venue,omitempty"`
	HomeTeamID    string    `json:"homeTeamId"`
	AwayTeamID    string    `json:"awayTeamId"`
	CompetitionID string    `json:"competitionId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		MatchDate:     m.MatchDate,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Status:        string(m.Status),
		Round:         m.Round,
		Venue:         m.Venue,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		CompetitionID: m.CompetitionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type matchCreateRequest struct {
	MatchDate     time.Time `json:"matchDate" validate:"required"`
	HomeScore     *int      `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore     *int      `json:"awayScore" validate:"omitempty,gte=0"`
	Status        string    `json:"status" validate:"omitempty,oneof=scheduled live halftime finished postponed cancelled"`
	Round         string    `json:"round" validate:"omitempty,max=100"`
	Venue         string    `json:"venue" validate:"omitempty,max=150"`
	HomeTeamID    string    `json:"homeTeamId" validate:"required"`
	AwayTeamID    string    `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	CompetitionID string    `json:"competitionId" validate:"required"`
}

func (r matchCreateRequest) toDomain() match.Match {
	return match.Match{
		MatchDate:     r.MatchDate,
		HomeScore:     r.HomeScore,
		AwayScore:     r.AwayScore,
		Status:        match.Status(r.Status),
		Round:         r.Round,
		Venue:         r.Venue,
		HomeTeamID:    r.HomeTeamID,
		AwayTeamID:    r.AwayTeamID,
		CompetitionID: r.CompetitionID,
	}
}

type matchUpdateRequest struct {
	MatchDate     *time.Time `json:"matchDate"`
	HomeScore     *int       `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore     *int       `json:"awayScore" validate:"omitempty,gte=0"`
	Status        *string    `json:"status" validate:"omitempty,oneof=scheduled live halftime finished postponed cancelled"`
	Round         *string    `json:"round" validate:"omitempty,max=100"`
	Venue         *string    `json:"venue" validate:"omitempty,max=150"`
	HomeTeamID    *string    `json:"homeTeamId" validate:"omitempty,min=1"`
	AwayTeamID    *string    `json:"awayTeamId" validate:"omitempty,min=1"`
	CompetitionID *string    `json:"competitionId" validate:"omitempty,min=1"`
}

func (r matchUpdateRequest) toPatch() match.Patch {
	p := match.Patch{
		MatchDate:     r.MatchDate,
		HomeScore:     r.HomeScore,
		AwayScore:     r.AwayScore,
		Round:         r.Round,
		Venue:         r.Venue,
		HomeTeamID:    r.HomeTeamID,
		AwayTeamID:    r.AwayTeamID,
		CompetitionID: r.CompetitionID,
	}
	if r.Status != nil {
		s := match.Status(*r.Status)
		p.Status = &s
	}
	return p
}

type transferDTO struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"playerId"`
	FromTeamID   string    `json:"fromTeamId,omitempty"`
	ToTeamID     string    `json:"toTeamId"`
	TransferDate string    `json:"transferDate"`
	Fee          int64     `json:"fee"`
	Type         string    `json:"type"`
	Season       string    `json:"season"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func transferToDTO(t transfer.Transfer) transferDTO {
	return transferDTO{
		ID:           t.ID,
		PlayerID:     t.PlayerID,
		FromTeamID:   t.FromTeamID,
		ToTeamID:     t.ToTeamID,
		TransferDate: formatDate(&t.TransferDate),
		Fee:          t.Fee,
		Type:         string(t.Type),
		Season:       t.Season,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type transferCreateRequest struct {
	PlayerID     string `json:"playerId" validate:"required"`
	FromTeamID   string `json:"fromTeamId"`
	ToTeamID     string `json:"toTeamId" validate:"required"`
	TransferDate string `json:"transferDate" validate:"required"`
	Fee          int64  `json:"fee" validate:"gte=0"`
	Type         string `json:"type" validate:"omitempty,oneof=permanent loan free"`
	Season       string `json:"season" validate:"required,max=20"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}

func (r transferCreateRequest) toDomain() (transfer.Transfer, error) {
	date, err := parseDateField("transferDate", r.TransferDate)
	if err != nil {
		return transfer.Transfer{}, err
	}
	return transfer.Transfer{
		PlayerID:     r.PlayerID,
		FromTeamID:   r.FromTeamID,
		ToTeamID:     r.ToTeamID,
		TransferDate: date,
		Fee:          r.Fee,
		Type:         transfer.Type(r.Type),
		Season:       r.Season,
		Notes:        r.Notes,
	}, nil
}

type transferUpdateRequest struct {
	PlayerID     *string `json:"playerId" validate:"omitempty,min=1"`
	FromTeamID   *string `json:"fromTeamId"`
	ToTeamID     *string `json:"toTeamId" validate:"omitempty,min=1"`
	TransferDate *string `json:"transferDate"`
	Fee          *int64  `json:"fee" validate:"omitempty,gte=0"`
	Type         *string `json:"type" validate:"omitempty,oneof=permanent loan free"`
	Season       *string `json:"season" validate:"omitempty,min=1,max=20"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r transferUpdateRequest) toPatch() (transfer.Patch, error) {
	p := transfer.Patch{
		PlayerID:   r.PlayerID,
		FromTeamID: r.FromTeamID,
		ToTeamID:   r.ToTeamID,
		Fee:        r.Fee,
		Season:     r.Season,
		Notes:      r.Notes,
	}
	if r.Type != nil {
		t := transfer.Type(*r.Type)
		p.Type = &t
	}
	if r.TransferDate != nil {
		date, err := parseDateField("transferDate", *r.TransferDate)
		if err != nil {
			return transfer.Patch{}, err
		}
		p.TransferDate = &date
	}
	return p, nil
}

type newsDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Category    string     `json:"category"`
	IsPublished bool       `json:"isPublished"`
	Views       int64      `json:"views"`
	Tags        []string   `json:"tags"`
	AuthorID    string     `json:"authorId,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newsToDTO(a news.Article) newsDTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return newsDTO{
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
		AuthorID:    a.AuthorID,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type newsCreateRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Content     string   `json:"content" validate:"required"`
	Summary     string   `json:"summary" validate:"omitempty,max=500"`
	CoverImage  string   `json:"coverImage" validate:"omitempty,max=500"`
	Category    string   `json:"category" validate:"omitempty,oneof=transfer match player team general"`
	IsPublished bool     `json:"isPublished"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
}

func (r newsCreateRequest) toDomain() news.Article {
	return news.Article{
		Title:       r.Title,
		Content:     r.Content,
		Summary:     r.Summary,
		CoverImage:  r.CoverImage,
		Category:    news.Category(r.Category),
		IsPublished: r.IsPublished,
		Tags:        r.Tags,
	}
}

type newsUpdateRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Content     *string   `json:"content" validate:"omitempty,min=1"`
	Summary     *string   `json:"summary" validate:"omitempty,max=500"`
	CoverImage  *string   `json:"coverImage" validate:"omitempty,max=500"`
	Category    *string   `json:"category" validate:"omitempty,oneof=transfer match player team general"`
	IsPublished *bool     `json:"isPublished"`
	Tags        *[]string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
}

func (r newsUpdateRequest) toPatch() news.Patch {
	p := news.Patch{
		Title:       r.Title,
		Content:     r.Content,
		Summary:     r.Summary,
		CoverImage:  r.CoverImage,
		IsPublished: r.IsPublished,
		Tags:        r.Tags,
	}
	if r.Category != nil {
		c := news.Category(*r.Category)
		p.Category = &c
	}
	return p
}

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	IsActive  bool      `json:"isActive"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Avatar:    u.Avatar,
		IsActive:  u.IsActive,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type userUpdateRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Username  *string `json:"username" validate:"omitempty,max=50"`
	Avatar    *string `json:"avatar" validate:"omitempty,max=500"`
	IsActive  *bool   `json:"isActive"`
	Role      *string `json:"role" validate:"omitempty,oneof=user admin"`
}

func (r userUpdateRequest) toPatch() user.Patch {
	p := user.Patch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Username:  r.Username,
		Avatar:    r.Avatar,
		IsActive:  r.IsActive,
	}
	if r.Role != nil {
		role := user.Role(*r.Role)
		p.Role = &role
	}
	return p
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
