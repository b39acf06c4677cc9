package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	basecache "github.com/riskibarqy/football-portal/internal/platform/cache"
)

const (
	competitionKeyPrefix = "competition:"
	teamKeyPrefix        = "team:"
)

// cachedLookup records misses as well as hits.
type cachedLookup[T any] struct {
	value  T
	exists bool
}

func loadList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T{}, items...), nil
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedLookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedLookup[T])
	return cached.value, cached.exists, nil
}

// CompetitionRepository is a read-through cache over a competition store.
// Every write drops all cached competition keys.
type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	key := competitionKeyPrefix + "list:" + strings.ToLower(strings.TrimSpace(filter.Country)) + ":" + strconv.FormatBool(filter.ActiveOnly)
	return loadList(ctx, r.cache, key, func(ctx context.Context) ([]competition.Competition, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id string) (competition.Competition, bool, error) {
	return loadOne(ctx, r.cache, competitionKeyPrefix+"id:"+id, func(ctx context.Context) (competition.Competition, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *CompetitionRepository) GetBySlug(ctx context.Context, slug string) (competition.Competition, bool, error) {
	return loadOne(ctx, r.cache, competitionKeyPrefix+"slug:"+slug, func(ctx context.Context) (competition.Competition, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *CompetitionRepository) GetByExternalID(ctx context.Context, externalID int64) (competition.Competition, bool, error) {
	key := competitionKeyPrefix + "external:" + strconv.FormatInt(externalID, 10)
	return loadOne(ctx, r.cache, key, func(ctx context.Context) (competition.Competition, bool, error) {
		return r.next.GetByExternalID(ctx, externalID)
	})
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) error {
	defer r.cache.DeletePrefix(ctx, competitionKeyPrefix)
	return r.next.Create(ctx, c)
}

func (r *CompetitionRepository) Update(ctx context.Context, c competition.Competition) error {
	defer r.cache.DeletePrefix(ctx, competitionKeyPrefix)
	return r.next.Update(ctx, c)
}

func (r *CompetitionRepository) Delete(ctx context.Context, id string) error {
	defer r.cache.DeletePrefix(ctx, competitionKeyPrefix)
	return r.next.Delete(ctx, id)
}

// TeamRepository caches team reads. Search is passed through uncached.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return loadList(ctx, r.cache, teamKeyPrefix+"list", r.next.List)
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	return loadOne(ctx, r.cache, teamKeyPrefix+"id:"+id, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []string) ([]team.Team, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	key := teamKeyPrefix + "ids:" + strings.Join(sorted, ",")
	return loadList(ctx, r.cache, key, func(ctx context.Context) ([]team.Team, error) {
		return r.next.GetByIDs(ctx, ids)
	})
}

func (r *TeamRepository) Search(ctx context.Context, query string) ([]team.Team, error) {
	return r.next.Search(ctx, query)
}

func (r *TeamRepository) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	return loadList(ctx, r.cache, teamKeyPrefix+"competition:"+competitionID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByCompetition(ctx, competitionID)
	})
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	defer r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return r.next.Create(ctx, t)
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	defer r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return r.next.Update(ctx, t)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	defer r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return r.next.Delete(ctx, id)
}
