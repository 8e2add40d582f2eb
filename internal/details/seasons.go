package details

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
)

const missingEpisode = math.MaxInt

// seasonOf resolves the season an episode belongs to; missing and
// non-positive seasons collapse into season 1.
func seasonOf(ep provider.Episode) int {
	if ep.Season == nil || *ep.Season <= 0 {
		return 1
	}
	return *ep.Season
}

func episodeOf(ep provider.Episode) int {
	if ep.Episode == nil {
		return missingEpisode
	}
	return *ep.Episode
}

// ExtractSeasonCount counts the distinct positive season numbers found on
// episodes and in declared. With none found it is 1 when there is at least
// one episode and nil otherwise.
func ExtractSeasonCount(episodes []provider.Episode, declared []int) *int {
	seen := make(map[int]struct{})
	for _, ep := range episodes {
		if ep.Season != nil && *ep.Season > 0 {
			seen[*ep.Season] = struct{}{}
		}
	}
	for _, s := range declared {
		if s > 0 {
			seen[s] = struct{}{}
		}
	}
	switch {
	case len(seen) > 0:
		return intPtr(len(seen))
	case len(episodes) > 0:
		return intPtr(1)
	default:
		return nil
	}
}

// ExtractEpisodeCount counts distinct (season, episode) pairs when any
// episode is numbered, and the raw episode count otherwise.
func ExtractEpisodeCount(episodes []provider.Episode) *int {
	if len(episodes) == 0 {
		return nil
	}
	type key struct{ season, episode int }
	seen := make(map[key]struct{})
	for _, ep := range episodes {
		if ep.Episode == nil {
			continue
		}
		seen[key{seasonOf(ep), *ep.Episode}] = struct{}{}
	}
	if len(seen) == 0 {
		return intPtr(len(episodes))
	}
	return intPtr(len(seen))
}

// FindCurrentEpisode returns the resume pointer: the lowest (season,
// episode) among episodes carrying either number, with unnumbered episodes
// sorting last inside their season. Both results are nil when no episode
// qualifies or the chosen season is not positive.
func FindCurrentEpisode(episodes []provider.Episode) (season, episode *int) {
	found := false
	bestSeason, bestEpisode := 0, 0
	var bestRaw *int
	for _, ep := range episodes {
		if ep.Season == nil && ep.Episode == nil {
			continue
		}
		s := 1
		if ep.Season != nil {
			s = *ep.Season
		}
		e := episodeOf(ep)
		if !found || s < bestSeason || (s == bestSeason && e < bestEpisode) {
			found = true
			bestSeason, bestEpisode = s, e
			bestRaw = ep.Episode
		}
	}
	if !found || bestSeason <= 0 {
		return nil, nil
	}
	return intPtr(bestSeason), copyInt(bestRaw)
}

// GroupIntoSeasons builds ordered seasons from a flat episode list.
// With dedupe set, episodes repeating the same (season, number, name) are
// dropped first; anime sources list one episode per language track.
func GroupIntoSeasons(episodes []provider.Episode, meta []provider.SeasonData, defaultPoster string, dedupe bool) []TvSeason {
	if dedupe {
		episodes = dedupeEpisodes(episodes)
	}

	metaBySeason := make(map[int]provider.SeasonData, len(meta))
	for _, m := range meta {
		metaBySeason[m.Season] = m
	}

	grouped := make(map[int][]provider.Episode)
	for _, ep := range episodes {
		s := seasonOf(ep)
		grouped[s] = append(grouped[s], ep)
	}

	seasons := make([]TvSeason, 0, len(grouped))
	for number, eps := range grouped {
		slices.SortStableFunc(eps, compareEpisodes)

		season := TvSeason{
			Number:   number,
			Name:     "Season " + strconv.Itoa(number),
			Episodes: make([]TvEpisode, 0, len(eps)),
		}
		if m, ok := metaBySeason[number]; ok {
			season.DisplayNumber = copyInt(m.DisplaySeason)
			season.Name = fallbacks{m.Name, season.Name}.resolve()
		}
		for i, ep := range eps {
			season.Episodes = append(season.Episodes, toEpisode(number, i, ep, defaultPoster))
		}
		seasons = append(seasons, season)
	}

	slices.SortFunc(seasons, func(a, b TvSeason) int {
		return cmp.Or(
			cmp.Compare(seasonOrder(a), seasonOrder(b)),
			cmp.Compare(a.Number, b.Number),
		)
	})
	return seasons
}

func seasonOrder(s TvSeason) int {
	if s.DisplayNumber != nil {
		return *s.DisplayNumber
	}
	return s.Number
}

func compareEpisodes(a, b provider.Episode) int {
	return cmp.Or(
		cmp.Compare(episodeOf(a), episodeOf(b)),
		cmp.Compare(a.Name, b.Name),
	)
}

func dedupeEpisodes(episodes []provider.Episode) []provider.Episode {
	type key struct {
		season, episode int
		name            string
	}
	seen := make(map[key]struct{}, len(episodes))
	out := make([]provider.Episode, 0, len(episodes))
	for _, ep := range episodes {
		k := key{seasonOf(ep), episodeOf(ep), ep.Name}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, ep)
	}
	return out
}

func toEpisode(season, position int, ep provider.Episode, defaultPoster string) TvEpisode {
	number := "x"
	if ep.Episode != nil {
		number = strconv.Itoa(*ep.Episode)
	}
	return TvEpisode{
		ID:             fmt.Sprintf("%d_%s_%08x_%d", season, number, media.Fingerprint(ep.Data), position),
		Name:           ep.Name,
		Season:         season,
		Number:         copyInt(ep.Episode),
		Description:    ep.Description,
		PosterURI:      fallbacks{ep.PosterURL, defaultPoster}.resolve(),
		AirDate:        ep.Date,
		RuntimeMinutes: RuntimeMinutes(ep.RunTime),
		Rating:         RatingText(ep.Score),
		Data:           ep.Data,
	}
}
