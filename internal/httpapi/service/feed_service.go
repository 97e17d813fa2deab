package service

import (
	"context"
	"errors"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// DefaultFeedLimit is the home feed size when the caller does not ask for one.
const DefaultFeedLimit = 20

// maxAffinityCategories caps how many of the user's favorite categories feed
// the secondary source.
const maxAffinityCategories = 3

// FeedSource labels where a feed item came from, in precedence order.
type FeedSource string

const (
	SourceFollowed FeedSource = "followed"
	SourceAffinity FeedSource = "affinity"
	SourceTopRated FeedSource = "top-rated"
	SourceRandom   FeedSource = "random"
)

// FeedItem is one entry of a personalized feed.
type FeedItem struct {
	repository.RankedJoke
	Source FeedSource `json:"source"`
}

type FeedService interface {
	HomeFeed(ctx context.Context, userID int64, limit int) ([]FeedItem, error)
}

type feedService struct {
	jokeRepo     repository.JokeRepository
	followRepo   repository.FollowRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

func NewFeedService(
	jokeRepo repository.JokeRepository,
	followRepo repository.FollowRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) FeedService {
	return &feedService{
		jokeRepo:     jokeRepo,
		followRepo:   followRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// HomeFeed blends three sources in fixed precedence: jokes from followed
// users, then jokes in the caller's favorite categories, then the global
// leaderboard as fill. A joke appears at most once, keeping its
// highest-precedence placement. A caller with no follows and no history
// still gets a feed: the composer falls through to the leaderboard and,
// when nothing is rated yet, to a random sample.
func (s *feedService) HomeFeed(ctx context.Context, userID int64, limit int) ([]FeedItem, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}

	feed := make([]FeedItem, 0, limit)
	seen := make(map[int64]bool, limit)

	add := func(jokes []repository.RankedJoke, source FeedSource) {
		for _, j := range jokes {
			if len(feed) >= limit {
				return
			}
			if seen[j.ID] {
				continue
			}
			seen[j.ID] = true
			feed = append(feed, FeedItem{RankedJoke: j, Source: source})
		}
	}

	// (a) social signal: followees' jokes, rated or not
	followees, err := s.followRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if len(followees) > 0 {
		social, err := s.jokeRepo.RankedByAuthors(ctx, followees, limit)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		add(social, SourceFollowed)
	}

	// (b) affinity signal: jokes in the caller's top categories
	if len(feed) < limit {
		favorites, err := s.categoryRepo.FavoritesForUser(ctx, userID, HighRatingFloor)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		if len(favorites) > maxAffinityCategories {
			favorites = favorites[:maxAffinityCategories]
		}
		categoryIDs := make([]int64, 0, len(favorites))
		for _, f := range favorites {
			categoryIDs = append(categoryIDs, f.Category.ID)
		}
		if len(categoryIDs) > 0 {
			byCategory, err := s.jokeRepo.RankedByCategories(ctx, categoryIDs, limit)
			if err != nil {
				return nil, apperr.Storage(err)
			}
			add(byCategory, SourceAffinity)
		}
	}

	// (c) fill: global top-rated
	if len(feed) < limit {
		top, err := s.jokeRepo.TopRated(ctx, nil, limit)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		add(top, SourceTopRated)
	}

	// last resort: nothing is rated yet, serve a random sample
	if len(feed) < limit {
		sample, err := s.jokeRepo.Random(ctx, limit)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		ranked := make([]repository.RankedJoke, 0, len(sample))
		for _, j := range sample {
			ranked = append(ranked, repository.RankedJoke{Joke: j})
		}
		add(ranked, SourceRandom)
	}

	return feed, nil
}
