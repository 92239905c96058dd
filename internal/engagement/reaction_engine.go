// Package engagement owns the toggle and upsert state machines for article
// reactions, article ratings and comment likes. The engines are stateless;
// all state lives in the repositories, whose composite unique constraints
// settle concurrent toggles for the same key.
package engagement

import (
	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
)

// ReactionAction names what a toggle did to the stored row.
type ReactionAction string

const (
	ReactionCreated ReactionAction = "created"
	ReactionRemoved ReactionAction = "removed"
)

// ReactionOutcome reports the toggle result together with fresh per-article
// aggregates. The counts always reflect the write this call performed.
type ReactionOutcome struct {
	Action       ReactionAction  `json:"action"`
	Article      *models.Article `json:"article"`
	LikeCount    int64           `json:"likes"`
	DislikeCount int64           `json:"dislikes"`
}

// ReactionEngine applies like/dislike toggles to (user, article) pairs.
type ReactionEngine struct {
	reactions repositories.ReactionRepository
	articles  repositories.ArticleRepository
}

// NewReactionEngine creates a ReactionEngine.
func NewReactionEngine(reactions repositories.ReactionRepository, articles repositories.ArticleRepository) *ReactionEngine {
	return &ReactionEngine{reactions: reactions, articles: articles}
}

// Apply records or clears the caller's reaction to an article.
//
// When no reaction row exists one is created with the requested polarity.
// When a row already exists it is removed no matter which polarity was
// requested: liking an article that carries the caller's dislike clears the
// dislike instead of switching it, and the caller must invoke the action
// again to register the opposite polarity. Existing clients depend on that
// behavior; clearExisting isolates it so a polarity-switch change stays a
// one-line edit.
func (e *ReactionEngine) Apply(userID uint, articleSlug string, likes bool) (*ReactionOutcome, error) {
	article, err := e.articles.GetArticleBySlug(articleSlug)
	if err != nil {
		return nil, err
	}

	exists, err := e.reactions.HasReaction(userID, articleSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return e.clearExisting(userID, article)
	}

	reaction := &models.Reaction{
		UserID:      userID,
		ArticleSlug: articleSlug,
		Likes:       likes,
	}
	if err := e.reactions.CreateReaction(reaction); err != nil {
		if !apperrors.IsConflict(err) {
			return nil, err
		}
		// A concurrent request created the row between the existence check
		// and the insert. The reacted state this call asked for now exists,
		// so the race resolves to a successful create.
	}

	return e.outcome(ReactionCreated, article)
}

// clearExisting deletes whatever reaction row is stored for the pair,
// regardless of the polarity the current request carried.
func (e *ReactionEngine) clearExisting(userID uint, article *models.Article) (*ReactionOutcome, error) {
	err := e.reactions.DeleteReaction(userID, article.Slug)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	// A not-found delete means a concurrent request already cleared the
	// row; the removed state holds either way.
	return e.outcome(ReactionRemoved, article)
}

func (e *ReactionEngine) outcome(action ReactionAction, article *models.Article) (*ReactionOutcome, error) {
	likeCount, err := e.reactions.CountReactions(article.Slug, true)
	if err != nil {
		return nil, err
	}
	dislikeCount, err := e.reactions.CountReactions(article.Slug, false)
	if err != nil {
		return nil, err
	}
	return &ReactionOutcome{
		Action:       action,
		Article:      article,
		LikeCount:    likeCount,
		DislikeCount: dislikeCount,
	}, nil
}
