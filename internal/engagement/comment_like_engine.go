package engagement

import (
	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
)

// CommentLikeOutcome reports the post-toggle like state of the comment.
type CommentLikeOutcome struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// CommentLikeEngine toggles per-(user, comment) likes. A comment like has a
// single polarity, so the toggle is a pure presence check: liked when the
// row exists, not liked when it doesn't.
type CommentLikeEngine struct {
	likes    repositories.CommentLikeRepository
	comments repositories.CommentRepository
}

// NewCommentLikeEngine creates a CommentLikeEngine.
func NewCommentLikeEngine(likes repositories.CommentLikeRepository, comments repositories.CommentRepository) *CommentLikeEngine {
	return &CommentLikeEngine{likes: likes, comments: comments}
}

// Toggle likes the comment when the caller has not liked it, and unlikes
// it when they have.
func (e *CommentLikeEngine) Toggle(commentID, userID uint) (*CommentLikeOutcome, error) {
	if _, err := e.comments.GetCommentByID(commentID); err != nil {
		return nil, err
	}

	liked, err := e.likes.HasUserLikedComment(commentID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		err := e.likes.DeleteCommentLike(commentID, userID)
		if err != nil && !apperrors.IsNotFound(err) {
			return nil, err
		}
		// Not found here means a concurrent unlike won; either way the
		// comment is no longer liked by this user.
		return e.outcome(commentID, false)
	}

	err = e.likes.CreateCommentLike(&models.CommentLike{CommentID: commentID, UserID: userID})
	if err != nil && !apperrors.IsConflict(err) {
		return nil, err
	}
	// A conflict means a concurrent like won; the liked state holds.
	return e.outcome(commentID, true)
}

func (e *CommentLikeEngine) outcome(commentID uint, liked bool) (*CommentLikeOutcome, error) {
	count, err := e.likes.GetLikesCount(commentID)
	if err != nil {
		return nil, err
	}
	return &CommentLikeOutcome{Liked: liked, LikeCount: count}, nil
}
