package knowledgeController

import (
	"encoding/json"
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"
)

// validScores is the closed set of accepted score values.
var validScores = map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}, 5: {}}

// ScoreKnowledge upserts the caller's score for the knowledge unit: insert if
// absent, update value and timestamp in place if present. Validation happens
// before any store write.
func ScoreKnowledge(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	reqData := new(struct {
		Score *int `json:"score"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Score == nil {
		return utils.BadRequest("Score is required!")
	}
	if _, ok := validScores[*reqData.Score]; !ok {
		return utils.BadRequest("Score is not valid!")
	}

	accessible, err := CanAccess(env.Stores, ctx.Account, ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to score knowledge!")
	}
	if !accessible {
		return utils.Forbidden("No permission!")
	}

	existing, err := env.Stores.Scores.Find(ctx.Account.Email, ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to score knowledge!")
	}

	now := time.Now()
	if existing == nil {
		score := models.Score{
			Email:     ctx.Account.Email,
			Knowledge: ctx.Knowledge.ID,
			Value:     *reqData.Score,
			Time:      now,
		}
		if err := env.Stores.Scores.Insert(&score); err != nil {
			return utils.ServerError("Failed to score knowledge!")
		}
		return utils.Success("Scored successfully!", score)
	}

	if err := env.Stores.Scores.Update(ctx.Account.Email, ctx.Knowledge.ID, *reqData.Score, now); err != nil {
		return utils.ServerError("Failed to score knowledge!")
	}
	existing.Value = *reqData.Score
	existing.Time = now
	return utils.Success("Scored successfully!", existing)
}

// MarkKnowledge toggles the caller's bookmark. Both directions are
// idempotent: marking a marked unit and unmarking an unmarked one succeed
// without touching the store.
func MarkKnowledge(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	reqData := new(struct {
		Mark *bool `json:"mark"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Mark == nil {
		return utils.BadRequest("Mark is required!")
	}

	accessible, err := CanAccess(env.Stores, ctx.Account, ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to mark knowledge!")
	}
	if !accessible {
		return utils.Forbidden("No permission!")
	}

	existing, err := env.Stores.Marks.Find(ctx.Account.Email, ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to mark knowledge!")
	}

	if *reqData.Mark {
		if existing != nil {
			return utils.Success("Already marked!", existing)
		}
		mark := models.Mark{Email: ctx.Account.Email, Knowledge: ctx.Knowledge.ID}
		if err := env.Stores.Marks.Insert(&mark); err != nil {
			return utils.ServerError("Failed to mark knowledge!")
		}
		return utils.Success("Marked successfully!", mark)
	}

	if existing == nil {
		return utils.Success("Already unmarked!", nil)
	}
	if err := env.Stores.Marks.Delete(ctx.Account.Email, ctx.Knowledge.ID); err != nil {
		return utils.ServerError("Failed to unmark knowledge!")
	}
	return utils.Success("Unmarked successfully!", nil)
}

// AddComment attaches a comment to the knowledge unit.
func AddComment(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	accessible, err := CanAccess(env.Stores, ctx.Account, ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to add comment!")
	}
	if !accessible {
		return utils.Forbidden("No permission!")
	}

	reqData := new(struct {
		Content string `json:"content"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Content == "" {
		return utils.BadRequest("Content cannot be null!")
	}

	comment := models.Comment{
		Email:     ctx.Account.Email,
		Knowledge: ctx.Knowledge.ID,
		Content:   reqData.Content,
		Time:      time.Now(),
	}
	if err := env.Stores.Comments.Insert(&comment); err != nil {
		return utils.ServerError("Failed to add comment!")
	}
	return utils.Success("Comment added successfully!", comment)
}

// UpdateComment rewrites a comment; only the author may.
func UpdateComment(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Comment.Email != ctx.Account.Email {
		return utils.Forbidden("No permission!")
	}

	reqData := new(struct {
		NewContent string `json:"newContent"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.NewContent == "" {
		return utils.BadRequest("Content cannot be null!")
	}

	ctx.Comment.Content = reqData.NewContent
	ctx.Comment.Time = time.Now()
	if err := env.Stores.Comments.Update(ctx.Comment); err != nil {
		return utils.ServerError("Failed to update comment!")
	}
	return utils.Success("Comment updated successfully!", ctx.Comment)
}

// DeleteComment removes a comment; only the author may.
func DeleteComment(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Comment.Email != ctx.Account.Email {
		return utils.Forbidden("No permission!")
	}
	if err := env.Stores.Comments.Delete(ctx.Comment.ID); err != nil {
		return utils.ServerError("Failed to delete comment!")
	}
	return utils.Success("Comment deleted successfully!", nil)
}

// ListComments returns the comments on an accessible knowledge unit.
func ListComments(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	accessible, err := CanAccess(env.Stores, ctx.Account, ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to fetch comments!")
	}
	if !accessible {
		return utils.Forbidden("No permission!")
	}

	comments, err := env.Stores.Comments.ListForKnowledge(ctx.Knowledge.ID)
	if err != nil {
		return utils.ServerError("Failed to fetch comments!")
	}
	return utils.Success("Comments fetched!", comments)
}
