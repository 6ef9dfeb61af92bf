package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
)

type postService struct {
	repo post.Repository
}

func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	candidate := req.ToEntity()
	if err := post.Validate(candidate); err != nil {
		log.Debug().Err(err).Msg("post create rejected")
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", created.ID).Msgf("created %s", created)
	return created, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	if id <= 0 {
		return nil, post.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// Update locks the stored post, merges the request into it and validates the
// merged post before writing. Any failure rolls the whole update back.
func (s *postService) Update(ctx context.Context, id int64, req *post.UpdatePostRequest) (*post.Post, error) {
	if id <= 0 {
		return nil, post.ErrInvalidID
	}

	var result *post.Post
	err := s.repo.RunInTx(ctx, func(repo post.Repository) error {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		updated := *current
		req.ApplyToEntity(&updated)

		if err := post.Validate(&updated); err != nil {
			return err
		}

		result, err = repo.Update(ctx, &updated)
		return err
	})
	if err != nil {
		log.Debug().Err(err).Int64("post_id", id).Msg("post update rejected")
		return nil, err
	}

	return result, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return post.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
