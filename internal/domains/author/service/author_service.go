// internal/domains/author/service/author_service.go
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
)

// authorService implements author.Service interface
type authorService struct {
	repo author.Repository // Repository dependency (injected)
}

// NewAuthorService creates a new author service instance
// Service depends on the Repository abstraction, so tests can pass a mock
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

// Create runs the store-free checks first, then locks the name and does the
// uniqueness read and the insert in one transaction
func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	candidate := req.ToEntity()

	var created *author.Author
	if err := author.ValidateFields(candidate); err != nil {
		log.Debug().Err(err).Str("name", candidate.Name).Msg("author create rejected")
		return nil, err
	}

	err := s.repo.RunInTx(ctx, func(repo author.Repository) error {
		if err := repo.LockName(ctx, candidate.Name); err != nil {
			return err
		}
		if err := author.ValidateNameUnique(ctx, repo, candidate.Name, 0); err != nil {
			return err
		}

		var err error
		created, err = repo.Create(ctx, candidate)
		return err
	})
	if err != nil {
		log.Debug().Err(err).Str("name", candidate.Name).Msg("author create rejected")
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msgf("created %s", created)
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	if id <= 0 {
		return nil, author.ErrInvalidID
	}

	// Repository handles cache + DB
	return s.repo.GetByID(ctx, id)
}

// Update applies the partial update to the stored author and re-runs the
// validators on the merged result before writing it
func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if id <= 0 {
		return nil, author.ErrInvalidID
	}

	var result *author.Author
	err := s.repo.RunInTx(ctx, func(repo author.Repository) error {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		updated := *current // Copy current state
		req.ApplyToEntity(&updated)

		if err := author.ValidateFields(&updated); err != nil {
			return err
		}
		if err := repo.LockName(ctx, updated.Name); err != nil {
			return err
		}
		if err := author.ValidateNameUnique(ctx, repo, updated.Name, updated.ID); err != nil {
			return err
		}

		result, err = repo.Update(ctx, &updated)
		return err
	})
	if err != nil {
		log.Debug().Err(err).Int64("author_id", id).Msg("author update rejected")
		return nil, err
	}

	return result, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return author.ErrInvalidID
	}

	return s.repo.Delete(ctx, id)
}
