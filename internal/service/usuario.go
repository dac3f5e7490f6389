package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
)

// PageEnvelope is the wire shape of every paginated listing.
// Page is zero-based; TotalPage is ceil(TotalRows / Limit).
type PageEnvelope[T any] struct {
	Result    []T `json:"result"`
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalRows int `json:"totalRows"`
	TotalPage int `json:"totalPage"`
}

func totalPages(totalRows, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (totalRows + limit - 1) / limit
}

// UserService covers user listing, profile updates and admin deletion.
type UserService interface {
	// List returns a paginated page of users matching the search term on
	// name or email.
	List(ctx context.Context, page, limit int, search string) (*PageEnvelope[model.PublicUser], error)

	// Get returns the public shape of a single user.
	Get(ctx context.Context, id string) (*model.PublicUser, error)

	// Update changes a user's name and email. The presented refresh token
	// must be the one stored for that same user.
	Update(ctx context.Context, refreshToken, userID, name, email string) error

	// Delete removes another user. The actor must be an admin, hold its own
	// live refresh token, and may never delete itself.
	Delete(ctx context.Context, refreshToken, actorID, targetID string) (*model.User, error)
}

type userService struct {
	users     repository.UserRepository
	ownership OwnershipVerifier
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository, ownership OwnershipVerifier) UserService {
	return &userService{users: users, ownership: ownership}
}

func (s *userService) List(ctx context.Context, page, limit int, search string) (*PageEnvelope[model.PublicUser], error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	res, err := s.users.List(ctx, repository.PageQuery{
		Limit:  limit,
		Offset: page * limit,
		Search: search,
	})
	if err != nil {
		return nil, err
	}

	result := make([]model.PublicUser, 0, len(res.Items))
	for i := range res.Items {
		result = append(result, res.Items[i].Public())
	}

	return &PageEnvelope[model.PublicUser]{
		Result:    result,
		Page:      page,
		Limit:     limit,
		TotalRows: res.Total,
		TotalPage: totalPages(res.Total, limit),
	}, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

func (s *userService) Update(ctx context.Context, refreshToken, userID, name, email string) error {
	if name == "" {
		return validation("Nome é obrigatório.")
	}
	if email == "" {
		return validation("Email é obrigatório.")
	}

	if err := s.ownership.VerifyOwnership(ctx, refreshToken, userID); err != nil {
		return err
	}

	return s.users.UpdateProfile(ctx, userID, name, email)
}

func (s *userService) Delete(ctx context.Context, refreshToken, actorID, targetID string) (*model.User, error) {
	if err := s.ownership.VerifyOwnership(ctx, refreshToken, actorID); err != nil {
		return nil, err
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin {
		return nil, errInvalidToken
	}
	if actor.ID == targetID {
		return nil, errInvalidToken
	}

	deleted, err := s.users.Delete(ctx, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return deleted, nil
}
