// Package users implements account management on top of the document store:
// registration, credential checks, and the admin-facing user operations.
package users

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stayhub-dev/stayhub/internal/common"
	"github.com/stayhub-dev/stayhub/internal/docstore"
	"github.com/stayhub-dev/stayhub/internal/server/auth"
	"github.com/stayhub-dev/stayhub/internal/server/models"
)

const collectionName = "users"

type Service struct {
	col    *docstore.Collection
	tokens *auth.TokenManager

	// nextUID is the numeric user reference carried in token claims.
	nextUID atomic.Int64
}

func NewService(db *docstore.Database, tokens *auth.TokenManager) *Service {
	return &Service{col: db.Collection(collectionName), tokens: tokens}
}

// Register creates a new user with role "user". Email uniqueness is enforced
// inside a single store critical section, so two concurrent registrations of
// the same address cannot both succeed.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	return s.register(ctx, email, password, fullName, auth.RoleUser)
}

// RegisterAdmin creates an administrator account. Used by startup seeding;
// not reachable from the public registration endpoint.
func (s *Service) RegisterAdmin(ctx context.Context, email, password, fullName string) (*models.User, error) {
	return s.register(ctx, email, password, fullName, auth.RoleAdmin)
}

func (s *Service) register(ctx context.Context, email, password, fullName, role string) (*models.User, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		UID:            s.nextUID.Add(1),
		Email:          email,
		HashedPassword: digest,
		FullName:       fullName,
		Role:           role,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := s.col.InsertIfAbsent(
		docstore.Predicate{"email": email},
		userToDocument(user),
	)
	if err != nil {
		return nil, err
	}
	user.ID = id.String()
	return user, nil
}

// Login authenticates the credentials and mints a session token. Unknown
// email and wrong password collapse to the same ErrUnauthorized; an inactive
// account is ErrForbidden.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, common.ErrUnauthorized
	}
	if !auth.CheckPassword(password, user.HashedPassword) {
		return "", nil, common.ErrUnauthorized
	}
	if !user.IsActive {
		return "", nil, common.ErrForbidden
	}

	token, err := s.tokens.Issue(user.Email, user.UID, user.Role, 0)
	if err != nil {
		return "", nil, common.ErrInternal
	}
	return token, user, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := s.col.FindOne(docstore.Predicate{"email": email})
	if err != nil {
		return nil, err
	}
	return userFromDocument(doc), nil
}

// GetByID accepts the canonical identifier's string form; malformed ids
// simply miss (the store falls back to raw string comparison).
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := s.col.FindOne(docstore.Predicate{docstore.IDField: id})
	if err != nil {
		return nil, err
	}
	return userFromDocument(doc), nil
}

// List returns users newest first, honoring skip/limit pagination.
func (s *Service) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	cur, err := s.col.Find(nil)
	if err != nil {
		return nil, err
	}
	if err := cur.Sort("created_at", true); err != nil {
		return nil, err
	}

	users := make([]*models.User, 0)
	index := 0
	for {
		doc, ok := cur.Next()
		if !ok {
			break
		}
		if index < skip {
			index++
			continue
		}
		index++
		if limit > 0 && len(users) >= limit {
			break
		}
		users = append(users, userFromDocument(doc))
	}
	return users, nil
}

// Update applies a shallow patch to a user. Identifier, password digest,
// numeric reference and creation timestamp are not patchable through this
// path.
func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (*models.User, error) {
	clean := docstore.Document{}
	for k, v := range patch {
		switch k {
		case docstore.IDField, "id", "hashed_password", "created_at", "uid":
			continue
		}
		clean[k] = v
	}

	matched, err := s.col.UpdateOne(docstore.Predicate{docstore.IDField: id}, clean)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, common.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.col.DeleteOne(docstore.Predicate{docstore.IDField: id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return common.ErrNotFound
	}
	return nil
}

// CountByPredicate is used by the stats endpoint.
func (s *Service) CountByPredicate(ctx context.Context, p docstore.Predicate) (int, error) {
	return s.col.Count(p)
}

func userToDocument(u *models.User) docstore.Document {
	return docstore.Document{
		"uid":             u.UID,
		"email":           u.Email,
		"hashed_password": u.HashedPassword,
		"full_name":       u.FullName,
		"role":            u.Role,
		"is_active":       u.IsActive,
		"created_at":      u.CreatedAt,
	}
}

func userFromDocument(doc docstore.Document) *models.User {
	u := &models.User{}
	if id, ok := doc.ID(); ok {
		u.ID = id.String()
	}
	u.UID, _ = doc["uid"].(int64)
	u.Email, _ = doc["email"].(string)
	u.HashedPassword, _ = doc["hashed_password"].(string)
	u.FullName, _ = doc["full_name"].(string)
	u.Role, _ = doc["role"].(string)
	u.IsActive, _ = doc["is_active"].(bool)
	u.CreatedAt, _ = doc["created_at"].(time.Time)
	return u
}
