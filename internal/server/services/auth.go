// Package services contains server-side business logic. This file implements
// AuthService, the single authenticator behind both API surfaces: it verifies
// credentials and issues/revokes the opaque access tokens that bearer clients
// present directly and browser sessions carry inside their cookie.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenByteLen is the number of random bytes per token value; the hex form
// presented to clients is twice as long.
const tokenByteLen = 32

// credentialsMessage is returned for both an unknown email and a wrong
// password, so a caller cannot probe which accounts exist.
const credentialsMessage = "The provided credentials are incorrect."

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthService provides authentication-related operations:
// - Register: validate and create users, issuing their first token
// - Login: verify credentials
// - IssueToken / RevokeToken: mint and revoke opaque bearer tokens
// - UserFromToken: resolve the principal for a presented token
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register validates the payload, reporting every violated field at once,
// then creates the user and their first access token in one transaction.
// It returns the new user and the plaintext token value.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	v := validation.New()
	v.Require("name", in.Name)
	v.MaxLen("name", in.Name, 255)
	v.Require("email", in.Email)
	v.MaxLen("email", in.Email, 255)
	v.Email("email", in.Email)
	v.Require("password", in.Password)
	v.MinLen("password", in.Password, 8)
	v.Confirmed("password", in.Password, in.PasswordConfirmation)

	// Only probe uniqueness for a well-formed email.
	if !v.Has("email") {
		exists, err := s.repomanager.Users(s.db).EmailExists(ctx, in.Email)
		if err != nil {
			return nil, "", common.ErrorInternal
		}
		if exists {
			v.Add("email", "The email has already been taken.")
		}
	}
	if err := v.Err(); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}

	var plain string
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %v", err)
		}
		var issueErr error
		plain, issueErr = s.createToken(ctx, tx, user.ID, common.TokenNameAuth)
		return issueErr
	}); err != nil {
		return nil, "", err
	}

	return user, plain, nil
}

// Login verifies the email/password pair. An unknown email and a wrong
// password both fail with the same generic validation error on the email
// field. No token is issued here; each surface mints its own credential.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	v := validation.New()
	v.Require("email", email)
	v.Email("email", email)
	v.Require("password", password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, credentialsError()
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, credentialsError()
	}
	return user, nil
}

// IssueToken mints a fresh opaque token for userID under the given label and
// returns the plaintext value. Tokens accumulate per user (multi-device);
// none are invalidated here.
func (s *AuthService) IssueToken(ctx context.Context, userID, name string) (string, error) {
	return s.createToken(ctx, s.db, userID, name)
}

// RevokeToken deletes exactly the presented token; other tokens of the same
// user keep working. Once revoked, the value never authenticates again.
func (s *AuthService) RevokeToken(ctx context.Context, token string) error {
	if err := s.repomanager.AccessTokens(s.db).Delete(ctx, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthenticated
		}
		return common.ErrorInternal
	}
	return nil
}

// UserFromToken resolves the owning user of a presented token value. Unknown
// (or revoked) values fail with ErrorUnauthenticated.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthenticated
	}

	at, err := s.repomanager.AccessTokens(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, at.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// --- helpers below ---

func credentialsError() validation.Errors {
	return validation.Errors{"email": {credentialsMessage}}
}

func (s *AuthService) createToken(ctx context.Context, db dbx.DBTX, userID, name string) (string, error) {
	value, err := common.MakeRandHexString(tokenByteLen)
	if err != nil {
		return "", common.ErrorInternal
	}
	token := &models.AccessToken{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Token:  value,
	}
	if err := s.repomanager.AccessTokens(db).Create(ctx, token); err != nil {
		return "", common.ErrorInternal
	}
	return value, nil
}
