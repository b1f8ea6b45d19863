package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/errs"
	"github.com/registra/api/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const tokenIssuer = "registra-manager"

// Login checks the credentials and returns a signed token. Every attempt is
// written to the activity log: failures as the system actor, successes as the
// account that signed in.
func (svc *Service) Login(ctx context.Context, rc domain.RequestContext, email, password string, userType domain.Role) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if userType != "" && !userType.Valid() {
		return "", errs.NewHTTPStatusError(http.StatusBadRequest, "invalid userType", nil)
	}

	failed := func(reason string, cause error) (string, error) {
		svc.LogActivity(ctx, rc.WithActor(nil), domain.ActivityDetails{
			Action: domain.ActionLoginFailed,
			Metadata: map[string]any{
				"email":    email,
				"userType": string(userType),
			},
		})
		logger.Logger(ctx).Warn().Str("email", email).Str("reason", reason).Msg("login failed")
		return "", errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid email or password", cause)
	}

	account, err := svc.getAccountByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return failed("account not found", nil)
	}
	if err != nil {
		return "", err
	}
	ok, err := account.Password.Cmp(password)
	if err != nil {
		return failed("password hash mismatch", err)
	}
	if !ok {
		return failed("wrong password", nil)
	}
	if userType != "" && account.Role != userType {
		return failed("role mismatch", nil)
	}
	if account.Status != domain.AccountStatusActive {
		return failed("account not active", nil)
	}

	token, err := svc.genJWTToken(ctx, account)
	if err != nil {
		return "", errors.WithMessage(err, "sign token")
	}
	svc.LogActivity(ctx, rc.WithActor(account.Actor()), domain.ActivityDetails{
		Action:     domain.ActionLogin,
		TargetType: domain.TargetTypeAdmin,
		TargetID:   account.ID.Hex(),
	})
	return token, nil
}

// VerifyJWTToken parses the token and resolves the account behind it. The
// account must still exist, be active and hold the role named in the token.
func (svc *Service) VerifyJWTToken(ctx context.Context, tokenString string) (*domain.Actor, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &svc.jwtPrivateKey.PublicKey, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid token", err)
	}

	uid, err := claims.GetBsonObjectUID()
	if err != nil {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid token subject", err)
	}
	account, err := svc.getAccountByID(ctx, uid)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "account not found", err)
	}
	if err != nil {
		return nil, err
	}
	if account.Status != domain.AccountStatusActive || account.Role != claims.Role {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "account is not allowed to sign in", nil)
	}
	return account.Actor(), nil
}

// CreateSuperadminIfNotExists seeds the first superadmin. It is a no-op once
// any superadmin exists.
func (svc *Service) CreateSuperadminIfNotExists(ctx context.Context, email, password, fullName string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		logger.Logger(ctx).Warn().Msg("superadmin account is not configured, skip bootstrap")
		return nil
	}
	opts := &domain.QueryAccountOptions{Roles: []domain.Role{domain.RoleSuperadmin}}
	err := svc.Repo.QueryAccounts(ctx, opts)
	if err != nil {
		return errors.WithMessage(err, "query superadmin")
	}
	if len(opts.Result) > 0 {
		return nil
	}

	account := &domain.Account{
		BaseEntity: domain.NewBaseEntity(nil, nil),
		Email:      email,
		FullName:   fullName,
		Password:   domain.EncryptedPassword(password),
		Role:       domain.RoleSuperadmin,
		Status:     domain.AccountStatusActive,
	}
	err = svc.Repo.CreateAccount(ctx, account)
	if err != nil {
		return errors.WithMessagef(err, "create superadmin %s", email)
	}
	logger.Logger(ctx).Info().Str("email", email).Msg("superadmin account created")
	return nil
}

func (svc *Service) getAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	opts := &domain.QueryAccountOptions{
		Emails: []string{email},
	}
	err := svc.Repo.QueryAccounts(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, errors.WithMessagef(domain.ErrNotFound, "account with email %s", email)
	}
	return opts.Result[0], nil
}

func (svc *Service) getAccountByID(ctx context.Context, id bson.ObjectID) (*domain.Account, error) {
	if account, ok := svc.accountCache.Get(id.Hex()); ok {
		return account, nil
	}
	opts := &domain.QueryAccountOptions{
		IDs: []bson.ObjectID{id},
	}
	err := svc.Repo.QueryAccounts(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, errors.WithMessagef(domain.ErrNotFound, "account %s", id.Hex())
	}
	account := opts.Result[0]
	svc.accountCache.Set(id.Hex(), account, cache.WithExpiration(svc.authCfg.AccountCacheTTL()))
	return account, nil
}

func (svc *Service) genJWTToken(_ context.Context, account *domain.Account) (string, error) {
	uid := account.ID.Hex()
	now := time.Now()
	claims := domain.Claims{
		UID:  uid,
		Role: account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(svc.authCfg.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   uid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(svc.jwtPrivateKey)
}
