package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Token holds the verified ID token data.
type Token struct {
	UID    string
	Claims map[string]any
}

type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Token, error)
}

type firebaseTokenVerifier struct {
	client *fbauth.Client
}

// NewFirebaseTokenVerifier uses credentialsFile when set, application default
// credentials otherwise.
func NewFirebaseTokenVerifier(ctx context.Context, projectID, credentialsFile string) (TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase auth: %w", err)
	}
	return &firebaseTokenVerifier{client: client}, nil
}

func (v *firebaseTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Token, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return &Token{UID: token.UID, Claims: token.Claims}, nil
}

// BearerVerifier reads "Authorization: Bearer <id token>". Custom claims
// "seller" and "admin" grant the matching roles.
type BearerVerifier struct {
	tokens TokenVerifier
}

func NewBearerVerifier(tokens TokenVerifier) *BearerVerifier {
	return &BearerVerifier{tokens: tokens}
}

func (v *BearerVerifier) Verify(r *http.Request) (entities.Principal, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return entities.Principal{}, ErrUnauthenticated
	}

	token, err := v.tokens.VerifyIDToken(r.Context(), strings.TrimSpace(raw))
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	p := entities.Principal{
		ID:    token.UID,
		Roles: []entities.Role{entities.RoleBuyer},
	}
	// unverified addresses must not match the admin allow-list
	if verified, _ := token.Claims["email_verified"].(bool); verified {
		p.Email, _ = token.Claims["email"].(string)
	}
	if flag, _ := token.Claims["seller"].(bool); flag {
		p.Roles = append(p.Roles, entities.RoleSeller)
	}
	if flag, _ := token.Claims["admin"].(bool); flag {
		p.Roles = append(p.Roles, entities.RoleAdmin)
	}
	return p, nil
}
