package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// Identity is the verified caller behind a Firebase ID token.
type Identity struct {
	UID   string
	Email string
}

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	identity := &Identity{UID: result.UID}
	if email, ok := result.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
