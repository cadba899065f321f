package usecase

import "context"

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	TestConnection(ctx context.Context) error
}
