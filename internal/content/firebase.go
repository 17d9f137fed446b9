package content

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// FirebaseSource reads the blob from a Realtime Database path.
type FirebaseSource struct {
	client *db.Client
	path   string
}

func NewFirebaseSource(ctx context.Context, serviceAccountKeyPath, databaseURL, path string) (*FirebaseSource, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseSource{client: client, path: path}, nil
}

func (s *FirebaseSource) Load(ctx context.Context) ([]byte, error) {
	var raw json.RawMessage
	if err := s.client.NewRef(s.path).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("error reading site content: %w", err)
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}
