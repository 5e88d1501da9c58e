// Package firebaseapp initializes the Firebase app shared by Firestore and FCM.
package firebaseapp

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the dependencies of the Firebase providers
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the Firebase app. Without a credentials path the SDK falls
// back to Application Default Credentials or the emulator environment.
func NewApp(params Params) (*firebase.App, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", params.Config.Firebase.ProjectID))

	return app, nil
}

// NewFirestoreClient opens the Firestore client and closes it on shutdown
func NewFirestoreClient(params Params, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// NewMessagingClient returns the FCM client
func NewMessagingClient(params Params, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// Module provides the Firebase app, Firestore and FCM clients
var Module = fx.Module("firebase",
	fx.Provide(
		NewApp,
		NewFirestoreClient,
		NewMessagingClient,
	),
)
