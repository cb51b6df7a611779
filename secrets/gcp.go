// Package secrets retrieves credentials from Google Cloud Secret Manager.
package secrets

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// GCP reads one secret version from Google Cloud Secret Manager.
type GCP struct {
	Project string
	Secret  string
	// Version defaults to "latest" when empty.
	Version string
}

// Get fetches the secret payload. Errors from the secret store propagate
// unchanged; there is no retry.
func (g GCP) Get(ctx context.Context) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("secretmanager client: %w", err)
	}
	defer client.Close()

	version := g.Version
	if version == "" {
		version = "latest"
	}
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", g.Project, g.Secret, version)
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("access secret version %s: %w", name, err)
	}
	return string(resp.GetPayload().GetData()), nil
}
