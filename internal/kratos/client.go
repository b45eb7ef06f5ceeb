// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/tracing"
)

// ClientInterface is the identity directory contract: the hosted auth
// provider owns email addresses and credentials, this service owns roles.
type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, password, fullName string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	ListIdentities(ctx context.Context) ([]ory.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
	SetPassword(ctx context.Context, id, password string) error
	VerifyPassword(ctx context.Context, email, password string) (string, error)
	DeleteSessions(ctx context.Context, id string) error
	UpdateMetadata(ctx context.Context, id string, metadata map[string]interface{}) error
}

type Client struct {
	admin  *ory.APIClient
	public *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL, kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	adminConf := ory.NewConfiguration()
	adminConf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}

	publicConf := ory.NewConfiguration()
	publicConf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}

	return &Client{
		admin:   ory.NewAPIClient(adminConf),
		public:  ory.NewAPIClient(publicConf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: empty page token works around https://github.com/ory/sdk/issues/461
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// CreateIdentity provisions a new directory identity. password and fullName
// are optional; an empty password leaves the identity without a credential
// until the first one-time code rotates one in.
func (c *Client) CreateIdentity(ctx context.Context, email, password, fullName string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	traits := map[string]interface{}{
		"email": email,
	}
	if fullName != "" {
		traits["name"] = fullName
	}

	body := ory.CreateIdentityBody{
		SchemaId: "default",
		Traits:   traits,
	}

	if password != "" {
		body.Credentials = &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: ory.PtrString(password),
				},
			},
		}
	}

	identity, _, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) ListIdentities(ctx context.Context) ([]ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.ListIdentities")
	defer span.End()

	ids, _, err := c.admin.IdentityAPI.ListIdentities(ctx).PageToken("").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	return ids, nil
}

func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	if _, err := c.admin.IdentityAPI.DeleteIdentity(ctx, id).Execute(); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

// SetPassword replaces the identity's password credential. Used to rotate
// one-time login codes in as the current credential.
func (c *Client) SetPassword(ctx context.Context, id, password string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.SetPassword")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return err
	}

	traits, _ := identity.Traits.(map[string]interface{})

	body := ory.UpdateIdentityBody{
		SchemaId: identity.SchemaId,
		State:    "active",
		Traits:   traits,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: ory.PtrString(password),
				},
			},
		},
	}

	if _, _, err := c.admin.IdentityAPI.UpdateIdentity(ctx, id).UpdateIdentityBody(body).Execute(); err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}

	return nil
}

// VerifyPassword checks the submitted secret through a native login flow on
// the public API and returns the identity id on success.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.VerifyPassword")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowBody{
		UpdateLoginFlowWithPasswordMethod: &ory.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: email,
			Password:   password,
		},
	}

	login, _, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).Flow(flow.Id).UpdateLoginFlowBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("credential verification failed: %w", err)
	}

	if login.Session.Identity == nil {
		return "", fmt.Errorf("login flow returned no identity")
	}

	return login.Session.Identity.Id, nil
}

func (c *Client) DeleteSessions(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteSessions")
	defer span.End()

	if _, err := c.admin.IdentityAPI.DeleteIdentitySessions(ctx, id).Execute(); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}

func (c *Client) UpdateMetadata(ctx context.Context, id string, metadata map[string]interface{}) error {
	ctx, span := c.tracer.Start(ctx, "kratos.UpdateMetadata")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return err
	}

	traits, _ := identity.Traits.(map[string]interface{})

	body := ory.UpdateIdentityBody{
		SchemaId:       identity.SchemaId,
		State:          "active",
		Traits:         traits,
		MetadataPublic: metadata,
	}

	if _, _, err := c.admin.IdentityAPI.UpdateIdentity(ctx, id).UpdateIdentityBody(body).Execute(); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// IdentityEmail extracts the email trait, or "" when absent.
func IdentityEmail(identity *ory.Identity) string {
	if identity == nil {
		return ""
	}
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			return e
		}
	}
	return ""
}
