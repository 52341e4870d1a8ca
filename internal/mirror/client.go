package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/model"
	"github.com/nkulisa-npc/membership-site/internal/shared/logger"
)

// State is the lifecycle state of the mirror-store integration.
type State int

const (
	Uninitialized State = iota
	Active
	Disabled
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Disabled:
		return "disabled"
	default:
		return "uninitialized"
	}
}

// Store receives best-effort denormalized copies of registered members.
type Store interface {
	PushMember(ctx context.Context, member *model.Member) error
}

// Credentials is the shape of the MIRROR_CREDENTIALS JSON document.
type Credentials struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	AuthSource string `json:"authSource,omitempty"`
}

// Client is the mirror-store session handle. It is constructed exactly once
// at startup and read-only afterwards; when not Active every write is a
// logged no-op.
type Client struct {
	state      State
	client     *mongo.Client
	collection *mongo.Collection
}

// memberDocument is the denormalized copy pushed for each registration.
// There is no link back to the relational row.
type memberDocument struct {
	FullName     string    `bson:"full_name"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"phone"`
	Package      string    `bson:"package"`
	RegisteredAt time.Time `bson:"registered_at"`
}

// Connect initializes the mirror-store session from configuration. It always
// returns a usable client: missing or malformed credentials, or a failed
// connection, leave the integration Disabled for the process lifetime rather
// than failing startup.
func Connect(ctx context.Context, cfg *config.Config) *Client {
	if !cfg.Mirror.Enabled() {
		slog.Warn("Mirror store not configured, secondary writes disabled")
		return &Client{state: Disabled}
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(cfg.Mirror.CredentialsJSON), &creds); err != nil {
		slog.Error("Mirror store credentials are malformed, secondary writes disabled", "error", err)
		return &Client{state: Disabled}
	}

	opts := options.Client().ApplyURI(cfg.Mirror.URL)
	if creds.Username != "" {
		opts.SetAuth(options.Credential{
			Username:   creds.Username,
			Password:   creds.Password,
			AuthSource: creds.AuthSource,
		})
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		slog.Error("Mirror store connection failed, secondary writes disabled", "error", err)
		return &Client{state: Disabled}
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		slog.Error("Mirror store ping failed, secondary writes disabled", "error", err)
		_ = client.Disconnect(connectCtx)
		return &Client{state: Disabled}
	}

	slog.Info("Mirror store connected",
		"database", cfg.Mirror.Database,
		"collection", cfg.Mirror.Collection,
	)

	return &Client{
		state:      Active,
		client:     client,
		collection: client.Database(cfg.Mirror.Database).Collection(cfg.Mirror.Collection),
	}
}

// State returns the lifecycle state of the integration.
func (c *Client) State() State {
	return c.state
}

// PushMember inserts a denormalized copy of the member under a generated
// document identifier. When the integration is not Active the call is a
// no-op. Callers treat any returned error as best-effort: the primary
// registration is already committed.
func (c *Client) PushMember(ctx context.Context, member *model.Member) error {
	if c.state != Active {
		logger.FromContext(ctx).Debug("Mirror store inactive, skipping member copy",
			"state", c.state.String(),
		)
		return nil
	}

	doc := memberDocument{
		FullName:     member.FullName,
		Email:        member.Email,
		Phone:        member.Phone,
		Package:      member.Package,
		RegisteredAt: member.CreatedAt,
	}

	if _, err := c.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert member copy: %w", err)
	}
	return nil
}

// Close tears down the mirror-store session on shutdown.
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

var _ Store = (*Client)(nil)
