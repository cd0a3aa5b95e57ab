package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/odysee-comments/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	commentsCollection  = "comments"
	reactionsCollection = "reactions"
	claimsCollection    = "claims"
	defaultDBName       = "comments"
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg       *config.Config
	client    *mongodriver.Client
	db        *mongodriver.Database
	comments  *mongodriver.Collection
	reactions *mongodriver.Collection
	claims    *mongodriver.Collection
}

// New подключается к MongoDB, проверяет его, подготавливает коллекции и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		cfg:       cfg,
		client:    cli,
		db:        db,
		comments:  db.Collection(commentsCollection),
		reactions: db.Collection(reactionsCollection),
		claims:    db.Collection(claimsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет соединение с primary.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создает индексы, необходимые для службы комментариев.
// - выдача comment_list: claim_id + is_hidden + created_at(desc)
// - ответы: parent_id
// - одна реакция вида kind от канала на комментарий
// - уникальные имена каналов и каналы учётной записи
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	sets := []struct {
		coll   *mongodriver.Collection
		models []mongodriver.IndexModel
	}{
		{
			coll: m.comments,
			models: []mongodriver.IndexModel{
				{
					Keys:    bson.D{{Key: "claim_id", Value: 1}, {Key: "is_hidden", Value: 1}, {Key: "created_at", Value: -1}},
					Options: options.Index().SetName("claim_hidden_created_desc"),
				},
				{
					Keys:    bson.D{{Key: "parent_id", Value: 1}},
					Options: options.Index().SetName("parent"),
				},
			},
		},
		{
			coll: m.reactions,
			models: []mongodriver.IndexModel{
				{
					Keys:    bson.D{{Key: "comment_id", Value: 1}, {Key: "channel_id", Value: 1}, {Key: "kind", Value: 1}},
					Options: options.Index().SetName("comment_channel_kind_uniq").SetUnique(true),
				},
			},
		},
		{
			coll: m.claims,
			models: []mongodriver.IndexModel{
				{
					Keys: bson.D{{Key: "name", Value: 1}},
					Options: options.Index().SetName("channel_name_uniq").SetUnique(true).
						SetPartialFilterExpression(bson.D{{Key: "value_type", Value: "channel"}}),
				},
				{
					Keys:    bson.D{{Key: "account", Value: 1}, {Key: "created_at", Value: 1}},
					Options: options.Index().SetName("account_created_asc"),
				},
			},
		},
	}

	for _, s := range sets {
		if _, err := s.coll.Indexes().CreateMany(ctx, s.models); err != nil {
			return fmt.Errorf("mongo ensure indexes (%s): %w", s.coll.Name(), err)
		}
	}

	return nil
}

// limitOrDefault приводит запрошенный размер страницы к [Default, Max].
func limitOrDefault(cfg *config.Config, pageSize int32) int64 {
	lim := pageSize
	if lim <= 0 {
		lim = cfg.Limits.Default
	}

	if lim > cfg.Limits.Max {
		lim = cfg.Limits.Max
	}

	return int64(lim)
}

// toMS — MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает разумное значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
