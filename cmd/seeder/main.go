// seeder наполняет базу comments-service тестовыми каналами, контентом,
// комментариями и реакциями. Пишет через сервисный слой, как настоящий клиент.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/pribylovaa/odysee-comments/internal/config"
	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/service"
	csmongo "github.com/pribylovaa/odysee-comments/internal/storage/mongo"
	logctx "github.com/pribylovaa/odysee-comments/pkg/log"
	"github.com/pribylovaa/odysee-comments/pkg/redact"
)

func main() {
	var (
		configPath string
		accounts   int
		streams    int
		comments   int
		seed       int64
	)
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.IntVar(&accounts, "accounts", 5, "number of accounts (one channel each)")
	flag.IntVar(&streams, "streams", 3, "number of stream claims")
	flag.IntVar(&comments, "comments", 20, "top-level comments per stream")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := logctx.Into(context.Background(), log)

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := csmongo.New(dbCtx, cfg)
	cancel()
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close(context.Background())

	s := &seeder{svc: service.New(store, *cfg), claims: store, log: log}
	if err := s.run(ctx, accounts, streams, comments); err != nil {
		log.Error("seed_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// claimWriter — запись контента в обход сервиса: публикации нет в comment API.
type claimWriter interface {
	CreateClaim(ctx context.Context, claim models.Claim) (*models.Claim, error)
}

type seeder struct {
	svc    *service.Service
	claims claimWriter
	log    *slog.Logger
}

type author struct {
	account string
	channel *models.Claim
}

func (s *seeder) run(ctx context.Context, accounts, streams, perStream int) error {
	authors := make([]author, 0, accounts)
	for i := 0; i < accounts; i++ {
		acc := "acc-" + strings.ReplaceAll(gofakeit.UUID(), "-", "")[:12]
		name := "@" + strings.ToLower(gofakeit.Username())

		ch, err := s.svc.CreateChannel(ctx, acc, name, gofakeit.Name())
		if err != nil {
			return fmt.Errorf("create channel %s: %w", name, err)
		}
		authors = append(authors, author{account: acc, channel: ch})
		s.log.Info("channel_seeded", "account", redact.Account(acc), "channel", ch.PermanentURL)
	}
	if len(authors) == 0 {
		return fmt.Errorf("need at least one account")
	}

	for i := 0; i < streams; i++ {
		owner := authors[i%len(authors)]
		claim, err := s.createStream(ctx, owner.account)
		if err != nil {
			return err
		}

		created := 0
		for j := 0; j < perStream; j++ {
			ids, err := s.thread(ctx, authors, claim.ClaimID)
			if err != nil {
				return err
			}
			created += len(ids)
		}

		fmt.Printf("%s  (%d comments, owner token %s)\n", claim.PermanentURL, created, owner.account)
	}

	fmt.Println("accounts:")
	for _, a := range authors {
		fmt.Printf("  %s  %s\n", a.account, a.channel.Name)
	}

	return nil
}

func (s *seeder) createStream(ctx context.Context, account string) (*models.Claim, error) {
	id := strings.ReplaceAll(gofakeit.UUID()+gofakeit.UUID(), "-", "")[:40]
	name := strings.ToLower(strings.Join(strings.Fields(gofakeit.HipsterWord()+" "+gofakeit.Noun()), "-"))

	claim, err := s.claims.CreateClaim(ctx, models.Claim{
		ClaimID:      id,
		Name:         name,
		ValueType:    models.ValueTypeStream,
		PermanentURL: models.PermanentURL(name, id),
		Meta: models.ClaimMeta{
			Title:        gofakeit.Sentence(4),
			ThumbnailURL: gofakeit.URL(),
			Description:  gofakeit.Paragraph(1, 3, 12, " "),
		},
		Account:   account,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create stream %s: %w", name, err)
	}

	return claim, nil
}

// thread создаёт корневой комментарий, несколько ответов и реакции.
func (s *seeder) thread(ctx context.Context, authors []author, claimID string) ([]string, error) {
	pick := func() author { return authors[gofakeit.Number(0, len(authors)-1)] }

	root := pick()
	c, err := s.svc.CreateComment(ctx, root.account, service.CreateCommentInput{
		ClaimID:   claimID,
		ChannelID: root.channel.ClaimID,
		Body:      gofakeit.Sentence(gofakeit.Number(3, 40)),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	ids := []string{c.ID}

	for r := gofakeit.Number(0, 3); r > 0; r-- {
		a := pick()
		reply, err := s.svc.CreateComment(ctx, a.account, service.CreateCommentInput{
			ClaimID:   claimID,
			ChannelID: a.channel.ClaimID,
			ParentID:  c.ID,
			Body:      gofakeit.Sentence(gofakeit.Number(2, 20)),
		})
		if err != nil {
			return nil, fmt.Errorf("create reply: %w", err)
		}
		ids = append(ids, reply.ID)
	}

	for _, a := range authors {
		if !gofakeit.Bool() {
			continue
		}

		kind := models.Like
		if gofakeit.Number(0, 4) == 0 {
			kind = models.Dislike
		}
		excl, _ := kind.Exclusive()

		err := s.svc.React(ctx, a.account, service.ReactInput{
			CommentIDs: ids[:1],
			Channel:    service.ChannelRef{ID: a.channel.ClaimID},
			Kind:       kind,
			Clear:      []models.ReactionKind{excl},
		})
		if err != nil {
			return nil, fmt.Errorf("react: %w", err)
		}
	}

	return ids, nil
}
