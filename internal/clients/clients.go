// Package clients — gRPC-клиент сервиса комментариев для слоя действий.
package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/pribylovaa/odysee-comments/internal/actions"
	"github.com/pribylovaa/odysee-comments/internal/clients/interceptors"
	"github.com/pribylovaa/odysee-comments/internal/config"
	"github.com/pribylovaa/odysee-comments/internal/models"
	commentsv1 "github.com/pribylovaa/odysee-comments/pkg/commentsv1"
)

const userAgent = "comments-client"

// Comments реализует actions.CommentAPI поверх commentsv1.
type Comments struct {
	cli  commentsv1.CommentsClient
	conn *grpc.ClientConn
}

var _ actions.CommentAPI = (*Comments)(nil)

// Dial создаёт соединение с сервисом комментариев.
// Цепочка интерсепторов: metadata -> timeout -> logging.
func Dial(cfg config.ClientConfig, log *slog.Logger, opts ...grpc.DialOption) (*Comments, error) {
	const op = "internal/clients/Dial"

	if cfg.Server.Addr == "" {
		return nil, fmt.Errorf("%s: empty comments addr", op)
	}

	// Выдача «всех» комментариев сразу может идти дольше обычного вызова.
	overrides := map[string]time.Duration{commentsv1.CommentListMethod: 3 * cfg.Timeouts.Request}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			interceptors.ClientWithMetadata(userAgent, cfg.Server.Token),
			interceptors.ClientWithTimeout(cfg.Timeouts.Request, overrides),
			interceptors.ClientUnaryLoggingInterceptor(log),
		),
	}, opts...)

	conn, err := grpc.NewClient(cfg.Server.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Comments{cli: commentsv1.NewCommentsClient(conn), conn: conn}, nil
}

// New оборачивает готовый клиент (без владения соединением).
func New(cli commentsv1.CommentsClient) *Comments {
	return &Comments{cli: cli}
}

// Close закрывает соединение, если оно было открыто через Dial.
func (c *Comments) Close() error {
	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

func (c *Comments) CommentList(ctx context.Context, in actions.ListParams) (*actions.ListPage, error) {
	const op = "internal/clients/CommentList"

	resp, err := c.cli.CommentList(ctx, &commentsv1.CommentListRequest{
		ClaimID:        in.ClaimID,
		Page:           in.Page,
		PageSize:       in.PageSize,
		IncludeReplies: in.IncludeReplies,
		SkipValidation: in.SkipValidation,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.Comment, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, commentFromWire(it))
	}

	return &actions.ListPage{
		Items:      items,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalItems: resp.TotalItems,
	}, nil
}

func (c *Comments) ReactList(ctx context.Context, in actions.ReactListParams) (*models.Reactions, error) {
	const op = "internal/clients/ReactList"

	resp, err := c.cli.ReactList(ctx, &commentsv1.ReactListRequest{
		CommentIDs:  strings.Join(in.CommentIDs, ","),
		ChannelName: in.ChannelName,
		ChannelID:   in.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	my, err := countsFromWire(resp.MyReactions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	others, err := countsFromWire(resp.OthersReactions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Reactions{My: my, Others: others}, nil
}

func (c *Comments) React(ctx context.Context, in actions.ReactParams) error {
	const op = "internal/clients/React"

	clearTypes := make([]string, 0, len(in.ClearTypes))
	for _, k := range in.ClearTypes {
		clearTypes = append(clearTypes, k.String())
	}

	_, err := c.cli.React(ctx, &commentsv1.ReactRequest{
		CommentIDs:  in.CommentID,
		ChannelName: in.ChannelName,
		ChannelID:   in.ChannelID,
		ReactType:   in.Kind.String(),
		ClearTypes:  strings.Join(clearTypes, ","),
		Remove:      in.Remove,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Comments) CommentCreate(ctx context.Context, in actions.CreateParams) (*models.Comment, error) {
	const op = "internal/clients/CommentCreate"

	resp, err := c.cli.CommentCreate(ctx, &commentsv1.CommentCreateRequest{
		Comment:   in.Body,
		ClaimID:   in.ClaimID,
		ChannelID: in.ChannelID,
		ParentID:  in.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cm := commentFromWire(*resp)
	return &cm, nil
}

func (c *Comments) CommentUpdate(ctx context.Context, commentID, body string) (*models.Comment, error) {
	const op = "internal/clients/CommentUpdate"

	resp, err := c.cli.CommentUpdate(ctx, &commentsv1.CommentUpdateRequest{CommentID: commentID, Comment: body})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if resp == nil {
		return nil, nil
	}

	cm := commentFromWire(*resp)
	return &cm, nil
}

func (c *Comments) CommentHide(ctx context.Context, commentIDs []string) (map[string]bool, error) {
	const op = "internal/clients/CommentHide"

	resp, err := c.cli.CommentHide(ctx, &commentsv1.CommentHideRequest{CommentIDs: commentIDs})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]bool, len(resp))
	for id, st := range resp {
		out[id] = st.Hidden
	}

	return out, nil
}

func (c *Comments) CommentAbandon(ctx context.Context, commentID string) (bool, error) {
	const op = "internal/clients/CommentAbandon"

	resp, err := c.cli.CommentAbandon(ctx, &commentsv1.CommentAbandonRequest{CommentID: commentID})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Abandoned, nil
}

func (c *Comments) Resolve(ctx context.Context, uris []string) (map[string]models.Claim, error) {
	const op = "internal/clients/Resolve"

	resp, err := c.cli.Resolve(ctx, &commentsv1.ResolveRequest{URLs: uris})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]models.Claim, len(resp))
	for uri, cl := range resp {
		out[uri] = claimFromWire(cl)
	}

	return out, nil
}

func (c *Comments) ChannelList(ctx context.Context) ([]models.Claim, error) {
	const op = "internal/clients/ChannelList"

	resp, err := c.cli.ChannelList(ctx, &commentsv1.ChannelListRequest{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.Claim, 0, len(resp.Items))
	for _, cl := range resp.Items {
		out = append(out, claimFromWire(cl))
	}

	return out, nil
}

func (c *Comments) ChannelCreate(ctx context.Context, name string) (*models.Claim, error) {
	const op = "internal/clients/ChannelCreate"

	resp, err := c.cli.ChannelCreate(ctx, &commentsv1.ChannelCreateRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cl := claimFromWire(*resp)
	return &cl, nil
}
