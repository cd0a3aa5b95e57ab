// Реализация gRPC-эндпоинтов commentsv1.Comments.
//
// Учётная запись берётся из метаданных authorization: Bearer <token>.
//
// Маппинг ошибок сервиса в коды gRPC:
//
//	ErrInvalidArgument        -> codes.InvalidArgument
//	ErrNotFound               -> codes.NotFound
//	ErrParentNotFound         -> codes.NotFound
//	ErrConflict               -> codes.AlreadyExists
//	ErrUnauthenticated        -> codes.Unauthenticated
//	ErrPermissionDenied       -> codes.PermissionDenied
//	ErrChannelNotReady        -> null (CommentUpdate) / abandoned=false (CommentAbandon)
//	прочее                    -> codes.Internal
package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/service"
	commentsv1 "github.com/pribylovaa/odysee-comments/pkg/commentsv1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// CommentsServer — gRPC-сервер commentsv1.Comments.
type CommentsServer struct {
	commentsv1.UnimplementedCommentsServer
	service *service.Service
}

func NewCommentsServer(svc *service.Service) *CommentsServer {
	return &CommentsServer{service: svc}
}

// accountFrom достаёт токен учётной записи; пустая строка — анонимный вызов.
func accountFrom(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	for _, v := range md.Get("authorization") {
		scheme, token, found := strings.Cut(strings.TrimSpace(v), " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}

	return ""
}

// toStatus переводит ошибку сервиса в gRPC status.
func toStatus(op string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrParentNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", op, err)
	case errors.Is(err, service.ErrConflict):
		return status.Errorf(codes.AlreadyExists, "%s: %v", op, err)
	case errors.Is(err, service.ErrUnauthenticated):
		return status.Errorf(codes.Unauthenticated, "%s: %v", op, err)
	case errors.Is(err, service.ErrPermissionDenied):
		return status.Errorf(codes.PermissionDenied, "%s: %v", op, err)
	default:
		return status.Errorf(codes.Internal, "internal server error")
	}
}

// CommentList — страница комментариев claim'а.
// skip_validation принимается для совместимости и ни на что не влияет.
func (s *CommentsServer) CommentList(ctx context.Context, req *commentsv1.CommentListRequest) (*commentsv1.CommentListResponse, error) {
	const op = "transport/grpc/comments/CommentList"

	page, err := s.service.ListComments(ctx, service.ListInput{
		ClaimID:        req.ClaimID,
		Page:           req.Page,
		PageSize:       req.PageSize,
		IncludeReplies: req.IncludeReplies,
	})
	if err != nil {
		return nil, toStatus(op, err)
	}

	items := make([]commentsv1.Comment, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, commentToWire(c))
	}

	return &commentsv1.CommentListResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
		TotalItems: page.TotalItems,
	}, nil
}

// ReactList — свои и чужие реакции по списку comment_ids.
func (s *CommentsServer) ReactList(ctx context.Context, req *commentsv1.ReactListRequest) (*commentsv1.ReactListResponse, error) {
	const op = "transport/grpc/reactions/ReactList"

	res, err := s.service.ReactList(ctx, accountFrom(ctx), service.SplitIDs(req.CommentIDs), service.ChannelRef{
		ID:   req.ChannelID,
		Name: req.ChannelName,
	})
	if err != nil {
		return nil, toStatus(op, err)
	}

	return &commentsv1.ReactListResponse{
		MyReactions:     countsToWire(res.My),
		OthersReactions: countsToWire(res.Others),
	}, nil
}

// React — поставить/снять реакцию. Виды проверяются здесь, на границе.
func (s *CommentsServer) React(ctx context.Context, req *commentsv1.ReactRequest) (*commentsv1.ReactResponse, error) {
	const op = "transport/grpc/reactions/React"

	kind, err := models.ParseReactionKind(req.ReactType)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	}

	var clearKinds []models.ReactionKind
	for _, raw := range service.SplitIDs(req.ClearTypes) {
		k, err := models.ParseReactionKind(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s: clear_types: %v", op, err)
		}
		clearKinds = append(clearKinds, k)
	}

	err = s.service.React(ctx, accountFrom(ctx), service.ReactInput{
		CommentIDs: service.SplitIDs(req.CommentIDs),
		Channel:    service.ChannelRef{ID: req.ChannelID, Name: req.ChannelName},
		Kind:       kind,
		Clear:      clearKinds,
		Remove:     req.Remove,
	})
	if err != nil {
		return nil, toStatus(op, err)
	}

	return &commentsv1.ReactResponse{}, nil
}

// CommentCreate — публикация комментария или ответа.
func (s *CommentsServer) CommentCreate(ctx context.Context, req *commentsv1.CommentCreateRequest) (*commentsv1.Comment, error) {
	const op = "transport/grpc/comments/CommentCreate"

	res, err := s.service.CreateComment(ctx, accountFrom(ctx), service.CreateCommentInput{
		ClaimID:   req.ClaimID,
		ChannelID: req.ChannelID,
		ParentID:  req.ParentID,
		Body:      req.Comment,
	})
	if err != nil {
		return nil, toStatus(op, err)
	}

	out := commentToWire(*res)
	return &out, nil
}

// CommentUpdate — правка текста. Неготовый канал даёт ответ null.
func (s *CommentsServer) CommentUpdate(ctx context.Context, req *commentsv1.CommentUpdateRequest) (*commentsv1.Comment, error) {
	const op = "transport/grpc/comments/CommentUpdate"

	res, err := s.service.UpdateComment(ctx, accountFrom(ctx), req.CommentID, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrChannelNotReady) {
			return nil, nil
		}

		return nil, toStatus(op, err)
	}

	out := commentToWire(*res)
	return &out, nil
}

// CommentHide — скрытие комментариев под своим контентом.
func (s *CommentsServer) CommentHide(ctx context.Context, req *commentsv1.CommentHideRequest) (commentsv1.CommentHideResponse, error) {
	const op = "transport/grpc/comments/CommentHide"

	res, err := s.service.HideComments(ctx, accountFrom(ctx), req.CommentIDs)
	if err != nil {
		return nil, toStatus(op, err)
	}

	out := make(commentsv1.CommentHideResponse, len(res))
	for id, hidden := range res {
		out[id] = commentsv1.HideStatus{Hidden: hidden}
	}

	return out, nil
}

// CommentAbandon — удаление своего комментария. Неготовый канал даёт abandoned=false.
func (s *CommentsServer) CommentAbandon(ctx context.Context, req *commentsv1.CommentAbandonRequest) (*commentsv1.CommentAbandonResponse, error) {
	const op = "transport/grpc/comments/CommentAbandon"

	if err := s.service.AbandonComment(ctx, accountFrom(ctx), req.CommentID); err != nil {
		if errors.Is(err, service.ErrChannelNotReady) {
			return &commentsv1.CommentAbandonResponse{Abandoned: false}, nil
		}

		return nil, toStatus(op, err)
	}

	return &commentsv1.CommentAbandonResponse{Abandoned: true}, nil
}

// Resolve — claim'ы по lbry-URI; неразрешённые URI в ответ не попадают.
func (s *CommentsServer) Resolve(ctx context.Context, req *commentsv1.ResolveRequest) (commentsv1.ResolveResponse, error) {
	const op = "transport/grpc/channels/Resolve"

	res, err := s.service.Resolve(ctx, req.URLs)
	if err != nil {
		return nil, toStatus(op, err)
	}

	out := make(commentsv1.ResolveResponse, len(res))
	for uri, c := range res {
		out[uri] = claimToWire(c)
	}

	return out, nil
}

// ChannelList — каналы учётной записи. page/page_size игнорируются: каналов у
// учётной записи немного, отдаются все.
func (s *CommentsServer) ChannelList(ctx context.Context, _ *commentsv1.ChannelListRequest) (*commentsv1.ChannelListResponse, error) {
	const op = "transport/grpc/channels/ChannelList"

	res, err := s.service.Channels(ctx, accountFrom(ctx))
	if err != nil {
		return nil, toStatus(op, err)
	}

	items := make([]commentsv1.Claim, 0, len(res))
	for _, c := range res {
		items = append(items, claimToWire(c))
	}

	return &commentsv1.ChannelListResponse{Items: items}, nil
}

// ChannelCreate — новый канал учётной записи.
func (s *CommentsServer) ChannelCreate(ctx context.Context, req *commentsv1.ChannelCreateRequest) (*commentsv1.Claim, error) {
	const op = "transport/grpc/channels/ChannelCreate"

	res, err := s.service.CreateChannel(ctx, accountFrom(ctx), req.Name, req.Title)
	if err != nil {
		return nil, toStatus(op, err)
	}

	out := claimToWire(*res)
	return &out, nil
}
