package commentsv1

import (
	"context"

	"google.golang.org/grpc"
)

// CommentsClient — клиентская сторона сервиса.
type CommentsClient interface {
	CommentList(ctx context.Context, in *CommentListRequest, opts ...grpc.CallOption) (*CommentListResponse, error)
	ReactList(ctx context.Context, in *ReactListRequest, opts ...grpc.CallOption) (*ReactListResponse, error)
	React(ctx context.Context, in *ReactRequest, opts ...grpc.CallOption) (*ReactResponse, error)
	CommentCreate(ctx context.Context, in *CommentCreateRequest, opts ...grpc.CallOption) (*Comment, error)
	// CommentUpdate возвращает (nil, nil), если сервис ответил null.
	CommentUpdate(ctx context.Context, in *CommentUpdateRequest, opts ...grpc.CallOption) (*Comment, error)
	CommentHide(ctx context.Context, in *CommentHideRequest, opts ...grpc.CallOption) (CommentHideResponse, error)
	CommentAbandon(ctx context.Context, in *CommentAbandonRequest, opts ...grpc.CallOption) (*CommentAbandonResponse, error)
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (ResolveResponse, error)
	ChannelList(ctx context.Context, in *ChannelListRequest, opts ...grpc.CallOption) (*ChannelListResponse, error)
	ChannelCreate(ctx context.Context, in *ChannelCreateRequest, opts ...grpc.CallOption) (*Claim, error)
}

type commentsClient struct {
	cc grpc.ClientConnInterface
}

// NewCommentsClient оборачивает соединение; JSON-кодек выбирается на каждый вызов.
func NewCommentsClient(cc grpc.ClientConnInterface) CommentsClient {
	return &commentsClient{cc: cc}
}

func (c *commentsClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *commentsClient) CommentList(ctx context.Context, in *CommentListRequest, opts ...grpc.CallOption) (*CommentListResponse, error) {
	out := new(CommentListResponse)
	if err := c.invoke(ctx, CommentListMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) ReactList(ctx context.Context, in *ReactListRequest, opts ...grpc.CallOption) (*ReactListResponse, error) {
	out := new(ReactListResponse)
	if err := c.invoke(ctx, ReactListMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) React(ctx context.Context, in *ReactRequest, opts ...grpc.CallOption) (*ReactResponse, error) {
	out := new(ReactResponse)
	if err := c.invoke(ctx, ReactMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) CommentCreate(ctx context.Context, in *CommentCreateRequest, opts ...grpc.CallOption) (*Comment, error) {
	out := new(Comment)
	if err := c.invoke(ctx, CommentCreateMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) CommentUpdate(ctx context.Context, in *CommentUpdateRequest, opts ...grpc.CallOption) (*Comment, error) {
	// Указатель на указатель: JSON null оставляет out == nil.
	var out *Comment
	if err := c.invoke(ctx, CommentUpdateMethod, in, &out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) CommentHide(ctx context.Context, in *CommentHideRequest, opts ...grpc.CallOption) (CommentHideResponse, error) {
	out := CommentHideResponse{}
	if err := c.invoke(ctx, CommentHideMethod, in, &out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) CommentAbandon(ctx context.Context, in *CommentAbandonRequest, opts ...grpc.CallOption) (*CommentAbandonResponse, error) {
	out := new(CommentAbandonResponse)
	if err := c.invoke(ctx, CommentAbandonMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (ResolveResponse, error) {
	out := ResolveResponse{}
	if err := c.invoke(ctx, ResolveMethod, in, &out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) ChannelList(ctx context.Context, in *ChannelListRequest, opts ...grpc.CallOption) (*ChannelListResponse, error) {
	out := new(ChannelListResponse)
	if err := c.invoke(ctx, ChannelListMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commentsClient) ChannelCreate(ctx context.Context, in *ChannelCreateRequest, opts ...grpc.CallOption) (*Claim, error) {
	out := new(Claim)
	if err := c.invoke(ctx, ChannelCreateMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
