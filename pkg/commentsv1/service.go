package commentsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName — полное имя gRPC-сервиса.
const ServiceName = "commentsv1.Comments"

// Полные имена методов.
const (
	CommentListMethod    = "/" + ServiceName + "/CommentList"
	ReactListMethod      = "/" + ServiceName + "/ReactList"
	ReactMethod          = "/" + ServiceName + "/React"
	CommentCreateMethod  = "/" + ServiceName + "/CommentCreate"
	CommentUpdateMethod  = "/" + ServiceName + "/CommentUpdate"
	CommentHideMethod    = "/" + ServiceName + "/CommentHide"
	CommentAbandonMethod = "/" + ServiceName + "/CommentAbandon"
	ResolveMethod        = "/" + ServiceName + "/Resolve"
	ChannelListMethod    = "/" + ServiceName + "/ChannelList"
	ChannelCreateMethod  = "/" + ServiceName + "/ChannelCreate"
)

// CommentsServer — серверная сторона сервиса.
type CommentsServer interface {
	CommentList(context.Context, *CommentListRequest) (*CommentListResponse, error)
	ReactList(context.Context, *ReactListRequest) (*ReactListResponse, error)
	React(context.Context, *ReactRequest) (*ReactResponse, error)
	CommentCreate(context.Context, *CommentCreateRequest) (*Comment, error)
	CommentUpdate(context.Context, *CommentUpdateRequest) (*Comment, error)
	CommentHide(context.Context, *CommentHideRequest) (CommentHideResponse, error)
	CommentAbandon(context.Context, *CommentAbandonRequest) (*CommentAbandonResponse, error)
	Resolve(context.Context, *ResolveRequest) (ResolveResponse, error)
	ChannelList(context.Context, *ChannelListRequest) (*ChannelListResponse, error)
	ChannelCreate(context.Context, *ChannelCreateRequest) (*Claim, error)
}

// UnimplementedCommentsServer отвечает codes.Unimplemented на все методы.
// Встраивается в реализации, которые покрывают сервис частично.
type UnimplementedCommentsServer struct{}

func (UnimplementedCommentsServer) CommentList(context.Context, *CommentListRequest) (*CommentListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommentList not implemented")
}

func (UnimplementedCommentsServer) ReactList(context.Context, *ReactListRequest) (*ReactListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReactList not implemented")
}

func (UnimplementedCommentsServer) React(context.Context, *ReactRequest) (*ReactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method React not implemented")
}

func (UnimplementedCommentsServer) CommentCreate(context.Context, *CommentCreateRequest) (*Comment, error) {
	return nil, status.Error(codes.Unimplemented, "method CommentCreate not implemented")
}

func (UnimplementedCommentsServer) CommentUpdate(context.Context, *CommentUpdateRequest) (*Comment, error) {
	return nil, status.Error(codes.Unimplemented, "method CommentUpdate not implemented")
}

func (UnimplementedCommentsServer) CommentHide(context.Context, *CommentHideRequest) (CommentHideResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommentHide not implemented")
}

func (UnimplementedCommentsServer) CommentAbandon(context.Context, *CommentAbandonRequest) (*CommentAbandonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommentAbandon not implemented")
}

func (UnimplementedCommentsServer) Resolve(context.Context, *ResolveRequest) (ResolveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Resolve not implemented")
}

func (UnimplementedCommentsServer) ChannelList(context.Context, *ChannelListRequest) (*ChannelListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChannelList not implemented")
}

func (UnimplementedCommentsServer) ChannelCreate(context.Context, *ChannelCreateRequest) (*Claim, error) {
	return nil, status.Error(codes.Unimplemented, "method ChannelCreate not implemented")
}

// RegisterCommentsServer регистрирует реализацию на gRPC-сервере.
func RegisterCommentsServer(s grpc.ServiceRegistrar, srv CommentsServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc — описание сервиса для grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CommentsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CommentList", Handler: unary(CommentListMethod, CommentsServer.CommentList)},
		{MethodName: "ReactList", Handler: unary(ReactListMethod, CommentsServer.ReactList)},
		{MethodName: "React", Handler: unary(ReactMethod, CommentsServer.React)},
		{MethodName: "CommentCreate", Handler: unary(CommentCreateMethod, CommentsServer.CommentCreate)},
		{MethodName: "CommentUpdate", Handler: unary(CommentUpdateMethod, CommentsServer.CommentUpdate)},
		{MethodName: "CommentHide", Handler: unary(CommentHideMethod, CommentsServer.CommentHide)},
		{MethodName: "CommentAbandon", Handler: unary(CommentAbandonMethod, CommentsServer.CommentAbandon)},
		{MethodName: "Resolve", Handler: unary(ResolveMethod, CommentsServer.Resolve)},
		{MethodName: "ChannelList", Handler: unary(ChannelListMethod, CommentsServer.ChannelList)},
		{MethodName: "ChannelCreate", Handler: unary(ChannelCreateMethod, CommentsServer.ChannelCreate)},
	},
	Streams: []grpc.StreamDesc{},
}

// unary строит grpc.MethodHandler для метода CommentsServer: декодирует
// запрос и прогоняет вызов через цепочку серверных интерсепторов.
func unary[Req any, Resp any](fullMethod string, call func(CommentsServer, context.Context, *Req) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(CommentsServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CommentsServer), ctx, req.(*Req))
		}

		return interceptor(ctx, in, info, handler)
	}
}
