package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "rpgquest.v1alpha1.GameService"

// GameServiceServer is the server API for GameService.
type GameServiceServer interface {
	CreateGame(context.Context, *CreateGameRequest) (*CreateGameResponse, error)
	GetGame(context.Context, *GetGameRequest) (*GetGameResponse, error)
	Travel(context.Context, *TravelRequest) (*TravelResponse, error)
	Equip(context.Context, *EquipRequest) (*EquipResponse, error)
	Unequip(context.Context, *UnequipRequest) (*UnequipResponse, error)
	SpendAttribute(context.Context, *SpendAttributeRequest) (*SpendAttributeResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	StartBattle(context.Context, *StartBattleRequest) (*StartBattleResponse, error)
	SubmitAction(context.Context, *SubmitActionRequest) (*SubmitActionResponse, error)
	GetBattle(context.Context, *GetBattleRequest) (*GetBattleResponse, error)
}

// GameServiceDesc describes GameService for grpc.Server.RegisterService.
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateGame", GameServiceServer.CreateGame),
		unary("GetGame", GameServiceServer.GetGame),
		unary("Travel", GameServiceServer.Travel),
		unary("Equip", GameServiceServer.Equip),
		unary("Unequip", GameServiceServer.Unequip),
		unary("SpendAttribute", GameServiceServer.SpendAttribute),
		unary("GetStats", GameServiceServer.GetStats),
		unary("StartBattle", GameServiceServer.StartBattle),
		unary("SubmitAction", GameServiceServer.SubmitAction),
		unary("GetBattle", GameServiceServer.GetBattle),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgquest/v1alpha1/game.json",
}

// RegisterGameServiceServer registers srv on s.
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the method descriptor for one request/response call.
func unary[Req, Resp any](
	method string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GameServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GameServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
