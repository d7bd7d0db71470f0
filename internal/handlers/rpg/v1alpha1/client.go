package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// GameServiceClient is the client API for GameService.
type GameServiceClient interface {
	CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*CreateGameResponse, error)
	GetGame(ctx context.Context, in *GetGameRequest, opts ...grpc.CallOption) (*GetGameResponse, error)
	Travel(ctx context.Context, in *TravelRequest, opts ...grpc.CallOption) (*TravelResponse, error)
	Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error)
	Unequip(ctx context.Context, in *UnequipRequest, opts ...grpc.CallOption) (*UnequipResponse, error)
	SpendAttribute(ctx context.Context, in *SpendAttributeRequest, opts ...grpc.CallOption) (*SpendAttributeResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	StartBattle(ctx context.Context, in *StartBattleRequest, opts ...grpc.CallOption) (*StartBattleResponse, error)
	SubmitAction(ctx context.Context, in *SubmitActionRequest, opts ...grpc.CallOption) (*SubmitActionResponse, error)
	GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient returns a client that sends every call with the JSON
// content subtype.
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*CreateGameResponse, error) {
	return invoke[CreateGameResponse](ctx, c.cc, "CreateGame", in, opts)
}

func (c *gameServiceClient) GetGame(ctx context.Context, in *GetGameRequest, opts ...grpc.CallOption) (*GetGameResponse, error) {
	return invoke[GetGameResponse](ctx, c.cc, "GetGame", in, opts)
}

func (c *gameServiceClient) Travel(ctx context.Context, in *TravelRequest, opts ...grpc.CallOption) (*TravelResponse, error) {
	return invoke[TravelResponse](ctx, c.cc, "Travel", in, opts)
}

func (c *gameServiceClient) Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error) {
	return invoke[EquipResponse](ctx, c.cc, "Equip", in, opts)
}

func (c *gameServiceClient) Unequip(ctx context.Context, in *UnequipRequest, opts ...grpc.CallOption) (*UnequipResponse, error) {
	return invoke[UnequipResponse](ctx, c.cc, "Unequip", in, opts)
}

func (c *gameServiceClient) SpendAttribute(ctx context.Context, in *SpendAttributeRequest, opts ...grpc.CallOption) (*SpendAttributeResponse, error) {
	return invoke[SpendAttributeResponse](ctx, c.cc, "SpendAttribute", in, opts)
}

func (c *gameServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	return invoke[GetStatsResponse](ctx, c.cc, "GetStats", in, opts)
}

func (c *gameServiceClient) StartBattle(ctx context.Context, in *StartBattleRequest, opts ...grpc.CallOption) (*StartBattleResponse, error) {
	return invoke[StartBattleResponse](ctx, c.cc, "StartBattle", in, opts)
}

func (c *gameServiceClient) SubmitAction(ctx context.Context, in *SubmitActionRequest, opts ...grpc.CallOption) (*SubmitActionResponse, error) {
	return invoke[SubmitActionResponse](ctx, c.cc, "SubmitAction", in, opts)
}

func (c *gameServiceClient) GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error) {
	return invoke[GetBattleResponse](ctx, c.cc, "GetBattle", in, opts)
}
