package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const detailCodeKey = "code"

// ToGRPCError converts an error to a gRPC status error. The error code and
// any JSON-compatible metadata ride along as a structpb.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Already a status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	fields := map[string]interface{}{detailCodeKey: string(customErr.Code)}
	for k, v := range customErr.Meta {
		fields[k] = v
	}
	details, detailErr := structpb.NewStruct(fields)
	if detailErr != nil {
		// Metadata that is not JSON-shaped is dropped, the code still travels.
		details, detailErr = structpb.NewStruct(map[string]interface{}{detailCodeKey: string(customErr.Code)})
	}
	if detailErr == nil {
		if withDetails, err := st.WithDetails(details); err == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error back to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := details.AsMap()
		if code, ok := meta[detailCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, detailCodeKey)
		}
		if len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}
