package flighttime_service_api

import (
	"context"
	"net"
	"testing"

	"github.com/Domenick1991/flighttime/internal/domain"
	"github.com/Domenick1991/flighttime/internal/requestid"
	"github.com/Domenick1991/flighttime/internal/service/flights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func newTestConn(t *testing.T) *grpc.ClientConn {
	t.Helper()

	table, err := domain.NewFlightTimeTable(domain.DefaultFlightTimes())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(requestid.UnaryServerInterceptor()))
	RegisterFlightTimeServiceServer(srv, NewServer(flights.NewFlightService(table)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func getFlightTime(t *testing.T, conn *grpc.ClientConn, fields map[string]any) (*structpb.Struct, error) {
	t.Helper()
	in, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	out := new(structpb.Struct)
	err = conn.Invoke(context.Background(), GetFlightTimeMethod, in, out)
	return out, err
}

func TestServer_GetWelcomeMessage(t *testing.T) {
	conn := newTestConn(t)

	out := new(structpb.Struct)
	err := conn.Invoke(context.Background(), GetWelcomeMessageMethod, &emptypb.Empty{}, out)

	require.NoError(t, err)
	assert.Equal(t, "Welcome to the Flight Timing API", out.GetFields()["message"].GetStringValue())
}

func TestServer_GetFlightTime_Found(t *testing.T) {
	conn := newTestConn(t)

	out, err := getFlightTime(t, conn, map[string]any{"flight_id": "ai101"})

	require.NoError(t, err)
	assert.Equal(t, "AI101", out.GetFields()["flight_id"].GetStringValue())
	assert.Equal(t, "10:30 AM", out.GetFields()["time"].GetStringValue())
}

func TestServer_GetFlightTime_NotFound(t *testing.T) {
	conn := newTestConn(t)

	for _, fields := range []map[string]any{
		{"flight_id": "zz999"},
		{},
		{"flight_id": ""},
		{"flight_id": 101},
	} {
		_, err := getFlightTime(t, conn, fields)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Equal(t, "Flight not found", st.Message())
	}
}

func TestToLookupRequest(t *testing.T) {
	assert.Equal(t, flights.LookupRequest{}, toLookupRequest(nil))

	req, err := structpb.NewStruct(map[string]any{"flight_id": true})
	require.NoError(t, err)
	assert.Equal(t, flights.LookupRequest{}, toLookupRequest(req))

	req, err = structpb.NewStruct(map[string]any{"flight_id": "BA202"})
	require.NoError(t, err)
	assert.Equal(t, "BA202", toLookupRequest(req).ID())
}
