package twinrpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/oreforge/steelmas/gen/steeltwins"
	"github.com/oreforge/steelmas/internal/plant"
	"github.com/oreforge/steelmas/internal/twin"
)

// #region mock

type mockTwinService struct {
	pb.TwinServiceClient

	lastReq    *pb.InvokeRequest
	invokeResp *pb.InvokeResponse
	invokeErr  error
}

func (m *mockTwinService) Invoke(_ context.Context, req *pb.InvokeRequest, _ ...grpc.CallOption) (*pb.InvokeResponse, error) {
	m.lastReq = req
	return m.invokeResp, m.invokeErr
}

// #endregion mock

func TestInvokePassesProcessAndInputs(t *testing.T) {
	mock := &mockTwinService{
		invokeResp: &pb.InvokeResponse{Outputs: map[string]float64{twin.KeyBFGRate: 100000}},
	}
	client := NewClientWithService(mock)

	out, err := client.Invoke(context.Background(), plant.ProcessBlastFurnace, twin.Record{
		twin.KeyWindVolume: 4000,
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out[twin.KeyBFGRate] != 100000 {
		t.Fatalf("expected bfg rate 100000, got %f", out[twin.KeyBFGRate])
	}
	if mock.lastReq.Process != string(plant.ProcessBlastFurnace) {
		t.Fatalf("wrong process on the wire: %s", mock.lastReq.Process)
	}
	if mock.lastReq.Inputs[twin.KeyWindVolume] != 4000 {
		t.Fatalf("input lost on the wire: %+v", mock.lastReq.Inputs)
	}
}

func TestInvokeWrapsRPCError(t *testing.T) {
	mock := &mockTwinService{invokeErr: errors.New("unavailable")}
	client := NewClientWithService(mock)

	if _, err := client.Invoke(context.Background(), plant.ProcessBOF, twin.Record{}); err == nil {
		t.Fatal("expected rpc error to propagate")
	}
}

func TestRemoteImplementsTwinBoundary(t *testing.T) {
	mock := &mockTwinService{
		invokeResp: &pb.InvokeResponse{Outputs: map[string]float64{twin.KeyCokeRate: 40}},
	}
	var model twin.Twin = NewRemote(NewClientWithService(mock), 0)

	out, err := model.Invoke(plant.ProcessCokeOven, twin.Record{twin.KeyHeatingGas: 15000})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out[twin.KeyCokeRate] != 40 {
		t.Fatalf("expected coke rate 40, got %f", out[twin.KeyCokeRate])
	}
}

func TestCloseWithoutConnection(t *testing.T) {
	client := NewClientWithService(&mockTwinService{})
	if err := client.Close(); err != nil {
		t.Fatalf("close without connection must be a no-op: %v", err)
	}
}
