// Package twinrpc talks to an external process-model service over
// gRPC. It exists so a high-fidelity model (typically a Python
// service) can replace the built-in reference models without touching
// the coordination loop.
package twinrpc

//go:generate protoc --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative --proto_path=../../proto steeltwins.proto

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/oreforge/steelmas/gen/steeltwins"
	"github.com/oreforge/steelmas/internal/plant"
	"github.com/oreforge/steelmas/internal/twin"
)

// #region client

// Client wraps the gRPC connection to the model service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.TwinServiceClient
}

// NewClient connects to the model service.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewTwinServiceClient(conn)}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.TwinServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Invoke evaluates one process model on the service.
func (c *Client) Invoke(ctx context.Context, process plant.ProcessID, in twin.Record) (twin.Record, error) {
	resp, err := c.client.Invoke(ctx, &pb.InvokeRequest{
		Process: string(process),
		Inputs:  map[string]float64(in),
	})
	if err != nil {
		return nil, fmt.Errorf("invoke rpc %s: %w", process, err)
	}
	return twin.Record(resp.Outputs), nil
}

// #endregion client

// #region remote

// Remote adapts a Client to the twin boundary with a per-call timeout.
type Remote struct {
	client  *Client
	timeout time.Duration
}

// NewRemote wraps a client. A non-positive timeout defaults to five
// seconds.
func NewRemote(client *Client, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{client: client, timeout: timeout}
}

// Invoke implements twin.Twin.
func (r *Remote) Invoke(process plant.ProcessID, in twin.Record) (twin.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Invoke(ctx, process, in)
}

// #endregion remote
