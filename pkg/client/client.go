package client

import (
	"context"
	"fmt"
	"time"

	"github.com/magpielabs/magpie/api/proto"
	"github.com/magpielabs/magpie/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const rpcTimeout = 10 * time.Second

// Client wraps the client-facing dispatcher service for CLI usage.
type Client struct {
	conn   *grpc.ClientConn
	client proto.ClientDispatcherClient

	token string
}

// NewClient dials the dispatcher's client port.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to dispatcher: %w", err)
	}
	return &Client{
		conn:   conn,
		client: proto.NewClientDispatcherClient(conn),
	}, nil
}

// Close closes the client connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Token returns the session token from the last successful login.
func (c *Client) Token() string {
	return c.token
}

// SetToken installs a previously issued session token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates an account on the dispatcher.
func (c *Client) Register(username, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Register(ctx, &proto.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%s", resp.Message)
	}
	return nil
}

// Login authenticates and stores the session token on the client.
func (c *Client) Login(username, password string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Login(ctx, &proto.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("%s", resp.Message)
	}
	c.token = resp.Token
	return resp.Token, nil
}

// StartTask submits a collection task. categories and location are
// comma-separated tag lists.
func (c *Client) StartTask(keywords, categories, location string, start, end time.Time) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.StartTask(ctx, &proto.TaskRequest{
		Token:      c.token,
		Keywords:   keywords,
		Categories: categories,
		Location:   location,
		StartTime:  timestamppb.New(start),
		EndTime:    timestamppb.New(end),
	})
	if err != nil {
		return "", "", err
	}
	if !resp.Success {
		return "", resp.Message, fmt.Errorf("%s", resp.Message)
	}
	return resp.TaskId, resp.Message, nil
}

// CancelTask cancels a running task.
func (c *Client) CancelTask(taskID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.CancelTask(ctx, &proto.CancelTaskRequest{
		Token:  c.token,
		TaskId: taskID,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%s", resp.Message)
	}
	return nil
}

// ListTasks returns the caller's tasks, optionally filtered by status.
func (c *Client) ListTasks(statuses []string, limit, offset int) ([]*proto.TaskInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.ListTasks(ctx, &proto.ListTasksRequest{
		Token:    c.token,
		Statuses: statuses,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// StreamResults consumes a task's result stream, invoking fn per
// envelope until the stream ends or ctx is cancelled.
func (c *Client) StreamResults(ctx context.Context, taskID string, fn func(*types.ResultEnvelope) error) error {
	stream, err := c.client.StreamResults(ctx, &proto.ResultStreamRequest{
		Token:  c.token,
		TaskId: taskID,
	})
	if err != nil {
		return err
	}

	for {
		msg, err := stream.Recv()
		if err != nil {
			return err
		}
		env := &types.ResultEnvelope{
			TaskID: msg.TaskId,
			Result: msg.Result,
		}
		if msg.Timestamp != nil {
			env.Timestamp = msg.Timestamp.AsTime()
		}
		if err := fn(env); err != nil {
			return err
		}
	}
}

// Categories returns the catalog's category tags.
func (c *Client) Categories() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.ListAvailableCategories(ctx, &proto.ListCategoriesRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Locations returns the catalog's location tags.
func (c *Client) Locations() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.ListAvailableLocations(ctx, &proto.ListLocationsRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Locations, nil
}
