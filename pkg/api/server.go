package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/magpielabs/magpie/api/proto"
	"github.com/magpielabs/magpie/pkg/dispatcher"
	"github.com/magpielabs/magpie/pkg/events"
	"github.com/magpielabs/magpie/pkg/fleet"
	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/metrics"
	"github.com/magpielabs/magpie/pkg/storage"
	"github.com/magpielabs/magpie/pkg/types"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Server implements both gRPC services on top of a dispatcher. The
// client and collector surfaces listen on separate ports so they can
// be firewalled independently.
type Server struct {
	proto.UnimplementedClientDispatcherServer
	proto.UnimplementedCollectorDispatcherServer

	dispatcher   *dispatcher.Dispatcher
	clientSrv    *grpc.Server
	collectorSrv *grpc.Server
	logger       zerolog.Logger
}

// NewServer creates the API server for a dispatcher.
func NewServer(d *dispatcher.Dispatcher) *Server {
	opts := []grpc.ServerOption{
		grpc.MaxConcurrentStreams(uint32(d.Config().MaxWorkers)),
		grpc.ChainUnaryInterceptor(RecoveryUnaryInterceptor()),
		grpc.ChainStreamInterceptor(RecoveryStreamInterceptor()),
	}
	return &Server{
		dispatcher:   d,
		clientSrv:    grpc.NewServer(opts...),
		collectorSrv: grpc.NewServer(opts...),
		logger:       log.WithComponent("api"),
	}
}

// Start binds both listeners and serves in the background. Serve
// errors after a successful bind are logged, not returned.
func (s *Server) Start() error {
	cfg := s.dispatcher.Config()

	clientLis, err := net.Listen("tcp", cfg.ClientAddr())
	if err != nil {
		return fmt.Errorf("failed to listen on client port: %w", err)
	}
	collectorLis, err := net.Listen("tcp", cfg.CollectorAddr())
	if err != nil {
		clientLis.Close()
		return fmt.Errorf("failed to listen on collector port: %w", err)
	}

	proto.RegisterClientDispatcherServer(s.clientSrv, s)
	proto.RegisterCollectorDispatcherServer(s.collectorSrv, s)

	s.logger.Info().
		Str("client_addr", cfg.ClientAddr()).
		Str("collector_addr", cfg.CollectorAddr()).
		Msg("gRPC listeners up")

	go func() {
		if err := s.clientSrv.Serve(clientLis); err != nil {
			s.logger.Error().Err(err).Msg("client server stopped")
		}
	}()
	go func() {
		if err := s.collectorSrv.Serve(collectorLis); err != nil {
			s.logger.Error().Err(err).Msg("collector server stopped")
		}
	}()
	return nil
}

// Stop gracefully stops both gRPC servers.
func (s *Server) Stop() {
	s.clientSrv.GracefulStop()
	s.collectorSrv.GracefulStop()
}

// ---- client service ----

// Register creates a client account.
func (s *Server) Register(ctx context.Context, req *proto.RegisterRequest) (*proto.RegisterResponse, error) {
	if err := s.dispatcher.RegisterUser(req.Username, req.Password); err != nil {
		msg := "Registration failed"
		if errors.Is(err, storage.ErrExists) {
			msg = "Username already exists"
		}
		return &proto.RegisterResponse{Success: false, Message: msg}, nil
	}
	return &proto.RegisterResponse{Success: true, Message: "Registration successful"}, nil
}

// Login authenticates a client and returns a session token.
func (s *Server) Login(ctx context.Context, req *proto.LoginRequest) (*proto.LoginResponse, error) {
	token, err := s.dispatcher.LoginUser(req.Username, req.Password)
	if err != nil {
		return &proto.LoginResponse{Success: false, Message: "Invalid username or password"}, nil
	}
	return &proto.LoginResponse{Success: true, Message: "Login successful", Token: token}, nil
}

// StartTask creates and dispatches a collection task.
func (s *Server) StartTask(ctx context.Context, req *proto.TaskRequest) (*proto.TaskStartResponse, error) {
	var start, end time.Time
	if req.StartTime != nil {
		start = req.StartTime.AsTime()
	}
	if req.EndTime != nil {
		end = req.EndTime.AsTime()
	}

	taskID, msg, err := s.dispatcher.StartTask(req.Token, req.Keywords, req.Categories, req.Location, start, end)
	if err != nil {
		if msg == "" {
			msg = "Failed to start task"
		}
		return &proto.TaskStartResponse{Success: false, Message: msg}, nil
	}
	return &proto.TaskStartResponse{Success: true, Message: msg, TaskId: taskID}, nil
}

// CancelTask cancels a non-terminal task owned by the caller.
func (s *Server) CancelTask(ctx context.Context, req *proto.CancelTaskRequest) (*proto.CancelTaskResponse, error) {
	err := s.dispatcher.CancelTask(req.Token, req.TaskId)
	switch {
	case err == nil:
		return &proto.CancelTaskResponse{Success: true, Message: "Task cancelled"}, nil
	case errors.Is(err, dispatcher.ErrAuth):
		return &proto.CancelTaskResponse{Success: false, Message: "Authentication required"}, nil
	case errors.Is(err, storage.ErrNotFound):
		return &proto.CancelTaskResponse{Success: false, Message: "Task not found"}, nil
	case errors.Is(err, storage.ErrInvalidTransition):
		return &proto.CancelTaskResponse{Success: false, Message: "Task already finished"}, nil
	default:
		return &proto.CancelTaskResponse{Success: false, Message: "Failed to cancel task"}, nil
	}
}

// ListTasks returns the caller's tasks, newest first.
func (s *Server) ListTasks(ctx context.Context, req *proto.ListTasksRequest) (*proto.ListTasksResponse, error) {
	var statuses []types.TaskStatus
	for _, st := range req.Statuses {
		statuses = append(statuses, types.TaskStatus(strings.ToUpper(st)))
	}

	tasks, err := s.dispatcher.ListTasks(req.Token, statuses, int(req.Limit), int(req.Offset))
	if err != nil {
		if errors.Is(err, dispatcher.ErrAuth) {
			return nil, status.Error(codes.Unauthenticated, "authentication required")
		}
		return nil, status.Errorf(codes.Internal, "failed to list tasks: %v", err)
	}

	out := make([]*proto.TaskInfo, len(tasks))
	for i, t := range tasks {
		out[i] = taskToProto(t)
	}
	return &proto.ListTasksResponse{Tasks: out}, nil
}

// StreamResults pushes every result of a task to the caller, in the
// order results arrived, until the task reaches a terminal state and
// the backlog is drained.
func (s *Server) StreamResults(req *proto.ResultStreamRequest, stream grpc.ServerStreamingServer[proto.TaskResult]) error {
	if _, ok := s.dispatcher.Authorize(req.Token); !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}

	task, err := s.dispatcher.Tasks().GetTask(req.TaskId)
	if err != nil {
		return status.Error(codes.NotFound, "task not found")
	}
	if task.Token != req.Token {
		return status.Error(codes.PermissionDenied, "not your task")
	}

	metrics.ActiveStreams.WithLabelValues("results").Inc()
	defer metrics.ActiveStreams.WithLabelValues("results").Dec()

	bus := s.dispatcher.Bus()
	sub := bus.Subscribe(req.TaskId)
	// Deferred in this order so the subscription is closed before the
	// queue is considered for release.
	defer bus.Release(req.TaskId)
	defer sub.Close()

	ctx := stream.Context()
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		envs := sub.Next(time.Second)
		for _, env := range envs {
			if err := stream.Send(&proto.TaskResult{
				TaskId:    env.TaskID,
				Result:    env.Result,
				Timestamp: timestamppb.New(env.Timestamp),
			}); err != nil {
				return err
			}
		}
		if len(envs) > 0 {
			continue
		}

		// Nothing pending: if the task is done the stream is complete.
		task, err := s.dispatcher.Tasks().GetTask(req.TaskId)
		if err != nil || task.Status.Terminal() {
			return nil
		}
	}
}

// ListAvailableCategories returns the catalog's category tags.
func (s *Server) ListAvailableCategories(ctx context.Context, req *proto.ListCategoriesRequest) (*proto.ListCategoriesResponse, error) {
	return &proto.ListCategoriesResponse{Categories: s.dispatcher.Categories()}, nil
}

// ListAvailableLocations returns the catalog's location tags.
func (s *Server) ListAvailableLocations(ctx context.Context, req *proto.ListLocationsRequest) (*proto.ListLocationsResponse, error) {
	return &proto.ListLocationsResponse{Locations: s.dispatcher.Locations()}, nil
}

// ---- collector service ----

// RegisterCollector adds a collector to the fleet.
func (s *Server) RegisterCollector(ctx context.Context, req *proto.CollectorRegisterRequest) (*proto.CollectorRegisterResponse, error) {
	if err := s.dispatcher.Fleet().Register(req.Name, req.Secret); err != nil {
		msg := "Registration failed"
		if errors.Is(err, fleet.ErrExists) {
			msg = "Collector already registered"
		}
		return &proto.CollectorRegisterResponse{Success: false, Message: msg}, nil
	}

	metrics.CollectorsTotal.Set(float64(s.dispatcher.Fleet().Len()))
	s.dispatcher.Events().Publish(&events.Event{Type: events.EventCollectorRegistered, Collector: req.Name})
	s.logger.Info().Str("collector", req.Name).Msg("collector registered")
	return &proto.CollectorRegisterResponse{Success: true, Message: "Collector registered"}, nil
}

// LoginCollector validates the secret and issues a session token.
func (s *Server) LoginCollector(ctx context.Context, req *proto.CollectorLoginRequest) (*proto.CollectorLoginResponse, error) {
	token, err := s.dispatcher.Fleet().Login(req.Name, req.Secret)
	if err != nil {
		return &proto.CollectorLoginResponse{Success: false, Message: "Invalid name or secret"}, nil
	}
	return &proto.CollectorLoginResponse{Success: true, Token: token, Message: "Login successful"}, nil
}

// Heartbeat records collector liveness.
func (s *Server) Heartbeat(ctx context.Context, req *proto.HeartbeatRequest) (*proto.HeartbeatResponse, error) {
	var ts time.Time
	if req.Timestamp != nil {
		ts = req.Timestamp.AsTime()
	}
	if err := s.dispatcher.Fleet().Heartbeat(req.Token, ts); err != nil {
		return &proto.HeartbeatResponse{Success: false, Message: "Invalid token"}, nil
	}
	metrics.HeartbeatsTotal.Inc()
	return &proto.HeartbeatResponse{Success: true, Message: "ok"}, nil
}

// StreamTasks pushes the collector's assignments as they appear. Each
// pass also retires expired assignments and fails over dead
// collectors, so a fleet with at least one open stream converges
// without a separate janitor loop.
func (s *Server) StreamTasks(req *proto.TaskStreamRequest, stream grpc.ServerStreamingServer[proto.TaskAssignment]) error {
	name, ok := s.dispatcher.Fleet().Resolve(req.Token)
	if !ok {
		return status.Error(codes.Unauthenticated, "invalid token")
	}

	metrics.ActiveStreams.WithLabelValues("tasks").Inc()
	defer metrics.ActiveStreams.WithLabelValues("tasks").Dec()

	cfg := s.dispatcher.Config()
	ctx := stream.Context()
	sent := make(map[string]bool)

	for {
		s.reapFleet()

		assignments, alive := s.dispatcher.Fleet().Assignments(name)
		if !alive {
			// Removed by failover; force a fresh login.
			return status.Error(codes.Unauthenticated, "collector no longer registered")
		}

		for taskID, entry := range assignments {
			if sent[taskID] {
				continue
			}
			task, err := s.dispatcher.Tasks().GetTask(taskID)
			if err != nil {
				s.logger.Warn().Str("task_id", taskID).Err(err).Msg("assignment for unknown task")
				continue
			}
			if err := stream.Send(assignmentToProto(task, entry.Sources)); err != nil {
				return err
			}
			sent[taskID] = true
			s.logger.Debug().Str("collector", name).Str("task_id", taskID).Msg("assignment streamed")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.StreamPollInterval):
		}
	}
}

// reapFleet runs one maintenance pass over the registry: drop
// assignments past their end time, then fail over collectors that
// stopped heartbeating.
func (s *Server) reapFleet() {
	cfg := s.dispatcher.Config()

	for _, exp := range s.dispatcher.Fleet().PurgeExpired() {
		s.logger.Debug().Str("collector", exp.Collector).Str("task_id", exp.TaskID).Msg("assignment expired")
	}

	moved := s.dispatcher.Fleet().FailoverDead(cfg.HeartbeatTimeout)
	deadSeen := make(map[string]bool)
	for _, m := range moved {
		metrics.FailoversTotal.Inc()
		if !deadSeen[m.Dead] {
			deadSeen[m.Dead] = true
			s.dispatcher.Events().Publish(&events.Event{Type: events.EventCollectorDead, Collector: m.Dead})
		}
		s.logger.Info().
			Str("dead", m.Dead).
			Str("task_id", m.TaskID).
			Str("new_owner", m.NewOwner).
			Msg("assignment failed over")
	}
	if len(moved) > 0 {
		metrics.CollectorsTotal.Set(float64(s.dispatcher.Fleet().Len()))
	}
}

// SubmitTaskResult accepts one collected result and fans it out to the
// task's subscribers.
func (s *Server) SubmitTaskResult(ctx context.Context, req *proto.CollectorTaskResult) (*proto.CollectorTaskResultAck, error) {
	var ts time.Time
	if req.Timestamp != nil {
		ts = req.Timestamp.AsTime()
	}

	// Reject before touching any counters: a bad token or unknown task
	// must leave the fleet untouched.
	if _, ok := s.dispatcher.Fleet().Resolve(req.Token); !ok {
		return &proto.CollectorTaskResultAck{Success: false, Message: "Invalid token"}, nil
	}
	if _, err := s.dispatcher.Tasks().GetTask(req.TaskId); err != nil {
		return &proto.CollectorTaskResultAck{Success: false, Message: "Unknown task"}, nil
	}
	if err := s.dispatcher.Fleet().RecordResult(req.Token, req.TaskId, ts); err != nil {
		return &proto.CollectorTaskResultAck{Success: false, Message: "Invalid token"}, nil
	}

	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	s.dispatcher.Bus().Push(&types.ResultEnvelope{
		TaskID:    req.TaskId,
		Result:    req.Result,
		Timestamp: ts,
	})
	metrics.ResultsReceivedTotal.Inc()
	s.dispatcher.Events().Publish(&events.Event{Type: events.EventResultReceived, TaskID: req.TaskId})
	return &proto.CollectorTaskResultAck{Success: true, Message: "Result accepted"}, nil
}

// assignmentToProto builds the wire assignment for one task. The
// assignment carries a single category and location; tasks with more
// than one send the first.
func assignmentToProto(task *types.Task, sources []string) *proto.TaskAssignment {
	return &proto.TaskAssignment{
		TaskId:    task.ID,
		Keywords:  task.Keywords,
		Category:  firstTag(task.Categories),
		Location:  firstTag(task.Locations),
		StartTime: timestamppb.New(task.StartTime),
		EndTime:   timestamppb.New(task.EndTime),
		Sources:   sources,
	}
}

func firstTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

func taskToProto(t *types.Task) *proto.TaskInfo {
	return &proto.TaskInfo{
		TaskId:     t.ID,
		Keywords:   t.Keywords,
		Categories: t.Categories,
		Locations:  t.Locations,
		StartTime:  timestamppb.New(t.StartTime),
		EndTime:    timestamppb.New(t.EndTime),
		Status:     string(t.Status),
		CreatedAt:  timestamppb.New(t.CreatedAt),
		UpdatedAt:  timestamppb.New(t.UpdatedAt),
	}
}
