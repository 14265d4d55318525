// Service bindings for dispatcher.proto, maintained by hand alongside
// dispatcher.pb.go. The shapes mirror protoc-gen-go-grpc output so the
// call sites read the same as generated code.

package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	ClientDispatcher_Register_FullMethodName                = "/magpie.ClientDispatcher/Register"
	ClientDispatcher_Login_FullMethodName                   = "/magpie.ClientDispatcher/Login"
	ClientDispatcher_StartTask_FullMethodName               = "/magpie.ClientDispatcher/StartTask"
	ClientDispatcher_CancelTask_FullMethodName              = "/magpie.ClientDispatcher/CancelTask"
	ClientDispatcher_ListTasks_FullMethodName               = "/magpie.ClientDispatcher/ListTasks"
	ClientDispatcher_StreamResults_FullMethodName           = "/magpie.ClientDispatcher/StreamResults"
	ClientDispatcher_ListAvailableCategories_FullMethodName = "/magpie.ClientDispatcher/ListAvailableCategories"
	ClientDispatcher_ListAvailableLocations_FullMethodName  = "/magpie.ClientDispatcher/ListAvailableLocations"
)

// ClientDispatcherClient is the client API for ClientDispatcher service.
type ClientDispatcherClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	StartTask(ctx context.Context, in *TaskRequest, opts ...grpc.CallOption) (*TaskStartResponse, error)
	CancelTask(ctx context.Context, in *CancelTaskRequest, opts ...grpc.CallOption) (*CancelTaskResponse, error)
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	StreamResults(ctx context.Context, in *ResultStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TaskResult], error)
	ListAvailableCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	ListAvailableLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*ListLocationsResponse, error)
}

type clientDispatcherClient struct {
	cc grpc.ClientConnInterface
}

func NewClientDispatcherClient(cc grpc.ClientConnInterface) ClientDispatcherClient {
	return &clientDispatcherClient{cc}
}

func (c *clientDispatcherClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_Register_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientDispatcherClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_Login_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientDispatcherClient) StartTask(ctx context.Context, in *TaskRequest, opts ...grpc.CallOption) (*TaskStartResponse, error) {
	out := new(TaskStartResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_StartTask_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientDispatcherClient) CancelTask(ctx context.Context, in *CancelTaskRequest, opts ...grpc.CallOption) (*CancelTaskResponse, error) {
	out := new(CancelTaskResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_CancelTask_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientDispatcherClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	out := new(ListTasksResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_ListTasks_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientDispatcherClient) StreamResults(ctx context.Context, in *ResultStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TaskResult], error) {
	stream, err := c.cc.NewStream(ctx, &ClientDispatcher_ServiceDesc.Streams[0], ClientDispatcher_StreamResults_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ResultStreamRequest, TaskResult]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *clientDispatcherClient) ListAvailableCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_ListAvailableCategories_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientDispatcherClient) ListAvailableLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*ListLocationsResponse, error) {
	out := new(ListLocationsResponse)
	err := c.cc.Invoke(ctx, ClientDispatcher_ListAvailableLocations_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClientDispatcherServer is the server API for ClientDispatcher service.
// All implementations must embed UnimplementedClientDispatcherServer
// for forward compatibility.
type ClientDispatcherServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	StartTask(context.Context, *TaskRequest) (*TaskStartResponse, error)
	CancelTask(context.Context, *CancelTaskRequest) (*CancelTaskResponse, error)
	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	StreamResults(*ResultStreamRequest, grpc.ServerStreamingServer[TaskResult]) error
	ListAvailableCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	ListAvailableLocations(context.Context, *ListLocationsRequest) (*ListLocationsResponse, error)
	mustEmbedUnimplementedClientDispatcherServer()
}

// UnimplementedClientDispatcherServer must be embedded to have forward
// compatible implementations.
type UnimplementedClientDispatcherServer struct{}

func (UnimplementedClientDispatcherServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedClientDispatcherServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedClientDispatcherServer) StartTask(context.Context, *TaskRequest) (*TaskStartResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartTask not implemented")
}
func (UnimplementedClientDispatcherServer) CancelTask(context.Context, *CancelTaskRequest) (*CancelTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelTask not implemented")
}
func (UnimplementedClientDispatcherServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTasks not implemented")
}
func (UnimplementedClientDispatcherServer) StreamResults(*ResultStreamRequest, grpc.ServerStreamingServer[TaskResult]) error {
	return status.Errorf(codes.Unimplemented, "method StreamResults not implemented")
}
func (UnimplementedClientDispatcherServer) ListAvailableCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAvailableCategories not implemented")
}
func (UnimplementedClientDispatcherServer) ListAvailableLocations(context.Context, *ListLocationsRequest) (*ListLocationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAvailableLocations not implemented")
}
func (UnimplementedClientDispatcherServer) mustEmbedUnimplementedClientDispatcherServer() {}

func RegisterClientDispatcherServer(s grpc.ServiceRegistrar, srv ClientDispatcherServer) {
	s.RegisterService(&ClientDispatcher_ServiceDesc, srv)
}

func _ClientDispatcher_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientDispatcher_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientDispatcher_StartTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).StartTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_StartTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).StartTask(ctx, req.(*TaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientDispatcher_CancelTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).CancelTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_CancelTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).CancelTask(ctx, req.(*CancelTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientDispatcher_ListTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).ListTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_ListTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).ListTasks(ctx, req.(*ListTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientDispatcher_StreamResults_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ResultStreamRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ClientDispatcherServer).StreamResults(m, &grpc.GenericServerStream[ResultStreamRequest, TaskResult]{ServerStream: stream})
}

func _ClientDispatcher_ListAvailableCategories_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).ListAvailableCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_ListAvailableCategories_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).ListAvailableCategories(ctx, req.(*ListCategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientDispatcher_ListAvailableLocations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLocationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientDispatcherServer).ListAvailableLocations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClientDispatcher_ListAvailableLocations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientDispatcherServer).ListAvailableLocations(ctx, req.(*ListLocationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClientDispatcher_ServiceDesc is the grpc.ServiceDesc for
// ClientDispatcher service. It should not be introspected or modified
// (even as a copy).
var ClientDispatcher_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "magpie.ClientDispatcher",
	HandlerType: (*ClientDispatcherServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _ClientDispatcher_Register_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _ClientDispatcher_Login_Handler,
		},
		{
			MethodName: "StartTask",
			Handler:    _ClientDispatcher_StartTask_Handler,
		},
		{
			MethodName: "CancelTask",
			Handler:    _ClientDispatcher_CancelTask_Handler,
		},
		{
			MethodName: "ListTasks",
			Handler:    _ClientDispatcher_ListTasks_Handler,
		},
		{
			MethodName: "ListAvailableCategories",
			Handler:    _ClientDispatcher_ListAvailableCategories_Handler,
		},
		{
			MethodName: "ListAvailableLocations",
			Handler:    _ClientDispatcher_ListAvailableLocations_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamResults",
			Handler:       _ClientDispatcher_StreamResults_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/proto/dispatcher.proto",
}

const (
	CollectorDispatcher_RegisterCollector_FullMethodName = "/magpie.CollectorDispatcher/RegisterCollector"
	CollectorDispatcher_LoginCollector_FullMethodName    = "/magpie.CollectorDispatcher/LoginCollector"
	CollectorDispatcher_Heartbeat_FullMethodName         = "/magpie.CollectorDispatcher/Heartbeat"
	CollectorDispatcher_StreamTasks_FullMethodName       = "/magpie.CollectorDispatcher/StreamTasks"
	CollectorDispatcher_SubmitTaskResult_FullMethodName  = "/magpie.CollectorDispatcher/SubmitTaskResult"
)

// CollectorDispatcherClient is the client API for CollectorDispatcher service.
type CollectorDispatcherClient interface {
	RegisterCollector(ctx context.Context, in *CollectorRegisterRequest, opts ...grpc.CallOption) (*CollectorRegisterResponse, error)
	LoginCollector(ctx context.Context, in *CollectorLoginRequest, opts ...grpc.CallOption) (*CollectorLoginResponse, error)
	Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (*HeartbeatResponse, error)
	StreamTasks(ctx context.Context, in *TaskStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TaskAssignment], error)
	SubmitTaskResult(ctx context.Context, in *CollectorTaskResult, opts ...grpc.CallOption) (*CollectorTaskResultAck, error)
}

type collectorDispatcherClient struct {
	cc grpc.ClientConnInterface
}

func NewCollectorDispatcherClient(cc grpc.ClientConnInterface) CollectorDispatcherClient {
	return &collectorDispatcherClient{cc}
}

func (c *collectorDispatcherClient) RegisterCollector(ctx context.Context, in *CollectorRegisterRequest, opts ...grpc.CallOption) (*CollectorRegisterResponse, error) {
	out := new(CollectorRegisterResponse)
	err := c.cc.Invoke(ctx, CollectorDispatcher_RegisterCollector_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectorDispatcherClient) LoginCollector(ctx context.Context, in *CollectorLoginRequest, opts ...grpc.CallOption) (*CollectorLoginResponse, error) {
	out := new(CollectorLoginResponse)
	err := c.cc.Invoke(ctx, CollectorDispatcher_LoginCollector_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectorDispatcherClient) Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (*HeartbeatResponse, error) {
	out := new(HeartbeatResponse)
	err := c.cc.Invoke(ctx, CollectorDispatcher_Heartbeat_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectorDispatcherClient) StreamTasks(ctx context.Context, in *TaskStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TaskAssignment], error) {
	stream, err := c.cc.NewStream(ctx, &CollectorDispatcher_ServiceDesc.Streams[0], CollectorDispatcher_StreamTasks_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[TaskStreamRequest, TaskAssignment]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *collectorDispatcherClient) SubmitTaskResult(ctx context.Context, in *CollectorTaskResult, opts ...grpc.CallOption) (*CollectorTaskResultAck, error) {
	out := new(CollectorTaskResultAck)
	err := c.cc.Invoke(ctx, CollectorDispatcher_SubmitTaskResult_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CollectorDispatcherServer is the server API for CollectorDispatcher
// service. All implementations must embed
// UnimplementedCollectorDispatcherServer for forward compatibility.
type CollectorDispatcherServer interface {
	RegisterCollector(context.Context, *CollectorRegisterRequest) (*CollectorRegisterResponse, error)
	LoginCollector(context.Context, *CollectorLoginRequest) (*CollectorLoginResponse, error)
	Heartbeat(context.Context, *HeartbeatRequest) (*HeartbeatResponse, error)
	StreamTasks(*TaskStreamRequest, grpc.ServerStreamingServer[TaskAssignment]) error
	SubmitTaskResult(context.Context, *CollectorTaskResult) (*CollectorTaskResultAck, error)
	mustEmbedUnimplementedCollectorDispatcherServer()
}

// UnimplementedCollectorDispatcherServer must be embedded to have
// forward compatible implementations.
type UnimplementedCollectorDispatcherServer struct{}

func (UnimplementedCollectorDispatcherServer) RegisterCollector(context.Context, *CollectorRegisterRequest) (*CollectorRegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterCollector not implemented")
}
func (UnimplementedCollectorDispatcherServer) LoginCollector(context.Context, *CollectorLoginRequest) (*CollectorLoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoginCollector not implemented")
}
func (UnimplementedCollectorDispatcherServer) Heartbeat(context.Context, *HeartbeatRequest) (*HeartbeatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Heartbeat not implemented")
}
func (UnimplementedCollectorDispatcherServer) StreamTasks(*TaskStreamRequest, grpc.ServerStreamingServer[TaskAssignment]) error {
	return status.Errorf(codes.Unimplemented, "method StreamTasks not implemented")
}
func (UnimplementedCollectorDispatcherServer) SubmitTaskResult(context.Context, *CollectorTaskResult) (*CollectorTaskResultAck, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitTaskResult not implemented")
}
func (UnimplementedCollectorDispatcherServer) mustEmbedUnimplementedCollectorDispatcherServer() {}

func RegisterCollectorDispatcherServer(s grpc.ServiceRegistrar, srv CollectorDispatcherServer) {
	s.RegisterService(&CollectorDispatcher_ServiceDesc, srv)
}

func _CollectorDispatcher_RegisterCollector_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CollectorRegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectorDispatcherServer).RegisterCollector(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectorDispatcher_RegisterCollector_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectorDispatcherServer).RegisterCollector(ctx, req.(*CollectorRegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectorDispatcher_LoginCollector_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CollectorLoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectorDispatcherServer).LoginCollector(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectorDispatcher_LoginCollector_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectorDispatcherServer).LoginCollector(ctx, req.(*CollectorLoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectorDispatcher_Heartbeat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HeartbeatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectorDispatcherServer).Heartbeat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectorDispatcher_Heartbeat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectorDispatcherServer).Heartbeat(ctx, req.(*HeartbeatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectorDispatcher_StreamTasks_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(TaskStreamRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(CollectorDispatcherServer).StreamTasks(m, &grpc.GenericServerStream[TaskStreamRequest, TaskAssignment]{ServerStream: stream})
}

func _CollectorDispatcher_SubmitTaskResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CollectorTaskResult)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectorDispatcherServer).SubmitTaskResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectorDispatcher_SubmitTaskResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectorDispatcherServer).SubmitTaskResult(ctx, req.(*CollectorTaskResult))
	}
	return interceptor(ctx, in, info, handler)
}

// CollectorDispatcher_ServiceDesc is the grpc.ServiceDesc for
// CollectorDispatcher service. It should not be introspected or
// modified (even as a copy).
var CollectorDispatcher_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "magpie.CollectorDispatcher",
	HandlerType: (*CollectorDispatcherServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterCollector",
			Handler:    _CollectorDispatcher_RegisterCollector_Handler,
		},
		{
			MethodName: "LoginCollector",
			Handler:    _CollectorDispatcher_LoginCollector_Handler,
		},
		{
			MethodName: "Heartbeat",
			Handler:    _CollectorDispatcher_Heartbeat_Handler,
		},
		{
			MethodName: "SubmitTaskResult",
			Handler:    _CollectorDispatcher_SubmitTaskResult_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamTasks",
			Handler:       _CollectorDispatcher_StreamTasks_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/proto/dispatcher.proto",
}
