// Wire types for dispatcher.proto, maintained by hand so the build
// carries no protoc step. Field numbers and names must stay in sync
// with dispatcher.proto; the protobuf runtime derives descriptors
// from the struct tags.

package proto

import (
	"fmt"

	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

type RegisterRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *RegisterRequest) Reset()         { *m = RegisterRequest{} }
func (m *RegisterRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterRequest) ProtoMessage()    {}

func (m *RegisterRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *RegisterRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type RegisterResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *RegisterResponse) Reset()         { *m = RegisterResponse{} }
func (m *RegisterResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterResponse) ProtoMessage()    {}

func (m *RegisterResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *RegisterResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type LoginRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *LoginRequest) Reset()         { *m = LoginRequest{} }
func (m *LoginRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoginRequest) ProtoMessage()    {}

func (m *LoginRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *LoginRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type LoginResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Token   string `protobuf:"bytes,3,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *LoginResponse) Reset()         { *m = LoginResponse{} }
func (m *LoginResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoginResponse) ProtoMessage()    {}

func (m *LoginResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *LoginResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *LoginResponse) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type TaskRequest struct {
	Token      string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Keywords   string                 `protobuf:"bytes,2,opt,name=keywords,proto3" json:"keywords,omitempty"`
	Categories string                 `protobuf:"bytes,3,opt,name=categories,proto3" json:"categories,omitempty"`
	Location   string                 `protobuf:"bytes,4,opt,name=location,proto3" json:"location,omitempty"`
	StartTime  *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime    *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
}

func (m *TaskRequest) Reset()         { *m = TaskRequest{} }
func (m *TaskRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskRequest) ProtoMessage()    {}

func (m *TaskRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *TaskRequest) GetKeywords() string {
	if m != nil {
		return m.Keywords
	}
	return ""
}

func (m *TaskRequest) GetCategories() string {
	if m != nil {
		return m.Categories
	}
	return ""
}

func (m *TaskRequest) GetLocation() string {
	if m != nil {
		return m.Location
	}
	return ""
}

func (m *TaskRequest) GetStartTime() *timestamppb.Timestamp {
	if m != nil {
		return m.StartTime
	}
	return nil
}

func (m *TaskRequest) GetEndTime() *timestamppb.Timestamp {
	if m != nil {
		return m.EndTime
	}
	return nil
}

type TaskStartResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	TaskId  string `protobuf:"bytes,3,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *TaskStartResponse) Reset()         { *m = TaskStartResponse{} }
func (m *TaskStartResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskStartResponse) ProtoMessage()    {}

func (m *TaskStartResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *TaskStartResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *TaskStartResponse) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

type CancelTaskRequest struct {
	Token  string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	TaskId string `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *CancelTaskRequest) Reset()         { *m = CancelTaskRequest{} }
func (m *CancelTaskRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CancelTaskRequest) ProtoMessage()    {}

func (m *CancelTaskRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *CancelTaskRequest) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

type CancelTaskResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CancelTaskResponse) Reset()         { *m = CancelTaskResponse{} }
func (m *CancelTaskResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CancelTaskResponse) ProtoMessage()    {}

func (m *CancelTaskResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *CancelTaskResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type ListTasksRequest struct {
	Token    string   `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Statuses []string `protobuf:"bytes,2,rep,name=statuses,proto3" json:"statuses,omitempty"`
	Limit    int32    `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset   int32    `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
}

func (m *ListTasksRequest) Reset()         { *m = ListTasksRequest{} }
func (m *ListTasksRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListTasksRequest) ProtoMessage()    {}

func (m *ListTasksRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *ListTasksRequest) GetStatuses() []string {
	if m != nil {
		return m.Statuses
	}
	return nil
}

func (m *ListTasksRequest) GetLimit() int32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

func (m *ListTasksRequest) GetOffset() int32 {
	if m != nil {
		return m.Offset
	}
	return 0
}

type TaskInfo struct {
	TaskId     string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Keywords   string                 `protobuf:"bytes,2,opt,name=keywords,proto3" json:"keywords,omitempty"`
	Categories []string               `protobuf:"bytes,3,rep,name=categories,proto3" json:"categories,omitempty"`
	Locations  []string               `protobuf:"bytes,4,rep,name=locations,proto3" json:"locations,omitempty"`
	StartTime  *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime    *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Status     string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt  *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt  *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *TaskInfo) Reset()         { *m = TaskInfo{} }
func (m *TaskInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskInfo) ProtoMessage()    {}

func (m *TaskInfo) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

func (m *TaskInfo) GetKeywords() string {
	if m != nil {
		return m.Keywords
	}
	return ""
}

func (m *TaskInfo) GetCategories() []string {
	if m != nil {
		return m.Categories
	}
	return nil
}

func (m *TaskInfo) GetLocations() []string {
	if m != nil {
		return m.Locations
	}
	return nil
}

func (m *TaskInfo) GetStartTime() *timestamppb.Timestamp {
	if m != nil {
		return m.StartTime
	}
	return nil
}

func (m *TaskInfo) GetEndTime() *timestamppb.Timestamp {
	if m != nil {
		return m.EndTime
	}
	return nil
}

func (m *TaskInfo) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *TaskInfo) GetCreatedAt() *timestamppb.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *TaskInfo) GetUpdatedAt() *timestamppb.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type ListTasksResponse struct {
	Tasks []*TaskInfo `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
}

func (m *ListTasksResponse) Reset()         { *m = ListTasksResponse{} }
func (m *ListTasksResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListTasksResponse) ProtoMessage()    {}

func (m *ListTasksResponse) GetTasks() []*TaskInfo {
	if m != nil {
		return m.Tasks
	}
	return nil
}

type ResultStreamRequest struct {
	Token  string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	TaskId string `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *ResultStreamRequest) Reset()         { *m = ResultStreamRequest{} }
func (m *ResultStreamRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ResultStreamRequest) ProtoMessage()    {}

func (m *ResultStreamRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *ResultStreamRequest) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

type TaskResult struct {
	TaskId    string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Result    []byte                 `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
	Timestamp *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *TaskResult) Reset()         { *m = TaskResult{} }
func (m *TaskResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskResult) ProtoMessage()    {}

func (m *TaskResult) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

func (m *TaskResult) GetResult() []byte {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TaskResult) GetTimestamp() *timestamppb.Timestamp {
	if m != nil {
		return m.Timestamp
	}
	return nil
}

type ListCategoriesRequest struct {
}

func (m *ListCategoriesRequest) Reset()         { *m = ListCategoriesRequest{} }
func (m *ListCategoriesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListCategoriesRequest) ProtoMessage()    {}

type ListCategoriesResponse struct {
	Categories []string `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
}

func (m *ListCategoriesResponse) Reset()         { *m = ListCategoriesResponse{} }
func (m *ListCategoriesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListCategoriesResponse) ProtoMessage()    {}

func (m *ListCategoriesResponse) GetCategories() []string {
	if m != nil {
		return m.Categories
	}
	return nil
}

type ListLocationsRequest struct {
}

func (m *ListLocationsRequest) Reset()         { *m = ListLocationsRequest{} }
func (m *ListLocationsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListLocationsRequest) ProtoMessage()    {}

type ListLocationsResponse struct {
	Locations []string `protobuf:"bytes,1,rep,name=locations,proto3" json:"locations,omitempty"`
}

func (m *ListLocationsResponse) Reset()         { *m = ListLocationsResponse{} }
func (m *ListLocationsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListLocationsResponse) ProtoMessage()    {}

func (m *ListLocationsResponse) GetLocations() []string {
	if m != nil {
		return m.Locations
	}
	return nil
}

type CollectorRegisterRequest struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Secret string `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *CollectorRegisterRequest) Reset()         { *m = CollectorRegisterRequest{} }
func (m *CollectorRegisterRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CollectorRegisterRequest) ProtoMessage()    {}

func (m *CollectorRegisterRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CollectorRegisterRequest) GetSecret() string {
	if m != nil {
		return m.Secret
	}
	return ""
}

type CollectorRegisterResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CollectorRegisterResponse) Reset()         { *m = CollectorRegisterResponse{} }
func (m *CollectorRegisterResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CollectorRegisterResponse) ProtoMessage()    {}

func (m *CollectorRegisterResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *CollectorRegisterResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type CollectorLoginRequest struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Secret string `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *CollectorLoginRequest) Reset()         { *m = CollectorLoginRequest{} }
func (m *CollectorLoginRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CollectorLoginRequest) ProtoMessage()    {}

func (m *CollectorLoginRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CollectorLoginRequest) GetSecret() string {
	if m != nil {
		return m.Secret
	}
	return ""
}

type CollectorLoginResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Token   string `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Message string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CollectorLoginResponse) Reset()         { *m = CollectorLoginResponse{} }
func (m *CollectorLoginResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CollectorLoginResponse) ProtoMessage()    {}

func (m *CollectorLoginResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *CollectorLoginResponse) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *CollectorLoginResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type HeartbeatRequest struct {
	Token     string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Timestamp *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *HeartbeatRequest) Reset()         { *m = HeartbeatRequest{} }
func (m *HeartbeatRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*HeartbeatRequest) ProtoMessage()    {}

func (m *HeartbeatRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *HeartbeatRequest) GetTimestamp() *timestamppb.Timestamp {
	if m != nil {
		return m.Timestamp
	}
	return nil
}

type HeartbeatResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *HeartbeatResponse) Reset()         { *m = HeartbeatResponse{} }
func (m *HeartbeatResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*HeartbeatResponse) ProtoMessage()    {}

func (m *HeartbeatResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *HeartbeatResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type TaskStreamRequest struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *TaskStreamRequest) Reset()         { *m = TaskStreamRequest{} }
func (m *TaskStreamRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskStreamRequest) ProtoMessage()    {}

func (m *TaskStreamRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type TaskAssignment struct {
	TaskId    string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Keywords  string                 `protobuf:"bytes,2,opt,name=keywords,proto3" json:"keywords,omitempty"`
	Category  string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Location  string                 `protobuf:"bytes,4,opt,name=location,proto3" json:"location,omitempty"`
	StartTime *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime   *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Sources   []string               `protobuf:"bytes,7,rep,name=sources,proto3" json:"sources,omitempty"`
}

func (m *TaskAssignment) Reset()         { *m = TaskAssignment{} }
func (m *TaskAssignment) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskAssignment) ProtoMessage()    {}

func (m *TaskAssignment) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

func (m *TaskAssignment) GetKeywords() string {
	if m != nil {
		return m.Keywords
	}
	return ""
}

func (m *TaskAssignment) GetCategory() string {
	if m != nil {
		return m.Category
	}
	return ""
}

func (m *TaskAssignment) GetLocation() string {
	if m != nil {
		return m.Location
	}
	return ""
}

func (m *TaskAssignment) GetStartTime() *timestamppb.Timestamp {
	if m != nil {
		return m.StartTime
	}
	return nil
}

func (m *TaskAssignment) GetEndTime() *timestamppb.Timestamp {
	if m != nil {
		return m.EndTime
	}
	return nil
}

func (m *TaskAssignment) GetSources() []string {
	if m != nil {
		return m.Sources
	}
	return nil
}

type CollectorTaskResult struct {
	Token     string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	TaskId    string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Timestamp *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Result    []byte                 `protobuf:"bytes,4,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *CollectorTaskResult) Reset()         { *m = CollectorTaskResult{} }
func (m *CollectorTaskResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*CollectorTaskResult) ProtoMessage()    {}

func (m *CollectorTaskResult) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *CollectorTaskResult) GetTaskId() string {
	if m != nil {
		return m.TaskId
	}
	return ""
}

func (m *CollectorTaskResult) GetTimestamp() *timestamppb.Timestamp {
	if m != nil {
		return m.Timestamp
	}
	return nil
}

func (m *CollectorTaskResult) GetResult() []byte {
	if m != nil {
		return m.Result
	}
	return nil
}

type CollectorTaskResultAck struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CollectorTaskResultAck) Reset()         { *m = CollectorTaskResultAck{} }
func (m *CollectorTaskResultAck) String() string { return fmt.Sprintf("%+v", *m) }
func (*CollectorTaskResultAck) ProtoMessage()    {}

func (m *CollectorTaskResultAck) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *CollectorTaskResultAck) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}
