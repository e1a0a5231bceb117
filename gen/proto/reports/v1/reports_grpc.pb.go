// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: reports/v1/reports.proto

package reportsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	VerifierService_ExtractText_FullMethodName         = "/reports.v1.VerifierService/ExtractText"
	VerifierService_ExtractEntities_FullMethodName     = "/reports.v1.VerifierService/ExtractEntities"
	VerifierService_ValidateReport_FullMethodName      = "/reports.v1.VerifierService/ValidateReport"
	VerifierService_ProcessReport_FullMethodName       = "/reports.v1.VerifierService/ProcessReport"
	VerifierService_ListVerifications_FullMethodName   = "/reports.v1.VerifierService/ListVerifications"
	VerifierService_ExportVerifications_FullMethodName = "/reports.v1.VerifierService/ExportVerifications"
)

// VerifierServiceClient is the client API for VerifierService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VerifierService runs construction progress reports through the
// OCR -> entity extraction -> validation pipeline.
type VerifierServiceClient interface {
	// Stage 1 only: document bytes to plain text.
	ExtractText(ctx context.Context, in *ExtractTextRequest, opts ...grpc.CallOption) (*ExtractTextResponse, error)
	// Stage 2 only: plain text to a structured record. Never fails;
	// degraded extractions come back with defaulted fields.
	ExtractEntities(ctx context.Context, in *ExtractEntitiesRequest, opts ...grpc.CallOption) (*ExtractEntitiesResponse, error)
	// Stage 3 only: business rules over a structured record.
	ValidateReport(ctx context.Context, in *ValidateReportRequest, opts ...grpc.CallOption) (*ValidateReportResponse, error)
	// Full pipeline: persists the file, the job, and the verification,
	// and optionally releases escrowed milestone funds on a valid verdict.
	ProcessReport(ctx context.Context, in *ProcessReportRequest, opts ...grpc.CallOption) (*ProcessReportResponse, error)
	ListVerifications(ctx context.Context, in *ListVerificationsRequest, opts ...grpc.CallOption) (*ListVerificationsResponse, error)
	ExportVerifications(ctx context.Context, in *ExportVerificationsRequest, opts ...grpc.CallOption) (*ExportVerificationsResponse, error)
}

type verifierServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVerifierServiceClient(cc grpc.ClientConnInterface) VerifierServiceClient {
	return &verifierServiceClient{cc}
}

func (c *verifierServiceClient) ExtractText(ctx context.Context, in *ExtractTextRequest, opts ...grpc.CallOption) (*ExtractTextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractTextResponse)
	err := c.cc.Invoke(ctx, VerifierService_ExtractText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verifierServiceClient) ExtractEntities(ctx context.Context, in *ExtractEntitiesRequest, opts ...grpc.CallOption) (*ExtractEntitiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractEntitiesResponse)
	err := c.cc.Invoke(ctx, VerifierService_ExtractEntities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verifierServiceClient) ValidateReport(ctx context.Context, in *ValidateReportRequest, opts ...grpc.CallOption) (*ValidateReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateReportResponse)
	err := c.cc.Invoke(ctx, VerifierService_ValidateReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verifierServiceClient) ProcessReport(ctx context.Context, in *ProcessReportRequest, opts ...grpc.CallOption) (*ProcessReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessReportResponse)
	err := c.cc.Invoke(ctx, VerifierService_ProcessReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verifierServiceClient) ListVerifications(ctx context.Context, in *ListVerificationsRequest, opts ...grpc.CallOption) (*ListVerificationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVerificationsResponse)
	err := c.cc.Invoke(ctx, VerifierService_ListVerifications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verifierServiceClient) ExportVerifications(ctx context.Context, in *ExportVerificationsRequest, opts ...grpc.CallOption) (*ExportVerificationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportVerificationsResponse)
	err := c.cc.Invoke(ctx, VerifierService_ExportVerifications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VerifierServiceServer is the server API for VerifierService service.
// All implementations must embed UnimplementedVerifierServiceServer
// for forward compatibility.
//
// VerifierService runs construction progress reports through the
// OCR -> entity extraction -> validation pipeline.
type VerifierServiceServer interface {
	// Stage 1 only: document bytes to plain text.
	ExtractText(context.Context, *ExtractTextRequest) (*ExtractTextResponse, error)
	// Stage 2 only: plain text to a structured record. Never fails;
	// degraded extractions come back with defaulted fields.
	ExtractEntities(context.Context, *ExtractEntitiesRequest) (*ExtractEntitiesResponse, error)
	// Stage 3 only: business rules over a structured record.
	ValidateReport(context.Context, *ValidateReportRequest) (*ValidateReportResponse, error)
	// Full pipeline: persists the file, the job, and the verification,
	// and optionally releases escrowed milestone funds on a valid verdict.
	ProcessReport(context.Context, *ProcessReportRequest) (*ProcessReportResponse, error)
	ListVerifications(context.Context, *ListVerificationsRequest) (*ListVerificationsResponse, error)
	ExportVerifications(context.Context, *ExportVerificationsRequest) (*ExportVerificationsResponse, error)
	mustEmbedUnimplementedVerifierServiceServer()
}

// UnimplementedVerifierServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVerifierServiceServer struct{}

func (UnimplementedVerifierServiceServer) ExtractText(context.Context, *ExtractTextRequest) (*ExtractTextResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractText not implemented")
}
func (UnimplementedVerifierServiceServer) ExtractEntities(context.Context, *ExtractEntitiesRequest) (*ExtractEntitiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractEntities not implemented")
}
func (UnimplementedVerifierServiceServer) ValidateReport(context.Context, *ValidateReportRequest) (*ValidateReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateReport not implemented")
}
func (UnimplementedVerifierServiceServer) ProcessReport(context.Context, *ProcessReportRequest) (*ProcessReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessReport not implemented")
}
func (UnimplementedVerifierServiceServer) ListVerifications(context.Context, *ListVerificationsRequest) (*ListVerificationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVerifications not implemented")
}
func (UnimplementedVerifierServiceServer) ExportVerifications(context.Context, *ExportVerificationsRequest) (*ExportVerificationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportVerifications not implemented")
}
func (UnimplementedVerifierServiceServer) mustEmbedUnimplementedVerifierServiceServer() {}
func (UnimplementedVerifierServiceServer) testEmbeddedByValue()                         {}

// UnsafeVerifierServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VerifierServiceServer will
// result in compilation errors.
type UnsafeVerifierServiceServer interface {
	mustEmbedUnimplementedVerifierServiceServer()
}

func RegisterVerifierServiceServer(s grpc.ServiceRegistrar, srv VerifierServiceServer) {
	// If the following call panics, it indicates UnimplementedVerifierServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VerifierService_ServiceDesc, srv)
}

func _VerifierService_ExtractText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).ExtractText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifierService_ExtractText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerifierServiceServer).ExtractText(ctx, req.(*ExtractTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerifierService_ExtractEntities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractEntitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).ExtractEntities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifierService_ExtractEntities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerifierServiceServer).ExtractEntities(ctx, req.(*ExtractEntitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerifierService_ValidateReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).ValidateReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifierService_ValidateReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerifierServiceServer).ValidateReport(ctx, req.(*ValidateReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerifierService_ProcessReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).ProcessReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifierService_ProcessReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerifierServiceServer).ProcessReport(ctx, req.(*ProcessReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerifierService_ListVerifications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVerificationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).ListVerifications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifierService_ListVerifications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerifierServiceServer).ListVerifications(ctx, req.(*ListVerificationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerifierService_ExportVerifications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportVerificationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).ExportVerifications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifierService_ExportVerifications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerifierServiceServer).ExportVerifications(ctx, req.(*ExportVerificationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VerifierService_ServiceDesc is the grpc.ServiceDesc for VerifierService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VerifierService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reports.v1.VerifierService",
	HandlerType: (*VerifierServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractText",
			Handler:    _VerifierService_ExtractText_Handler,
		},
		{
			MethodName: "ExtractEntities",
			Handler:    _VerifierService_ExtractEntities_Handler,
		},
		{
			MethodName: "ValidateReport",
			Handler:    _VerifierService_ValidateReport_Handler,
		},
		{
			MethodName: "ProcessReport",
			Handler:    _VerifierService_ProcessReport_Handler,
		},
		{
			MethodName: "ListVerifications",
			Handler:    _VerifierService_ListVerifications_Handler,
		},
		{
			MethodName: "ExportVerifications",
			Handler:    _VerifierService_ExportVerifications_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reports/v1/reports.proto",
}
