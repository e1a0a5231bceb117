// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: reports/v1/reports.proto

package reportsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTextRequest) Reset() {
	*x = ExtractTextRequest{}
	mi := &file_reports_v1_reports_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTextRequest) ProtoMessage() {}

func (x *ExtractTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTextRequest.ProtoReflect.Descriptor instead.
func (*ExtractTextRequest) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractTextRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExtractTextRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExtractTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Pages         int32                  `protobuf:"varint,2,opt,name=pages,proto3" json:"pages,omitempty"`
	SourceType    string                 `protobuf:"bytes,3,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"` // PDF | IMAGE
	Method        string                 `protobuf:"bytes,4,opt,name=method,proto3" json:"method,omitempty"`                           // image-ocr | pdf-batch-ocr
	Confidence    float32                `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	DurationMs    int64                  `protobuf:"varint,6,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTextResponse) Reset() {
	*x = ExtractTextResponse{}
	mi := &file_reports_v1_reports_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTextResponse) ProtoMessage() {}

func (x *ExtractTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTextResponse.ProtoReflect.Descriptor instead.
func (*ExtractTextResponse) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractTextResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractTextResponse) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ExtractTextResponse) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *ExtractTextResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ExtractTextResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractTextResponse) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

type ExtractEntitiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractEntitiesRequest) Reset() {
	*x = ExtractEntitiesRequest{}
	mi := &file_reports_v1_reports_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractEntitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractEntitiesRequest) ProtoMessage() {}

func (x *ExtractEntitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractEntitiesRequest.ProtoReflect.Descriptor instead.
func (*ExtractEntitiesRequest) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractEntitiesRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ExtractionResult struct {
	state                          protoimpl.MessageState `protogen:"open.v1"`
	ResponsibleEngineer            string                 `protobuf:"bytes,1,opt,name=responsible_engineer,json=responsibleEngineer,proto3" json:"responsible_engineer,omitempty"`
	Date                           string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	ConstructionProgressPercentage float64                `protobuf:"fixed64,3,opt,name=construction_progress_percentage,json=constructionProgressPercentage,proto3" json:"construction_progress_percentage,omitempty"`
	// How each field got its value: extracted | defaulted | coercion_failed.
	Origins       map[string]string `protobuf:"bytes,4,rep,name=origins,proto3" json:"origins,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_reports_v1_reports_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractionResult) GetResponsibleEngineer() string {
	if x != nil {
		return x.ResponsibleEngineer
	}
	return ""
}

func (x *ExtractionResult) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *ExtractionResult) GetConstructionProgressPercentage() float64 {
	if x != nil {
		return x.ConstructionProgressPercentage
	}
	return 0
}

func (x *ExtractionResult) GetOrigins() map[string]string {
	if x != nil {
		return x.Origins
	}
	return nil
}

type ExtractEntitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ExtractionResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractEntitiesResponse) Reset() {
	*x = ExtractEntitiesResponse{}
	mi := &file_reports_v1_reports_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractEntitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractEntitiesResponse) ProtoMessage() {}

func (x *ExtractEntitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractEntitiesResponse.ProtoReflect.Descriptor instead.
func (*ExtractEntitiesResponse) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractEntitiesResponse) GetResult() *ExtractionResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ValidateReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ExtractionResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateReportRequest) Reset() {
	*x = ValidateReportRequest{}
	mi := &file_reports_v1_reports_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateReportRequest) ProtoMessage() {}

func (x *ValidateReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateReportRequest.ProtoReflect.Descriptor instead.
func (*ValidateReportRequest) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{5}
}

func (x *ValidateReportRequest) GetResult() *ExtractionResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ValidateReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Valid         bool                   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateReportResponse) Reset() {
	*x = ValidateReportResponse{}
	mi := &file_reports_v1_reports_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateReportResponse) ProtoMessage() {}

func (x *ValidateReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateReportResponse.ProtoReflect.Descriptor instead.
func (*ValidateReportResponse) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{6}
}

func (x *ValidateReportResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

type ProcessReportRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Content     []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename    string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	BuildingId  int64                  `protobuf:"varint,3,opt,name=building_id,json=buildingId,proto3" json:"building_id,omitempty"`
	MilestoneId int64                  `protobuf:"varint,4,opt,name=milestone_id,json=milestoneId,proto3" json:"milestone_id,omitempty"`
	// When true and the verdict is valid, submit the milestone fund release.
	ReleaseFunds  bool `protobuf:"varint,5,opt,name=release_funds,json=releaseFunds,proto3" json:"release_funds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReportRequest) Reset() {
	*x = ProcessReportRequest{}
	mi := &file_reports_v1_reports_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReportRequest) ProtoMessage() {}

func (x *ProcessReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReportRequest.ProtoReflect.Descriptor instead.
func (*ProcessReportRequest) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{7}
}

func (x *ProcessReportRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ProcessReportRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessReportRequest) GetBuildingId() int64 {
	if x != nil {
		return x.BuildingId
	}
	return 0
}

func (x *ProcessReportRequest) GetMilestoneId() int64 {
	if x != nil {
		return x.MilestoneId
	}
	return 0
}

func (x *ProcessReportRequest) GetReleaseFunds() bool {
	if x != nil {
		return x.ReleaseFunds
	}
	return false
}

type ProcessReportResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	VerificationId string                 `protobuf:"bytes,2,opt,name=verification_id,json=verificationId,proto3" json:"verification_id,omitempty"`
	Text           *ExtractTextResponse   `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	Result         *ExtractionResult      `protobuf:"bytes,4,opt,name=result,proto3" json:"result,omitempty"`
	Valid          bool                   `protobuf:"varint,5,opt,name=valid,proto3" json:"valid,omitempty"`
	ReleaseTxHash  string                 `protobuf:"bytes,6,opt,name=release_tx_hash,json=releaseTxHash,proto3" json:"release_tx_hash,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessReportResponse) Reset() {
	*x = ProcessReportResponse{}
	mi := &file_reports_v1_reports_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReportResponse) ProtoMessage() {}

func (x *ProcessReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReportResponse.ProtoReflect.Descriptor instead.
func (*ProcessReportResponse) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{8}
}

func (x *ProcessReportResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessReportResponse) GetVerificationId() string {
	if x != nil {
		return x.VerificationId
	}
	return ""
}

func (x *ProcessReportResponse) GetText() *ExtractTextResponse {
	if x != nil {
		return x.Text
	}
	return nil
}

func (x *ProcessReportResponse) GetResult() *ExtractionResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ProcessReportResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *ProcessReportResponse) GetReleaseTxHash() string {
	if x != nil {
		return x.ReleaseTxHash
	}
	return ""
}

type Verification struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId               string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ResponsibleEngineer string                 `protobuf:"bytes,3,opt,name=responsible_engineer,json=responsibleEngineer,proto3" json:"responsible_engineer,omitempty"`
	ReportDate          string                 `protobuf:"bytes,4,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"`
	ProgressPercent     float64                `protobuf:"fixed64,5,opt,name=progress_percent,json=progressPercent,proto3" json:"progress_percent,omitempty"`
	Valid               bool                   `protobuf:"varint,6,opt,name=valid,proto3" json:"valid,omitempty"`
	ReleaseTxHash       string                 `protobuf:"bytes,7,opt,name=release_tx_hash,json=releaseTxHash,proto3" json:"release_tx_hash,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Verification) Reset() {
	*x = Verification{}
	mi := &file_reports_v1_reports_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Verification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Verification) ProtoMessage() {}

func (x *Verification) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Verification.ProtoReflect.Descriptor instead.
func (*Verification) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{9}
}

func (x *Verification) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Verification) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Verification) GetResponsibleEngineer() string {
	if x != nil {
		return x.ResponsibleEngineer
	}
	return ""
}

func (x *Verification) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

func (x *Verification) GetProgressPercent() float64 {
	if x != nil {
		return x.ProgressPercent
	}
	return 0
}

func (x *Verification) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *Verification) GetReleaseTxHash() string {
	if x != nil {
		return x.ReleaseTxHash
	}
	return ""
}

func (x *Verification) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListVerificationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OnlyValid     bool                   `protobuf:"varint,1,opt,name=only_valid,json=onlyValid,proto3" json:"only_valid,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerificationsRequest) Reset() {
	*x = ListVerificationsRequest{}
	mi := &file_reports_v1_reports_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerificationsRequest) ProtoMessage() {}

func (x *ListVerificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerificationsRequest.ProtoReflect.Descriptor instead.
func (*ListVerificationsRequest) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{10}
}

func (x *ListVerificationsRequest) GetOnlyValid() bool {
	if x != nil {
		return x.OnlyValid
	}
	return false
}

func (x *ListVerificationsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListVerificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Verifications []*Verification        `protobuf:"bytes,1,rep,name=verifications,proto3" json:"verifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerificationsResponse) Reset() {
	*x = ListVerificationsResponse{}
	mi := &file_reports_v1_reports_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerificationsResponse) ProtoMessage() {}

func (x *ListVerificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerificationsResponse.ProtoReflect.Descriptor instead.
func (*ListVerificationsResponse) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{11}
}

func (x *ListVerificationsResponse) GetVerifications() []*Verification {
	if x != nil {
		return x.Verifications
	}
	return nil
}

type ExportVerificationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OnlyValid     bool                   `protobuf:"varint,1,opt,name=only_valid,json=onlyValid,proto3" json:"only_valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVerificationsRequest) Reset() {
	*x = ExportVerificationsRequest{}
	mi := &file_reports_v1_reports_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVerificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVerificationsRequest) ProtoMessage() {}

func (x *ExportVerificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVerificationsRequest.ProtoReflect.Descriptor instead.
func (*ExportVerificationsRequest) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{12}
}

func (x *ExportVerificationsRequest) GetOnlyValid() bool {
	if x != nil {
		return x.OnlyValid
	}
	return false
}

type ExportVerificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVerificationsResponse) Reset() {
	*x = ExportVerificationsResponse{}
	mi := &file_reports_v1_reports_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVerificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVerificationsResponse) ProtoMessage() {}

func (x *ExportVerificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reports_v1_reports_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVerificationsResponse.ProtoReflect.Descriptor instead.
func (*ExportVerificationsResponse) Descriptor() ([]byte, []int) {
	return file_reports_v1_reports_proto_rawDescGZIP(), []int{13}
}

func (x *ExportVerificationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_reports_v1_reports_proto protoreflect.FileDescriptor

const file_reports_v1_reports_proto_rawDesc = "" +
	"\n" +
	"\x18reports/v1/reports.proto\x12\n" +
	"reports.v1\"J\n" +
	"\x12ExtractTextRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xb9\x01\n" +
	"\x13ExtractTextResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x14\n" +
	"\x05pages\x18\x02 \x01(\x05R\x05pages\x12\x1f\n" +
	"\vsource_type\x18\x03 \x01(\tR\n" +
	"sourceType\x12\x16\n" +
	"\x06method\x18\x04 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\x12\x1f\n" +
	"\vduration_ms\x18\x06 \x01(\x03R\n" +
	"durationMs\",\n" +
	"\x16ExtractEntitiesRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"\xa4\x02\n" +
	"\x10ExtractionResult\x121\n" +
	"\x14responsible_engineer\x18\x01 \x01(\tR\x13responsibleEngineer\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12H\n" +
	" construction_progress_percentage\x18\x03 \x01(\x01R\x1econstructionProgressPercentage\x12C\n" +
	"\aorigins\x18\x04 \x03(\v2).reports.v1.ExtractionResult.OriginsEntryR\aorigins\x1a:\n" +
	"\fOriginsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"O\n" +
	"\x17ExtractEntitiesResponse\x124\n" +
	"\x06result\x18\x01 \x01(\v2\x1c.reports.v1.ExtractionResultR\x06result\"M\n" +
	"\x15ValidateReportRequest\x124\n" +
	"\x06result\x18\x01 \x01(\v2\x1c.reports.v1.ExtractionResultR\x06result\".\n" +
	"\x16ValidateReportResponse\x12\x14\n" +
	"\x05valid\x18\x01 \x01(\bR\x05valid\"\xb5\x01\n" +
	"\x14ProcessReportRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1f\n" +
	"\vbuilding_id\x18\x03 \x01(\x03R\n" +
	"buildingId\x12!\n" +
	"\fmilestone_id\x18\x04 \x01(\x03R\vmilestoneId\x12#\n" +
	"\rrelease_funds\x18\x05 \x01(\bR\freleaseFunds\"\x80\x02\n" +
	"\x15ProcessReportResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12'\n" +
	"\x0fverification_id\x18\x02 \x01(\tR\x0everificationId\x123\n" +
	"\x04text\x18\x03 \x01(\v2\x1f.reports.v1.ExtractTextResponseR\x04text\x124\n" +
	"\x06result\x18\x04 \x01(\v2\x1c.reports.v1.ExtractionResultR\x06result\x12\x14\n" +
	"\x05valid\x18\x05 \x01(\bR\x05valid\x12&\n" +
	"\x0frelease_tx_hash\x18\x06 \x01(\tR\rreleaseTxHash\"\x91\x02\n" +
	"\fVerification\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x121\n" +
	"\x14responsible_engineer\x18\x03 \x01(\tR\x13responsibleEngineer\x12\x1f\n" +
	"\vreport_date\x18\x04 \x01(\tR\n" +
	"reportDate\x12)\n" +
	"\x10progress_percent\x18\x05 \x01(\x01R\x0fprogressPercent\x12\x14\n" +
	"\x05valid\x18\x06 \x01(\bR\x05valid\x12&\n" +
	"\x0frelease_tx_hash\x18\a \x01(\tR\rreleaseTxHash\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"O\n" +
	"\x18ListVerificationsRequest\x12\x1d\n" +
	"\n" +
	"only_valid\x18\x01 \x01(\bR\tonlyValid\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"[\n" +
	"\x19ListVerificationsResponse\x12>\n" +
	"\rverifications\x18\x01 \x03(\v2\x18.reports.v1.VerificationR\rverifications\";\n" +
	"\x1aExportVerificationsRequest\x12\x1d\n" +
	"\n" +
	"only_valid\x18\x01 \x01(\bR\tonlyValid\"1\n" +
	"\x1bExportVerificationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb6\x04\n" +
	"\x0fVerifierService\x12N\n" +
	"\vExtractText\x12\x1e.reports.v1.ExtractTextRequest\x1a\x1f.reports.v1.ExtractTextResponse\x12Z\n" +
	"\x0fExtractEntities\x12\".reports.v1.ExtractEntitiesRequest\x1a#.reports.v1.ExtractEntitiesResponse\x12W\n" +
	"\x0eValidateReport\x12!.reports.v1.ValidateReportRequest\x1a\".reports.v1.ValidateReportResponse\x12T\n" +
	"\rProcessReport\x12 .reports.v1.ProcessReportRequest\x1a!.reports.v1.ProcessReportResponse\x12`\n" +
	"\x11ListVerifications\x12$.reports.v1.ListVerificationsRequest\x1a%.reports.v1.ListVerificationsResponse\x12f\n" +
	"\x13ExportVerifications\x12&.reports.v1.ExportVerificationsRequest\x1a'.reports.v1.ExportVerificationsResponseBDZBgithub.com/byb-ai/progress-verifier/gen/proto/reports/v1;reportsv1b\x06proto3"

var (
	file_reports_v1_reports_proto_rawDescOnce sync.Once
	file_reports_v1_reports_proto_rawDescData []byte
)

func file_reports_v1_reports_proto_rawDescGZIP() []byte {
	file_reports_v1_reports_proto_rawDescOnce.Do(func() {
		file_reports_v1_reports_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_reports_v1_reports_proto_rawDesc), len(file_reports_v1_reports_proto_rawDesc)))
	})
	return file_reports_v1_reports_proto_rawDescData
}

var file_reports_v1_reports_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_reports_v1_reports_proto_goTypes = []any{
	(*ExtractTextRequest)(nil),          // 0: reports.v1.ExtractTextRequest
	(*ExtractTextResponse)(nil),         // 1: reports.v1.ExtractTextResponse
	(*ExtractEntitiesRequest)(nil),      // 2: reports.v1.ExtractEntitiesRequest
	(*ExtractionResult)(nil),            // 3: reports.v1.ExtractionResult
	(*ExtractEntitiesResponse)(nil),     // 4: reports.v1.ExtractEntitiesResponse
	(*ValidateReportRequest)(nil),       // 5: reports.v1.ValidateReportRequest
	(*ValidateReportResponse)(nil),      // 6: reports.v1.ValidateReportResponse
	(*ProcessReportRequest)(nil),        // 7: reports.v1.ProcessReportRequest
	(*ProcessReportResponse)(nil),       // 8: reports.v1.ProcessReportResponse
	(*Verification)(nil),                // 9: reports.v1.Verification
	(*ListVerificationsRequest)(nil),    // 10: reports.v1.ListVerificationsRequest
	(*ListVerificationsResponse)(nil),   // 11: reports.v1.ListVerificationsResponse
	(*ExportVerificationsRequest)(nil),  // 12: reports.v1.ExportVerificationsRequest
	(*ExportVerificationsResponse)(nil), // 13: reports.v1.ExportVerificationsResponse
	nil,                                 // 14: reports.v1.ExtractionResult.OriginsEntry
}
var file_reports_v1_reports_proto_depIdxs = []int32{
	14, // 0: reports.v1.ExtractionResult.origins:type_name -> reports.v1.ExtractionResult.OriginsEntry
	3,  // 1: reports.v1.ExtractEntitiesResponse.result:type_name -> reports.v1.ExtractionResult
	3,  // 2: reports.v1.ValidateReportRequest.result:type_name -> reports.v1.ExtractionResult
	1,  // 3: reports.v1.ProcessReportResponse.text:type_name -> reports.v1.ExtractTextResponse
	3,  // 4: reports.v1.ProcessReportResponse.result:type_name -> reports.v1.ExtractionResult
	9,  // 5: reports.v1.ListVerificationsResponse.verifications:type_name -> reports.v1.Verification
	0,  // 6: reports.v1.VerifierService.ExtractText:input_type -> reports.v1.ExtractTextRequest
	2,  // 7: reports.v1.VerifierService.ExtractEntities:input_type -> reports.v1.ExtractEntitiesRequest
	5,  // 8: reports.v1.VerifierService.ValidateReport:input_type -> reports.v1.ValidateReportRequest
	7,  // 9: reports.v1.VerifierService.ProcessReport:input_type -> reports.v1.ProcessReportRequest
	10, // 10: reports.v1.VerifierService.ListVerifications:input_type -> reports.v1.ListVerificationsRequest
	12, // 11: reports.v1.VerifierService.ExportVerifications:input_type -> reports.v1.ExportVerificationsRequest
	1,  // 12: reports.v1.VerifierService.ExtractText:output_type -> reports.v1.ExtractTextResponse
	4,  // 13: reports.v1.VerifierService.ExtractEntities:output_type -> reports.v1.ExtractEntitiesResponse
	6,  // 14: reports.v1.VerifierService.ValidateReport:output_type -> reports.v1.ValidateReportResponse
	8,  // 15: reports.v1.VerifierService.ProcessReport:output_type -> reports.v1.ProcessReportResponse
	11, // 16: reports.v1.VerifierService.ListVerifications:output_type -> reports.v1.ListVerificationsResponse
	13, // 17: reports.v1.VerifierService.ExportVerifications:output_type -> reports.v1.ExportVerificationsResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_reports_v1_reports_proto_init() }
func file_reports_v1_reports_proto_init() {
	if File_reports_v1_reports_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_reports_v1_reports_proto_rawDesc), len(file_reports_v1_reports_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_reports_v1_reports_proto_goTypes,
		DependencyIndexes: file_reports_v1_reports_proto_depIdxs,
		MessageInfos:      file_reports_v1_reports_proto_msgTypes,
	}.Build()
	File_reports_v1_reports_proto = out.File
	file_reports_v1_reports_proto_goTypes = nil
	file_reports_v1_reports_proto_depIdxs = nil
}
