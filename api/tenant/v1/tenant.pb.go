// Go bindings for tenant.proto in the layout protoc-gen-go emits. Keep them in sync with the
// .proto file; the file descriptor is assembled from descriptorpb when the package loads.

package tenantv1

import (
	reflect "reflect"
	sync "sync"

	proto "google.golang.org/protobuf/proto"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	descriptorpb "google.golang.org/protobuf/types/descriptorpb"
)

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Image         string                 `protobuf:"bytes,4,opt,name=image,proto3" json:"image,omitempty"`
	GlobalRole    string                 `protobuf:"bytes,5,opt,name=global_role,json=globalRole,proto3" json:"global_role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{0}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetImage() string {
	if x != nil {
		return x.Image
	}
	return ""
}

func (x *User) GetGlobalRole() string {
	if x != nil {
		return x.GlobalRole
	}
	return ""
}

type Organization struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	LogoImage     string                 `protobuf:"bytes,4,opt,name=logo_image,json=logoImage,proto3" json:"logo_image,omitempty"`
	Role          string                 `protobuf:"bytes,5,opt,name=role,proto3" json:"role,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Active        bool                   `protobuf:"varint,7,opt,name=active,proto3" json:"active,omitempty"`
	Inactive      bool                   `protobuf:"varint,8,opt,name=inactive,proto3" json:"inactive,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Organization) Reset() {
	*x = Organization{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Organization) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Organization) ProtoMessage() {}

func (x *Organization) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Organization.ProtoReflect.Descriptor instead.
func (*Organization) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{1}
}

func (x *Organization) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Organization) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Organization) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Organization) GetLogoImage() string {
	if x != nil {
		return x.LogoImage
	}
	return ""
}

func (x *Organization) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Organization) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Organization) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *Organization) GetInactive() bool {
	if x != nil {
		return x.Inactive
	}
	return false
}

type TenantContext struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	User                   *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	GlobalRole             string                 `protobuf:"bytes,2,opt,name=global_role,json=globalRole,proto3" json:"global_role,omitempty"`
	Organizations          []*Organization        `protobuf:"bytes,3,rep,name=organizations,proto3" json:"organizations,omitempty"`
	SelectedOrganizationId string                 `protobuf:"bytes,4,opt,name=selected_organization_id,json=selectedOrganizationId,proto3" json:"selected_organization_id,omitempty"`
	CurrentRole            string                 `protobuf:"bytes,5,opt,name=current_role,json=currentRole,proto3" json:"current_role,omitempty"`
	SelectionToken         string                 `protobuf:"bytes,6,opt,name=selection_token,json=selectionToken,proto3" json:"selection_token,omitempty"`
	Empty                  bool                   `protobuf:"varint,7,opt,name=empty,proto3" json:"empty,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *TenantContext) Reset() {
	*x = TenantContext{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TenantContext) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TenantContext) ProtoMessage() {}

func (x *TenantContext) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TenantContext.ProtoReflect.Descriptor instead.
func (*TenantContext) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{2}
}

func (x *TenantContext) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *TenantContext) GetGlobalRole() string {
	if x != nil {
		return x.GlobalRole
	}
	return ""
}

func (x *TenantContext) GetOrganizations() []*Organization {
	if x != nil {
		return x.Organizations
	}
	return nil
}

func (x *TenantContext) GetSelectedOrganizationId() string {
	if x != nil {
		return x.SelectedOrganizationId
	}
	return ""
}

func (x *TenantContext) GetCurrentRole() string {
	if x != nil {
		return x.CurrentRole
	}
	return ""
}

func (x *TenantContext) GetSelectionToken() string {
	if x != nil {
		return x.SelectionToken
	}
	return ""
}

func (x *TenantContext) GetEmpty() bool {
	if x != nil {
		return x.Empty
	}
	return false
}

type GetContextRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SelectionToken string                 `protobuf:"bytes,1,opt,name=selection_token,json=selectionToken,proto3" json:"selection_token,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetContextRequest) Reset() {
	*x = GetContextRequest{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContextRequest) ProtoMessage() {}

func (x *GetContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContextRequest.ProtoReflect.Descriptor instead.
func (*GetContextRequest) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{3}
}

func (x *GetContextRequest) GetSelectionToken() string {
	if x != nil {
		return x.SelectionToken
	}
	return ""
}

type GetContextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Context       *TenantContext         `protobuf:"bytes,1,opt,name=context,proto3" json:"context,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContextResponse) Reset() {
	*x = GetContextResponse{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContextResponse) ProtoMessage() {}

func (x *GetContextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContextResponse.ProtoReflect.Descriptor instead.
func (*GetContextResponse) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{4}
}

func (x *GetContextResponse) GetContext() *TenantContext {
	if x != nil {
		return x.Context
	}
	return nil
}

type SelectOrganizationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	SelectionToken string                 `protobuf:"bytes,2,opt,name=selection_token,json=selectionToken,proto3" json:"selection_token,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SelectOrganizationRequest) Reset() {
	*x = SelectOrganizationRequest{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectOrganizationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectOrganizationRequest) ProtoMessage() {}

func (x *SelectOrganizationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectOrganizationRequest.ProtoReflect.Descriptor instead.
func (*SelectOrganizationRequest) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{5}
}

func (x *SelectOrganizationRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *SelectOrganizationRequest) GetSelectionToken() string {
	if x != nil {
		return x.SelectionToken
	}
	return ""
}

type SelectOrganizationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Context       *TenantContext         `protobuf:"bytes,1,opt,name=context,proto3" json:"context,omitempty"`
	Changed       bool                   `protobuf:"varint,2,opt,name=changed,proto3" json:"changed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectOrganizationResponse) Reset() {
	*x = SelectOrganizationResponse{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectOrganizationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectOrganizationResponse) ProtoMessage() {}

func (x *SelectOrganizationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectOrganizationResponse.ProtoReflect.Descriptor instead.
func (*SelectOrganizationResponse) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{6}
}

func (x *SelectOrganizationResponse) GetContext() *TenantContext {
	if x != nil {
		return x.Context
	}
	return nil
}

func (x *SelectOrganizationResponse) GetChanged() bool {
	if x != nil {
		return x.Changed
	}
	return false
}

type CheckAccessRequest struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	RequiredRole           string                 `protobuf:"bytes,1,opt,name=required_role,json=requiredRole,proto3" json:"required_role,omitempty"`
	RequiredGlobalRole     string                 `protobuf:"bytes,2,opt,name=required_global_role,json=requiredGlobalRole,proto3" json:"required_global_role,omitempty"`
	RequiredOrganizationId string                 `protobuf:"bytes,3,opt,name=required_organization_id,json=requiredOrganizationId,proto3" json:"required_organization_id,omitempty"`
	Action                 string                 `protobuf:"bytes,4,opt,name=action,proto3" json:"action,omitempty"`
	SelectionToken         string                 `protobuf:"bytes,5,opt,name=selection_token,json=selectionToken,proto3" json:"selection_token,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *CheckAccessRequest) Reset() {
	*x = CheckAccessRequest{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckAccessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAccessRequest) ProtoMessage() {}

func (x *CheckAccessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAccessRequest.ProtoReflect.Descriptor instead.
func (*CheckAccessRequest) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{7}
}

func (x *CheckAccessRequest) GetRequiredRole() string {
	if x != nil {
		return x.RequiredRole
	}
	return ""
}

func (x *CheckAccessRequest) GetRequiredGlobalRole() string {
	if x != nil {
		return x.RequiredGlobalRole
	}
	return ""
}

func (x *CheckAccessRequest) GetRequiredOrganizationId() string {
	if x != nil {
		return x.RequiredOrganizationId
	}
	return ""
}

func (x *CheckAccessRequest) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *CheckAccessRequest) GetSelectionToken() string {
	if x != nil {
		return x.SelectionToken
	}
	return ""
}

type CheckAccessResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Allowed       bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckAccessResponse) Reset() {
	*x = CheckAccessResponse{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckAccessResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAccessResponse) ProtoMessage() {}

func (x *CheckAccessResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAccessResponse.ProtoReflect.Descriptor instead.
func (*CheckAccessResponse) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{8}
}

func (x *CheckAccessResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *CheckAccessResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ListOrganizationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrganizationsRequest) Reset() {
	*x = ListOrganizationsRequest{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrganizationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrganizationsRequest) ProtoMessage() {}

func (x *ListOrganizationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrganizationsRequest.ProtoReflect.Descriptor instead.
func (*ListOrganizationsRequest) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{9}
}

type ListOrganizationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Organizations []*Organization        `protobuf:"bytes,1,rep,name=organizations,proto3" json:"organizations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrganizationsResponse) Reset() {
	*x = ListOrganizationsResponse{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrganizationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrganizationsResponse) ProtoMessage() {}

func (x *ListOrganizationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrganizationsResponse.ProtoReflect.Descriptor instead.
func (*ListOrganizationsResponse) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{10}
}

func (x *ListOrganizationsResponse) GetOrganizations() []*Organization {
	if x != nil {
		return x.Organizations
	}
	return nil
}

type GetOrganizationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetOrganizationRequest) Reset() {
	*x = GetOrganizationRequest{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrganizationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrganizationRequest) ProtoMessage() {}

func (x *GetOrganizationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrganizationRequest.ProtoReflect.Descriptor instead.
func (*GetOrganizationRequest) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{11}
}

func (x *GetOrganizationRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

type GetOrganizationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Organization  *Organization          `protobuf:"bytes,1,opt,name=organization,proto3" json:"organization,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrganizationResponse) Reset() {
	*x = GetOrganizationResponse{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrganizationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrganizationResponse) ProtoMessage() {}

func (x *GetOrganizationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrganizationResponse.ProtoReflect.Descriptor instead.
func (*GetOrganizationResponse) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{12}
}

func (x *GetOrganizationResponse) GetOrganization() *Organization {
	if x != nil {
		return x.Organization
	}
	return nil
}

type ListAuditLogsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	Limit          int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset         int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListAuditLogsRequest) Reset() {
	*x = ListAuditLogsRequest{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditLogsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditLogsRequest) ProtoMessage() {}

func (x *ListAuditLogsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditLogsRequest.ProtoReflect.Descriptor instead.
func (*ListAuditLogsRequest) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{13}
}

func (x *ListAuditLogsRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *ListAuditLogsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListAuditLogsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type AuditLog struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Action        string                 `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"`
	Resource      string                 `protobuf:"bytes,4,opt,name=resource,proto3" json:"resource,omitempty"`
	Ip            string                 `protobuf:"bytes,5,opt,name=ip,proto3" json:"ip,omitempty"`
	Metadata      string                 `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditLog) Reset() {
	*x = AuditLog{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditLog) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditLog) ProtoMessage() {}

func (x *AuditLog) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditLog.ProtoReflect.Descriptor instead.
func (*AuditLog) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{14}
}

func (x *AuditLog) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AuditLog) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AuditLog) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *AuditLog) GetResource() string {
	if x != nil {
		return x.Resource
	}
	return ""
}

func (x *AuditLog) GetIp() string {
	if x != nil {
		return x.Ip
	}
	return ""
}

func (x *AuditLog) GetMetadata() string {
	if x != nil {
		return x.Metadata
	}
	return ""
}

func (x *AuditLog) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListAuditLogsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AuditLogs     []*AuditLog            `protobuf:"bytes,1,rep,name=audit_logs,json=auditLogs,proto3" json:"audit_logs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditLogsResponse) Reset() {
	*x = ListAuditLogsResponse{}
	mi := &file_tenant_v1_tenant_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditLogsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditLogsResponse) ProtoMessage() {}

func (x *ListAuditLogsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tenant_v1_tenant_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditLogsResponse.ProtoReflect.Descriptor instead.
func (*ListAuditLogsResponse) Descriptor() ([]byte, []int) {
	return file_tenant_v1_tenant_proto_rawDescGZIP(), []int{15}
}

func (x *ListAuditLogsResponse) GetAuditLogs() []*AuditLog {
	if x != nil {
		return x.AuditLogs
	}
	return nil
}

var File_tenant_v1_tenant_proto protoreflect.FileDescriptor

func file_tenant_v1_tenant_proto_buildRawDesc() []byte {
	field := func(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string, repeated bool) *descriptorpb.FieldDescriptorProto {
		label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
		if repeated {
			label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
		}
		f := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(number),
			Label:  label.Enum(),
			Type:   typ.Enum(),
		}
		if typeName != "" {
			f.TypeName = proto.String(typeName)
		}
		return f
	}
	const (
		tString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
		tBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL
		tInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
		tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	)
	message := func(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
		return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
	}
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(".tenant.v1." + in),
			OutputType: proto.String(".tenant.v1." + out),
		}
	}
	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("tenant/v1/tenant.proto"),
		Package: proto.String("tenant.v1"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{GoPackage: proto.String("tenant-core/api/tenant/v1;tenantv1")},
		MessageType: []*descriptorpb.DescriptorProto{
			message("User",
				field("id", 1, tString, "", false),
				field("email", 2, tString, "", false),
				field("name", 3, tString, "", false),
				field("image", 4, tString, "", false),
				field("global_role", 5, tString, "", false),
			),
			message("Organization",
				field("id", 1, tString, "", false),
				field("name", 2, tString, "", false),
				field("type", 3, tString, "", false),
				field("logo_image", 4, tString, "", false),
				field("role", 5, tString, "", false),
				field("status", 6, tString, "", false),
				field("active", 7, tBool, "", false),
				field("inactive", 8, tBool, "", false),
			),
			message("TenantContext",
				field("user", 1, tMessage, ".tenant.v1.User", false),
				field("global_role", 2, tString, "", false),
				field("organizations", 3, tMessage, ".tenant.v1.Organization", true),
				field("selected_organization_id", 4, tString, "", false),
				field("current_role", 5, tString, "", false),
				field("selection_token", 6, tString, "", false),
				field("empty", 7, tBool, "", false),
			),
			message("GetContextRequest",
				field("selection_token", 1, tString, "", false),
			),
			message("GetContextResponse",
				field("context", 1, tMessage, ".tenant.v1.TenantContext", false),
			),
			message("SelectOrganizationRequest",
				field("organization_id", 1, tString, "", false),
				field("selection_token", 2, tString, "", false),
			),
			message("SelectOrganizationResponse",
				field("context", 1, tMessage, ".tenant.v1.TenantContext", false),
				field("changed", 2, tBool, "", false),
			),
			message("CheckAccessRequest",
				field("required_role", 1, tString, "", false),
				field("required_global_role", 2, tString, "", false),
				field("required_organization_id", 3, tString, "", false),
				field("action", 4, tString, "", false),
				field("selection_token", 5, tString, "", false),
			),
			message("CheckAccessResponse",
				field("allowed", 1, tBool, "", false),
				field("reason", 2, tString, "", false),
			),
			message("ListOrganizationsRequest"),
			message("ListOrganizationsResponse",
				field("organizations", 1, tMessage, ".tenant.v1.Organization", true),
			),
			message("GetOrganizationRequest",
				field("organization_id", 1, tString, "", false),
			),
			message("GetOrganizationResponse",
				field("organization", 1, tMessage, ".tenant.v1.Organization", false),
			),
			message("ListAuditLogsRequest",
				field("organization_id", 1, tString, "", false),
				field("limit", 2, tInt32, "", false),
				field("offset", 3, tInt32, "", false),
			),
			message("AuditLog",
				field("id", 1, tString, "", false),
				field("user_id", 2, tString, "", false),
				field("action", 3, tString, "", false),
				field("resource", 4, tString, "", false),
				field("ip", 5, tString, "", false),
				field("metadata", 6, tString, "", false),
				field("created_at", 7, tString, "", false),
			),
			message("ListAuditLogsResponse",
				field("audit_logs", 1, tMessage, ".tenant.v1.AuditLog", true),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("TenantService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("GetContext", "GetContextRequest", "GetContextResponse"),
				method("SelectOrganization", "SelectOrganizationRequest", "SelectOrganizationResponse"),
				method("CheckAccess", "CheckAccessRequest", "CheckAccessResponse"),
				method("ListOrganizations", "ListOrganizationsRequest", "ListOrganizationsResponse"),
				method("GetOrganization", "GetOrganizationRequest", "GetOrganizationResponse"),
				method("ListAuditLogs", "ListAuditLogsRequest", "ListAuditLogsResponse"),
			},
		}},
	}
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(fd)
	if err != nil {
		panic("tenantv1: build file descriptor: " + err.Error())
	}
	return b
}

var (
	file_tenant_v1_tenant_proto_rawDesc     = file_tenant_v1_tenant_proto_buildRawDesc()
	file_tenant_v1_tenant_proto_rawDescOnce sync.Once
	file_tenant_v1_tenant_proto_rawDescData []byte
)

func file_tenant_v1_tenant_proto_rawDescGZIP() []byte {
	file_tenant_v1_tenant_proto_rawDescOnce.Do(func() {
		file_tenant_v1_tenant_proto_rawDescData = protoimpl.X.CompressGZIP(file_tenant_v1_tenant_proto_rawDesc)
	})
	return file_tenant_v1_tenant_proto_rawDescData
}

var file_tenant_v1_tenant_proto_msgTypes = make([]protoimpl.MessageInfo, 16)

var file_tenant_v1_tenant_proto_goTypes = []any{
	(*User)(nil),                       // 0: tenant.v1.User
	(*Organization)(nil),               // 1: tenant.v1.Organization
	(*TenantContext)(nil),              // 2: tenant.v1.TenantContext
	(*GetContextRequest)(nil),          // 3: tenant.v1.GetContextRequest
	(*GetContextResponse)(nil),         // 4: tenant.v1.GetContextResponse
	(*SelectOrganizationRequest)(nil),  // 5: tenant.v1.SelectOrganizationRequest
	(*SelectOrganizationResponse)(nil), // 6: tenant.v1.SelectOrganizationResponse
	(*CheckAccessRequest)(nil),         // 7: tenant.v1.CheckAccessRequest
	(*CheckAccessResponse)(nil),        // 8: tenant.v1.CheckAccessResponse
	(*ListOrganizationsRequest)(nil),   // 9: tenant.v1.ListOrganizationsRequest
	(*ListOrganizationsResponse)(nil),  // 10: tenant.v1.ListOrganizationsResponse
	(*GetOrganizationRequest)(nil),     // 11: tenant.v1.GetOrganizationRequest
	(*GetOrganizationResponse)(nil),    // 12: tenant.v1.GetOrganizationResponse
	(*ListAuditLogsRequest)(nil),       // 13: tenant.v1.ListAuditLogsRequest
	(*AuditLog)(nil),                   // 14: tenant.v1.AuditLog
	(*ListAuditLogsResponse)(nil),      // 15: tenant.v1.ListAuditLogsResponse
}

var file_tenant_v1_tenant_proto_depIdxs = []int32{
	0,  // 0: tenant.v1.TenantContext.user:type_name -> tenant.v1.User
	1,  // 1: tenant.v1.TenantContext.organizations:type_name -> tenant.v1.Organization
	2,  // 2: tenant.v1.GetContextResponse.context:type_name -> tenant.v1.TenantContext
	2,  // 3: tenant.v1.SelectOrganizationResponse.context:type_name -> tenant.v1.TenantContext
	1,  // 4: tenant.v1.ListOrganizationsResponse.organizations:type_name -> tenant.v1.Organization
	1,  // 5: tenant.v1.GetOrganizationResponse.organization:type_name -> tenant.v1.Organization
	14, // 6: tenant.v1.ListAuditLogsResponse.audit_logs:type_name -> tenant.v1.AuditLog
	3,  // 7: tenant.v1.TenantService.GetContext:input_type -> tenant.v1.GetContextRequest
	5,  // 8: tenant.v1.TenantService.SelectOrganization:input_type -> tenant.v1.SelectOrganizationRequest
	7,  // 9: tenant.v1.TenantService.CheckAccess:input_type -> tenant.v1.CheckAccessRequest
	9,  // 10: tenant.v1.TenantService.ListOrganizations:input_type -> tenant.v1.ListOrganizationsRequest
	11, // 11: tenant.v1.TenantService.GetOrganization:input_type -> tenant.v1.GetOrganizationRequest
	13, // 12: tenant.v1.TenantService.ListAuditLogs:input_type -> tenant.v1.ListAuditLogsRequest
	4,  // 13: tenant.v1.TenantService.GetContext:output_type -> tenant.v1.GetContextResponse
	6,  // 14: tenant.v1.TenantService.SelectOrganization:output_type -> tenant.v1.SelectOrganizationResponse
	8,  // 15: tenant.v1.TenantService.CheckAccess:output_type -> tenant.v1.CheckAccessResponse
	10, // 16: tenant.v1.TenantService.ListOrganizations:output_type -> tenant.v1.ListOrganizationsResponse
	12, // 17: tenant.v1.TenantService.GetOrganization:output_type -> tenant.v1.GetOrganizationResponse
	15, // 18: tenant.v1.TenantService.ListAuditLogs:output_type -> tenant.v1.ListAuditLogsResponse
	13, // [13:19] is the sub-list for method output_type
	7,  // [7:13] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_tenant_v1_tenant_proto_init() }
func file_tenant_v1_tenant_proto_init() {
	if File_tenant_v1_tenant_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_tenant_v1_tenant_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tenant_v1_tenant_proto_goTypes,
		DependencyIndexes: file_tenant_v1_tenant_proto_depIdxs,
		MessageInfos:      file_tenant_v1_tenant_proto_msgTypes,
	}.Build()
	File_tenant_v1_tenant_proto = out.File
	file_tenant_v1_tenant_proto_goTypes = nil
	file_tenant_v1_tenant_proto_depIdxs = nil
}
