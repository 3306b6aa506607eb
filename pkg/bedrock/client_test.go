package bedrock

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/smithy-go"
)

type stubAPI struct {
	err       error
	lastInput *bedrockagentruntime.InvokeAgentInput
}

func (s *stubAPI) InvokeAgent(_ context.Context, params *bedrockagentruntime.InvokeAgentInput, _ ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.InvokeAgentOutput, error) {
	s.lastInput = params
	return nil, s.err
}

func TestGenerateWithoutAPIReportsNotInitialized(t *testing.T) {
	client := &AgentClient{cfg: Config{AgentID: "a", AliasID: "b"}}

	res := client.Generate(context.Background(), "hello", "session-deadbeef", nil)

	if !res.Failed() {
		t.Fatal("expected a failure from an uninitialized client")
	}
	if res.Failure.Category != FailureNotInitialized {
		t.Errorf("category = %q, want %q", res.Failure.Category, FailureNotInitialized)
	}
}

func TestGeneratePassesIdentifiers(t *testing.T) {
	api := &stubAPI{err: errors.New("boom")}
	client := NewWithAPI(api, Config{AgentID: "agent-1", AliasID: "alias-1", KnowledgeBaseID: "kb-1"})

	client.Generate(context.Background(), "instruction text", "session-cafe0123", nil)

	in := api.lastInput
	if in == nil {
		t.Fatal("InvokeAgent was not called")
	}
	if *in.AgentId != "agent-1" || *in.AgentAliasId != "alias-1" {
		t.Errorf("agent identifiers not forwarded: %v / %v", *in.AgentId, *in.AgentAliasId)
	}
	if *in.SessionId != "session-cafe0123" {
		t.Errorf("session id = %q", *in.SessionId)
	}
	if *in.InputText != "instruction text" {
		t.Errorf("input text = %q", *in.InputText)
	}
	if in.SessionState == nil || len(in.SessionState.KnowledgeBaseConfigurations) != 1 {
		t.Error("knowledge base configuration missing from session state")
	}
}

func TestGenerateOmitsSessionStateWithoutKnowledgeBase(t *testing.T) {
	api := &stubAPI{err: errors.New("boom")}
	client := NewWithAPI(api, Config{AgentID: "a", AliasID: "b"})

	client.Generate(context.Background(), "q", "session-00000000", nil)

	if api.lastInput.SessionState != nil {
		t.Error("session state must be nil when no knowledge base is configured")
	}
}

func TestGenerateAttachesMetadataFilter(t *testing.T) {
	api := &stubAPI{err: errors.New("boom")}
	client := NewWithAPI(api, Config{AgentID: "a", AliasID: "b", KnowledgeBaseID: "kb"})

	client.Generate(context.Background(), "q", "session-00000000", &MetadataFilter{Key: "department", Value: "BIT"})

	vs := api.lastInput.SessionState.KnowledgeBaseConfigurations[0].RetrievalConfiguration.VectorSearchConfiguration
	if vs.Filter == nil {
		t.Error("retrieval filter missing")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCategory FailureCategory
		wantCode     string
	}{
		{"access denied", &types.AccessDeniedException{}, FailureAccessDenied, "AccessDeniedException"},
		{"validation", &types.ValidationException{}, FailureInvalidRequest, "ValidationException"},
		{"not found", &types.ResourceNotFoundException{}, FailureNotFound, "ResourceNotFoundException"},
		{"other api error", &smithy.GenericAPIError{Code: "ThrottlingException"}, FailureUnknown, "ThrottlingException"},
		{"plain error", errors.New("dial tcp: timeout"), FailureUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := classify(tt.err)
			if f.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", f.Category, tt.wantCategory)
			}
			if f.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", f.Code, tt.wantCode)
			}
		})
	}
}

func TestFailureUserMessage(t *testing.T) {
	tests := []struct {
		category FailureCategory
		want     string
	}{
		{FailureAccessDenied, "Access denied. Please check your AWS permissions for Bedrock Agents."},
		{FailureInvalidRequest, "Invalid request. Please check the agent ID and alias ID."},
		{FailureNotFound, "Agent not found. Please check your agent ID and alias ID."},
		{FailureNotInitialized, "AWS Bedrock Agent client not initialized. Please check your credentials."},
		{FailureUnknown, "Sorry, I couldn't process your request at the moment."},
	}

	for _, tt := range tests {
		f := &Failure{Category: tt.category}
		if got := f.UserMessage(); got != tt.want {
			t.Errorf("UserMessage(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestGenerateClassifiesInvokeError(t *testing.T) {
	api := &stubAPI{err: &types.AccessDeniedException{}}
	client := NewWithAPI(api, Config{AgentID: "a", AliasID: "b"})

	res := client.Generate(context.Background(), "q", "session-00000000", nil)

	if !res.Failed() || res.Failure.Category != FailureAccessDenied {
		t.Errorf("expected access_denied, got %+v", res)
	}
}
