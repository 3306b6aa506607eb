package bedrock

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/smithy-go"
)

// knowledge base retrieval tuning: a wide net works better for queries
// that touch several students at once
const (
	retrievalResultCount = 50
)

// MetadataFilter narrows knowledge base retrieval to records whose
// metadata key equals the given value.
type MetadataFilter struct {
	Key   string
	Value string
}

// Generator is the generation collaborator contract: one synchronous
// round trip producing a typed Result. No timeout or retry policy is
// imposed here; once issued, the call runs to completion or failure.
type Generator interface {
	Generate(ctx context.Context, instruction, conversationID string, filter *MetadataFilter) Result
}

// Config identifies the remote agent. Constructed once at process start
// and passed by reference into request handlers.
type Config struct {
	Region          string
	AgentID         string
	AliasID         string
	KnowledgeBaseID string
}

// InvokeAgentAPI is the slice of the Bedrock Agent runtime the client
// needs. Kept narrow so tests can stub it.
type InvokeAgentAPI interface {
	InvokeAgent(ctx context.Context, params *bedrockagentruntime.InvokeAgentInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.InvokeAgentOutput, error)
}

// AgentClient wraps the Bedrock Agent runtime. A client whose credential
// resolution failed stays usable in a degraded state: every Generate call
// reports FailureNotInitialized instead of propagating a fault.
type AgentClient struct {
	api InvokeAgentAPI
	cfg Config
}

func New(ctx context.Context, cfg Config) *AgentClient {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return &AgentClient{cfg: cfg}
	}
	return &AgentClient{
		api: bedrockagentruntime.NewFromConfig(awsCfg),
		cfg: cfg,
	}
}

// NewWithAPI builds a client around an existing runtime API.
func NewWithAPI(api InvokeAgentAPI, cfg Config) *AgentClient {
	return &AgentClient{api: api, cfg: cfg}
}

func (c *AgentClient) Generate(ctx context.Context, instruction, conversationID string, filter *MetadataFilter) Result {
	if c.api == nil {
		return Result{Failure: &Failure{Category: FailureNotInitialized}}
	}

	input := &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(c.cfg.AgentID),
		AgentAliasId: aws.String(c.cfg.AliasID),
		SessionId:    aws.String(conversationID),
		InputText:    aws.String(instruction),
		SessionState: c.sessionState(filter),
	}

	out, err := c.api.InvokeAgent(ctx, input)
	if err != nil {
		return Result{Failure: classify(err)}
	}

	stream := out.GetStream()
	defer stream.Close()

	var text strings.Builder
	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			continue
		}
		if chunk.Value.Bytes != nil {
			text.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return Result{Failure: classify(err)}
	}

	return Result{Text: FormatResponse(text.String())}
}

func (c *AgentClient) sessionState(filter *MetadataFilter) *types.SessionState {
	if c.cfg.KnowledgeBaseID == "" {
		return nil
	}

	vectorSearch := &types.KnowledgeBaseVectorSearchConfiguration{
		NumberOfResults:    aws.Int32(retrievalResultCount),
		OverrideSearchType: types.SearchTypeHybrid,
	}
	if filter != nil {
		vectorSearch.Filter = &types.RetrievalFilterMemberEquals{
			Value: types.FilterAttribute{
				Key:   aws.String(filter.Key),
				Value: document.NewLazyDocument(filter.Value),
			},
		}
	}

	return &types.SessionState{
		KnowledgeBaseConfigurations: []types.KnowledgeBaseConfiguration{
			{
				KnowledgeBaseId: aws.String(c.cfg.KnowledgeBaseID),
				RetrievalConfiguration: &types.KnowledgeBaseRetrievalConfiguration{
					VectorSearchConfiguration: vectorSearch,
				},
			},
		},
		PromptSessionAttributes: map[string]string{
			"retrievalMode":     "comprehensive",
			"includeAllResults": "true",
		},
	}
}

func classify(err error) *Failure {
	var accessDenied *types.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return &Failure{Category: FailureAccessDenied, Code: "AccessDeniedException"}
	}
	var validation *types.ValidationException
	if errors.As(err, &validation) {
		return &Failure{Category: FailureInvalidRequest, Code: "ValidationException"}
	}
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return &Failure{Category: FailureNotFound, Code: "ResourceNotFoundException"}
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &Failure{Category: FailureUnknown, Code: apiErr.ErrorCode()}
	}
	return &Failure{Category: FailureUnknown}
}
