package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer exposes the summarization pipeline as MCP tools.
type MCPServer struct {
	summarizer *Summarizer
	mcpServer  *server.MCPServer
}

// NewMCPServer creates a new MCP server instance.
func NewMCPServer(summarizer *Summarizer) *MCPServer {
	mcpServer := server.NewMCPServer(
		"youtube-summarizer",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		summarizer: summarizer,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *MCPServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("summarize_video",
		mcp.WithDescription("Classify a YouTube video into a content category (recipe, tutorial, lecture, miscellaneous) and generate a structured markdown summary from its transcript."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL"),
			mcp.Required(),
		),
	), s.handleSummarize)

	s.mcpServer.AddTool(mcp.NewTool("get_video_transcript",
		mcp.WithDescription("Get the full transcript text of a YouTube video. Tries a transcript service, YouTube captions, and the video description in order. Fails if no source yields text."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL"),
			mcp.Required(),
		),
	), s.handleTranscript)

	s.mcpServer.AddTool(mcp.NewTool("get_video_metadata",
		mcp.WithDescription("Get title, author, thumbnail, and description of a YouTube video. Best-effort: fields that cannot be fetched are left empty."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL"),
			mcp.Required(),
		),
	), s.handleMetadata)
}

// handleSummarize implements the summarize_video tool.
func (s *MCPServer) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	result, err := s.summarizer.Summarize(ctx, NormalizeArg(url))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("summarization error", err), nil
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Classification: %s\n\n", result.Classification))
	buf.WriteString(result.Summary)

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(buf.String())},
	}, nil
}

// handleTranscript implements the get_video_transcript tool.
func (s *MCPServer) handleTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	transcript, err := s.summarizer.Transcript(ctx, NormalizeArg(url))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("transcript error", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(transcript)},
	}, nil
}

// handleMetadata implements the get_video_metadata tool.
func (s *MCPServer) handleMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	metadata, err := s.summarizer.Metadata(ctx, NormalizeArg(url))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("metadata error", err), nil
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return mcp.NewToolResultErrorFromErr("encoding metadata", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
	}, nil
}

// Start starts the MCP server using the specified transport.
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}
